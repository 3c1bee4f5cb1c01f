package functional

import (
	"fmt"
	"iter"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
)

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error, never both.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result. A nil err is replaced by
// ErrValueUnavailable so a failure always carries an error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: orUnavailable(err)}
}

// Errf creates a failed Result from a formatted message. format is a
// Printf format; use Errs for a literal message.
func Errf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

// Errs creates a failed Result whose error message is msg verbatim.
func Errs[T any](msg string) Result[T] {
	return Err[T](apperrors.Parse(msg))
}

// FromOption creates a Result from an Option.
func FromOption[T any](o Option[T], err error) Result[T] {
	return o.AsResultOr(err)
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Get returns the success value, or the stored error itself.
func (r Result[T]) Get() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Unwrap returns the success value or panics with the stored error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the stored error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Map applies a function to the success value. A panic in fn becomes an
// OperationFailed error.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	return MapResult(r, fn)
}

// MapResult applies a transformation function to Result.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	var out U
	if err := capture(func() { out = fn(r.value) }); err != nil {
		return Err[U](err)
	}
	return Ok(out)
}

// TryMap applies a fallible transformation. A returned error is kept as is.
func TryMap[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	return FlatMapResult(r, func(v T) Result[U] {
		return TryFunc(fn(v))
	})
}

// MapErr applies a function to the error. A panic in fn replaces the error
// with an OperationFailed error.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	var mapped error
	if err := capture(func() { mapped = fn(r.err) }); err != nil {
		return Err[T](err)
	}
	return Err[T](mapped)
}

// FlatMap applies a function that returns a Result.
func (r Result[T]) FlatMap(fn func(T) Result[T]) Result[T] {
	return FlatMapResult(r, fn)
}

// FlatMapResult applies a function that returns a Result.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	var out Result[U]
	if err := capture(func() { out = fn(r.value) }); err != nil {
		return Err[U](err)
	}
	return out
}

// Filter fails with err when the success value does not satisfy predicate.
// A nil err falls back to ErrPredicateFailed.
func (r Result[T]) Filter(predicate func(T) bool, err error) Result[T] {
	return r.FilterFunc(predicate, func(T) error { return err })
}

// FilterFunc is Filter with the error derived from the rejected value.
func (r Result[T]) FilterFunc(predicate func(T) bool, errFn func(T) error) Result[T] {
	return r.FlatMap(func(v T) Result[T] {
		if predicate(v) {
			return r
		}
		if err := errFn(v); err != nil {
			return Err[T](err)
		}
		return Err[T](apperrors.ErrPredicateFailed)
	})
}

// Or returns r on success, otherwise fallback converted to a Result.
func (r Result[T]) Or(fallback ResultConvertible[T]) Result[T] {
	if r.ok {
		return r
	}
	return UnwrapResult(Convertible[T](fallback), r.err)
}

// OrElse returns r on success, otherwise the Result produced from the
// error by fn.
func (r Result[T]) OrElse(fn func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	var out Result[T]
	if err := capture(func() { out = fn(r.err) }); err != nil {
		return Err[T](err)
	}
	return out
}

// Recover replaces a failure with a plain fallback value. A nil fallback
// keeps the Result failed with ErrValueUnavailable.
func (r Result[T]) Recover(fallback T) Result[T] {
	if r.ok {
		return r
	}
	return UnwrapResult(Plain(fallback), nil)
}

// RecoverWith replaces a failure with the outcome of fn applied to the
// error.
func (r Result[T]) RecoverWith(fn func(error) (T, error)) Result[T] {
	if r.ok {
		return r
	}
	return Try(func() (T, error) { return fn(r.err) })
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// All returns an iterator over the Result (0 or 1 element).
func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// Collect returns the Result value as a slice (empty if error).
func (r Result[T]) Collect() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

// AsResult returns r.
func (r Result[T]) AsResult() Result[T] {
	return r
}

// AsOption converts r to an Option, discarding the error.
func (r Result[T]) AsOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func (Result[T]) tryResult() {}
