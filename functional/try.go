package functional

import "github.com/authcorp/libs/go/fnkit/types"

// TryResult is the closed set of ambiguous inputs accepted by UnwrapResult,
// UnwrapOption and Evaluate: an Option, a Result, a plain value (Plain) or
// a foreign convertible container (Convertible).
type TryResult[T any] interface {
	OptionConvertible[T]
	tryResult()
}

type plain[T any] struct {
	value T
}

// Plain wraps a raw value as a TryResult. Nil values normalize to absence.
func Plain[T any](value T) TryResult[T] {
	return plain[T]{value: value}
}

func (p plain[T]) AsOption() Option[T] {
	return Of(p.value)
}

func (plain[T]) tryResult() {}

type convertible[T any] struct {
	c OptionConvertible[T]
}

// Convertible wraps a foreign Option- or Result-like container as a
// TryResult.
func Convertible[T any](c OptionConvertible[T]) TryResult[T] {
	return convertible[T]{c: c}
}

func (c convertible[T]) AsOption() Option[T] {
	return From(c.c)
}

func (convertible[T]) tryResult() {}

// UnwrapResult normalizes an ambiguous input into a Result. Absent values
// fail with err, or ErrValueUnavailable when err is nil.
func UnwrapResult[T any](v TryResult[T], err error) Result[T] {
	switch x := v.(type) {
	case Result[T]:
		return x
	case Option[T]:
		return x.AsResultOr(err)
	case plain[T]:
		if types.IsNil(x.value) {
			return Err[T](err)
		}
		return Ok(x.value)
	case convertible[T]:
		return unwrapForeign(x.c, err)
	default:
		return Err[T](err)
	}
}

func unwrapForeign[T any](c OptionConvertible[T], err error) Result[T] {
	if types.IsNil(c) {
		return Err[T](err)
	}
	var out Result[T]
	if o, ok := c.(Option[T]); ok {
		return o.AsResultOr(err)
	}
	if perr := capture(func() {
		if rc, ok := c.(ResultConvertible[T]); ok {
			out = rc.AsResult()
			return
		}
		out = c.AsOption().AsResultOr(err)
	}); perr != nil {
		return Err[T](perr)
	}
	return out
}

// UnwrapOption normalizes an ambiguous input into an Option.
func UnwrapOption[T any](v TryResult[T]) Option[T] {
	return UnwrapResult(v, nil).AsOption()
}

// Try runs fn and captures its outcome. A returned error is kept as is; a
// panic becomes an OperationFailed error.
func Try[T any](fn func() (T, error)) Result[T] {
	var (
		value T
		err   error
	)
	if perr := capture(func() { value, err = fn() }); perr != nil {
		return Err[T](perr)
	}
	return TryFunc(value, err)
}

// TryFunc wraps a function call with error handling.
func TryFunc[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Evaluate runs fn, captures a panic, and normalizes the returned input one
// level through UnwrapResult.
func Evaluate[T any](fn func() TryResult[T]) Result[T] {
	var v TryResult[T]
	if err := capture(func() { v = fn() }); err != nil {
		return Err[T](err)
	}
	return UnwrapResult(v, nil)
}
