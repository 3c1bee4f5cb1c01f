package functional

import (
	"fmt"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/authcorp/libs/go/fnkit/types"
)

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value, even a nil one.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of creates an Option that is empty when value is nil (including typed
// nil pointers, maps, slices, channels and funcs). Zero values such as 0,
// "" and false are present.
func Of[T any](value T) Option[T] {
	if types.IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

// From flattens anything convertible to an Option by exactly one level.
func From[T any](c OptionConvertible[T]) Option[T] {
	if types.IsNil(c) {
		return None[T]()
	}
	var out Option[T]
	if err := capture(func() { out = c.AsOption() }); err != nil {
		return None[T]()
	}
	return out
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value, or ErrValueUnavailable when empty.
func (o Option[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, apperrors.ErrValueUnavailable
	}
	return o.value, nil
}

// Unwrap returns the contained value or panics with ErrValueUnavailable.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(apperrors.ErrValueUnavailable)
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default. fn is
// only called when the Option is empty.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Value returns the contained value, or the zero value when empty.
func (o Option[T]) Value() T {
	return o.value
}

// Map applies fn to the contained value. A nil result or a panic in fn
// yields None.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	return MapOption(o, fn)
}

// MapOption applies a transformation function to Option.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	var out Option[U]
	if err := capture(func() { out = Of(fn(o.value)) }); err != nil {
		return None[U]()
	}
	return out
}

// FlatMap applies a function that returns an Option.
func (o Option[T]) FlatMap(fn func(T) Option[T]) Option[T] {
	return FlatMapOption(o, fn)
}

// FlatMapOption applies a function that returns an Option. A panic in fn
// yields None.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	var out Option[U]
	if err := capture(func() { out = fn(o.value) }); err != nil {
		return None[U]()
	}
	return out
}

// Filter returns None if predicate returns false or panics.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if !o.present {
		return o
	}
	keep := false
	if err := capture(func() { keep = predicate(o.value) }); err != nil || !keep {
		return None[T]()
	}
	return o
}

// Or returns o when it holds a value, otherwise fallback.
func (o Option[T]) Or(fallback Option[T]) Option[T] {
	if o.present {
		return o
	}
	return fallback
}

// OrElse returns o when it holds a value, otherwise the Option produced by
// fn. fn is not called when o is present.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	var out Option[T]
	if err := capture(func() { out = fn() }); err != nil {
		return None[T]()
	}
	return out
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// ToSlice converts Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// ToPtr converts Option to a pointer to a copy of the value.
func (o Option[T]) ToPtr() *T {
	if o.present {
		v := o.value
		return &v
	}
	return nil
}

// AsOption returns o.
func (o Option[T]) AsOption() Option[T] {
	return o
}

// AsResult converts o to a Result failing with ErrValueUnavailable when
// empty.
func (o Option[T]) AsResult() Result[T] {
	return o.AsResultOr(nil)
}

// AsResultOr converts o to a Result failing with err when empty. A nil err
// falls back to ErrValueUnavailable.
func (o Option[T]) AsResultOr(err error) Result[T] {
	if o.present {
		return Ok(o.value)
	}
	return Err[T](err)
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func (Option[T]) tryResult() {}
