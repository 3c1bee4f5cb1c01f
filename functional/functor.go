// Package functional provides the Option and Result containers and the
// conversion contract between them.
//
// Combinators never panic and never return errors to the caller; failures
// travel as data until Get or Unwrap extracts them. Combinators whose output
// type differs from the input are package functions (MapOption, MapResult,
// ZipWith, ...) because Go methods cannot declare type parameters.
package functional

import (
	apperrors "github.com/authcorp/libs/go/fnkit/errors"
)

// OptionConvertible is implemented by anything that can present itself as
// an Option.
type OptionConvertible[T any] interface {
	AsOption() Option[T]
}

// ResultConvertible is implemented by anything that can present itself as
// a Result. Every ResultConvertible is also OptionConvertible.
type ResultConvertible[T any] interface {
	OptionConvertible[T]
	AsResult() Result[T]
}

// OptionToResult converts Option[T] to Result[T] with provided error for None.
func OptionToResult[T any](opt Option[T], err error) Result[T] {
	return opt.AsResultOr(err)
}

// ResultToOption converts Result[T] to Option[T], discarding error.
func ResultToOption[T any](res Result[T]) Option[T] {
	return res.AsOption()
}

// capture runs fn and converts a panic into an OperationFailed error.
func capture(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = apperrors.FromPanic(p)
		}
	}()
	fn()
	return nil
}

func orUnavailable(err error) error {
	if err == nil {
		return apperrors.ErrValueUnavailable
	}
	return err
}
