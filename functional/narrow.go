package functional

import (
	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/authcorp/libs/go/fnkit/types"
)

// Cast narrows the success value to R by type assertion.
func Cast[R, T any](r Result[T]) Result[R] {
	return FlatMapResult(r, func(v T) Result[R] {
		if out, ok := any(v).(R); ok {
			return Ok(out)
		}
		return Err[R](apperrors.CastFailed(types.NameOf[R](), v))
	})
}

// CastWithProperties narrows the success value to R after checking that it
// exposes every named member (struct field, method or map key).
func CastWithProperties[R, T any](r Result[T], members ...string) Result[R] {
	return FlatMapResult(r, func(v T) Result[R] {
		if !types.IsInstance(v, members...) {
			return Err[R](apperrors.MissingMembers(v, members, types.MissingMembers(v, members...)))
		}
		return Cast[R](Ok(v))
	})
}

// BoolOrFail keeps a boolean success value and fails otherwise with err,
// or a CastFailed error when err is nil.
func BoolOrFail[T any](r Result[T], err error) Result[bool] {
	return FlatMapResult(r, func(v T) Result[bool] {
		if b, ok := types.ToBool(v); ok {
			return Ok(b)
		}
		return Err[bool](castErr(err, "bool", v))
	})
}

// NumberOrFail keeps a numeric success value as float64 and fails
// otherwise.
func NumberOrFail[T any](r Result[T], err error) Result[float64] {
	return FlatMapResult(r, func(v T) Result[float64] {
		if f, ok := types.ToFloat64(v); ok {
			return Ok(f)
		}
		return Err[float64](castErr(err, "number", v))
	})
}

// StringOrFail keeps a string success value and fails otherwise.
func StringOrFail[T any](r Result[T], err error) Result[string] {
	return FlatMapResult(r, func(v T) Result[string] {
		if s, ok := types.ToString(v); ok {
			return Ok(s)
		}
		return Err[string](castErr(err, "string", v))
	})
}

// ObjectOrFail keeps a struct or map success value and fails otherwise.
func ObjectOrFail[T any](r Result[T], err error) Result[T] {
	return r.FilterFunc(
		func(v T) bool { return types.IsObject(v) },
		func(v T) error { return castErr(err, "object", v) },
	)
}

func castErr(err error, expected string, actual any) error {
	if err != nil {
		return err
	}
	return apperrors.CastFailed(expected, actual)
}
