package functional

import (
	"fmt"
	"log/slog"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/authcorp/libs/go/fnkit/types"
)

// Logger is the structured logging sink used by the Log* taps.
// *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// DoOnNext calls fn with the success value for its side effects. Panics in
// fn are swallowed and the outcome of r is unchanged.
func (r Result[T]) DoOnNext(fn func(T)) Result[T] {
	if r.ok {
		_ = capture(func() { fn(r.value) })
	}
	return r
}

// DoOnError calls fn with the error for its side effects. Panics in fn are
// swallowed and the outcome of r is unchanged.
func (r Result[T]) DoOnError(fn func(error)) Result[T] {
	if !r.ok {
		_ = capture(func() { fn(r.err) })
	}
	return r
}

// LogNext logs the success value at info level.
func (r Result[T]) LogNext(l Logger) Result[T] {
	return r.LogNextPrefix(l, "", nil)
}

// LogNextPrefix logs prefix followed by the success value, or by
// selector(value) when selector is non-nil.
func (r Result[T]) LogNextPrefix(l Logger, prefix string, selector func(T) any) Result[T] {
	return r.DoOnNext(func(v T) {
		var out any = v
		if selector != nil {
			out = selector(v)
		}
		loggerOrDefault(l).Info(prefix+fmt.Sprint(out), "outcome", "ok")
	})
}

// LogError logs the error at error level.
func (r Result[T]) LogError(l Logger) Result[T] {
	return r.LogErrorPrefix(l, "", nil)
}

// LogErrorPrefix logs prefix followed by the error message, or by
// selector(err) when selector is non-nil.
func (r Result[T]) LogErrorPrefix(l Logger, prefix string, selector func(error) any) Result[T] {
	return r.DoOnError(func(err error) {
		var out any = err
		if selector != nil {
			out = selector(err)
		}
		args := []any{"outcome", "error"}
		if code := apperrors.GetCode(err); code != "" {
			args = append(args, "code", string(code))
		}
		loggerOrDefault(l).Error(prefix+fmt.Sprint(out), args...)
	})
}

func loggerOrDefault(l Logger) Logger {
	if types.IsNil(l) {
		return slog.Default()
	}
	return l
}
