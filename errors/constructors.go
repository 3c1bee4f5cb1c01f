package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// OperationFailed wraps an error raised by a user-supplied function.
func OperationFailed(cause error) *AppError {
	return New(ErrCodeOperationFailed, "operation failed").WithCause(cause)
}

// CastFailed reports a value that does not conform to the expected shape.
func CastFailed(expected string, actual any) *AppError {
	return New(ErrCodeCastFailed, fmt.Sprintf("failed to cast %v to %s", actual, expected)).
		WithDetail("expected", expected).
		WithDetail("actual", fmt.Sprintf("%T", actual))
}

// MissingMembers reports a value lacking one or more named members.
func MissingMembers(actual any, members, missing []string) *AppError {
	return CastFailed("type with members ["+strings.Join(members, " ")+"]", actual).
		WithDetail("missing", missing)
}

// InvalidArgument reports an argument outside the accepted domain.
func InvalidArgument(message string) *AppError {
	return New(ErrCodeInvalidArgument, message)
}

// Parse promotes a throwable-like value into an error. Strings become
// plain errors with the string as message, producers are invoked, and nil
// yields nil.
func Parse(v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case error:
		return t
	case string:
		return errors.New(t)
	case func() error:
		return t()
	case func() string:
		return errors.New(t())
	case fmt.Stringer:
		return errors.New(t.String())
	default:
		return fmt.Errorf("%v", t)
	}
}

// FromPanic converts a recovered panic value into an OperationFailed error.
// Errors are kept as the cause so errors.Is still reaches them.
func FromPanic(p any) *AppError {
	if err, ok := p.(error); ok {
		return OperationFailed(err)
	}
	return OperationFailed(Parse(p))
}
