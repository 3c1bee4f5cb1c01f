// Package errors provides the coded error taxonomy shared by Option and
// Result, with helpers for panic capture and HTTP/gRPC status mapping.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// ErrorCode represents an error category.
type ErrorCode string

// Error codes produced by the functional containers.
const (
	ErrCodeValueUnavailable ErrorCode = "VALUE_UNAVAILABLE"
	ErrCodeOperationFailed  ErrorCode = "OPERATION_FAILED"
	ErrCodeCastFailed       ErrorCode = "CAST_FAILED"
	ErrCodePredicateFailed  ErrorCode = "PREDICATE_FAILED"
	ErrCodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
)

// AppError is the structured error carried by a failed Result.
// Values are treated as immutable; the With* methods return copies.
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Cause returns the wrapped error, or nil.
func (e *AppError) Cause() error {
	return e.cause
}

// WithCause returns a copy of e wrapping cause.
func (e *AppError) WithCause(cause error) *AppError {
	c := e.clone()
	c.cause = cause
	return c
}

// WithDetail returns a copy of e with an additional detail.
func (e *AppError) WithDetail(key string, value any) *AppError {
	c := e.clone()
	if c.Details == nil {
		c.Details = make(map[string]any)
	}
	c.Details[key] = value
	return c
}

func (e *AppError) clone() *AppError {
	c := *e
	if e.Details != nil {
		c.Details = maps.Clone(e.Details)
	}
	return &c
}

// Is reports a match when target is an *AppError with the same code, or
// when the cause matches target.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// MarshalJSON implements json.Marshaler.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type Alias AppError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}

// Sentinels. Compare with errors.Is; any AppError with the same code matches.
var (
	// ErrValueUnavailable is returned when a value is demanded from an empty
	// Option or a nil input is normalized into a Result.
	ErrValueUnavailable = New(ErrCodeValueUnavailable, "value not available")

	// ErrPredicateFailed is the default failure of a Result filter.
	ErrPredicateFailed = New(ErrCodePredicateFailed, "predicate not satisfied")
)
