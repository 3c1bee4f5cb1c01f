package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var httpStatusMap = map[ErrorCode]int{
	ErrCodeValueUnavailable: http.StatusNotFound,
	ErrCodeOperationFailed:  http.StatusInternalServerError,
	ErrCodeCastFailed:       http.StatusUnprocessableEntity,
	ErrCodePredicateFailed:  http.StatusUnprocessableEntity,
	ErrCodeInvalidArgument:  http.StatusBadRequest,
}

var grpcCodeMap = map[ErrorCode]codes.Code{
	ErrCodeValueUnavailable: codes.NotFound,
	ErrCodeOperationFailed:  codes.Internal,
	ErrCodeCastFailed:       codes.InvalidArgument,
	ErrCodePredicateFailed:  codes.FailedPrecondition,
	ErrCodeInvalidArgument:  codes.InvalidArgument,
}

// HTTPStatus returns the HTTP status code for this error.
func (e *AppError) HTTPStatus() int {
	if s, ok := httpStatusMap[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// GRPCStatus lets status.FromError recognize an AppError anywhere in a
// wrapped chain.
func (e *AppError) GRPCStatus() *status.Status {
	return status.New(ToGRPCCode(e.Code), e.Error())
}

// ToGRPCCode returns the gRPC code for an error code.
func ToGRPCCode(code ErrorCode) codes.Code {
	if c, ok := grpcCodeMap[code]; ok {
		return c
	}
	return codes.Unknown
}

// ToGRPCError converts any error into a gRPC status error. Errors without a
// code map to codes.Unknown.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.GRPCStatus().Err()
	}
	return status.Error(codes.Unknown, err.Error())
}
