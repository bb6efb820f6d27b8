package service

import (
	"errors"
	"fmt"

	"github.com/budgetbuddy/backend/internal/auth"
	"github.com/budgetbuddy/backend/internal/store"
)

// ErrorCode classifies service failures for callers and transports.
type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeStoreError      ErrorCode = "STORE_ERROR"
)

// Error is a structured service failure.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the error code, defaulting to CodeStoreError for anything
// that didn't originate in this package.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeStoreError
}

func invalidArgument(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func unauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "user not authenticated", Cause: auth.ErrUnauthenticated}
}

// wrapStoreErr converts a store failure into a service error, preserving the
// not-found distinction.
func wrapStoreErr(op string, err error) *Error {
	if errors.Is(err, store.ErrNotFound) {
		return &Error{Code: CodeNotFound, Message: op, Cause: err}
	}
	return &Error{Code: CodeStoreError, Message: op, Cause: err}
}
