// Package errors provides coded errors for the raid planner.
//
// Repositories return NotFound for missing keys and wrap storage failures.
// Orchestrators validate input with the ValidationBuilder and return
// InvalidArgument or FailedPrecondition. Handlers convert with ToGRPCError.
//
//	ledger, err := repo.Get(ctx, input)
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to get ledger for member %s", memberID)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Error is a structured error with code, message and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta attaches a metadata entry
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err, keeping its code and metadata when it is already an *Error.
// Plain errors become Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: message, Cause: err, Meta: copyMeta(existing.Meta)}
	}
	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func copyMeta(meta map[string]any) map[string]any {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// NotFound creates a not found error
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf creates a not found error with a formatted message
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf creates an invalid argument error with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error { return New(CodeAlreadyExists, message) }

// FailedPrecondition creates a failed precondition error
func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

// FailedPreconditionf creates a failed precondition error with a formatted message
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// ResourceExhausted creates a resource exhausted error
func ResourceExhausted(message string) *Error { return New(CodeResourceExhausted, message) }

// Internal creates an internal error
func Internal(message string) *Error { return New(CodeInternal, message) }

// Internalf creates an internal error with a formatted message
func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// Unavailable creates an unavailable error
func Unavailable(message string) *Error { return New(CodeUnavailable, message) }
