package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a wodgen error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrFileNotFound    ErrorCode = "FILE_NOT_FOUND"
	ErrMalformedRecord ErrorCode = "MALFORMED_RECORD"
	ErrNoCooldown      ErrorCode = "NO_COOLDOWN_AVAILABLE"
	ErrCancelled       ErrorCode = "CANCELLED"
	ErrInternal        ErrorCode = "INTERNAL"
)

// WodError represents a structured error with code, message, and details.
type WodError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *WodError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *WodError) Unwrap() error {
	return e.Cause
}

// NewInvalidRequest creates an error for invalid request parameters.
func NewInvalidRequest(msg string) *WodError {
	return &WodError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewFileNotFound creates an error for a missing library or workout file.
func NewFileNotFound(path string) *WodError {
	return &WodError{
		Code:    ErrFileNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewMalformedRecord creates an error for a CSV record that does not parse.
// row is the 1-based data record index (the header is not counted).
func NewMalformedRecord(path string, row int, field string, cause error) *WodError {
	msg := fmt.Sprintf("malformed record %d in %s: field %q", row, path, field)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &WodError{
		Code:    ErrMalformedRecord,
		Message: msg,
		Details: map[string]any{"path": path, "row": row, "field": field},
		Cause:   cause,
	}
}

// NewNoCooldown creates an error for when no cooldown exercise can be picked.
func NewNoCooldown() *WodError {
	return &WodError{
		Code:    ErrNoCooldown,
		Message: "no cooldown exercise available; every cooldown is snoozed or the cooldown list is empty",
	}
}

// NewCancelled creates an error for an operation interrupted by its context.
func NewCancelled(operation string) *WodError {
	return &WodError{
		Code:    ErrCancelled,
		Message: fmt.Sprintf("%s cancelled", operation),
		Details: map[string]any{"operation": operation},
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *WodError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &WodError{
		Code:    ErrInternal,
		Message: msg,
		Cause:   err,
	}
}

// Is checks if err (or anything it wraps) is a WodError with the given code.
func Is(err error, code ErrorCode) bool {
	var wErr *WodError
	if stderrors.As(err, &wErr) {
		return wErr.Code == code
	}
	return false
}
