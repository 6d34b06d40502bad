// Package errors provides structured error types for trieviz.
//
// Every failure the generator can report carries a machine-readable [Code]
// so the CLI and the preview server can react to the category (for example
// answering 404 for [ErrCodeNotFound]) without matching on message text.
//
// # Error Codes
//
//   - INVALID_*: the embedded series data or a grid shape is unusable
//   - NOT_FOUND: an unknown post slug or theme variant was requested
//   - OUTPUT_DIR, WRITE_FAILED: the filesystem refused the generated files
//   - RENDER_FAILED: raster or Graphviz rendering failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "unknown post %q", slug)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // answer 404
//	}
//
//	err = errors.Wrap(errors.ErrCodeWriteFailed, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidGrid   Code = "INVALID_GRID"

	// Lookup errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Filesystem errors
	ErrCodeOutputDir   Code = "OUTPUT_DIR"
	ErrCodeWriteFailed Code = "WRITE_FAILED"

	// Rendering errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
