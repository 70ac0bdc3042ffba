// Package errors provides structured error types for the cartesian module.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the chart frame, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Configuration and input validation failures
//   - MISSING_*: A required collaborator was never configured
//   - NOT_FOUND: Resource not found
//   - RENDER_*, INTERNAL_*: Failures while producing output
//
// Configuration errors (INVALID_ORIENTATION, MISSING_PLOT_AREA,
// UNSUPPORTED_SCALE_OPTION) indicate caller misuse of a chart frame and are
// returned synchronously from a render.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOrientation, "x axis cannot be %q", o)
//	if errors.Is(err, errors.ErrCodeInvalidOrientation) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "convert %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidOrientation     Code = "INVALID_ORIENTATION"
	ErrCodeMissingPlotArea        Code = "MISSING_PLOT_AREA"
	ErrCodeUnsupportedScaleOption Code = "UNSUPPORTED_SCALE_OPTION"
	ErrCodeInvalidDatum           Code = "INVALID_DATUM"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidSpec   Code = "INVALID_SPEC"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsConfiguration reports whether err stems from caller misconfiguration of
// a chart frame rather than from a collaborator or the environment.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidOrientation, ErrCodeMissingPlotArea, ErrCodeUnsupportedScaleOption, ErrCodeInvalidDatum:
		return true
	}
	return false
}
