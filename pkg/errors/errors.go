// Package errors provides structured error types for fixturegen.
//
// Every failure a generator can report falls into one of three kinds, each
// carried as a machine-readable [Code]:
//
//   - INVALID_ARGUMENT: a CLI token is not an integer or a count is out of range
//   - OUTPUT_COLLISION: the output file already exists and must not be replaced
//   - FILESYSTEM_ERROR: the output file could not be created or written
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "node count must be at least %d", 2)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // print usage
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFilesystem, origErr, "create %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the generator failure kinds.
const (
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeOutputCollision Code = "OUTPUT_COLLISION"
	ErrCodeFilesystem      Code = "FILESYSTEM_ERROR"

	// ErrCodeInvalidFixture is reported when a fixture read back from disk
	// breaks a structural invariant.
	ErrCodeInvalidFixture Code = "INVALID_FIXTURE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message (and cause, if any) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// CollisionError creates an OUTPUT_COLLISION error naming the existing path.
func CollisionError(path string) *Error {
	return New(ErrCodeOutputCollision, "output file already exists: %s", path)
}
