// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Use cases return these errors and handlers
// map them to HTTP status codes.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal marks server-side faults that carry a code but must not be
	// reported as the caller's fault.
	ErrInternal = errors.New("internal error")
)

// CodedError is a domain error with a stable machine-readable code. It unwraps to
// one of the standard kinds above so callers can still branch with Is.
type CodedError struct {
	Code    string
	Message string
	kind    error
}

// Error returns the human readable message.
func (e *CodedError) Error() string {
	return e.Message
}

// Unwrap returns the standard kind of this error.
func (e *CodedError) Unwrap() error {
	return e.kind
}

// WithCode creates a coded error of the given kind.
func WithCode(kind error, code, message string) *CodedError {
	return &CodedError{Code: code, Message: message, kind: kind}
}

// CodeOf returns the code of the first CodedError in err's tree, or an empty string.
func CodeOf(err error) string {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
