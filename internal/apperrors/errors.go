// Package apperrors defines the error taxonomy shared by the stores, the
// query engine and the HTTP layer. Handlers are the only place these are
// mapped to status codes.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidation creates a ValidationError with a formatted message.
func NewValidation(format string, a ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, a...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NotFoundError reports that an operation referenced a nonexistent record.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

// NewNotFound creates a NotFoundError with a formatted message.
func NewNotFound(format string, a ...interface{}) error {
	return &NotFoundError{msg: fmt.Sprintf(format, a...)}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var v *NotFoundError
	return errors.As(err, &v)
}

// InternalError wraps an unexpected failure. The wrapped cause is for logs;
// callers must not expose it verbatim.
type InternalError struct {
	cause error
}

func (e *InternalError) Error() string { return fmt.Sprintf("internal: %v", e.cause) }

func (e *InternalError) Unwrap() error { return e.cause }

// NewInternal wraps cause as an InternalError.
func NewInternal(cause error) error {
	return &InternalError{cause: cause}
}

// IsInternal reports whether err should be treated as an internal fault.
// Anything that is neither a validation nor a not-found error qualifies.
func IsInternal(err error) bool {
	return err != nil && !IsValidation(err) && !IsNotFound(err)
}
