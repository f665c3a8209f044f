package domain

import "fmt"

// ValidationError reports a violated business invariant on an aggregate.
// It maps to HTTP 400 at the API boundary.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// InvalidStatusError reports an illegal order state transition.
// It maps to HTTP 400 at the API boundary.
type InvalidStatusError struct {
	msg string
}

func (e *InvalidStatusError) Error() string { return e.msg }

// NewInvalidStatusError creates an InvalidStatusError with a formatted message.
func NewInvalidStatusError(format string, args ...any) error {
	return &InvalidStatusError{msg: fmt.Sprintf(format, args...)}
}
