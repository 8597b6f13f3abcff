// Package fault defines the error taxonomy shared by the pricing core:
// validation failures (caller can fix the input and retry), and
// consistency failures (a recompute could not derive totals from the
// current child records; prior totals were left untouched).
// Not-found conditions stay package-level sentinels next to the entity
// they refer to.
package fault

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError with a caller-actionable message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type ConsistencyError struct {
	Message string
	Err     error
}

func (e *ConsistencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ConsistencyError) Unwrap() error { return e.Err }

// Consistency wraps err as a ConsistencyError. The message is what a
// caller may show; err carries the cause for logs.
func Consistency(message string, err error) *ConsistencyError {
	return &ConsistencyError{Message: message, Err: err}
}

// IsConsistency reports whether err is (or wraps) a ConsistencyError.
func IsConsistency(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}
