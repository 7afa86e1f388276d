package services

import (
	"errors"
	"fmt"
)

// Root error kinds. Concrete errors wrap one of them so callers can map them
// with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	ErrWorkingOrderIDRequired = newValidationError("workingOrder.id", "working order id required")
	ErrTaskDetailIDRequired   = newValidationError("taskDetails.id", "task detail id required")

	ErrCompanyNotFound      = fmt.Errorf("company %w", ErrNotFound)
	ErrWorkingOrderNotFound = fmt.Errorf("working order %w", ErrNotFound)
	ErrTaskDetailNotFound   = fmt.Errorf("task detail %w", ErrNotFound)
	ErrTaskNotFound         = fmt.Errorf("task %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)

	ErrInvalidTaskStatus          = newValidationError("status", "unknown task status")
	ErrInstructionsLengthMismatch = newValidationError("instructionsCompleted", "length must match the task instructions")
)

// ErrInvalidStatusTransition conflicts with the current task state.
var ErrInvalidStatusTransition = errors.New("task status transition not allowed")

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
