package calculator

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownCalculator = errors.New("unknown calculator")
	// ErrIncompleteScore marks a GCS component left unselected (zero).
	ErrIncompleteScore = fmt.Errorf("%w: score component not selected", ErrInvalidInput)
)

// ValidationError identifies the input field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap exposes the error kind (ErrInvalidInput or ErrIncompleteScore).
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidInput
	}
	return e.Err
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason, Err: ErrInvalidInput}
}

func missing(field string) error {
	return invalid(field, "value is required")
}

func unselected(field string) error {
	return &ValidationError{Field: field, Reason: "score not selected", Err: ErrIncompleteScore}
}
