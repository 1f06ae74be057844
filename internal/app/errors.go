package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrEmptyNote is returned when a manual note has no text.
	ErrEmptyNote = errors.New("note is empty")
	// ErrPersistence wraps store failures. For calculations it is reported
	// as Outcome.Warning alongside the result.
	ErrPersistence = errors.New("record could not be saved")
	// ErrNotStarted is returned when the service has no store.
	ErrNotStarted = errors.New("service not started")
)
