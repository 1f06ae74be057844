package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrStoreUnavailable = errors.New("record store unavailable")
	ErrInvalidRecord    = errors.New("invalid record")
	ErrUnknownDriver    = errors.New("unknown store driver")
)
