package config

import "errors"

// Sentinel errors returned by Load and Validate.
var (
	// ErrInvalidConfig marks a loaded value that fails validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks an unreadable config file or environment.
	ErrLoadConfig = errors.New("load config failed")
)
