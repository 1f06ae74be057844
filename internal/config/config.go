// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables over the defaults.
// - Errors are wrapped with this package's sentinels.
package config

import "github.com/okian/quickmed/internal/adapters/repository"

// Log encoders accepted by LogFormat.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoder: console or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// StoreDriver selects the record store: sqlite, postgres or memory.
	StoreDriver string `koanf:"store_driver"`

	// StoreDSN is the sqlite file path or the postgres connection string.
	// Empty selects repository.DefaultSQLitePath for sqlite.
	StoreDSN string `koanf:"store_dsn"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   LogFormatConsole,
		Addr:        ":9080",
		StoreDriver: repository.DriverSQLite,
	}
}
