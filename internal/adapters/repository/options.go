package repository

import (
	"time"

	"github.com/okian/quickmed/pkg/logger"
)

type options struct {
	log      logger.Logger
	location *time.Location
}

func defaultOptions() options {
	return options{log: logger.Nop(), location: time.Local}
}

// Option applies a configuration option to a store.
type Option func(*options)

// WithLogger sets the logger used by the store.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l.Named("repository")
		}
	}
}

// WithLocation sets the time zone timestamps are rendered in. Defaults to local time.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}
