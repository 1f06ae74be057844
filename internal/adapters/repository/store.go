// Package repository defines the append-only record store and its implementations.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/quickmed/internal/domain/model"
)

// Store persists note records. Records are never updated or deleted.
type Store interface {
	// Append writes rec and returns the id assigned to it. Ids strictly
	// increase across calls. Failures wrap ErrStoreUnavailable.
	Append(ctx context.Context, rec model.NoteRecord) (model.RecordID, error)
}

// Supported store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DefaultSQLitePath is the database file used when the sqlite driver has no DSN.
const DefaultSQLitePath = "quickmed_data.db"

// Open builds the store for driver. The memory driver ignores dsn.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (Store, error) {
	d := strings.ToLower(strings.TrimSpace(driver))
	switch d {
	case DriverMemory:
		return NewMemoryStore(opts...), nil
	case "":
		d = DriverSQLite
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	s, err := NewSQLStore(ctx, d, dsn, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// KnownDriver reports whether driver names a supported store.
func KnownDriver(driver string) bool {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite, DriverPostgres, DriverMemory:
		return true
	}
	return false
}
