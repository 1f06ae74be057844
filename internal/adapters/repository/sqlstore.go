package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okian/quickmed/internal/domain/model"
	"github.com/okian/quickmed/pkg/logger"
	"github.com/okian/quickmed/pkg/metrics"
)

// noteRow is the patient_notes row layout.
type noteRow struct {
	ID                int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp         string `gorm:"column:timestamp"`
	CalculatorType    string `gorm:"column:calculator_type"`
	PatientInfo       string `gorm:"column:patient_info"`
	CalculationResult string `gorm:"column:calculation_result"`
	Notes             string `gorm:"column:notes"`
}

func (noteRow) TableName() string { return "patient_notes" }

// schema holds the DDL per dialect. favorites is created but not used.
var schema = map[string][]string{ //nolint:gochecknoglobals // static DDL table
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS patient_notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT,
			calculator_type TEXT,
			patient_info TEXT,
			calculation_result TEXT,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			calculator_name TEXT UNIQUE
		)`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS patient_notes (
			id BIGSERIAL PRIMARY KEY,
			timestamp TEXT,
			calculator_type TEXT,
			patient_info TEXT,
			calculation_result TEXT,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id BIGSERIAL PRIMARY KEY,
			calculator_name TEXT UNIQUE
		)`,
	},
}

// SQLStore appends records to a SQL database through gorm. No connection
// is held between calls: every operation opens, writes and closes.
type SQLStore struct {
	options
	driver string
	dsn    string
}

// NewSQLStore creates the store and its tables. driver is DriverSQLite or
// DriverPostgres; an empty sqlite dsn means DefaultSQLitePath.
func NewSQLStore(ctx context.Context, driver, dsn string, opts ...Option) (*SQLStore, error) {
	s := &SQLStore{options: defaultOptions(), driver: driver, dsn: strings.TrimSpace(dsn)}
	for _, opt := range opts {
		opt(&s.options)
	}

	ddl, ok := schema[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	if s.dsn == "" {
		if driver == DriverPostgres {
			return nil, fmt.Errorf("%w: postgres requires a dsn", ErrStoreUnavailable)
		}
		s.dsn = DefaultSQLitePath
	}

	err := s.withDB(ctx, func(db *gorm.DB) error {
		for _, stmt := range ddl {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("creating schema: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "record store ready", logger.String("driver", s.driver))
	return s, nil
}

// Driver returns the dialect name.
func (s *SQLStore) Driver() string { return s.driver }

// Append implements Store.
func (s *SQLStore) Append(ctx context.Context, rec model.NoteRecord) (model.RecordID, error) {
	if !rec.Valid() {
		return 0, fmt.Errorf("%w: timestamp and calculator type are required", ErrInvalidRecord)
	}

	start := time.Now()
	defer func() {
		metrics.RecordStoreAppendLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	rec.Timestamp = rec.Timestamp.In(s.location)
	row := noteRow{
		Timestamp:         rec.FormattedTimestamp(),
		CalculatorType:    rec.CalculatorType,
		PatientInfo:       rec.PatientInfo,
		CalculationResult: rec.CalculationResult,
		Notes:             rec.Notes,
	}
	if err := s.withDB(ctx, func(db *gorm.DB) error {
		return db.Create(&row).Error
	}); err != nil {
		return 0, err
	}

	s.log.Debug(ctx, "record appended",
		logger.Int64("id", row.ID),
		logger.String("calculator_type", row.CalculatorType),
		logger.Bool("manual", rec.IsManual()))
	return model.RecordID(row.ID), nil
}

// records reads every row back in id order.
func (s *SQLStore) records(ctx context.Context) ([]noteRow, error) {
	var rows []noteRow
	err := s.withDB(ctx, func(db *gorm.DB) error {
		return db.Order("id").Find(&rows).Error
	})
	return rows, err
}

func (s *SQLStore) dialector() gorm.Dialector {
	if s.driver == DriverPostgres {
		return postgres.Open(s.dsn)
	}
	return sqlite.Open(s.dsn)
}

// withDB opens a connection, runs fn and closes the connection again.
func (s *SQLStore) withDB(ctx context.Context, fn func(db *gorm.DB) error) (err error) {
	db, err := gorm.Open(s.dialector(), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrStoreUnavailable, s.driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: getting underlying sql.DB: %w", ErrStoreUnavailable, err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrStoreUnavailable, s.driver, cerr)
		}
	}()

	if ferr := fn(db.WithContext(ctx)); ferr != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, ferr)
	}
	return nil
}
