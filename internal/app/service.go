// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/okian/quickmed/internal/adapters/repository"
	"github.com/okian/quickmed/internal/domain/calculator"
	"github.com/okian/quickmed/internal/domain/model"
	"github.com/okian/quickmed/pkg/logger"
	"github.com/okian/quickmed/pkg/metrics"
)

// Request is one calculation request. Either Input is set, or Calculator
// names the calculator and Inputs carries its raw values.
type Request struct {
	Calculator string
	Inputs     calculator.Values
	Input      calculator.Input
	Note       string
}

// Outcome is the result of a calculation plus what happened to its record.
type Outcome struct {
	Result    calculator.Result
	RecordID  model.RecordID
	Persisted bool
	// Warning is set when the result is valid but its record was not
	// saved. It wraps ErrPersistence.
	Warning error
}

// Service runs calculations and writes one record per successful result.
type Service struct {
	mu sync.RWMutex

	store       repository.Store
	storeDriver string
	storeDSN    string
	clock       func() time.Time

	// State
	started             bool
	calculations        int
	rejected            int
	records             int
	persistenceFailures int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects the record store. Start will not open another one.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithStoreDriver sets the driver and dsn Start opens when no store was injected.
func WithStoreDriver(driver, dsn string) Option {
	return func(s *Service) {
		if driver != "" {
			s.storeDriver = driver
		}
		s.storeDSN = dsn
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source used for record timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeDriver: repository.DriverSQLite,
		clock:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start opens the record store unless one was injected.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		store, err := repository.Open(ctx, s.storeDriver, s.storeDSN, repository.WithLogger(s.logger))
		if err != nil {
			return fmt.Errorf("opening record store: %w", err)
		}
		s.store = store
	}

	s.started = true
	s.logger.Info(ctx, "quickmed service started",
		logger.String("store", s.storeName()),
		logger.Int("calculators", len(calculator.All())),
	)
	return nil
}

// Stop marks the service stopped. The SQL store holds no connection, so
// there is nothing to release.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "quickmed service stopped")
}

// Calculate validates the request, evaluates it and appends a record. A
// validation failure returns an error and writes nothing. A store failure
// keeps the result and sets Outcome.Warning.
func (s *Service) Calculate(ctx context.Context, req Request) (Outcome, error) {
	store, log, err := s.deps()
	if err != nil {
		return Outcome{}, err
	}

	res, err := s.evaluate(req)
	if err != nil {
		s.mu.Lock()
		s.rejected++
		s.mu.Unlock()
		log.Debug(ctx, "calculation rejected",
			logger.String("calculator", req.Calculator),
			logger.Error(err),
		)
		return Outcome{}, err
	}

	id := res.Calculator
	metrics.RecordCalculation(id.String())
	log.Debug(ctx, "calculated",
		logger.String("calculator", id.String()),
		logger.Float64("value", res.Value),
		logger.String("category", res.Category),
	)

	out := Outcome{Result: res}
	rec := model.NoteRecord{
		Timestamp:         s.clock(),
		CalculatorType:    id.RecordLabel(),
		PatientInfo:       res.InputSummary,
		CalculationResult: res.Summary(),
		Notes:             strings.TrimSpace(req.Note),
	}

	recID, err := store.Append(ctx, rec)

	s.mu.Lock()
	s.calculations++
	if err == nil {
		s.records++
	} else {
		s.persistenceFailures++
	}
	s.mu.Unlock()

	if err != nil {
		metrics.RecordPersistenceFailure()
		log.Warn(ctx, "calculation record not saved",
			logger.String("calculator", id.String()),
			logger.Error(err),
		)
		out.Warning = fmt.Errorf("%w: %w", ErrPersistence, err)
		return out, nil
	}

	metrics.RecordRecordAppended(rec.CalculatorType)
	out.RecordID = recID
	out.Persisted = true
	return out, nil
}

func (s *Service) evaluate(req Request) (calculator.Result, error) {
	if req.Input != nil {
		res, err := calculator.Calculate(req.Input)
		if err != nil {
			metrics.RecordValidationError(req.Input.Calculator().String())
		}
		return res, err
	}

	id, err := calculator.ParseID(req.Calculator)
	if err != nil {
		metrics.RecordValidationError("unknown")
		return calculator.Result{}, err
	}
	res, err := calculator.Run(id, req.Inputs)
	if err != nil {
		metrics.RecordValidationError(id.String())
	}
	return res, err
}

// SaveNote appends a free-standing note. Whitespace-only text is rejected
// with ErrEmptyNote and nothing is written.
func (s *Service) SaveNote(ctx context.Context, note string) (model.RecordID, error) {
	store, log, err := s.deps()
	if err != nil {
		return 0, err
	}

	text := strings.TrimSpace(note)
	if text == "" {
		return 0, ErrEmptyNote
	}

	rec := model.NoteRecord{
		Timestamp:      s.clock(),
		CalculatorType: model.ManualNote,
		Notes:          text,
	}
	id, err := store.Append(ctx, rec)
	if err != nil {
		s.mu.Lock()
		s.persistenceFailures++
		s.mu.Unlock()
		metrics.RecordPersistenceFailure()
		log.Warn(ctx, "note not saved", logger.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.mu.Lock()
	s.records++
	s.mu.Unlock()
	metrics.RecordRecordAppended(model.ManualNote)
	log.Debug(ctx, "note saved", logger.Int64("id", int64(id)))
	return id, nil
}

// Calculators lists the catalog, filtered by a case-insensitive name query.
func (s *Service) Calculators(query string) []calculator.Info {
	return calculator.Search(query)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":             s.started,
		"store":               s.storeName(),
		"calculators":         len(calculator.All()),
		"calculations":        s.calculations,
		"rejected":            s.rejected,
		"records":             s.records,
		"persistenceFailures": s.persistenceFailures,
	}
}

func (s *Service) deps() (repository.Store, logger.Logger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return nil, nil, ErrNotStarted
	}
	log := s.logger
	if log == nil {
		log = logger.Nop()
	}
	return s.store, log, nil
}

func (s *Service) storeName() string {
	switch st := s.store.(type) {
	case nil:
		return s.storeDriver
	case *repository.MemoryStore:
		return repository.DriverMemory
	case *repository.SQLStore:
		return st.Driver()
	default:
		return fmt.Sprintf("%T", st)
	}
}
