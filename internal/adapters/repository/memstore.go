package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/quickmed/internal/domain/model"
	"github.com/okian/quickmed/pkg/logger"
	"github.com/okian/quickmed/pkg/metrics"
)

// MemoryStore keeps records in process memory. It is safe for concurrent use.
type MemoryStore struct {
	options
	mu      sync.Mutex
	records []model.NoteRecord
	lastID  model.RecordID
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{options: defaultOptions()}
	for _, opt := range opts {
		opt(&s.options)
	}
	return s
}

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, rec model.NoteRecord) (model.RecordID, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !rec.Valid() {
		return 0, fmt.Errorf("%w: timestamp and calculator type are required", ErrInvalidRecord)
	}

	start := time.Now()
	s.mu.Lock()
	s.lastID++
	rec.ID = s.lastID
	rec.Timestamp = rec.Timestamp.In(s.location)
	s.records = append(s.records, rec)
	s.mu.Unlock()

	metrics.RecordStoreAppendLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	s.log.Debug(ctx, "record appended",
		logger.Int64("id", int64(rec.ID)),
		logger.String("calculator_type", rec.CalculatorType),
		logger.Bool("manual", rec.IsManual()))
	return rec.ID, nil
}

// Records returns a copy of all records in insertion order.
func (s *MemoryStore) Records() []model.NoteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.NoteRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
