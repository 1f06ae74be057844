// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/quickmed/internal/app"
	"github.com/okian/quickmed/internal/domain/calculator"
	"github.com/okian/quickmed/internal/domain/model"
	"github.com/okian/quickmed/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CalculateDependencies
	NoteDependencies
	CatalogDependencies
	StatsProvider
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	calculatorsHandler *CalculatorsHandler
	calculateHandler   *CalculateHandler
	notesHandler       *NotesHandler
	logger             logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used for request logging.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l.Named("http")
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(deps),
		calculatorsHandler: NewCalculatorsHandler(deps),
		calculateHandler:   NewCalculateHandler(deps),
		notesHandler:       NewNotesHandler(deps),
		logger:             logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	routes := []struct {
		pattern  string
		endpoint string
		handler  http.HandlerFunc
	}{
		{"/healthz", "healthz", s.healthHandler.HandleHealth},
		{"/metrics", "metrics", s.healthHandler.HandleHealth},
		{"/stats", "stats", s.statsHandler.HandleStats},
		{"/calculators", "calculators", s.calculatorsHandler.HandleListCalculators},
		{"/calculate", "calculate", s.calculateHandler.HandlePostCalculate},
		{"/notes", "notes", s.notesHandler.HandlePostNote},
	}
	for _, r := range routes {
		mux.HandleFunc(r.pattern, RequestIDMiddleware(MetricsMiddleware(r.handler, r.endpoint), s.logger))
	}

	s.logger.Debug(ctx, "api routes registered", logger.Int("routes", len(routes)))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg, Field: fieldOf(err)})
}

// Interfaces narrowed per handler.
type (
	// CalculateDependencies runs calculations.
	CalculateDependencies interface {
		Calculate(ctx context.Context, req service.Request) (service.Outcome, error)
	}

	// NoteDependencies saves manual notes.
	NoteDependencies interface {
		SaveNote(ctx context.Context, note string) (model.RecordID, error)
	}

	// CatalogDependencies lists calculators.
	CatalogDependencies interface {
		Calculators(query string) []calculator.Info
	}
)
