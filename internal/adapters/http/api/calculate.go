package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	service "github.com/okian/quickmed/internal/app"
	"github.com/okian/quickmed/internal/domain/calculator"
	"github.com/okian/quickmed/internal/domain/types"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// calculateRequest mirrors the OpenAPI schema for POST /calculate. Input
// values may be JSON strings, numbers or booleans.
type calculateRequest struct {
	Calculator string                     `json:"calculator"`
	Inputs     map[string]json.RawMessage `json:"inputs"`
	Note       string                     `json:"note"`
}

func (c calculateRequest) values() (calculator.Values, error) {
	values := make(calculator.Values, len(c.Inputs))
	for field, raw := range c.Inputs {
		v, err := rawValue(raw)
		if err != nil {
			return nil, fmt.Errorf("inputs.%s: %w", field, err)
		}
		if v != "" {
			values[field] = v
		}
	}
	return values, nil
}

// rawValue turns a JSON scalar into the text a form field would hold.
// null means the field was left empty.
func rawValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", errors.New("must be a string, number or boolean")
		}
		return n.String(), nil
	}
}

// CalculateHandler handles calculation requests.
type CalculateHandler struct {
	deps CalculateDependencies
}

// NewCalculateHandler creates a new calculate handler.
func NewCalculateHandler(deps CalculateDependencies) *CalculateHandler {
	return &CalculateHandler{deps: deps}
}

// HandlePostCalculate handles POST /calculate requests. A result whose
// record could not be saved is still a 200 with a warning.
func (h *CalculateHandler) HandlePostCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_calculate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req calculateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	values, err := req.values()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	out, err := h.deps.Calculate(r.Context(), service.Request{
		Calculator: req.Calculator,
		Inputs:     values,
		Note:       req.Note,
	})
	if err != nil {
		status, code := classify(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}

	resp := types.NewCalculationResponse(out.Result)
	resp.RecordID = int64(out.RecordID)
	resp.Persisted = out.Persisted
	if out.Warning != nil {
		resp.Warning = out.Warning.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// classify maps service and engine errors to an HTTP status and code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, calculator.ErrUnknownCalculator):
		return http.StatusBadRequest, "unknown_calculator"
	case errors.Is(err, calculator.ErrIncompleteScore):
		return http.StatusBadRequest, "incomplete_score"
	case errors.Is(err, calculator.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, service.ErrEmptyNote):
		return http.StatusBadRequest, "empty_note"
	case errors.Is(err, service.ErrPersistence):
		return http.StatusServiceUnavailable, "persistence_error"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "not_started"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fieldOf returns the offending input field of a validation error.
func fieldOf(err error) string {
	var verr *calculator.ValidationError
	if errors.As(err, &verr) {
		return verr.Field
	}
	return ""
}
