// Package types contains common types used across the application
package types

import "github.com/okian/quickmed/internal/domain/calculator"

// CalculatorInfo describes one calculator in the catalog
type CalculatorInfo struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	RecordLabel string   `json:"record_label"`
	Fields      []string `json:"fields"`
}

// NewCalculatorInfo converts a catalog entry to its API shape.
func NewCalculatorInfo(info calculator.Info) CalculatorInfo {
	return CalculatorInfo{
		Key:         info.Key,
		Name:        info.Name,
		RecordLabel: info.RecordLabel,
		Fields:      info.Fields,
	}
}

// CalculationResponse is the body returned for a calculation
type CalculationResponse struct {
	Calculator     string             `json:"calculator"`
	Name           string             `json:"name"`
	Value          float64            `json:"value"`
	Unit           string             `json:"unit,omitempty"`
	Category       string             `json:"category,omitempty"`
	Recommendation string             `json:"recommendation,omitempty"`
	Advisory       string             `json:"advisory,omitempty"`
	Extras         map[string]float64 `json:"extras,omitempty"`
	Display        string             `json:"display"`
	Lines          []string           `json:"lines"`
	InputSummary   string             `json:"input_summary"`
	RecordID       int64              `json:"record_id,omitempty"`
	Persisted      bool               `json:"persisted"`
	Warning        string             `json:"warning,omitempty"`
}

// NewCalculationResponse converts an engine result to its API shape. The
// record fields are filled in by the caller.
func NewCalculationResponse(res calculator.Result) CalculationResponse {
	return CalculationResponse{
		Calculator:     res.Calculator.String(),
		Name:           res.Calculator.Name(),
		Value:          res.Value,
		Unit:           res.Unit,
		Category:       res.Category,
		Recommendation: res.Recommendation,
		Advisory:       res.Advisory,
		Extras:         res.Extras,
		Display:        res.Display,
		Lines:          res.Lines(),
		InputSummary:   res.InputSummary,
	}
}

// NoteResponse is the body returned after saving a manual note
type NoteResponse struct {
	RecordID  int64 `json:"record_id"`
	Persisted bool  `json:"persisted"`
}
