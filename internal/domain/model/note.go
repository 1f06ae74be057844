// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// TimestampLayout is the on-disk layout of NoteRecord timestamps (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// ManualNote is the calculator type recorded for notes saved without a calculation.
const ManualNote = "Manual Note"

// RecordID identifies a stored note. Assigned by the store, strictly increasing.
type RecordID int64

// NoteRecord is one row of the append-only calculation log.
type NoteRecord struct {
	ID                RecordID  // zero until the store assigns it
	Timestamp         time.Time // wall-clock time of the calculation or note
	CalculatorType    string    // record label of the calculator, or ManualNote
	PatientInfo       string    // input summary
	CalculationResult string    // result summary
	Notes             string    // free-form text
}

// FormattedTimestamp renders the timestamp using TimestampLayout.
func (r NoteRecord) FormattedTimestamp() string {
	if r.Timestamp.IsZero() {
		return ""
	}
	return r.Timestamp.Format(TimestampLayout)
}

// IsManual reports whether the record is a free-standing note.
func (r NoteRecord) IsManual() bool {
	return r.CalculatorType == ManualNote
}

// Valid reports whether the record carries the fields every row must have.
func (r NoteRecord) Valid() bool {
	return !r.Timestamp.IsZero() && strings.TrimSpace(r.CalculatorType) != ""
}
