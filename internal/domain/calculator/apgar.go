package calculator

import (
	"fmt"
	"strings"
)

// APGAR field names.
const (
	FieldHeartRate         = "heart_rate"
	FieldRespiratoryEffort = "respiratory_effort"
	FieldMuscleTone        = "muscle_tone"
	FieldReflexResponse    = "reflex_response"
	FieldColor             = "color"
)

// APGAR interpretation labels.
const (
	APGARNormal              = "Normal"
	APGARModeratelyDepressed = "Moderately depressed"
	APGARSeverelyDepressed   = "Severely depressed"
)

const (
	maxAPGARCriterion = 2
	maxAPGAR          = 10
)

// APGARInput holds the five APGAR criteria, each scored 0-2.
type APGARInput struct {
	HeartRate         int
	RespiratoryEffort int
	MuscleTone        int
	ReflexResponse    int
	Color             int
}

type apgarScore struct {
	field string
	label string
	value int
}

func (in APGARInput) scores() []apgarScore {
	return []apgarScore{
		{FieldHeartRate, "Heart Rate", in.HeartRate},
		{FieldRespiratoryEffort, "Respiratory Effort", in.RespiratoryEffort},
		{FieldMuscleTone, "Muscle Tone", in.MuscleTone},
		{FieldReflexResponse, "Reflex Response", in.ReflexResponse},
		{FieldColor, "Color", in.Color},
	}
}

func (in APGARInput) fields() []string {
	s := in.scores()
	fields := make([]string, len(s))
	for i, c := range s {
		fields[i] = c.field
	}
	return fields
}

func parseAPGAR(r *valueReader) Input {
	return APGARInput{
		HeartRate:         r.integer(FieldHeartRate),
		RespiratoryEffort: r.integer(FieldRespiratoryEffort),
		MuscleTone:        r.integer(FieldMuscleTone),
		ReflexResponse:    r.integer(FieldReflexResponse),
		Color:             r.integer(FieldColor),
	}
}

// Calculator implements Input.
func (APGARInput) Calculator() ID { return APGAR }

// Validate implements Input.
func (in APGARInput) Validate() error {
	for _, s := range in.scores() {
		if s.value < 0 || s.value > maxAPGARCriterion {
			return invalid(s.field, "must be between 0 and 2")
		}
	}
	return nil
}

// Summary implements Input.
func (in APGARInput) Summary() string {
	parts := make([]string, 0, len(in.scores()))
	for _, s := range in.scores() {
		parts = append(parts, fmt.Sprintf("%s: %d", s.label, s.value))
	}
	return strings.Join(parts, "; ")
}

func (in APGARInput) evaluate() Result {
	total := 0
	extras := make(map[string]float64, maxAPGAR/maxAPGARCriterion)
	for _, s := range in.scores() {
		total += s.value
		extras[s.field] = float64(s.value)
	}
	category := APGARCategory(total)
	return Result{
		Value:    float64(total),
		Category: category,
		Extras:   extras,
		Display:  fmt.Sprintf("APGAR Score: %d/%d | Status: %s", total, maxAPGAR, category),
	}
}

// APGARCategory classifies an APGAR total.
func APGARCategory(total int) string {
	switch {
	case total >= 7:
		return APGARNormal
	case total >= 4:
		return APGARModeratelyDepressed
	default:
		return APGARSeverelyDepressed
	}
}
