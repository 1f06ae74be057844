package calculator

import (
	"fmt"
	"math"
)

// Creatinine clearance field names.
const (
	FieldAge             = "age"
	FieldSerumCreatinine = "serum_creatinine_mg_dl"
	FieldSex             = "sex"
)

// Sex values accepted by the Cockcroft-Gault formula.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Creatinine clearance interpretation labels.
const (
	CrClNormal   = "Normal"
	CrClMild     = "Mild decrease"
	CrClModerate = "Moderate decrease"
	CrClSevere   = "Severe decrease"
	CrClFailure  = "Kidney failure"
)

const (
	cockcroftAgeCeiling = 140
	cockcroftDivisor    = 72
	femaleFactor        = 0.85
)

// CreatinineInput holds the Cockcroft-Gault inputs.
type CreatinineInput struct {
	AgeYears        float64
	WeightKg        float64
	SerumCreatinine float64 // mg/dL
	Sex             string  // SexMale or SexFemale
}

func parseCreatinine(r *valueReader) Input {
	return CreatinineInput{
		AgeYears:        r.number(FieldAge),
		WeightKg:        r.number(FieldWeightKg),
		SerumCreatinine: r.number(FieldSerumCreatinine),
		Sex:             r.choice(FieldSex, SexMale, SexMale, SexFemale),
	}
}

// Calculator implements Input.
func (CreatinineInput) Calculator() ID { return Creatinine }

// Validate implements Input. Ages at or above 140 would yield a
// non-positive clearance and are rejected.
func (in CreatinineInput) Validate() error {
	if math.IsNaN(in.AgeYears) || math.IsInf(in.AgeYears, 0) {
		return invalid(FieldAge, "must be a number")
	}
	if in.AgeYears < 0 || in.AgeYears >= cockcroftAgeCeiling {
		return invalid(FieldAge, "must be between 0 and 140")
	}
	if err := positive(FieldWeightKg, in.WeightKg); err != nil {
		return err
	}
	if err := positive(FieldSerumCreatinine, in.SerumCreatinine); err != nil {
		return err
	}
	if in.Sex != SexMale && in.Sex != SexFemale {
		return invalid(FieldSex, "must be one of male, female")
	}
	return nil
}

// Summary implements Input.
func (in CreatinineInput) Summary() string {
	return fmt.Sprintf("Age: %s, Weight: %skg, SCr: %smg/dL, %s",
		formatNumber(in.AgeYears), formatNumber(in.WeightKg), formatNumber(in.SerumCreatinine), in.Sex)
}

func (in CreatinineInput) evaluate() Result {
	crcl := ((cockcroftAgeCeiling - in.AgeYears) * in.WeightKg) / (cockcroftDivisor * in.SerumCreatinine)
	if in.Sex == SexFemale {
		crcl *= femaleFactor
	}
	category := CrClCategory(crcl)
	return Result{
		Value:    crcl,
		Unit:     "mL/min",
		Category: category,
		Display:  fmt.Sprintf("CrCl: %.1f mL/min (%s)", crcl, category),
	}
}

// CrClCategory classifies a creatinine clearance in mL/min.
func CrClCategory(crcl float64) string {
	switch {
	case crcl >= 90:
		return CrClNormal
	case crcl >= 60:
		return CrClMild
	case crcl >= 30:
		return CrClModerate
	case crcl >= 15:
		return CrClSevere
	default:
		return CrClFailure
	}
}
