package calculator

import (
	"fmt"
	"math"
)

// Shared field names.
const (
	FieldWeightKg = "weight_kg"
	FieldHeightCm = "height_cm"
)

// BMI interpretation labels.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

const cmPerMetre = 100

// BMIInput holds the inputs of the body mass index.
type BMIInput struct {
	WeightKg float64
	HeightCm float64
}

func parseBMI(r *valueReader) Input {
	return BMIInput{WeightKg: r.number(FieldWeightKg), HeightCm: r.number(FieldHeightCm)}
}

// Calculator implements Input.
func (BMIInput) Calculator() ID { return BMI }

// Validate implements Input.
func (in BMIInput) Validate() error { return validateBody(in.WeightKg, in.HeightCm) }

// Summary implements Input.
func (in BMIInput) Summary() string { return bodySummary(in.WeightKg, in.HeightCm) }

func (in BMIInput) evaluate() Result {
	m := in.HeightCm / cmPerMetre
	bmi := in.WeightKg / (m * m)
	category := BMICategory(bmi)
	return Result{
		Value:    bmi,
		Unit:     "kg/m²",
		Category: category,
		Display:  fmt.Sprintf("BMI: %.1f | Category: %s", bmi, category),
	}
}

// BMICategory classifies a BMI value; each band includes its lower bound.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BSAInput holds the inputs of the Mosteller body surface area.
type BSAInput struct {
	WeightKg float64
	HeightCm float64
}

func parseBSA(r *valueReader) Input {
	return BSAInput{WeightKg: r.number(FieldWeightKg), HeightCm: r.number(FieldHeightCm)}
}

// Calculator implements Input.
func (BSAInput) Calculator() ID { return BSA }

// Validate implements Input.
func (in BSAInput) Validate() error { return validateBody(in.WeightKg, in.HeightCm) }

// Summary implements Input.
func (in BSAInput) Summary() string { return bodySummary(in.WeightKg, in.HeightCm) }

func (in BSAInput) evaluate() Result {
	bsa := math.Sqrt(in.WeightKg * in.HeightCm / 3600)
	return Result{
		Value:   bsa,
		Unit:    "m²",
		Display: fmt.Sprintf("BSA: %.2f m² (Mosteller formula)", bsa),
	}
}

func validateBody(weightKg, heightCm float64) error {
	if err := positive(FieldWeightKg, weightKg); err != nil {
		return err
	}
	return positive(FieldHeightCm, heightCm)
}

func bodySummary(weightKg, heightCm float64) string {
	return fmt.Sprintf("Weight: %skg, Height: %scm", formatNumber(weightKg), formatNumber(heightCm))
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a number")
	}
	if v <= 0 {
		return invalid(field, "must be greater than zero")
	}
	return nil
}
