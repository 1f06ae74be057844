package calculator

import "fmt"

// Pediatric dosing field names.
const (
	FieldDosePerKg = "dose_per_kg_mg"
	FieldFrequency = "frequency_per_day"
)

// Extras keys of a pediatric dosing result.
const (
	ExtraSingleDoseMg = "single_dose_mg"
	ExtraDailyDoseMg  = "daily_dose_mg"
)

const pediatricAdvisory = "Always verify against pediatric dosing guidelines and maximum adult doses."

// PediatricInput holds weight-based dosing inputs.
type PediatricInput struct {
	WeightKg        float64
	DosePerKgMg     float64 // total daily dose per kg
	FrequencyPerDay int
}

func parsePediatric(r *valueReader) Input {
	return PediatricInput{
		WeightKg:        r.number(FieldWeightKg),
		DosePerKgMg:     r.number(FieldDosePerKg),
		FrequencyPerDay: r.integer(FieldFrequency),
	}
}

// Calculator implements Input.
func (PediatricInput) Calculator() ID { return Pediatric }

// Validate implements Input.
func (in PediatricInput) Validate() error {
	if err := positive(FieldWeightKg, in.WeightKg); err != nil {
		return err
	}
	if err := positive(FieldDosePerKg, in.DosePerKgMg); err != nil {
		return err
	}
	if in.FrequencyPerDay < 1 {
		return invalid(FieldFrequency, "must be a positive whole number")
	}
	return nil
}

// Summary implements Input.
func (in PediatricInput) Summary() string {
	return fmt.Sprintf("Weight: %skg, %smg/kg, %dx/day",
		formatNumber(in.WeightKg), formatNumber(in.DosePerKgMg), in.FrequencyPerDay)
}

func (in PediatricInput) evaluate() Result {
	daily := in.WeightKg * in.DosePerKgMg
	single := daily / float64(in.FrequencyPerDay)
	return Result{
		Value: single,
		Unit:  "mg",
		Extras: map[string]float64{
			ExtraSingleDoseMg: single,
			ExtraDailyDoseMg:  daily,
			FieldFrequency:    float64(in.FrequencyPerDay),
		},
		Advisory: pediatricAdvisory,
		Display:  fmt.Sprintf("Single dose: %.1fmg, Daily: %.1fmg (%dx/day)", single, daily, in.FrequencyPerDay),
	}
}
