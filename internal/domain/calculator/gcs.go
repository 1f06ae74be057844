package calculator

import "fmt"

// GCS field names.
const (
	FieldEye    = "eye"
	FieldVerbal = "verbal"
	FieldMotor  = "motor"
)

// GCS interpretation labels.
const (
	GCSMild     = "Mild brain injury"
	GCSModerate = "Moderate brain injury"
	GCSSevere   = "Severe brain injury"
)

const (
	maxEye    = 4
	maxVerbal = 5
	maxMotor  = 6
	maxGCS    = maxEye + maxVerbal + maxMotor
)

// GCSInput holds the three Glasgow Coma Scale components. Zero means the
// component was never selected.
type GCSInput struct {
	Eye    int
	Verbal int
	Motor  int
}

func parseGCS(r *valueReader) Input {
	return GCSInput{Eye: r.score(FieldEye), Verbal: r.score(FieldVerbal), Motor: r.score(FieldMotor)}
}

// Calculator implements Input.
func (GCSInput) Calculator() ID { return GCS }

// Validate implements Input.
func (in GCSInput) Validate() error {
	components := []struct {
		field string
		value int
		max   int
	}{
		{FieldEye, in.Eye, maxEye},
		{FieldVerbal, in.Verbal, maxVerbal},
		{FieldMotor, in.Motor, maxMotor},
	}
	for _, c := range components {
		if c.value == 0 {
			return unselected(c.field)
		}
		if c.value < 1 || c.value > c.max {
			return invalid(c.field, fmt.Sprintf("must be between 1 and %d", c.max))
		}
	}
	return nil
}

// Summary implements Input.
func (in GCSInput) Summary() string {
	return fmt.Sprintf("E%dV%dM%d", in.Eye, in.Verbal, in.Motor)
}

func (in GCSInput) evaluate() Result {
	total := in.Eye + in.Verbal + in.Motor
	category := GCSCategory(total)
	return Result{
		Value:    float64(total),
		Category: category,
		Extras: map[string]float64{
			FieldEye:    float64(in.Eye),
			FieldVerbal: float64(in.Verbal),
			FieldMotor:  float64(in.Motor),
		},
		Display: fmt.Sprintf("GCS: %d/%d (%s) | %s", total, maxGCS, in.Summary(), category),
	}
}

// GCSCategory classifies a GCS total.
func GCSCategory(total int) string {
	switch {
	case total >= 13:
		return GCSMild
	case total >= 9:
		return GCSModerate
	default:
		return GCSSevere
	}
}
