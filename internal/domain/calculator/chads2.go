package calculator

import "fmt"

// CHADS₂ field names.
const (
	FieldCongestiveHeartFailure = "congestive_heart_failure"
	FieldHypertension           = "hypertension"
	FieldAge75                  = "age_75"
	FieldDiabetes               = "diabetes"
	FieldPriorStroke            = "prior_stroke_tia"
)

// CHADS₂ risk categories.
const (
	CHADS2Low         = "Low"
	CHADS2LowModerate = "Low-Moderate"
	CHADS2Moderate    = "Moderate"
	CHADS2High        = "High"
)

// CHADS₂ recommendations.
const (
	RecommendAspirinOrNone       = "Aspirin or no therapy"
	RecommendAspirinOrAnticoag   = "Aspirin or anticoagulation"
	RecommendAnticoagulation     = "Anticoagulation recommended"
	RecommendAnticoagulationHigh = "Anticoagulation strongly recommended"
)

// ExtraRiskPercent is the Extras key of the annual stroke risk.
const ExtraRiskPercent = "risk_percent"

const priorStrokePoints = 2

// CHADS2Input holds the five CHADS₂ criteria.
type CHADS2Input struct {
	CongestiveHeartFailure bool
	Hypertension           bool
	Age75                  bool
	Diabetes               bool
	PriorStrokeOrTIA       bool
}

func (in CHADS2Input) criteria() []criterion {
	return []criterion{
		{FieldCongestiveHeartFailure, "Congestive heart failure", 1, in.CongestiveHeartFailure},
		{FieldHypertension, "Hypertension", 1, in.Hypertension},
		{FieldAge75, "Age ≥ 75 years", 1, in.Age75},
		{FieldDiabetes, "Diabetes mellitus", 1, in.Diabetes},
		{FieldPriorStroke, "Prior stroke or TIA", priorStrokePoints, in.PriorStrokeOrTIA},
	}
}

func (in CHADS2Input) fields() []string { return checklistFields(in.criteria()) }

func parseCHADS2(r *valueReader) Input {
	return CHADS2Input{
		CongestiveHeartFailure: r.flag(FieldCongestiveHeartFailure),
		Hypertension:           r.flag(FieldHypertension),
		Age75:                  r.flag(FieldAge75),
		Diabetes:               r.flag(FieldDiabetes),
		PriorStrokeOrTIA:       r.flag(FieldPriorStroke),
	}
}

// Calculator implements Input.
func (CHADS2Input) Calculator() ID { return CHADS2 }

// Validate implements Input. Every combination of checkboxes is valid.
func (CHADS2Input) Validate() error { return nil }

// Summary implements Input.
func (in CHADS2Input) Summary() string {
	return checklistSummary(in.criteria(), "No risk factors")
}

func (in CHADS2Input) evaluate() Result {
	total := checklistTotal(in.criteria())
	a := CHADS2Assess(total)
	return Result{
		Value:          float64(total),
		Category:       a.Category,
		Recommendation: a.Recommendation,
		Extras:         map[string]float64{ExtraRiskPercent: a.RiskPercent},
		Display: fmt.Sprintf("CHADS₂ Score: %d | Risk: %s (%.1f%% annual stroke risk)",
			total, a.Category, a.RiskPercent),
	}
}

// CHADS2Assessment is the interpretation of a CHADS₂ total.
type CHADS2Assessment struct {
	Category       string
	RiskPercent    float64
	Recommendation string
}

// CHADS2Assess interprets a CHADS₂ total. Above 2 the annual risk grows
// by 1.5 points per point of score.
func CHADS2Assess(total int) CHADS2Assessment {
	switch {
	case total <= 0:
		return CHADS2Assessment{CHADS2Low, 0.5, RecommendAspirinOrNone}
	case total == 1:
		return CHADS2Assessment{CHADS2LowModerate, 1.5, RecommendAspirinOrAnticoag}
	case total == 2:
		return CHADS2Assessment{CHADS2Moderate, 2.5, RecommendAnticoagulation}
	default:
		return CHADS2Assessment{CHADS2High, 1.5 + float64(total-1)*1.5, RecommendAnticoagulationHigh}
	}
}
