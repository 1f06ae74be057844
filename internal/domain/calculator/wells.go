package calculator

import "fmt"

// Wells DVT field names.
const (
	FieldActiveCancer         = "active_cancer"
	FieldParalysis            = "paralysis_or_immobilization"
	FieldBedridden            = "bedridden_or_surgery"
	FieldLocalizedTenderness  = "localized_tenderness"
	FieldEntireLegSwollen     = "entire_leg_swollen"
	FieldCalfSwelling         = "calf_swelling"
	FieldPittingEdema         = "pitting_edema"
	FieldCollateralVeins      = "collateral_veins"
	FieldPreviousDVT          = "previous_dvt"
	FieldAlternativeDiagnosis = "alternative_diagnosis"
)

const alternativeDiagnosisPoints = -2

// Wells risk categories.
const (
	WellsHigh     = "High"
	WellsModerate = "Moderate"
	WellsLow      = "Low"
)

// WellsInput holds the ten Wells DVT criteria.
type WellsInput struct {
	ActiveCancer              bool
	ParalysisOrImmobilization bool
	BedriddenOrSurgery        bool
	LocalizedTenderness       bool
	EntireLegSwollen          bool
	CalfSwelling              bool
	PittingEdema              bool
	CollateralVeins           bool
	PreviousDVT               bool
	// AlternativeDiagnosis: an alternative diagnosis is at least as likely as DVT.
	AlternativeDiagnosis bool
}

func (in WellsInput) criteria() []criterion {
	return []criterion{
		{FieldActiveCancer, "Active cancer (treatment ongoing or within 6 months)", 1, in.ActiveCancer},
		{FieldParalysis, "Paralysis, paresis, or recent plaster immobilization", 1, in.ParalysisOrImmobilization},
		{FieldBedridden, "Recently bedridden for >3 days or major surgery within 12 weeks", 1, in.BedriddenOrSurgery},
		{FieldLocalizedTenderness, "Localized tenderness along distribution of deep venous system", 1, in.LocalizedTenderness},
		{FieldEntireLegSwollen, "Entire leg swollen", 1, in.EntireLegSwollen},
		{FieldCalfSwelling, "Calf swelling >3 cm compared to asymptomatic leg", 1, in.CalfSwelling},
		{FieldPittingEdema, "Pitting edema confined to symptomatic leg", 1, in.PittingEdema},
		{FieldCollateralVeins, "Collateral superficial veins (non-varicose)", 1, in.CollateralVeins},
		{FieldPreviousDVT, "Previously documented DVT", 1, in.PreviousDVT},
		{FieldAlternativeDiagnosis, "Alternative diagnosis at least as likely as DVT", alternativeDiagnosisPoints, in.AlternativeDiagnosis},
	}
}

func (in WellsInput) fields() []string { return checklistFields(in.criteria()) }

func parseWells(r *valueReader) Input {
	return WellsInput{
		ActiveCancer:              r.flag(FieldActiveCancer),
		ParalysisOrImmobilization: r.flag(FieldParalysis),
		BedriddenOrSurgery:        r.flag(FieldBedridden),
		LocalizedTenderness:       r.flag(FieldLocalizedTenderness),
		EntireLegSwollen:          r.flag(FieldEntireLegSwollen),
		CalfSwelling:              r.flag(FieldCalfSwelling),
		PittingEdema:              r.flag(FieldPittingEdema),
		CollateralVeins:           r.flag(FieldCollateralVeins),
		PreviousDVT:               r.flag(FieldPreviousDVT),
		AlternativeDiagnosis:      r.flag(FieldAlternativeDiagnosis),
	}
}

// Calculator implements Input.
func (WellsInput) Calculator() ID { return Wells }

// Validate implements Input. Every combination of checkboxes is valid.
func (WellsInput) Validate() error { return nil }

// Summary implements Input.
func (in WellsInput) Summary() string {
	return checklistSummary(in.criteria(), "No criteria selected")
}

func (in WellsInput) evaluate() Result {
	total := checklistTotal(in.criteria())
	category := WellsCategory(total)
	return Result{
		Value:    float64(total),
		Category: category,
		Display:  fmt.Sprintf("Wells Score: %d | Risk: %s", total, wellsRiskText(category)),
	}
}

// WellsCategory classifies a Wells DVT total.
func WellsCategory(total int) string {
	switch {
	case total >= 2:
		return WellsHigh
	case total >= 1:
		return WellsModerate
	default:
		return WellsLow
	}
}

func wellsRiskText(category string) string {
	switch category {
	case WellsHigh:
		return "High (DVT likely - consider imaging)"
	case WellsLow:
		return "Low (DVT unlikely)"
	default:
		return category
	}
}
