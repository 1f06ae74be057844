// Package calculator implements the clinical formula engine: eight
// closed-form scores, each mapping an immutable input struct to a Result
// with a categorical interpretation.
//
// The engine is pure. Callers build an Input (directly, or from raw form
// values with Parse), call Calculate, and decide what to do with the
// Result. Nothing here touches storage.
package calculator

import (
	"fmt"
	"strings"
)

// ID enumerates the supported calculators.
type ID int

// Calculator identifiers. The zero value is not a valid calculator.
const (
	BMI ID = iota + 1
	BSA
	Creatinine
	GCS
	Wells
	APGAR
	Pediatric
	CHADS2
)

// Input is a fully constructed, immutable set of inputs for one calculator.
// The interface is sealed: only this package's input types implement it.
type Input interface {
	// Calculator identifies which formula the input belongs to.
	Calculator() ID
	// Validate checks the domain of every field.
	Validate() error
	// Summary renders the inputs for the record log.
	Summary() string

	evaluate() Result
}

// Info describes a calculator for listings and form building.
type Info struct {
	ID          ID
	Key         string
	Name        string
	RecordLabel string
	Fields      []string
}

type entry struct {
	key    string
	name   string
	label  string
	fields []string
	parse  func(r *valueReader) Input
}

// registry is the dispatch table, indexed by ID.
var registry = [...]entry{
	BMI: {
		key: "bmi", name: "BMI Calculator", label: "BMI",
		fields: []string{FieldWeightKg, FieldHeightCm},
		parse:  parseBMI,
	},
	BSA: {
		key: "bsa", name: "Body Surface Area", label: "BSA",
		fields: []string{FieldWeightKg, FieldHeightCm},
		parse:  parseBSA,
	},
	Creatinine: {
		key: "creatinine", name: "Creatinine Clearance", label: "Creatinine Clearance",
		fields: []string{FieldAge, FieldWeightKg, FieldSerumCreatinine, FieldSex},
		parse:  parseCreatinine,
	},
	GCS: {
		key: "gcs", name: "Glasgow Coma Scale", label: "GCS",
		fields: []string{FieldEye, FieldVerbal, FieldMotor},
		parse:  parseGCS,
	},
	Wells: {
		key: "wells", name: "Wells Score (DVT)", label: "Wells DVT",
		fields: WellsInput{}.fields(),
		parse:  parseWells,
	},
	APGAR: {
		key: "apgar", name: "APGAR Score", label: "APGAR",
		fields: APGARInput{}.fields(),
		parse:  parseAPGAR,
	},
	Pediatric: {
		key: "pediatric", name: "Pediatric Dosing", label: "Pediatric Dosing",
		fields: []string{FieldWeightKg, FieldDosePerKg, FieldFrequency},
		parse:  parsePediatric,
	},
	CHADS2: {
		key: "chads2", name: "CHADS₂ Score", label: "CHADS2",
		fields: CHADS2Input{}.fields(),
		parse:  parseCHADS2,
	},
}

// All returns every calculator in catalog order.
func All() []ID {
	ids := make([]ID, 0, len(registry)-1)
	for id := BMI; int(id) < len(registry); id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id names a registered calculator.
func (id ID) Valid() bool {
	return id > 0 && int(id) < len(registry) && registry[id].parse != nil
}

// String returns the calculator key, e.g. "bmi".
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("calculator(%d)", int(id))
	}
	return registry[id].key
}

// Name returns the display name, e.g. "BMI Calculator".
func (id ID) Name() string {
	if !id.Valid() {
		return ""
	}
	return registry[id].name
}

// RecordLabel returns the calculator type stored with each record.
func (id ID) RecordLabel() string {
	if !id.Valid() {
		return ""
	}
	return registry[id].label
}

// Info returns the catalog entry for id.
func (id ID) Info() Info {
	if !id.Valid() {
		return Info{ID: id}
	}
	e := registry[id]
	return Info{
		ID:          id,
		Key:         e.key,
		Name:        e.name,
		RecordLabel: e.label,
		Fields:      append([]string(nil), e.fields...),
	}
}

// ParseID resolves a calculator key (case-insensitive).
func ParseID(key string) (ID, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, id := range All() {
		if registry[id].key == k {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCalculator, key)
}

// Catalog lists all calculators.
func Catalog() []Info {
	ids := All()
	out := make([]Info, len(ids))
	for i, id := range ids {
		out[i] = id.Info()
	}
	return out
}

// Search filters the catalog by a case-insensitive substring of the
// display name. An empty query returns the whole catalog.
func Search(query string) []Info {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Catalog()
	}
	var out []Info
	for _, info := range Catalog() {
		if strings.Contains(strings.ToLower(info.Name), q) {
			out = append(out, info)
		}
	}
	return out
}

// Parse builds the typed input for id from raw values and validates it.
// Unknown keys, missing required fields and unparseable values are
// reported as *ValidationError naming the field.
func Parse(id ID, values Values) (Input, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCalculator, id)
	}
	e := registry[id]
	if err := checkKnown(values, e.fields); err != nil {
		return nil, err
	}
	r := &valueReader{values: values}
	in := e.parse(r)
	if r.err != nil {
		return nil, r.err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// Calculate validates in and evaluates its formula.
func Calculate(in Input) (Result, error) {
	if in == nil {
		return Result{}, fmt.Errorf("%w: no input", ErrInvalidInput)
	}
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	res := in.evaluate()
	res.Calculator = in.Calculator()
	res.InputSummary = in.Summary()
	return res, nil
}

// Run parses raw values for id and calculates in one step.
func Run(id ID, values Values) (Result, error) {
	in, err := Parse(id, values)
	if err != nil {
		return Result{}, err
	}
	return Calculate(in)
}
