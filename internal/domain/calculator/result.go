package calculator

// Result is the immutable outcome of one calculation.
type Result struct {
	Calculator ID
	// Value is the primary numeric result (score, index, clearance, single dose).
	Value float64
	Unit  string
	// Category is the interpretation label; empty for informational calculators.
	Category       string
	Recommendation string
	// Advisory is an informational caveat that is displayed but not recorded.
	Advisory string
	// Extras carries secondary values such as component scores or risk percent.
	Extras map[string]float64
	// Display is the single human-readable result line.
	Display      string
	InputSummary string
}

// Lines returns the display lines: the result line followed by the
// recommendation and advisory lines when present.
func (r Result) Lines() []string {
	lines := []string{r.Display}
	if r.Recommendation != "" {
		lines = append(lines, "Recommendation: "+r.Recommendation)
	}
	if r.Advisory != "" {
		lines = append(lines, r.Advisory)
	}
	return lines
}

// Summary is the result text persisted with the record.
func (r Result) Summary() string {
	if r.Recommendation != "" {
		return r.Display + " | " + r.Recommendation
	}
	return r.Display
}
