package calculator

import "strings"

// criterion is one weighted checkbox of a checklist score.
type criterion struct {
	field    string
	label    string
	points   int
	selected bool
}

func checklistTotal(cs []criterion) int {
	total := 0
	for _, c := range cs {
		if c.selected {
			total += c.points
		}
	}
	return total
}

func checklistFields(cs []criterion) []string {
	fields := make([]string, len(cs))
	for i, c := range cs {
		fields[i] = c.field
	}
	return fields
}

// checklistSummary joins the selected labels, or returns none.
func checklistSummary(cs []criterion, none string) string {
	var selected []string
	for _, c := range cs {
		if c.selected {
			selected = append(selected, c.label)
		}
	}
	if len(selected) == 0 {
		return none
	}
	return strings.Join(selected, "; ")
}
