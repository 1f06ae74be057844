package calculator

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Values holds raw, unparsed inputs keyed by field name, as typed into a
// form or passed on the command line.
type Values map[string]string

// valueReader parses fields out of Values and keeps the first failure so
// a struct literal can be built field by field.
type valueReader struct {
	values Values
	err    error
}

func (r *valueReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *valueReader) raw(field string) (string, bool) {
	v, ok := r.values[field]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// number parses a required finite float.
func (r *valueReader) number(field string) float64 {
	s, ok := r.raw(field)
	if !ok {
		r.fail(missing(field))
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(invalid(field, "must be a number"))
		return 0
	}
	return f
}

// integer parses a required whole number.
func (r *valueReader) integer(field string) int {
	s, ok := r.raw(field)
	if !ok {
		r.fail(missing(field))
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.fail(invalid(field, "must be a whole number"))
		return 0
	}
	return n
}

// score parses a selection score where an absent value means unselected (0).
func (r *valueReader) score(field string) int {
	if _, ok := r.raw(field); !ok {
		return 0
	}
	return r.integer(field)
}

// flag parses an optional checkbox; absent means unchecked.
func (r *valueReader) flag(field string) bool {
	s, ok := r.raw(field)
	if !ok {
		return false
	}
	switch strings.ToLower(s) {
	case "yes", "y", "on", "checked":
		return true
	case "no", "n", "off":
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		r.fail(invalid(field, "must be true or false"))
		return false
	}
	return b
}

// choice parses an optional enumerated value, falling back to def when absent.
func (r *valueReader) choice(field, def string, allowed ...string) string {
	s, ok := r.raw(field)
	if !ok {
		return def
	}
	s = strings.ToLower(s)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	r.fail(invalid(field, "must be one of "+strings.Join(allowed, ", ")))
	return def
}

// checkKnown rejects keys that the calculator does not accept.
func checkKnown(values Values, fields []string) error {
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f] = struct{}{}
	}
	var unknown []string
	for k := range values {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return invalid(unknown[0], "unknown field")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
