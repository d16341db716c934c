// Package numparse extracts numbers from loosely formatted text the way
// spreadsheet cells and browser form values usually arrive: leading
// whitespace is skipped and trailing garbage after the number is ignored
// ("12kg" -> 12, "3.5 naira" -> 3.5).
package numparse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// FloatPrefix returns the leading decimal literal of s, or false if s does
// not start with one.
func FloatPrefix(s string) (string, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	return m, m != ""
}

// IntPrefix returns the leading integer of s.
func IntPrefix(s string) (int, bool) {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float parses the leading decimal literal of s.
func Float(s string) (float64, bool) {
	m, ok := FloatPrefix(s)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FloatOrZero is Float with 0 for anything unparsable.
func FloatOrZero(s string) float64 {
	f, _ := Float(s)
	return f
}
