// Package calc holds the SIP, EMI and tax calculators.
//
// Inputs arrive as text from form fields; a missing, zero or non-numeric
// value makes a calculator report ok=false and leave its output alone.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads a numeric field. Anything unparsable is NaN.
func Parse(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// nonNegative reports whether no value is below zero. Amounts and durations
// go through it; rates may be negative.
func nonNegative(vs ...float64) bool {
	for _, v := range vs {
		if v < 0 {
			return false
		}
	}
	return true
}

// present reports whether every value is usable: non-zero and a number.
func present(vs ...float64) bool {
	for _, v := range vs {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
