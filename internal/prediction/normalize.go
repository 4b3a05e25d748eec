package prediction

import (
	"math"
	"strconv"
	"strings"
)

// SafeValue returns v unless it is NaN or infinite, in which case fallback
// is returned. Every formula in this package routes its inputs through here
// so malformed upstream data degrades to a documented default instead of
// poisoning the arithmetic.
func SafeValue(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// ParseValue parses raw as a float, returning fallback when the string is
// empty, unparseable, or non-finite. The FPL API transmits most statistics
// as strings ("4.5", "0.00"), so the data layer runs every numeric field
// through this before constructing a Player.
func ParseValue(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return SafeValue(v, fallback)
}

// round1 rounds to one decimal place, coercing non-finite input to 0.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
