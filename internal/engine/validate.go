package engine

import (
	"math"
	"strconv"
	"strings"
)

// IsValidNumericInput reports whether raw is acceptable as a numeric answer:
// non-empty and parsing to a finite number greater than or equal to zero.
// Callers gate submission on this predicate; values that fail it never reach
// Score.
func IsValidNumericInput(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
