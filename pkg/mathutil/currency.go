// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/youth-budget/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CeilDiv returns ceil(n/d). Negative n rounds toward zero the same way
// math.Ceil does, so -3/5 yields 0. A zero divisor yields 0.
func CeilDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return math.Ceil(n / d)
}

// ClampInt truncates val to an int, saturating at the int range instead of
// wrapping. NaN yields 0.
func ClampInt(val float64) int {
	switch {
	case math.IsNaN(val):
		return 0
	case val >= math.MaxInt:
		return math.MaxInt
	case val <= math.MinInt:
		return math.MinInt
	}
	return int(val)
}

// Finite replaces NaN and infinities with zero.
func Finite(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}
