// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundTo rounds half away from zero to the given number of decimal places.
// The rounding is done on the decimal representation so that values such as
// 1.005 round to 1.01 instead of the binary neighbour 1.00. Non-finite values
// are returned unchanged.
func RoundTo(val float64, places int32) float64 {
	if !IsFinite(val) {
		return val
	}
	rounded, _ := decimal.NewFromFloat(val).Round(places).Float64()
	return rounded
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// FiniteOr returns val when it is finite and fallback otherwise.
func FiniteOr(val, fallback float64) float64 {
	if IsFinite(val) {
		return val
	}
	return fallback
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// PercentToDecimal converts a percentage (8 for 8%) into a fraction (0.08).
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
