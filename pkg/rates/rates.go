// Package rates converts interest rates between their annual and monthly
// effective forms and keeps an annual/monthly pair consistent while either
// side is being edited.
package rates

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
)

// AnnualToMonthly returns the monthly effective rate equivalent to an annual
// effective rate. Both are percentages; the result has four decimals.
// Rates at or below -100% have no real monthly equivalent and yield 0.
func AnnualToMonthly(annualPct float64) float64 {
	monthly := (math.Pow(1+mathutil.PercentToDecimal(annualPct), 1.0/constants.MonthsPerYear) - 1) * constants.PercentageMultiplier
	return mathutil.RoundTo(mathutil.FiniteOr(monthly, 0), constants.MonthlyRatePlaces)
}

// MonthlyToAnnual returns the annual effective rate equivalent to a monthly
// effective rate, as a percentage with two decimals.
func MonthlyToAnnual(monthlyPct float64) float64 {
	annual := (math.Pow(1+mathutil.PercentToDecimal(monthlyPct), constants.MonthsPerYear) - 1) * constants.PercentageMultiplier
	return mathutil.RoundTo(mathutil.FiniteOr(annual, 0), constants.AnnualRatePlaces)
}

// Parse reads a user-typed rate. Both "8,5" and "8.5" are accepted, as is
// the pt-BR grouped form "1.234,56" and a trailing percent sign. Empty or
// non-numeric input yields 0.
func Parse(value string) float64 {
	parsed, err := ParseStrict(value)
	if err != nil {
		return 0
	}
	return parsed
}

// ParseStrict is Parse with the failure reported instead of folded into 0.
func ParseStrict(value string) (float64, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, fmt.Errorf("empty rate")
	}

	if strings.Contains(s, ",") {
		// A comma is the decimal separator, so any dot groups thousands.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", value, err)
	}
	if !mathutil.IsFinite(parsed) {
		return 0, fmt.Errorf("invalid rate %q: not finite", value)
	}
	return parsed, nil
}
