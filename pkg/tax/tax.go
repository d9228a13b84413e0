// Package tax resolves the regressive withholding rate that applies to a
// fixed-income holding and applies it to a profit.
package tax

import (
	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
	"github.com/iwvelando/compound-interest/pkg/timespan"
)

// ResolveRate returns the withholding percentage for a holding period of the
// given length in years. Each bracket includes its upper bound.
func ResolveRate(years float64) float64 {
	return RateForDays(timespan.ToDays(years))
}

// RateForDays returns the withholding percentage for a holding period in days.
func RateForDays(days float64) float64 {
	last := constants.TaxBrackets[len(constants.TaxBrackets)-1]
	for _, bracket := range constants.TaxBrackets {
		if bracket.MaxDays > 0 && days <= bracket.MaxDays {
			return bracket.Rate
		}
	}
	return last.Rate
}

// Apply withholds ratePct percent of a gross profit and returns the tax and
// what remains of the profit.
func Apply(grossProfit, ratePct float64) (tax, netProfit float64) {
	tax = mathutil.ApplyPercentage(grossProfit, ratePct)
	netProfit = grossProfit - tax
	return tax, netProfit
}

// Brackets returns a copy of the bracket table.
func Brackets() []constants.TaxBracket {
	brackets := make([]constants.TaxBracket, len(constants.TaxBrackets))
	copy(brackets, constants.TaxBrackets)
	return brackets
}
