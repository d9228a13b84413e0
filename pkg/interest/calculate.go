package interest

import (
	"math"

	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
	"github.com/iwvelando/compound-interest/pkg/tax"
	"github.com/iwvelando/compound-interest/pkg/timespan"
)

// Result is the outcome of one calculation.
type Result struct {
	Mode          Mode    `json:"mode"`
	Gross         float64 `json:"gross"`
	TotalInvested float64 `json:"totalInvested"`
	GrossProfit   float64 `json:"grossProfit"`
	Tax           float64 `json:"tax"`
	NetProfit     float64 `json:"netProfit"`
	Net           float64 `json:"net"`
	// TaxRate is the withholding percentage applied to the gross profit.
	TaxRate float64 `json:"taxRate"`
	Years   float64 `json:"years"`
	Days    float64 `json:"days"`
	Months  int     `json:"months,omitempty"`
	// Defined is false when the amounts overflowed or were not real numbers;
	// the amount fields are then zero.
	Defined bool `json:"defined"`
	// EquivalentAnnualRate and EquivalentMonthlyRate are nil when the
	// inversion is not computable (zero horizon or nothing invested).
	EquivalentAnnualRate  *float64         `json:"equivalentAnnualRate"`
	EquivalentMonthlyRate *float64         `json:"equivalentMonthlyRate"`
	Schedule              []MonthlyBalance `json:"schedule,omitempty"`
}

// Calculate runs the whole engine for one input.
func Calculate(in Input) Result {
	acc := Accumulate(in)
	taxRate := tax.ResolveRate(in.Years)

	result := Result{
		Mode:          acc.Mode,
		TaxRate:       taxRate,
		Years:         in.Years,
		Days:          timespan.ToDays(in.Years),
		Months:        acc.Months,
		Gross:         acc.Amount,
		TotalInvested: acc.TotalInvested,
		Schedule:      acc.Schedule,
	}

	result.GrossProfit = result.Gross - result.TotalInvested
	result.Tax, result.NetProfit = tax.Apply(result.GrossProfit, taxRate)
	result.Net = result.TotalInvested + result.NetProfit

	result.Defined = mathutil.IsFinite(result.Gross) && mathutil.IsFinite(result.Net)
	if !result.Defined {
		result.Gross, result.GrossProfit, result.Tax, result.NetProfit, result.Net = 0, 0, 0, 0, 0
		result.TotalInvested = mathutil.FiniteOr(result.TotalInvested, 0)
		result.Schedule = nil
		return result
	}

	result.EquivalentAnnualRate, result.EquivalentMonthlyRate =
		EquivalentRate(result.Net, result.TotalInvested, in.CompoundingFrequency(), in.Years)
	return result
}

// EquivalentRate returns the annual rate, as a percentage, that a tax-exempt
// investment compounding frequency times a year would need to turn invested
// into net over years, and its monthly counterpart.
//
// The annual rate inverts the closed form even when the net amount came from
// the monthly simulation, so with contributions it is an approximation. The
// monthly rate is annual/12 rather than a compound conversion. Both are kept
// as the calculator has always reported them.
//
// Both results are nil when years is not positive, invested is zero, or the
// inversion is not a real number.
func EquivalentRate(net, invested float64, frequency int, years float64) (annual, monthly *float64) {
	if years <= 0 || invested == 0 {
		return nil, nil
	}
	if frequency <= 0 {
		frequency = constants.DefaultCompoundingFrequency
	}
	n := float64(frequency)

	rate := n * (math.Pow(net/invested, 1/(n*years)) - 1) * constants.PercentageMultiplier
	if !mathutil.IsFinite(rate) {
		return nil, nil
	}
	monthlyRate := rate / constants.MonthsPerYear
	return &rate, &monthlyRate
}
