// Package interest is the compound-interest engine: it grows a principal
// with optional monthly contributions, withholds the regressive income tax
// and derives the tax-exempt rate that would produce the same net result.
//
// Every function is pure. Degenerate inputs never fail a calculation; values
// that cannot be computed are reported as nil or flagged on the Result.
package interest

import (
	"math"

	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
)

// Mode is the accumulation strategy used for a calculation.
type Mode string

const (
	// ClosedForm compounds the principal with A = P(1+r/n)^(nt).
	ClosedForm Mode = "closed-form"
	// MonthlySimulation steps month by month so contributions land on month
	// boundaries whatever the compounding frequency.
	MonthlySimulation Mode = "monthly-simulation"
)

// Input holds the numeric inputs of a calculation.
type Input struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	// AnnualRate is the nominal annual rate as a percentage.
	AnnualRate float64 `json:"annualRate"`
	Years      float64 `json:"years"`
	// Frequency is the number of compounding periods per year. Zero or
	// negative means constants.DefaultCompoundingFrequency.
	Frequency int `json:"frequency"`
}

// HasContribution reports whether the calculation runs in contribution mode.
func (in Input) HasContribution() bool {
	return in.MonthlyContribution > 0
}

// CompoundingFrequency returns the frequency with the default applied.
func (in Input) CompoundingFrequency() int {
	if in.Frequency <= 0 {
		return constants.DefaultCompoundingFrequency
	}
	return in.Frequency
}

// MonthlyBalance is one month of a contribution-mode simulation.
type MonthlyBalance struct {
	Month        int     `json:"month"`
	Contribution float64 `json:"contribution"`
	Interest     float64 `json:"interest"`
	Balance      float64 `json:"balance"`
}

// Accumulation is the gross outcome of compounding, before tax.
type Accumulation struct {
	Mode          Mode
	Amount        float64
	TotalInvested float64
	// Months is ceil(years*12) in contribution mode and zero otherwise.
	Months   int
	Schedule []MonthlyBalance
}

// Accumulate compounds the input. Without a contribution the closed form is
// used. With one, the balance starts at the principal and for every month
// after the first the contribution is deposited before that month's growth
// at the monthly rate equivalent to the compounding frequency. A horizon
// longer than constants.MaxSimulatedMonths is not simulated and yields a NaN
// amount, which Calculate reports as undefined.
func Accumulate(in Input) Accumulation {
	r := mathutil.PercentToDecimal(in.AnnualRate)
	n := float64(in.CompoundingFrequency())

	if !in.HasContribution() {
		return Accumulation{
			Mode:          ClosedForm,
			Amount:        in.Principal * math.Pow(1+r/n, n*in.Years),
			TotalInvested: in.Principal,
		}
	}

	months := simulatedMonths(in)
	if !mathutil.IsFinite(months) || months > constants.MaxSimulatedMonths {
		return Accumulation{
			Mode:          MonthlySimulation,
			Amount:        math.NaN(),
			TotalInvested: investedOver(in, months),
		}
	}
	totalMonths := int(months)
	effectiveMonthlyRate := math.Pow(1+r/n, n/constants.MonthsPerYear) - 1

	balance := in.Principal
	var schedule []MonthlyBalance
	if totalMonths > 0 {
		schedule = make([]MonthlyBalance, 0, totalMonths)
	}
	for month := 0; month < totalMonths; month++ {
		contribution := 0.0
		if month > 0 {
			contribution = in.MonthlyContribution
			balance += contribution
		}
		grown := balance * (1 + effectiveMonthlyRate)
		growth := grown - balance
		balance = grown
		schedule = append(schedule, MonthlyBalance{
			Month:        month,
			Contribution: contribution,
			Interest:     growth,
			Balance:      balance,
		})
	}

	return Accumulation{
		Mode:          MonthlySimulation,
		Amount:        balance,
		TotalInvested: investedOver(in, months),
		Months:        max(totalMonths, 0),
		Schedule:      schedule,
	}
}

// TotalInvested is the principal plus every contribution actually made. The
// first month is funded by the principal alone.
func TotalInvested(in Input) float64 {
	if !in.HasContribution() {
		return in.Principal
	}
	return investedOver(in, simulatedMonths(in))
}

// simulatedMonths is ceil(years*12), kept as a float so a huge horizon can be
// detected before it is converted to a loop bound.
func simulatedMonths(in Input) float64 {
	return math.Ceil(in.Years * constants.MonthsPerYear)
}

func investedOver(in Input, months float64) float64 {
	return in.Principal + in.MonthlyContribution*math.Max(0, months-1)
}
