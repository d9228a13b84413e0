package rates

import (
	"fmt"

	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/format"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
)

// Driver identifies which side of a RateInput was last edited.
type Driver int

const (
	// DrivenByAnnual means Monthly was derived from Annual.
	DrivenByAnnual Driver = iota
	// DrivenByMonthly means Annual was derived from Monthly.
	DrivenByMonthly
)

func (d Driver) String() string {
	if d == DrivenByMonthly {
		return "monthly"
	}
	return "annual"
}

// RateInput is an annual/monthly rate pair that is always consistent.
type RateInput struct {
	Annual  float64
	Monthly float64
	Driver  Driver
}

// NewAnnual returns a pair driven by an annual rate.
func NewAnnual(annualPct float64) RateInput {
	var r RateInput
	r.SetAnnual(annualPct)
	return r
}

// NewMonthly returns a pair driven by a monthly rate.
func NewMonthly(monthlyPct float64) RateInput {
	var r RateInput
	r.SetMonthly(monthlyPct)
	return r
}

// SetAnnual stores an annual rate and derives the monthly one.
func (r *RateInput) SetAnnual(annualPct float64) {
	r.Annual = annualPct
	r.Monthly = AnnualToMonthly(annualPct)
	r.Driver = DrivenByAnnual
}

// SetMonthly stores a monthly rate (kept to four decimals) and derives the
// annual one.
func (r *RateInput) SetMonthly(monthlyPct float64) {
	monthly := mathutil.RoundTo(mathutil.FiniteOr(monthlyPct, 0), constants.MonthlyRatePlaces)
	r.Monthly = monthly
	r.Annual = MonthlyToAnnual(monthly)
	r.Driver = DrivenByMonthly
}

// SetAnnualString parses and applies an annual rate typed by a user. An
// unparseable value resets the pair to zero and is reported as false.
func (r *RateInput) SetAnnualString(value string) bool {
	parsed, err := ParseStrict(value)
	if err != nil {
		r.reset(DrivenByAnnual)
		return false
	}
	r.SetAnnual(parsed)
	return true
}

// SetMonthlyString parses and applies a monthly rate typed by a user. An
// unparseable value resets the pair to zero and is reported as false.
func (r *RateInput) SetMonthlyString(value string) bool {
	parsed, err := ParseStrict(value)
	if err != nil {
		r.reset(DrivenByMonthly)
		return false
	}
	r.SetMonthly(parsed)
	return true
}

// String renders the pair the way the calculator shows it, e.g.
// "8,00% a.a. / 0,6434% a.m.".
func (r RateInput) String() string {
	return fmt.Sprintf("%s%% a.a. / %s%% a.m.",
		format.DecimalComma(r.Annual, constants.AnnualRatePlaces),
		format.DecimalComma(r.Monthly, constants.MonthlyRatePlaces))
}

func (r *RateInput) reset(driver Driver) {
	r.Annual = 0
	r.Monthly = 0
	r.Driver = driver
}
