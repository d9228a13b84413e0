package calculator

import (
	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/interest"
	"github.com/iwvelando/compound-interest/pkg/rates"
	"github.com/iwvelando/compound-interest/pkg/timespan"
	"github.com/iwvelando/compound-interest/pkg/validation"
)

const formName = "form"

// Form is the state of the calculator between two explicit calculations.
// Editing a field never recalculates; it only marks the shown result stale.
type Form struct {
	Principal           float64
	MonthlyContribution float64
	Rate                rates.RateInput
	Span                timespan.Span
	Frequency           int

	result     *interest.Result
	comparison *interest.Comparison
	dirty      bool
}

// NewForm returns a form with the calculator's starting values: 8% a year
// over 12 months, compounded yearly.
func NewForm() *Form {
	return &Form{
		Rate:      rates.NewAnnual(8),
		Span:      timespan.Span{Magnitude: 12, Unit: timespan.Months},
		Frequency: constants.DefaultCompoundingFrequency,
	}
}

// SetPrincipal updates the principal.
func (f *Form) SetPrincipal(v float64) {
	f.Principal = v
	f.touch()
}

// SetMonthlyContribution updates the monthly contribution.
func (f *Form) SetMonthlyContribution(v float64) {
	f.MonthlyContribution = v
	f.touch()
}

// SetAnnualRate updates the annual rate and derives the monthly one.
func (f *Form) SetAnnualRate(v float64) {
	f.Rate.SetAnnual(v)
	f.touch()
}

// SetMonthlyRate updates the monthly rate and derives the annual one.
func (f *Form) SetMonthlyRate(v float64) {
	f.Rate.SetMonthly(v)
	f.touch()
}

// SetAnnualRateString applies a typed annual rate; see rates.RateInput.
func (f *Form) SetAnnualRateString(s string) bool {
	ok := f.Rate.SetAnnualString(s)
	f.touch()
	return ok
}

// SetMonthlyRateString applies a typed monthly rate; see rates.RateInput.
func (f *Form) SetMonthlyRateString(s string) bool {
	ok := f.Rate.SetMonthlyString(s)
	f.touch()
	return ok
}

// SetTime updates the horizon magnitude.
func (f *Form) SetTime(magnitude float64) {
	f.Span.Magnitude = magnitude
	f.touch()
}

// SetTimeUnit updates the horizon unit.
func (f *Form) SetTimeUnit(unit timespan.Unit) {
	f.Span.Unit = unit
	f.touch()
}

// SetFrequency updates the compounding frequency.
func (f *Form) SetFrequency(n int) {
	f.Frequency = n
	f.touch()
}

// Input converts the form into engine input.
func (f *Form) Input() (interest.Input, error) {
	if err := validation.ValidateUnit(f.Span.Unit); err != nil {
		return interest.Input{}, err
	}
	years, err := f.Span.Years()
	if err != nil {
		return interest.Input{}, err
	}
	return interest.Input{
		Principal:           f.Principal,
		MonthlyContribution: f.MonthlyContribution,
		AnnualRate:          f.Rate.Annual,
		Years:               years,
		Frequency:           f.Frequency,
	}, nil
}

// Calculate recomputes the result from the current fields and clears the
// stale flag. Invalid fields leave the previous result in place.
func (f *Form) Calculate() (interest.Result, error) {
	in, err := f.Input()
	if err != nil {
		return interest.Result{}, err
	}
	if err := validation.ValidateInput(in); err != nil {
		return interest.Result{}, &InputError{Calculation: formName, Problems: validation.Errors(err)}
	}
	result := interest.Calculate(in)
	f.result = &result
	f.comparison = interest.Compare(in, result)
	f.dirty = false
	return result, nil
}

// Result returns the last calculated result, if any.
func (f *Form) Result() (interest.Result, bool) {
	if f.result == nil {
		return interest.Result{}, false
	}
	return *f.result, true
}

// Comparison returns the comparison of the last calculated result.
func (f *Form) Comparison() *interest.Comparison {
	return f.comparison
}

// Stale reports whether a field changed after the last calculation.
func (f *Form) Stale() bool {
	return f.dirty
}

func (f *Form) touch() {
	if f.result != nil {
		f.dirty = true
	}
}
