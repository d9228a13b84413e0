package validation

import (
	"fmt"
	"slices"

	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/interest"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
	"github.com/iwvelando/compound-interest/pkg/timespan"
	"go.uber.org/multierr"
)

// ValidateFrequency checks that a compounding frequency is one of the
// supported values. Zero is accepted and means the default frequency.
func ValidateFrequency(frequency int) error {
	if frequency == 0 || slices.Contains(constants.CompoundingFrequencies, frequency) {
		return nil
	}
	return fmt.Errorf("compounding frequency must be one of %v, got %d", constants.CompoundingFrequencies, frequency)
}

// ValidateUnit checks that a time unit is known.
func ValidateUnit(unit timespan.Unit) error {
	if !unit.Valid() {
		return fmt.Errorf("time unit must be days, months or years, got %q", unit)
	}
	return nil
}

// ValidateInput reports every problem with an engine input at once. The
// engine itself accepts anything; these are the rules the calculator's
// callers are held to.
func ValidateInput(in interest.Input) error {
	var err error
	err = multierr.Append(err, nonNegative("principal", in.Principal))
	err = multierr.Append(err, nonNegative("monthly contribution", in.MonthlyContribution))
	err = multierr.Append(err, nonNegative("time", in.Years))
	if mathutil.IsFinite(in.Years) && in.Years > constants.MaxHorizonYears {
		err = multierr.Append(err, fmt.Errorf("time must not exceed %d years, got %v", constants.MaxHorizonYears, in.Years))
	}
	if !mathutil.IsFinite(in.AnnualRate) {
		err = multierr.Append(err, fmt.Errorf("annual rate must be a finite number"))
	} else if in.AnnualRate <= -constants.PercentageMultiplier {
		err = multierr.Append(err, fmt.Errorf("annual rate must be greater than -100%%, got %v", in.AnnualRate))
	}
	err = multierr.Append(err, ValidateFrequency(in.Frequency))
	return err
}

// Errors splits an error returned by ValidateInput into its parts.
func Errors(err error) []error {
	return multierr.Errors(err)
}

func nonNegative(field string, value float64) error {
	if !mathutil.IsFinite(value) {
		return fmt.Errorf("%s must be a finite number", field)
	}
	if value < 0 {
		return fmt.Errorf("%s must not be negative, got %v", field, value)
	}
	return nil
}
