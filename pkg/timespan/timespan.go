// Package timespan normalizes an investment horizon given in days, months or
// years into fractional years.
package timespan

import (
	"fmt"
	"strings"

	"github.com/iwvelando/compound-interest/pkg/constants"
)

// Unit is the unit a horizon magnitude is expressed in.
type Unit string

const (
	Days   Unit = "days"
	Months Unit = "months"
	Years  Unit = "years"
)

// Span is a horizon magnitude with its unit.
type Span struct {
	Magnitude float64 `yaml:"time" json:"time"`
	Unit      Unit    `yaml:"timeUnit" json:"timeUnit"`
}

// ToYears converts a magnitude in the given unit into years. Nothing is
// rounded.
func ToYears(magnitude float64, unit Unit) (float64, error) {
	switch unit {
	case Days:
		return magnitude / constants.DaysPerYear, nil
	case Months:
		return magnitude / constants.MonthsPerYear, nil
	case Years:
		return magnitude, nil
	default:
		return 0, fmt.Errorf("unknown time unit %q", unit)
	}
}

// ToDays converts years into days on a 365-day year.
func ToDays(years float64) float64 {
	return years * constants.DaysPerYear
}

// Years converts the span into years.
func (s Span) Years() (float64, error) {
	return ToYears(s.Magnitude, s.Unit)
}

// ParseUnit accepts the English unit names and their Portuguese labels,
// case-insensitively. An empty string is months, the calculator's default.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return Months, nil
	case "day", "days", "dia", "dias", "d":
		return Days, nil
	case "month", "months", "mes", "mês", "meses", "m":
		return Months, nil
	case "year", "years", "ano", "anos", "y", "a":
		return Years, nil
	default:
		return "", fmt.Errorf("unknown time unit %q", value)
	}
}

// Label returns the pt-BR plural label of the unit.
func (u Unit) Label() string {
	switch u {
	case Days:
		return "dias"
	case Months:
		return "meses"
	case Years:
		return "anos"
	default:
		return string(u)
	}
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u == Days || u == Months || u == Years
}

// String renders the span with its pt-BR label, e.g. "12 meses".
func (s Span) String() string {
	return fmt.Sprintf("%g %s", s.Magnitude, s.Unit.Label())
}
