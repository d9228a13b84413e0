// Package calculator runs the configured calculations through the interest
// engine and holds the interactive form state of a single calculation.
package calculator

import (
	"fmt"
	"strings"

	"github.com/iwvelando/compound-interest/internal/config"
	"github.com/iwvelando/compound-interest/pkg/interest"
	"github.com/iwvelando/compound-interest/pkg/rates"
	"github.com/iwvelando/compound-interest/pkg/timespan"
	"github.com/iwvelando/compound-interest/pkg/validation"
	"go.uber.org/zap"
)

// Outcome holds everything computed for one calculation.
type Outcome struct {
	Name       string
	Input      interest.Input
	Rate       rates.RateInput
	Span       timespan.Span
	Result     interest.Result
	Comparison *interest.Comparison
	Notes      []string
}

// Run computes every active calculation in the configuration.
func Run(logger *zap.Logger, conf config.Configuration) ([]Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var outcomes []Outcome
	for _, calc := range conf.Calculations {
		if !calc.Active {
			logger.Debug(fmt.Sprintf("skipping calculation %s because it is inactive", calc.Name),
				zap.String("op", "calculator.Run"),
			)
			continue
		}

		outcome, err := Evaluate(calc)
		if err != nil {
			return outcomes, err
		}

		logger.Debug("calculation computed",
			zap.String("op", "calculator.Run"),
			zap.String("calculation", calc.Name),
			zap.String("mode", string(outcome.Result.Mode)),
			zap.Float64("taxRate", outcome.Result.TaxRate),
			zap.Float64("net", outcome.Result.Net),
		)
		for _, note := range outcome.Notes {
			logger.Warn(note,
				zap.String("op", "calculator.Run"),
				zap.String("calculation", calc.Name),
			)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// InputError lists every validation problem of one calculation.
type InputError struct {
	Calculation string
	Problems    []error
}

func (e *InputError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, problem := range e.Problems {
		msgs = append(msgs, problem.Error())
	}
	return fmt.Sprintf("calculation %s: %s", e.Calculation, strings.Join(msgs, "; "))
}

// Evaluate validates and computes a single calculation.
func Evaluate(calc config.Calculation) (Outcome, error) {
	span, err := calc.Span()
	if err != nil {
		return Outcome{}, err
	}
	in, err := calc.ToInput()
	if err != nil {
		return Outcome{}, err
	}
	if err := validation.ValidateInput(in); err != nil {
		return Outcome{}, &InputError{Calculation: calc.Name, Problems: validation.Errors(err)}
	}

	result := interest.Calculate(in)
	return Outcome{
		Name:       calc.Name,
		Input:      in,
		Rate:       calc.Rate(),
		Span:       span,
		Result:     result,
		Comparison: interest.Compare(in, result),
		Notes:      Notes(result),
	}, nil
}

// Notes describes the parts of a result that could not be computed.
func Notes(result interest.Result) []string {
	var notes []string
	if !result.Defined {
		notes = append(notes, "final amounts are not computable for these inputs")
	}
	if result.Defined && result.EquivalentAnnualRate == nil {
		notes = append(notes, "equivalent tax-free rate is not computable for a zero horizon or zero investment")
	}
	if result.Mode == interest.MonthlySimulation && result.EquivalentAnnualRate != nil {
		notes = append(notes, "equivalent tax-free rate approximates monthly contributions as a single deposit")
	}
	return notes
}
