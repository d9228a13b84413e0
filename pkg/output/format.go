// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/compound-interest/internal/calculator"
	"github.com/iwvelando/compound-interest/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(outcomes []calculator.Outcome) {
	WritePretty(os.Stdout, outcomes)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(outcomes []calculator.Outcome) {
	WriteCSV(os.Stdout, outcomes)
}

// CsvString returns the CSV rendering as a string.
func CsvString(outcomes []calculator.Outcome) string {
	var buf bytes.Buffer
	WriteCSV(&buf, outcomes)
	return buf.String()
}

// WritePretty writes the human-readable report to w.
func WritePretty(w io.Writer, outcomes []calculator.Outcome) {
	p := message.NewPrinter(language.BrazilianPortuguese)
	for i, o := range outcomes {
		res := o.Result
		fmt.Fprintf(w, "--- Resultado: %s ---\n", o.Name)
		fmt.Fprintf(w, "Valor inicial         | %s\n", format.Currency(o.Input.Principal))
		if o.Input.HasContribution() {
			fmt.Fprintf(w, "Aporte mensal         | %s\n", format.Currency(o.Input.MonthlyContribution))
		}
		fmt.Fprintf(w, "Taxa                  | %s\n", o.Rate.String())
		fmt.Fprintf(w, "Periodo               | %s\n", o.Span.String())
		_, _ = p.Fprintf(w, "Capitalizacao         | %d/ano\n", o.Input.CompoundingFrequency())

		if res.Defined {
			fmt.Fprintf(w, "Total investido       | %s\n", format.Currency(res.TotalInvested))
			fmt.Fprintf(w, "Valor bruto           | %s\n", format.Currency(res.Gross))
			fmt.Fprintf(w, "Rendimento bruto      | %s\n", format.Currency(res.GrossProfit))
			fmt.Fprintf(w, "IR (%s%%)              | %s\n", format.RateComma(res.TaxRate), format.Currency(res.Tax))
			fmt.Fprintf(w, "Valor liquido         | %s\n", format.Currency(res.Net))
			fmt.Fprintf(w, "Rendimento liquido    | %s\n", format.Currency(res.NetProfit))
		}
		_, _ = p.Fprintf(w, "Aliquota              | %s%% (%.0f dias)\n", format.RateComma(res.TaxRate), res.Days)
		fmt.Fprintf(w, "Taxa equivalente      | %s\n", equivalentRateText(res.EquivalentAnnualRate, res.EquivalentMonthlyRate))

		for _, note := range o.Notes {
			fmt.Fprintf(w, "Nota: %s\n", note)
		}
		if i < len(outcomes)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

// WriteCSV writes one row per calculation to w.
func WriteCSV(w io.Writer, outcomes []calculator.Outcome) {
	fmt.Fprintf(w, `"name","principal","monthly contribution","annual rate","monthly rate","years","frequency",`)
	fmt.Fprintf(w, `"total invested","gross","tax rate","tax","net","equivalent annual rate","equivalent monthly rate","notes"`)
	fmt.Fprintf(w, "\n")
	for _, o := range outcomes {
		res := o.Result
		fmt.Fprintf(w, `"%s","%.2f","%.2f","%.2f","%.4f","%g","%d",`,
			csvEscape(o.Name), o.Input.Principal, o.Input.MonthlyContribution,
			o.Rate.Annual, o.Rate.Monthly, res.Years, o.Input.CompoundingFrequency())
		fmt.Fprintf(w, `"%.2f","%.2f","%g","%.2f","%.2f","%s","%s","%s"`,
			res.TotalInvested, res.Gross, res.TaxRate, res.Tax, res.Net,
			optionalRate(res.EquivalentAnnualRate), optionalRate(res.EquivalentMonthlyRate),
			csvEscape(strings.Join(o.Notes, "; ")))
		fmt.Fprintf(w, "\n")
	}
}

func equivalentRateText(annual, monthly *float64) string {
	if annual == nil || monthly == nil {
		return "indisponivel"
	}
	return fmt.Sprintf("%s%% a.a. (%s%% a.m.)", format.RateComma(*annual), format.RateComma(*monthly))
}

func optionalRate(rate *float64) string {
	if rate == nil {
		return ""
	}
	return format.Rate(*rate)
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
