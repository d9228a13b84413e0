// Package format renders amounts and rates for display in the pt-BR locale.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every rendered amount.
const CurrencySymbol = "R$"

// Currency returns a Brazilian real string with thousands separators and a
// decimal comma (e.g., "-R$ 1.234,56"). Cents are rounded half away from zero.
func Currency(amount float64) string {
	formatted, negative := formatPositiveCurrency(amount)
	if negative {
		return "-" + CurrencySymbol + " " + formatted
	}
	return CurrencySymbol + " " + formatted
}


// DecimalComma renders a number with a fixed number of decimals and a
// decimal comma, without grouping (e.g., "0,6434").
func DecimalComma(value float64, places int) string {
	return strings.Replace(strconv.FormatFloat(value, 'f', places, 64), ".", ",", 1)
}

func formatPositiveCurrency(amount float64) (string, bool) {
	rounded := decimal.NewFromFloat(amount).Round(2)
	negative := rounded.IsNegative()
	formatted := rounded.Abs().StringFixed(2)

	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte('.')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "," + decPart, negative
}
