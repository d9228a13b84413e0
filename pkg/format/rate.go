package format

import "strconv"

// Rate formats an interest rate percentage with precision that grows as the
// value shrinks: below 0.1 four decimals, below 1 three, below 10 two,
// otherwise one.
func Rate(value float64) string {
	return strconv.FormatFloat(value, 'f', ratePlaces(value), 64)
}

// RateComma is Rate with a decimal comma.
func RateComma(value float64) string {
	return DecimalComma(value, ratePlaces(value))
}

func ratePlaces(value float64) int {
	switch {
	case value < 0.1:
		return 4
	case value < 1:
		return 3
	case value < 10:
		return 2
	default:
		return 1
	}
}
