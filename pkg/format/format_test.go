package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "R$ 0,00"},
		{"Small amount", 9.5, "R$ 9,50"},
		{"Thousands", 1234.56, "R$ 1.234,56"},
		{"Millions", 1234567.891, "R$ 1.234.567,89"},
		{"Scenario gross", 108000, "R$ 108.000,00"},
		{"Half cent rounds up", 0.125, "R$ 0,13"},
		{"Negative", -1234.56, "-R$ 1.234,56"},
		{"Negative rounding to zero", -0.001, "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestDecimalComma(t *testing.T) {
	if got := DecimalComma(0.6434, 4); got != "0,6434" {
		t.Errorf("DecimalComma(0.6434, 4) = %q", got)
	}
	if got := DecimalComma(8, 2); got != "8,00" {
		t.Errorf("DecimalComma(8, 2) = %q", got)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Below 0.1 uses four decimals", 0.05, "0.0500"},
		{"Below 1 uses three decimals", 0.5667, "0.567"},
		{"Below 10 uses two decimals", 6.8, "6.80"},
		{"Ten and above uses one decimal", 12.34, "12.3"},
		{"Boundary 0.1", 0.1, "0.100"},
		{"Boundary 1", 1, "1.00"},
		{"Boundary 10", 10, "10.0"},
		{"Negative uses four decimals", -2.5, "-2.5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.value); got != tt.expected {
				t.Errorf("Rate(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestRateComma(t *testing.T) {
	if got := RateComma(6.8); got != "6,80" {
		t.Errorf("RateComma(6.8) = %q, expected 6,80", got)
	}
}
