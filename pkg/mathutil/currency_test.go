package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Large negative", -12345.678, -12345.68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		places   int32
		expected float64
	}{
		{"Decimal midpoint rounds away from zero", 1.005, 2, 1.01},
		{"Negative midpoint", -1.005, 2, -1.01},
		{"Monthly rate precision", 0.643403011, 4, 0.6434},
		{"Annual rate precision", 7.999999, 2, 8.0},
		{"Zero places", 2.5, 0, 3},
		{"Already rounded", 22.5, 1, 22.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundTo(tt.input, tt.places)
			if result != tt.expected {
				t.Errorf("RoundTo(%v, %d) = %v, expected %v", tt.input, tt.places, result, tt.expected)
			}
		})
	}
}

func TestRoundToNonFinite(t *testing.T) {
	if !math.IsNaN(RoundTo(math.NaN(), 2)) {
		t.Error("expected NaN to pass through RoundTo")
	}
	if !math.IsInf(RoundTo(math.Inf(1), 2), 1) {
		t.Error("expected +Inf to pass through RoundTo")
	}
}

func TestIsFiniteAndFiniteOr(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		finite   bool
		fallback float64
		expected float64
	}{
		{"Regular value", 3.5, true, 0, 3.5},
		{"Zero", 0, true, 1, 0},
		{"NaN", math.NaN(), false, 0, 0},
		{"Positive infinity", math.Inf(1), false, -1, -1},
		{"Negative infinity", math.Inf(-1), false, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.input); got != tt.finite {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, got, tt.finite)
			}
			if got := FiniteOr(tt.input, tt.fallback); got != tt.expected {
				t.Errorf("FiniteOr(%v, %v) = %v, expected %v", tt.input, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Zero tolerance exact match", 1.0, 1.0, 0.0, true},
		{"Zero tolerance no match", 1.0, 1.001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestPercentHelpers(t *testing.T) {
	if got := PercentToDecimal(8); got != 0.08 {
		t.Errorf("PercentToDecimal(8) = %v, expected 0.08", got)
	}
	if got := ApplyPercentage(8000, 15); math.Abs(got-1200) > 1e-9 {
		t.Errorf("ApplyPercentage(8000, 15) = %v, expected 1200", got)
	}
}
