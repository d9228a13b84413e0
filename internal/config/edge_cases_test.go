package config

import (
	"strings"
	"testing"
)

func TestHorizonEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		time      float64
		unit      string
		wantYears float64
		wantErr   bool
	}{
		{"Days", 180, "days", 180.0 / 365, false},
		{"Portuguese days", 730, "dias", 2, false},
		{"Months default", 6, "", 0.5, false},
		{"Portuguese years", 3, "anos", 3, false},
		{"Fractional years", 1.5, "years", 1.5, false},
		{"Zero horizon", 0, "years", 0, false},
		{"Unknown unit", 1, "quinzenas", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := Calculation{Name: tt.name, Principal: 1000, AnnualRate: 10, Time: tt.time, TimeUnit: tt.unit}
			in, err := calc.ToInput()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && in.Years != tt.wantYears {
				t.Errorf("expected %v years, got %v", tt.wantYears, in.Years)
			}
		})
	}
}

func TestInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Malformed YAML", "calculations:\n  - name: [\n"},
		{"Principal is not a number", "calculations:\n  - name: a\n    principal: muito\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfigurationFromReader(strings.NewReader(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMonthlyRateOnlyConfiguration(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(
		"calculations:\n  - name: mensal\n    active: true\n    principal: 1000\n    monthlyRate: 1\n    time: 12\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	in, err := conf.Calculations[0].ToInput()
	if err != nil {
		t.Fatalf("ToInput() error = %v", err)
	}
	if in.AnnualRate != 12.68 {
		t.Errorf("expected derived annual rate 12.68, got %v", in.AnnualRate)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestMatchingRatePairIsNotWarned(t *testing.T) {
	tests := []struct {
		name        string
		monthly     float64
		wantWarning bool
	}{
		{"Derived monthly rate", 0.6434, false},
		{"Monthly rate one place off", 0.6435, false},
		{"Different monthly rate", 0.7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Calculations: []Calculation{
				{Name: "par", Active: true, Principal: 1000, AnnualRate: 8, MonthlyRate: tt.monthly, Time: 12},
			}}
			warned := false
			for _, warning := range conf.ValidateConfiguration() {
				if strings.Contains(warning, "annualRate is used") {
					warned = true
				}
			}
			if warned != tt.wantWarning {
				t.Errorf("warning = %v, expected %v", warned, tt.wantWarning)
			}
		})
	}
}
