package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/iwvelando/compound-interest/internal/calculator"
	"github.com/iwvelando/compound-interest/internal/config"
	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/interest"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
	"github.com/iwvelando/compound-interest/pkg/output"
	"github.com/iwvelando/compound-interest/pkg/testutil"
	"go.uber.org/zap"
)

func loadOutcomes(t *testing.T) (*config.Configuration, []calculator.Outcome) {
	t.Helper()
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	results, err := calculator.Run(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return conf, results
}

// TestMainIntegrationBaseline runs the sample calculations file the way
// main() does and checks the known results.
func TestMainIntegrationBaseline(t *testing.T) {
	conf, results := loadOutcomes(t)

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	expectedNames := []string{"cdb um ano", "cdb 180 dias", "aportes mensais", "taxa mensal"}
	if len(results) != len(expectedNames) {
		t.Fatalf("expected %d active calculations, got %d", len(expectedNames), len(results))
	}
	for i, name := range expectedNames {
		if results[i].Name != name {
			t.Errorf("expected calculation %s at %d, got %s", name, i, results[i].Name)
		}
	}

	baseline := []struct {
		name     string
		invested float64
		gross    float64
		net      float64
		taxRate  float64
		mode     interest.Mode
	}{
		{"cdb um ano", 100000, 108000, 106600, 17.5, interest.ClosedForm},
		{"cdb 180 dias", 100000, 103868.28, 102997.92, 22.5, interest.ClosedForm},
		{"aportes mensais", 111000, 119779.17, 118242.81, 17.5, interest.MonthlySimulation},
		{"taxa mensal", 1000, 1459.95, 1390.96, 15, interest.ClosedForm},
	}

	for _, check := range baseline {
		t.Run(check.name, func(t *testing.T) {
			outcome := testutil.FindOutcome(results, check.name)
			if outcome == nil {
				t.Fatalf("missing calculation %s", check.name)
			}
			res := outcome.Result
			if res.Mode != check.mode {
				t.Errorf("expected mode %s, got %s", check.mode, res.Mode)
			}
			if !mathutil.WithinTolerance(res.TotalInvested, check.invested, 0.01) {
				t.Errorf("expected invested %.2f, got %.2f", check.invested, res.TotalInvested)
			}
			if !mathutil.WithinTolerance(res.Gross, check.gross, 0.01) {
				t.Errorf("expected gross %.2f, got %.2f", check.gross, res.Gross)
			}
			if !mathutil.WithinTolerance(res.Net, check.net, 0.01) {
				t.Errorf("expected net %.2f, got %.2f", check.net, res.Net)
			}
			if res.TaxRate != check.taxRate {
				t.Errorf("expected tax rate %v, got %v", check.taxRate, res.TaxRate)
			}
			if outcome.Comparison == nil {
				t.Error("expected comparison")
			}
		})
	}

	if testutil.FindOutcome(results, "poupanca desativada") != nil {
		t.Error("inactive calculation should not be computed")
	}
}

func TestMonthlyRateDrivesCalculation(t *testing.T) {
	_, results := loadOutcomes(t)
	outcome := testutil.FindOutcome(results, "taxa mensal")
	if outcome == nil {
		t.Fatal("missing calculation")
	}
	if outcome.Rate.Annual != 12.68 || outcome.Rate.Monthly != 1 {
		t.Errorf("unexpected rate pair %+v", outcome.Rate)
	}
	if outcome.Input.AnnualRate != 12.68 {
		t.Errorf("expected engine to receive the derived annual rate, got %v", outcome.Input.AnnualRate)
	}
}

func TestCSVOutputFormat(t *testing.T) {
	_, results := loadOutcomes(t)

	csv := output.CsvString(results)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != len(results)+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(results), len(lines))
	}
	for i, outcome := range results {
		if !strings.HasPrefix(lines[i+1], `"`+outcome.Name+`"`) {
			t.Errorf("row %d should start with %s, got %s", i+1, outcome.Name, lines[i+1])
		}
	}
}

func TestPrettyOutputFormat(t *testing.T) {
	_, results := loadOutcomes(t)

	var buf bytes.Buffer
	output.WritePretty(&buf, results)
	for _, outcome := range results {
		if !strings.Contains(buf.String(), "--- Resultado: "+outcome.Name+" ---") {
			t.Errorf("pretty output missing section for %s", outcome.Name)
		}
	}
	if !strings.Contains(buf.String(), "R$ 106.600,00") {
		t.Error("pretty output missing pt-BR formatted net amount")
	}
}

func TestDataConsistency(t *testing.T) {
	_, first := loadOutcomes(t)
	_, second := loadOutcomes(t)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs over the same file should produce identical outcomes")
	}

	for _, outcome := range first {
		res := outcome.Result
		if !mathutil.WithinTolerance(res.Gross-res.TotalInvested, res.GrossProfit, 1e-6) {
			t.Errorf("%s: gross profit does not reconcile", outcome.Name)
		}
		if !mathutil.WithinTolerance(res.GrossProfit-res.Tax, res.NetProfit, 1e-6) {
			t.Errorf("%s: net profit does not reconcile", outcome.Name)
		}
		if !mathutil.WithinTolerance(res.TotalInvested+res.NetProfit, res.Net, 1e-6) {
			t.Errorf("%s: net amount does not reconcile", outcome.Name)
		}
	}
}

func TestConfigurationVariations(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		count   int
	}{
		{
			name:  "Default unit is months",
			yaml:  "calculations:\n  - name: a\n    active: true\n    principal: 100\n    annualRate: 10\n    time: 6\n",
			count: 1,
		},
		{
			name:    "Unknown unit",
			yaml:    "calculations:\n  - name: a\n    active: true\n    principal: 100\n    annualRate: 10\n    time: 6\n    timeUnit: weeks\n",
			wantErr: true,
		},
		{
			name:    "Unsupported frequency",
			yaml:    "calculations:\n  - name: a\n    active: true\n    principal: 100\n    annualRate: 10\n    time: 6\n    frequency: 3\n",
			wantErr: true,
		},
		{
			name:  "No active calculations",
			yaml:  "calculations:\n  - name: a\n    active: false\n    principal: 100\n",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := config.LoadConfigurationFromReader(strings.NewReader(tt.yaml))
			if err != nil {
				t.Fatalf("LoadConfigurationFromReader() error = %v", err)
			}
			results, err := calculator.Run(nil, *conf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(results) != tt.count {
				t.Errorf("expected %d results, got %d", tt.count, len(results))
			}
		})
	}
}

func TestExampleConfiguration(t *testing.T) {
	if _, err := os.Stat(filepath.Join("..", "..", constants.ExampleConfigFile)); err != nil {
		t.Skip("example configuration not present")
	}
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if _, err := calculator.Run(nil, *conf); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
