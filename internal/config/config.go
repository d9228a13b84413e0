// Package config defines the data structures related to configuration and
// includes functions for loading and converting the calculations it holds.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/interest"
	"github.com/iwvelando/compound-interest/pkg/mathutil"
	"github.com/iwvelando/compound-interest/pkg/rates"
	"github.com/iwvelando/compound-interest/pkg/timespan"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for compound-interest.
type Configuration struct {
	Calculations []Calculation `yaml:"calculations"`
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Calculation is one named set of calculator inputs.
type Calculation struct {
	Name                string  `yaml:"name"`
	Active              bool    `yaml:"active"`
	Principal           float64 `yaml:"principal"`
	MonthlyContribution float64 `yaml:"monthlyContribution,omitempty"`
	// AnnualRate drives the rate pair unless it is zero and MonthlyRate is set.
	AnnualRate  float64 `yaml:"annualRate,omitempty"`
	MonthlyRate float64 `yaml:"monthlyRate,omitempty"`
	Time        float64 `yaml:"time"`
	TimeUnit    string  `yaml:"timeUnit"`
	Frequency   int     `yaml:"frequency,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ActiveCalculations returns the calculations marked active, in file order.
func (conf *Configuration) ActiveCalculations() []Calculation {
	var active []Calculation
	for _, calc := range conf.Calculations {
		if calc.Active {
			active = append(active, calc)
		}
	}
	return active
}

// Rate returns the synced rate pair for the calculation.
func (calc Calculation) Rate() rates.RateInput {
	if calc.AnnualRate == 0 && calc.MonthlyRate != 0 {
		return rates.NewMonthly(calc.MonthlyRate)
	}
	return rates.NewAnnual(calc.AnnualRate)
}

// Span returns the calculation horizon.
func (calc Calculation) Span() (timespan.Span, error) {
	unit, err := timespan.ParseUnit(calc.TimeUnit)
	if err != nil {
		return timespan.Span{}, fmt.Errorf("calculation %s: %w", calc.Name, err)
	}
	return timespan.Span{Magnitude: calc.Time, Unit: unit}, nil
}

// ToInput converts the calculation into engine input.
func (calc Calculation) ToInput() (interest.Input, error) {
	span, err := calc.Span()
	if err != nil {
		return interest.Input{}, err
	}
	years, err := span.Years()
	if err != nil {
		return interest.Input{}, fmt.Errorf("calculation %s: %w", calc.Name, err)
	}

	return interest.Input{
		Principal:           calc.Principal,
		MonthlyContribution: calc.MonthlyContribution,
		AnnualRate:          calc.Rate().Annual,
		Years:               years,
		Frequency:           calc.Frequency,
	}, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Calculations) == 0 {
		warnings = append(warnings, "no calculations configured")
	} else if len(conf.ActiveCalculations()) == 0 {
		warnings = append(warnings, "no active calculations configured")
	}

	seen := make(map[string]bool)
	for i, calc := range conf.Calculations {
		if calc.Name == "" {
			warnings = append(warnings, fmt.Sprintf("calculation %d has no name", i))
		} else if seen[calc.Name] {
			warnings = append(warnings, fmt.Sprintf("calculation name '%s' is used more than once", calc.Name))
		}
		seen[calc.Name] = true

		if calc.AnnualRate != 0 && calc.MonthlyRate != 0 &&
			!mathutil.WithinTolerance(rates.AnnualToMonthly(calc.AnnualRate), calc.MonthlyRate, constants.MonthlyRateTolerance) {
			warnings = append(warnings, fmt.Sprintf("calculation '%s' sets annualRate and a different monthlyRate; annualRate is used", calc.Name))
		}
		if calc.Time == 0 {
			warnings = append(warnings, fmt.Sprintf("calculation '%s' has a zero horizon; the equivalent rate will not be computable", calc.Name))
		}
	}

	return warnings
}
