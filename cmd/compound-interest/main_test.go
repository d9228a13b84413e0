package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/compound-interest/internal/config"
	"github.com/iwvelando/compound-interest/pkg/constants"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		logging  config.LoggingConfig
		override string
		wantErr  bool
	}{
		{"Defaults", config.LoggingConfig{}, "", false},
		{"Console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override wins", config.LoggingConfig{Level: "bogus"}, "warn", false},
		{"Invalid level", config.LoggingConfig{Level: "verbose"}, "", true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if (err != nil) != tt.wantErr {
				t.Fatalf("initializeLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calc.log")
	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected log file to exist: %v", err)
	}
}

func TestResolveOutputFormat(t *testing.T) {
	tests := []struct {
		configured string
		override   string
		want       string
		wantErr    bool
	}{
		{"", "", constants.OutputFormatPretty, false},
		{constants.OutputFormatCSV, "", constants.OutputFormatCSV, false},
		{constants.OutputFormatCSV, constants.OutputFormatPretty, constants.OutputFormatPretty, false},
		{"xml", "", "", true},
	}

	for _, tt := range tests {
		got, err := resolveOutputFormat(tt.configured, tt.override)
		if (err != nil) != tt.wantErr {
			t.Fatalf("resolveOutputFormat(%q, %q) error = %v", tt.configured, tt.override, err)
		}
		if got != tt.want {
			t.Errorf("resolveOutputFormat(%q, %q) = %q, expected %q", tt.configured, tt.override, got, tt.want)
		}
	}
}
