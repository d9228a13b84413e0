package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Valid pretty format", "pretty", false},
		{"Valid csv format", "csv", false},
		{"JSON is not an output format", "json", true},
		{"Empty format", "", true},
		{"Case sensitive", "CSV", true},
		{"Surrounding spaces", " pretty ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectErr %v", tt.format, err, tt.expectErr)
			}
		})
	}
}

func TestValidateOutputFormatErrorNamesFormat(t *testing.T) {
	err := ValidateOutputFormat("xml")
	if err == nil {
		t.Fatal("expected error for xml")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error %q should mention the rejected format", err)
	}
}
