// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/compound-interest/internal/calculator"
)

// FindOutcome finds a calculation outcome by name in the results slice.
// Returns a pointer to the outcome if found, nil otherwise.
func FindOutcome(results []calculator.Outcome, name string) *calculator.Outcome {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
