// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/pieces-planner/internal/planner"
)

// FindRow finds a category row by name in the plan rows.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []planner.CategoryResult, name string) *planner.CategoryResult {
	for i := range rows {
		if rows[i].Name == name {
			return &rows[i]
		}
	}
	return nil
}

// ApproxEqual reports whether a and b differ by no more than tolerance.
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
