// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/pieces-planner/pkg/constants"
)

// Finite returns val, or 0 when val is NaN or infinite.
func Finite(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// AtLeast floors val at min. There is no ceiling.
func AtLeast(val, min float64) float64 {
	return Max(val, min)
}

// Clamp bounds val to the closed interval [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return Min(Max(val, lo), hi)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelativeTolerance checks if two values agree to within a fraction of
// the larger magnitude. Values that are both zero always agree.
func WithinRelativeTolerance(val1, val2, tolerance float64) bool {
	scale := Max(math.Abs(val1), math.Abs(val2))
	if scale == 0 {
		return true
	}
	return math.Abs(val1-val2) <= tolerance*scale
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Fraction converts a percentage into a fraction, e.g. 25 -> 0.25.
func Fraction(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * Fraction(percentage)
}

// Sum adds all values in order.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
