package round

import "math"

// All score and money formulas round through this package so repeated reads
// produce bit-identical values.

func Clamp(value, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, value))
}

// To2 rounds to 2 decimal places (scores, currency amounts).
func To2(value float64) float64 {
	return math.Round(value*100) / 100
}

// To4 rounds to 4 decimal places (per-impression charges).
func To4(value float64) float64 {
	return math.Round(value*10000) / 10000
}
