package service

import "math"

// Trend returns the percentage change from previous to current. A zero or
// absent previous value yields 0 rather than a division blow-up; callers map
// SQL nulls to 0 before calling. The result is unrounded; presentation
// rounds if it wants to.
func Trend(current, previous float64) float64 {
	if previous == 0 || math.IsNaN(previous) {
		return 0
	}
	result := (current - previous) / previous * 100
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}
