package silhouette

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clampIndex clamps i into [0, n-1] and reports whether it had to move.
func clampIndex(i, n int) (int, bool) {
	if i < 0 {
		return 0, true
	}
	if i >= n {
		return n - 1, true
	}
	return i, false
}

func boolValue(b bool) Real {
	if b {
		return 1
	}
	return 0
}
