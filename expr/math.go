package expr

import "math"

// mathPow wraps math.Pow; exponentiation uses IEEE double pow per
// spec.md §4.1, with no special-casing beyond what math.Pow already
// does (e.g. 0^0 == 1).
func mathPow(base, exp float64) float64 {
	return math.Pow(base, exp)
}
