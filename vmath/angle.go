package vmath

import "math"

const TwoPi = 2 * math.Pi

// NormalizeAngle wraps an angle into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative value can round back up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleDiff returns the signed smallest difference a - b, range (-π, π]
func AngleDiff(a, b float64) float64 {
	d := NormalizeAngle(a - b)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

// AngleEqual reports whether a and b denote the same direction within tol radians
func AngleEqual(a, b, tol float64) bool {
	return math.Abs(AngleDiff(a, b)) <= tol
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
