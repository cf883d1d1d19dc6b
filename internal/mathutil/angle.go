package mathutil

import "math"

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Repeat wraps t into [0, length). Negative t wraps from the top,
// so Repeat(-1, 4) is 3.
func Repeat(t, length float64) float64 {
	return Clamp(t-math.Floor(t/length)*length, 0, length)
}

// DeltaAngle returns the signed shortest angular difference from a to b in
// radians, wrapped into (-π, π].
//
// DeltaAngle(3.0, -3.0) is about +0.283, not -6.0: the short way around
// from 3.0 to -3.0 crosses the ±π seam.
func DeltaAngle(a, b float64) float64 {
	delta := Repeat(b-a, fullTurn)
	if delta > math.Pi {
		delta -= fullTurn
	}
	return delta
}

// WrapAngle maps an angle into (-π, π].
func WrapAngle(a float64) float64 {
	return DeltaAngle(0, a)
}
