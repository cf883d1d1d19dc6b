// Package testutil provides reusable test helper functions for the second-order
// system tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	QuatTolerance     = 1e-9
	UnitNormTolerance = 1e-5
	SettleTolerance   = 1e-3
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertFinite verifies that v is neither NaN nor Inf.
func AssertFinite(t *testing.T, v float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return assert.Fail(t, "value not finite", "got %v", v)
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertQuatInDelta verifies that every component of actual is within delta of expected.
func AssertQuatInDelta(t *testing.T, expected, actual quat.Number, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.InDelta(t, expected.Real, actual.Real, delta, "w differs")
	ok = assert.InDelta(t, expected.Imag, actual.Imag, delta, "x differs") && ok
	ok = assert.InDelta(t, expected.Jmag, actual.Jmag, delta, "y differs") && ok
	ok = assert.InDelta(t, expected.Kmag, actual.Kmag, delta, "z differs") && ok
	return ok
}

// AssertSameRotation verifies that a and b describe the same rotation,
// treating q and -q as equal.
func AssertSameRotation(t *testing.T, a, b quat.Number, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	return assert.InDelta(t, 1.0, math.Abs(dot), delta,
		"rotations differ: %v vs %v", a, b)
}

// AssertUnitQuat verifies that q has unit norm within tolerance.
func AssertUnitQuat(t *testing.T, q quat.Number, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, 1.0, quat.Abs(q), tolerance, "quaternion %v is not unit length", q)
}

// AssertVecInDelta verifies that every component of actual is within delta of expected.
func AssertVecInDelta(t *testing.T, expected, actual r3.Vec, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.InDelta(t, expected.X, actual.X, delta, "x differs")
	ok = assert.InDelta(t, expected.Y, actual.Y, delta, "y differs") && ok
	ok = assert.InDelta(t, expected.Z, actual.Z, delta, "z differs") && ok
	return ok
}
