// Package quatutil implements the exponential and logarithmic maps between unit
// quaternions and rotation vectors, plus the angular-velocity helpers built on
// them.
//
// Quaternions are gonum quat.Number values with Imag, Jmag, Kmag holding the
// vector part (x, y, z) and Real holding w. All functions are pure and take
// their arguments by value, so no call allocates.
//
// Inputs are assumed to be unit quaternions and finite vectors; nothing is
// validated here.
//
// Reference: https://theorangeduck.com/page/exponential-map-angle-axis-angular-velocity
package quatutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-second-order/internal/mathutil"
)

// Identity returns the identity rotation.
func Identity() quat.Number {
	return quat.Number{Real: 1}
}

// FromParts builds a quaternion from a vector part and a scalar part.
func FromParts(v r3.Vec, w float64) quat.Number {
	return quat.Number{Real: w, Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Vector returns the vector part (x, y, z) of q.
func Vector(q quat.Number) r3.Vec {
	return r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Normalize scales q to unit length. The zero quaternion is returned unchanged.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return q
	}
	return quat.Scale(1/n, q)
}

// Diff returns the rotation taking b to a: a * conj(b).
func Diff(a, b quat.Number) quat.Number {
	return quat.Mul(a, quat.Conj(b))
}

// Abs returns q or -q, whichever lies on the hemisphere closest to the
// identity (w >= 0). Both describe the same rotation, but differencing must
// use the short-path representative.
func Abs(q quat.Number) quat.Number {
	if q.Real < 0 {
		return quat.Scale(-1, q)
	}
	return q
}

// Exp maps a rotation vector in half-angle-axis form to a unit quaternion.
// Vectors shorter than the zero-rotation threshold fall back to
// normalize(v, 1) instead of dividing by a vanishing half angle.
func Exp(v r3.Vec) quat.Number {
	halfAngle := r3.Norm(v)

	if halfAngle < zeroRotationThreshold {
		return Normalize(FromParts(v, 1))
	}

	c := math.Cos(halfAngle)
	s := math.Sin(halfAngle) / halfAngle
	return FromParts(r3.Scale(s, v), c)
}

// Log is the inverse of Exp: it maps a unit quaternion to its half-angle-axis
// rotation vector. A vector part shorter than the zero-rotation threshold is
// returned as is.
func Log(q quat.Number) r3.Vec {
	v := Vector(q)
	length := r3.Norm(v)

	if length < zeroRotationThreshold {
		return v
	}

	halfAngle := math.Acos(mathutil.Clamp(q.Real, -1, 1))
	return r3.Scale(halfAngle/length, v)
}

// ExpApprox is a first-order approximation of Exp: it appends w = 1 and
// renormalizes. Only valid for very small rotations, such as a single
// integration step at a high frame rate. It is not a general replacement
// for Exp.
func ExpApprox(v r3.Vec) quat.Number {
	return Normalize(FromParts(v, 1))
}

// LogApprox is a first-order approximation of Log: it returns the vector part
// and discards w. Only valid for very small rotations.
func LogApprox(q quat.Number) r3.Vec {
	return Vector(q)
}

// FromScaledAngleAxis converts a scaled-angle-axis vector (axis times full
// rotation angle) to a unit quaternion.
func FromScaledAngleAxis(v r3.Vec) quat.Number {
	return Exp(r3.Scale(half, v))
}

// ToScaledAngleAxis converts a unit quaternion to its scaled-angle-axis vector.
func ToScaledAngleAxis(q quat.Number) r3.Vec {
	return r3.Scale(2, Log(q))
}

// FromScaledAngleAxisApprox is FromScaledAngleAxis using ExpApprox.
func FromScaledAngleAxisApprox(v r3.Vec) quat.Number {
	return ExpApprox(r3.Scale(half, v))
}

// ToScaledAngleAxisApprox is ToScaledAngleAxis using LogApprox.
func ToScaledAngleAxisApprox(q quat.Number) r3.Vec {
	return r3.Scale(2, LogApprox(q))
}

// ToAngularVelocity returns the angular velocity that performs rotation q in
// dt seconds.
func ToAngularVelocity(q quat.Number, dt float64) r3.Vec {
	return r3.Scale(1/dt, ToScaledAngleAxis(q))
}

// FromAngularVelocity returns the rotation produced by angular velocity v
// over dt seconds.
func FromAngularVelocity(v r3.Vec, dt float64) quat.Number {
	return FromScaledAngleAxis(r3.Scale(dt, v))
}

// ToAngularVelocityApprox is ToAngularVelocity using LogApprox.
func ToAngularVelocityApprox(q quat.Number, dt float64) r3.Vec {
	return r3.Scale(1/dt, ToScaledAngleAxisApprox(q))
}

// FromAngularVelocityApprox is FromAngularVelocity using ExpApprox.
func FromAngularVelocityApprox(v r3.Vec, dt float64) quat.Number {
	return FromScaledAngleAxisApprox(r3.Scale(dt, v))
}

// DifferentiateAngularVelocity estimates the angular velocity that rotates
// curr into next over dt: (next - curr) / dt on the rotation manifold.
func DifferentiateAngularVelocity(next, curr quat.Number, dt float64) r3.Vec {
	return ToAngularVelocity(Abs(Diff(next, curr)), dt)
}

// DifferentiateAngularVelocityApprox is DifferentiateAngularVelocity using
// LogApprox.
func DifferentiateAngularVelocityApprox(next, curr quat.Number, dt float64) r3.Vec {
	return ToAngularVelocityApprox(Abs(Diff(next, curr)), dt)
}

// IntegrateAngularVelocity advances curr by vel over dt. The delta rotation
// is applied on the left, in the parent frame: delta * curr.
func IntegrateAngularVelocity(vel r3.Vec, curr quat.Number, dt float64) quat.Number {
	return quat.Mul(FromAngularVelocity(vel, dt), curr)
}

// IntegrateAngularVelocityApprox is IntegrateAngularVelocity using ExpApprox.
func IntegrateAngularVelocityApprox(vel r3.Vec, curr quat.Number, dt float64) quat.Number {
	return quat.Mul(FromAngularVelocityApprox(vel, dt), curr)
}

// FromAxisAngle returns the rotation of angle radians about axis. The axis
// does not need to be unit length; a zero axis yields the identity.
func FromAxisAngle(axis r3.Vec, angle float64) quat.Number {
	n := r3.Norm(axis)
	if n == 0 {
		return Identity()
	}
	return FromScaledAngleAxis(r3.Scale(angle/n, axis))
}

// Rotate applies rotation q to vector v: q * v * conj(q).
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Mul(quat.Mul(q, FromParts(v, 0)), quat.Conj(q))
	return Vector(p)
}

// Angle returns the shortest rotation angle in radians between orientations
// a and b, in [0, π].
func Angle(a, b quat.Number) float64 {
	return r3.Norm(ToScaledAngleAxis(Abs(Diff(a, b))))
}
