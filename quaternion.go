package secondorder

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-second-order/internal/dynamics"
	"github.com/tphakala/go-second-order/quatutil"
)

// Quat is a quaternion. Rotations are unit quaternions with the vector part
// (x, y, z) in Imag, Jmag, Kmag and the scalar part w in Real.
type Quat = quat.Number

// Vec3 is a 3-vector, used for angular velocities.
type Vec3 = r3.Vec

// expMaps selects the exponential-map implementation used by an update.
// Keeping both variants behind one table means the exact and approximate
// updates share every other step.
type expMaps struct {
	differentiate     func(next, curr Quat, dt float64) Vec3
	integrate         func(vel Vec3, curr Quat, dt float64) Quat
	toScaledAngleAxis func(q Quat) Vec3
}

var (
	exactMaps = expMaps{
		differentiate:     quatutil.DifferentiateAngularVelocity,
		integrate:         quatutil.IntegrateAngularVelocity,
		toScaledAngleAxis: quatutil.ToScaledAngleAxis,
	}
	approxMaps = expMaps{
		differentiate:     quatutil.DifferentiateAngularVelocityApprox,
		integrate:         quatutil.IntegrateAngularVelocityApprox,
		toScaledAngleAxis: quatutil.ToScaledAngleAxisApprox,
	}
)

// Quaternion smooths a target orientation. Its velocity state is an angular
// velocity in rad/s, integrated on the rotation manifold with the
// exponential map.
//
// Targets must be unit quaternions; this is not checked. q and -q are
// treated as the same target.
//
// A Quaternion is not safe for concurrent use.
type Quaternion struct {
	k dynamics.Coefficients

	q  Quat // current orientation
	v  Vec3 // current angular velocity
	q0 Quat // previous target

	approxThreshold float64
}

// NewQuaternion creates an orientation system at rest at q0.
func NewQuaternion(p Params, q0 Quat) (*Quaternion, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Quaternion{
		k:  dynamics.NewCoefficients(p.Frequency, p.Damping, p.Response),
		q:  q0,
		q0: q0,
	}, nil
}

// Update advances the system by dt seconds toward orientation next using the
// exact exponential map, and returns the new orientation.
func (s *Quaternion) Update(dt float64, next Quat) Quat {
	return s.update(dt, next, &exactMaps)
}

// UpdateApprox is like Update but uses first-order approximations of the
// exponential and logarithmic maps. It avoids all trigonometry and is
// accurate only while each step's rotations are small: high frame rates and
// targets that do not jump.
func (s *Quaternion) UpdateApprox(dt float64, next Quat) Quat {
	return s.update(dt, next, &approxMaps)
}

// Step calls UpdateApprox when dt is at most the approximation threshold
// and Update otherwise. With the default threshold of zero it always uses
// the exact maps.
func (s *Quaternion) Step(dt float64, next Quat) Quat {
	if dt <= s.approxThreshold {
		return s.UpdateApprox(dt, next)
	}
	return s.Update(dt, next)
}

// SetApproxThreshold sets the largest dt for which Step uses UpdateApprox.
// Zero or negative disables the approximation.
func (s *Quaternion) SetApproxThreshold(dt float64) {
	s.approxThreshold = dt
}

// ApproxThreshold returns the threshold set by SetApproxThreshold.
func (s *Quaternion) ApproxThreshold() float64 {
	return s.approxThreshold
}

func (s *Quaternion) update(dt float64, next Quat, m *expMaps) Quat {
	// estimate the target velocity
	v0 := m.differentiate(next, s.q0, dt)
	s.q0 = next

	// integrate position by velocity
	s.q = m.integrate(s.v, s.q, dt)

	k2 := s.k.StableK2(dt)

	// scaled position difference: (x - y) / k2
	qd := quatutil.Abs(quatutil.Diff(next, s.q))
	pa := r3.Scale(1/k2, m.toScaledAngleAxis(qd))

	// scaled velocity difference: (k3·v0 - k1·v) / k2
	vd := r3.Sub(r3.Scale(s.k.K3/k2, v0), r3.Scale(s.k.K1/k2, s.v))

	// integrate velocity by acceleration
	s.v = r3.Add(s.v, r3.Scale(dt, r3.Add(pa, vd)))

	return s.q
}

// Value returns the current orientation without advancing the system.
func (s *Quaternion) Value() Quat {
	return s.q
}

// AngularVelocity returns the current angular velocity in rad/s, expressed
// in the parent frame.
func (s *Quaternion) AngularVelocity() Vec3 {
	return s.v
}

// Reset puts the system at rest at q0. The approximation threshold is kept.
func (s *Quaternion) Reset(q0 Quat) {
	s.q = q0
	s.q0 = q0
	s.v = Vec3{}
}
