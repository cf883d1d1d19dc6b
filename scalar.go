package secondorder

import "github.com/tphakala/go-second-order/internal/dynamics"

// Scalar smooths a single real-valued target.
//
// A Scalar is not safe for concurrent use.
type Scalar struct {
	sys *dynamics.System[float64, dynamics.Scalar]
}

// NewScalar creates a scalar system at rest at x0.
func NewScalar(p Params, x0 float64) (*Scalar, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	k := dynamics.NewCoefficients(p.Frequency, p.Damping, p.Response)
	return &Scalar{sys: dynamics.NewSystem[float64](dynamics.Scalar{}, k, x0)}, nil
}

// Update advances the system by dt seconds toward target x and returns the
// new value. The target's velocity is estimated from the previous target
// passed to Update.
//
// dt must be positive and finite; it is not checked.
func (s *Scalar) Update(dt, x float64) float64 {
	return s.sys.Update(dt, x)
}

// UpdateWithVelocity is like Update but uses the known target velocity xd
// instead of estimating it. The estimate's reference is not changed.
func (s *Scalar) UpdateWithVelocity(dt, x, xd float64) float64 {
	return s.sys.UpdateWithVelocity(dt, x, xd)
}

// Value returns the current value without advancing the system.
func (s *Scalar) Value() float64 {
	return s.sys.Value()
}

// Velocity returns the current rate of change of the value.
func (s *Scalar) Velocity() float64 {
	return s.sys.Velocity()
}

// Reset puts the system at rest at x0.
func (s *Scalar) Reset(x0 float64) {
	s.sys.Reset(x0)
}
