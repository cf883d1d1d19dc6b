package secondorder

import (
	"github.com/tphakala/go-second-order/internal/dynamics"
	"github.com/tphakala/go-second-order/internal/mathutil"
)

// Angle smooths a target angle in radians, always moving the short way
// around the circle. The returned value is continuous and is not wrapped;
// it may drift outside (-π, π] as the target circles.
//
// An Angle is not safe for concurrent use.
type Angle struct {
	sys *dynamics.System[float64, dynamics.Angle]
}

// NewAngle creates an angle system at rest at x0 radians.
func NewAngle(p Params, x0 float64) (*Angle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	k := dynamics.NewCoefficients(p.Frequency, p.Damping, p.Response)
	return &Angle{sys: dynamics.NewSystem[float64](dynamics.Angle{}, k, x0)}, nil
}

// Update advances the system by dt seconds toward target angle x. The target
// is first moved by whole turns to lie within half a turn of the current
// value.
func (a *Angle) Update(dt, x float64) float64 {
	return a.sys.Update(dt, x)
}

// UpdateWithVelocity is like Update but uses the known target angular
// velocity xd in rad/s.
func (a *Angle) UpdateWithVelocity(dt, x, xd float64) float64 {
	return a.sys.UpdateWithVelocity(dt, x, xd)
}

// Value returns the current angle without advancing the system.
func (a *Angle) Value() float64 {
	return a.sys.Value()
}

// Wrapped returns the current angle mapped into (-π, π].
func (a *Angle) Wrapped() float64 {
	return mathutil.WrapAngle(a.sys.Value())
}

// Velocity returns the current angular velocity in rad/s.
func (a *Angle) Velocity() float64 {
	return a.sys.Velocity()
}

// Reset puts the system at rest at x0 radians.
func (a *Angle) Reset(x0 float64) {
	a.sys.Reset(x0)
}
