package secondorder

import (
	"fmt"

	"github.com/tphakala/go-second-order/internal/dynamics"
)

// Float is the type constraint for Vector element types.
type Float interface {
	float32 | float64
}

// Vector smooths a fixed-length list of independent targets. Each element
// behaves exactly like its own Scalar with the same parameters.
//
// Update does not allocate. A Vector is not safe for concurrent use.
type Vector[F Float] struct {
	sys *dynamics.System[[]F, dynamics.Slice[F]]
	n   int
}

// NewVector creates a vector system at rest at x0. The length of x0 fixes
// the length of every later target. x0 is copied.
func NewVector[F Float](p Params, x0 []F) (*Vector[F], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	k := dynamics.NewCoefficients(p.Frequency, p.Damping, p.Response)
	alg := dynamics.NewSlice[F](len(x0))

	return &Vector[F]{
		sys: dynamics.NewSystem[[]F](alg, k, x0),
		n:   len(x0),
	}, nil
}

// Update advances every element by dt seconds toward the matching element of
// x and returns the current values.
//
// The returned slice is the system's own state: it is overwritten by the
// next call, so copy it to retain it. Update panics with an error wrapping
// ErrLengthMismatch if len(x) differs from Len.
func (v *Vector[F]) Update(dt float64, x []F) []F {
	v.checkLen("target", x)
	return v.sys.Update(dt, x)
}

// UpdateWithVelocity is like Update but uses the known target velocities xd,
// which must have the same length as x.
func (v *Vector[F]) UpdateWithVelocity(dt float64, x, xd []F) []F {
	v.checkLen("target", x)
	v.checkLen("velocity", xd)
	return v.sys.UpdateWithVelocity(dt, x, xd)
}

// Values returns the current values without advancing the system.
// The slice is the system's own state.
func (v *Vector[F]) Values() []F {
	return v.sys.Value()
}

// Velocities returns the current per-element velocities.
// The slice is the system's own state.
func (v *Vector[F]) Velocities() []F {
	return v.sys.Velocity()
}

// Len returns the number of elements.
func (v *Vector[F]) Len() int {
	return v.n
}

// Reset puts every element at rest at x0, which must have length Len.
func (v *Vector[F]) Reset(x0 []F) {
	v.checkLen("reset", x0)
	v.sys.Reset(x0)
}

func (v *Vector[F]) checkLen(what string, x []F) {
	if len(x) != v.n {
		panic(fmt.Errorf("%w: %s has %d elements, want %d", ErrLengthMismatch, what, len(x), v.n))
	}
}
