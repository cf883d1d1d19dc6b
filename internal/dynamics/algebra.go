package dynamics

import (
	"github.com/tphakala/go-second-order/internal/mathutil"
	"github.com/tphakala/go-second-order/internal/simdops"
)

// Algebra supplies the arithmetic a System needs for its value type V.
//
// Methods that take a dst either write into it and return it (reference
// types such as slices) or ignore it and return a fresh value (scalars).
// Callers always use the returned value.
type Algebra[V any] interface {
	// Zero returns a new zero value shaped like v.
	Zero(like V) V
	// Clear sets dst to zero.
	Clear(dst V) V
	// Copy stores src into dst.
	Copy(dst, src V) V
	// Target maps a raw target into the representation compared against
	// the current value. The result must not alias the system's state.
	Target(current, target V) V
	// Delta stores the change from one target to the next in dst, used for
	// the finite-difference velocity estimate.
	Delta(dst, from, to V) V
	// Sub stores a - b in dst.
	Sub(dst, a, b V) V
	// Scale stores s·a in dst.
	Scale(dst V, s float64, a V) V
	// AddScaled stores a + s·b in dst.
	AddScaled(dst, a V, s float64, b V) V
}

// Scalar is the Algebra of a single real value.
type Scalar struct{}

func (Scalar) Zero(float64) float64                 { return 0 }
func (Scalar) Clear(float64) float64                { return 0 }
func (Scalar) Copy(_, src float64) float64          { return src }
func (Scalar) Target(_, target float64) float64     { return target }
func (Scalar) Delta(_, from, to float64) float64    { return to - from }
func (Scalar) Sub(_, a, b float64) float64          { return a - b }
func (Scalar) Scale(_, s, a float64) float64        { return s * a }
func (Scalar) AddScaled(_, a, s, b float64) float64 { return a + s*b }

// Angle is the Algebra of an angle in radians. Targets are unwrapped to lie
// within half a turn of the current value, and target deltas take the short
// way around, so the system never travels the long way across ±π.
type Angle struct {
	Scalar
}

// Target returns the representative of target nearest to current.
func (Angle) Target(current, target float64) float64 {
	return current + mathutil.DeltaAngle(current, target)
}

// Delta returns the shortest signed difference from one target to the next.
func (Angle) Delta(_, from, to float64) float64 {
	return mathutil.DeltaAngle(from, to)
}

// Slice is the Algebra of a fixed-length vector of independent values.
// Element-wise arithmetic runs through SIMD kernels.
type Slice[F simdops.Float] struct {
	ops *simdops.Ops[F]
	tmp []F
	x   []F // held copy of the current target
}

// NewSlice returns a Slice algebra for vectors of length n.
func NewSlice[F simdops.Float](n int) Slice[F] {
	return Slice[F]{
		ops: simdops.For[F](),
		tmp: make([]F, n),
		x:   make([]F, n),
	}
}

func (a Slice[F]) Zero(like []F) []F {
	return make([]F, len(like))
}

func (a Slice[F]) Clear(dst []F) []F {
	clear(dst)
	return dst
}

func (a Slice[F]) Copy(dst, src []F) []F {
	copy(dst, src)
	return dst
}

// Target copies target so that a caller passing the system's own state
// cannot have it move mid-update.
func (a Slice[F]) Target(_, target []F) []F {
	copy(a.x, target)
	return a.x
}

func (a Slice[F]) Delta(dst, from, to []F) []F {
	a.ops.Sub(dst, to, from)
	return dst
}

func (a Slice[F]) Sub(dst, x, y []F) []F {
	a.ops.Sub(dst, x, y)
	return dst
}

func (a Slice[F]) Scale(dst []F, s float64, x []F) []F {
	a.ops.Scale(dst, x, F(s))
	return dst
}

func (a Slice[F]) AddScaled(dst, x []F, s float64, y []F) []F {
	a.ops.AddScaled(dst, x, F(s), y, a.tmp)
	return dst
}
