// Package simdops provides generic SIMD element-wise operations for float32 and
// float64 slices. It lets the vector second-order system run one code path for
// both precisions.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"math"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
// All destination slices must be at least as long as the inputs.
type Ops[F Float] struct {
	// Add computes dst[i] = a[i] + b[i].
	Add func(dst, a, b []F)

	// Sub computes dst[i] = a[i] - b[i].
	Sub func(dst, a, b []F)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// DotProduct returns the dot product of a and b.
	DotProduct func(a, b []F) F
}

// Pre-instantiated operations for each float type.
// These are package-level variables to avoid repeated allocation.
var (
	ops32 = Ops[float32]{
		Add:        f32.Add,
		Sub:        f32.Sub,
		Scale:      f32.Scale,
		Sum:        f32.Sum,
		DotProduct: f32.DotProduct,
	}
	ops64 = Ops[float64]{
		Add:        f64.Add,
		Sub:        f64.Sub,
		Scale:      f64.Scale,
		Sum:        f64.Sum,
		DotProduct: f64.DotProduct,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at construction time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// AddScaled computes dst[i] = a[i] + s*b[i] using tmp as scratch space.
// tmp must not alias a or dst.
func (o *Ops[F]) AddScaled(dst, a []F, s F, b, tmp []F) {
	o.Scale(tmp, b, s)
	o.Add(dst, a, tmp)
}

// Norm returns the Euclidean norm of a.
func (o *Ops[F]) Norm(a []F) float64 {
	return math.Sqrt(float64(o.DotProduct(a, a)))
}
