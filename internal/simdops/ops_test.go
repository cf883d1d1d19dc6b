package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_ReturnsSharedInstance(t *testing.T) {
	assert.Same(t, For[float64](), For[float64]())
	assert.Same(t, For[float32](), For[float32]())
}

func TestOps_ElementWise64(t *testing.T) {
	ops := For[float64]()
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{0.5, 0.5, 0.5, 0.5, 0.5}
	dst := make([]float64, len(a))

	ops.Add(dst, a, b)
	assert.InDeltaSlice(t, []float64{1.5, 2.5, 3.5, 4.5, 5.5}, dst, 1e-12)

	ops.Sub(dst, a, b)
	assert.InDeltaSlice(t, []float64{0.5, 1.5, 2.5, 3.5, 4.5}, dst, 1e-12)

	ops.Scale(dst, a, 2)
	assert.InDeltaSlice(t, []float64{2, 4, 6, 8, 10}, dst, 1e-12)

	assert.InDelta(t, 15.0, ops.Sum(a), 1e-12)
	assert.InDelta(t, 7.5, ops.DotProduct(a, b), 1e-12)
}

func TestOps_AddScaled(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		s    float64
		want []float64
	}{
		{"zero scale", []float64{1, 2}, []float64{3, 4}, 0, []float64{1, 2}},
		{"unit scale", []float64{1, 2}, []float64{3, 4}, 1, []float64{4, 6}},
		{"negative scale", []float64{1, 2}, []float64{3, 4}, -0.5, []float64{-0.5, 0}},
	}

	ops := For[float64]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(tt.a))
			tmp := make([]float64, len(tt.a))
			ops.AddScaled(dst, tt.a, tt.s, tt.b, tmp)
			assert.InDeltaSlice(t, tt.want, dst, 1e-12)
		})
	}
}

func TestOps_AddScaledInPlace32(t *testing.T) {
	ops := For[float32]()
	a := []float32{1, 1, 1}
	b := []float32{2, 4, 6}
	tmp := make([]float32, 3)

	ops.AddScaled(a, a, 0.5, b, tmp)

	assert.InDelta(t, 2.0, float64(a[0]), 1e-6)
	assert.InDelta(t, 3.0, float64(a[1]), 1e-6)
	assert.InDelta(t, 4.0, float64(a[2]), 1e-6)
}

func TestOps_Norm(t *testing.T) {
	assert.InDelta(t, 5.0, For[float64]().Norm([]float64{3, 4}), 1e-12)
	assert.InDelta(t, 5.0, For[float32]().Norm([]float32{3, 4}), 1e-6)
}
