package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

// BenchmarkDirectF64Add measures direct SIMD call overhead.
func BenchmarkDirectF64Add(b *testing.B) {
	a := make([]float64, 64)
	c := make([]float64, 64)
	dst := make([]float64, 64)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		f64.Add(dst, a, c)
	}
}

// BenchmarkIndirectF64Add measures indirect call through Ops struct.
func BenchmarkIndirectF64Add(b *testing.B) {
	ops := For[float64]()
	a := make([]float64, 64)
	c := make([]float64, 64)
	dst := make([]float64, 64)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Add(dst, a, c)
	}
}

// BenchmarkAddScaled32 measures the fused helper for float32 state vectors.
func BenchmarkAddScaled32(b *testing.B) {
	ops := For[float32]()
	a := make([]float32, 16)
	c := make([]float32, 16)
	tmp := make([]float32, 16)
	for i := range a {
		a[i] = float32(i) * 0.01
		c[i] = float32(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.AddScaled(a, a, 0.016, c, tmp)
	}
}
