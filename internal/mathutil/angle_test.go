package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClamp tests bounds and pass-through.
func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-2, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.Equal(t, -1.0, Clamp(-1.0000001, -1, 1))
}

// TestRepeat tests wrapping into [0, length).
func TestRepeat(t *testing.T) {
	tests := []struct {
		name      string
		t, length float64
		expected  float64
	}{
		{"inside", 1.5, 4, 1.5},
		{"one turn up", 5, 4, 1},
		{"negative", -1, 4, 3},
		{"many turns negative", -9, 4, 3},
		{"zero", 0, 4, 0},
		{"exact multiple", 8, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Repeat(tt.t, tt.length), 1e-12)
		})
	}
}

// TestDeltaAngle tests the shortest signed difference.
func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"same", 1, 1, 0},
		{"small forward", 0, 0.5, 0.5},
		{"small backward", 0.5, 0, -0.5},
		{"across seam forward", 3.0, -3.0, 2*math.Pi - 6},
		{"across seam backward", -3.0, 3.0, 6 - 2*math.Pi},
		{"full turns ignored", 0, 4*math.Pi + 0.25, 0.25},
		{"half turn is positive", 0, math.Pi, math.Pi},
		{"minus half turn is positive", 0, -math.Pi, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DeltaAngle(tt.a, tt.b), 1e-12)
		})
	}
}

// TestDeltaAngle_Range tests that every result lies in (-π, π].
func TestDeltaAngle_Range(t *testing.T) {
	for a := -10.0; a <= 10; a += 0.37 {
		for b := -10.0; b <= 10; b += 0.41 {
			d := DeltaAngle(a, b)
			assert.Greater(t, d, -math.Pi-1e-12)
			assert.LessOrEqual(t, d, math.Pi+1e-12)
			// a + d is b up to whole turns
			turns := (b - (a + d)) / (2 * math.Pi)
			assert.InDelta(t, math.Round(turns), turns, 1e-9)
		}
	}
}

// TestWrapAngle tests mapping into (-π, π].
func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.0, WrapAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, -3.0, WrapAngle(2*math.Pi-3), 1e-12)
	assert.InDelta(t, 1.0, WrapAngle(1-6*math.Pi), 1e-12)
}
