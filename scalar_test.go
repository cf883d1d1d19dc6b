package secondorder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-second-order/internal/testutil"
)

const frameDT = 0.016 // ~60 fps

// TestScalarStepResponse tests the canonical step: from rest at 0 toward a
// held target of 1 with a slight overshoot.
func TestScalarStepResponse(t *testing.T) {
	s, err := NewScalar(Params{Frequency: 1.8, Damping: 0.5, Response: 1}, 0)
	require.NoError(t, err)

	peak := 0.0
	for range 300 {
		y := s.Update(frameDT, 1)
		testutil.AssertFinite(t, y)
		peak = math.Max(peak, y)
	}

	assert.Greater(t, peak, 1.0, "underdamped step should overshoot")
	assert.LessOrEqual(t, peak, 1.3)
	assert.InDelta(t, 1.0, s.Value(), testutil.SettleTolerance)
	assert.InDelta(t, 0.0, s.Velocity(), testutil.SettleTolerance)
}

// TestScalarAtRest tests that a system fed its own rest value never moves.
func TestScalarAtRest(t *testing.T) {
	s, err := NewScalar(GetPresetParams(PresetSnappy), 2.5)
	require.NoError(t, err)

	for range 100 {
		assert.Equal(t, 2.5, s.Update(frameDT, 2.5))
	}
	assert.Equal(t, 0.0, s.Velocity())
}

// TestScalarCriticalNoOvershoot tests z >= 1 with r = 0 approaching monotonically.
func TestScalarCriticalNoOvershoot(t *testing.T) {
	s, err := NewScalar(GetPresetParams(PresetCritical), 0)
	require.NoError(t, err)

	ys := make([]float64, 0, 400)
	for range 400 {
		ys = append(ys, s.Update(frameDT, 1))
	}

	testutil.AssertMonotonic(t, ys)
	assert.LessOrEqual(t, ys[len(ys)-1], 1.0)
	assert.InDelta(t, 1.0, ys[len(ys)-1], testutil.SettleTolerance)
}

// TestScalarAnticipation tests that r < 0 first moves away from the target.
func TestScalarAnticipation(t *testing.T) {
	s, err := NewScalar(GetPresetParams(PresetAnticipate), 0)
	require.NoError(t, err)

	// The first step only integrates the initial velocity; the wind-up shows
	// from the second step on.
	s.Update(frameDT, 1)
	y := s.Update(frameDT, 1)
	assert.Less(t, y, 0.0)
}

// TestScalarFrameSpike tests that an occasional huge dt does not blow up.
func TestScalarFrameSpike(t *testing.T) {
	s, err := NewScalar(GetPresetParams(PresetSnappy), 0)
	require.NoError(t, err)

	for i := range 600 {
		dt := frameDT
		if i%50 == 25 {
			dt = 1.5
		}
		testutil.AssertFinite(t, s.Update(dt, 1))
	}
	assert.InDelta(t, 1.0, s.Value(), testutil.SettleTolerance)
}

// TestScalarUpdateWithVelocity tests that a known velocity leaves the
// estimate's reference alone.
func TestScalarUpdateWithVelocity(t *testing.T) {
	p := Params{Frequency: 2, Damping: 0.7, Response: 2}

	a, err := NewScalar(p, 0)
	require.NoError(t, err)
	b, err := NewScalar(p, 0)
	require.NoError(t, err)

	// b receives the target with its velocity, then resumes estimating from
	// the original reference of 0.
	a.UpdateWithVelocity(frameDT, 1, 0)
	b.UpdateWithVelocity(frameDT, 1, 0)
	assert.Equal(t, a.Value(), b.Value())

	ya := a.Update(frameDT, 1)
	yb := b.Update(frameDT, 1)
	assert.Equal(t, ya, yb)
	// The reference was 0, so the estimated target velocity is 1/dt and the
	// response term kicks the velocity upward.
	assert.Greater(t, a.Velocity(), 0.0)
}

// TestScalarReset tests returning to rest at a new value.
func TestScalarReset(t *testing.T) {
	s, err := NewScalar(GetPresetParams(PresetWobbly), 0)
	require.NoError(t, err)

	for range 20 {
		s.Update(frameDT, 10)
	}
	s.Reset(-3)

	assert.Equal(t, -3.0, s.Value())
	assert.Equal(t, 0.0, s.Velocity())
	assert.Equal(t, -3.0, s.Update(frameDT, -3))
}

// TestScalarDeterministic tests bit-identical replay.
func TestScalarDeterministic(t *testing.T) {
	run := func() []float64 {
		s, err := NewScalar(GetPresetParams(PresetSmooth), 0)
		require.NoError(t, err)
		out := make([]float64, 0, 200)
		for i := range 200 {
			out = append(out, s.Update(frameDT, math.Sin(float64(i)*0.1)))
		}
		return out
	}
	assert.Equal(t, run(), run())
}

// TestScalarUpdateDoesNotAllocate tests the per-frame path.
func TestScalarUpdateDoesNotAllocate(t *testing.T) {
	s, err := NewScalar(GetPresetParams(PresetSmooth), 0)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		s.Update(frameDT, 1)
	})
	assert.Zero(t, allocs)
}

// TestAngleShortestPath tests crossing the ±π seam the short way.
func TestAngleShortestPath(t *testing.T) {
	a, err := NewAngle(GetPresetParams(PresetCritical), 3.0)
	require.NoError(t, err)

	prev := a.Value()
	for range 500 {
		y := a.Update(frameDT, -3.0)
		// The short way from 3 to -3 is upward through π.
		assert.GreaterOrEqual(t, y, prev)
		testutil.AssertInRange(t, a.Wrapped(), -math.Pi, math.Pi)
		prev = y
	}

	assert.InDelta(t, 2*math.Pi-3.0, a.Value(), testutil.SettleTolerance)
	assert.InDelta(t, -3.0, a.Wrapped(), testutil.SettleTolerance)
}

// TestAngleAccumulates tests that the output is never wrapped: a target
// spinning forever drives the value past ±π.
func TestAngleAccumulates(t *testing.T) {
	a, err := NewAngle(Params{Frequency: 2, Damping: 1, Response: 1}, 0)
	require.NoError(t, err)

	const step = 0.05
	for i := 1; i <= 400; i++ {
		target := math.Remainder(float64(i)*step, 2*math.Pi) // wrapped to [-π, π]
		a.Update(frameDT, target)
	}

	assert.Greater(t, a.Value(), 15.0)
	// Steady tracking of a ramp at step/dt rad/s.
	assert.InDelta(t, step/frameDT, a.Velocity(), 0.05)
}

// TestAngleMatchesScalarAwayFromSeam tests that without wrapping the angle
// system behaves exactly like a scalar one.
func TestAngleMatchesScalarAwayFromSeam(t *testing.T) {
	p := GetPresetParams(PresetSmooth)

	s, err := NewScalar(p, 0)
	require.NoError(t, err)
	a, err := NewAngle(p, 0)
	require.NoError(t, err)

	for i := range 200 {
		target := 0.8 * math.Sin(float64(i)*0.05)
		assert.InDelta(t, s.Update(frameDT, target), a.Update(frameDT, target), 1e-12)
	}
}

// TestAngleReset tests returning to rest.
func TestAngleReset(t *testing.T) {
	a, err := NewAngle(GetPresetParams(PresetSnappy), 0)
	require.NoError(t, err)

	a.UpdateWithVelocity(frameDT, 1, 2)
	a.Reset(1)

	assert.Equal(t, 1.0, a.Value())
	assert.Equal(t, 0.0, a.Velocity())
}

func BenchmarkScalarUpdate(b *testing.B) {
	s, err := NewScalar(GetPresetParams(PresetSmooth), 0)
	require.NoError(b, err)

	for b.Loop() {
		s.Update(frameDT, 1)
	}
}
