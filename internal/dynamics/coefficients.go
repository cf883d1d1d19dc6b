// Package dynamics implements the second-order system shared by every value
// type: the k1, k2, k3 derivation, the stability clamp on k2, and a generic
// semi-implicit Euler integrator parametrized by an Algebra.
//
// The system solves
//
//	y + k1·y' + k2·y'' = x + k3·x'
//
// for the output y given a target x, where
//
//	k1 = z / (π·f)
//	k2 = 1 / (2π·f)²
//	k3 = r·z / (2π·f)
//
// f is the natural frequency in Hz, z the damping ratio and r the initial
// response factor.
//
// Reference: https://www.youtube.com/watch?v=KPoeNZZ6H4s
package dynamics

import "math"

// Coefficients holds the constants derived from frequency, damping and response.
// They are fixed at construction.
type Coefficients struct {
	K1 float64 // Damping term
	K2 float64 // Inertia term
	K3 float64 // Target velocity feed-forward term
}

// NewCoefficients derives k1, k2, k3 from frequency f (Hz, f > 0),
// damping z and response r. f is not validated.
func NewCoefficients(f, z, r float64) Coefficients {
	omega := twoPi * f
	return Coefficients{
		K1: z / (math.Pi * f),
		K2: 1 / (omega * omega),
		K3: r * z / omega,
	}
}

// StableK2 returns k2 raised, if needed, to the smallest value that keeps the
// semi-implicit integration stable for step dt (with a 10% margin).
// Large frame spikes therefore slow the system down instead of making it
// diverge.
func (c Coefficients) StableK2(dt float64) float64 {
	return math.Max(c.K2, stabilityMargin*(dt*dt/quarterDivisor+dt*c.K1/halfDivisor))
}

// NaturalFrequency returns the undamped angular frequency ω = 1/√k2 in rad/s.
func (c Coefficients) NaturalFrequency() float64 {
	return 1 / math.Sqrt(c.K2)
}

// DampingRatio recovers z from the coefficients.
func (c Coefficients) DampingRatio() float64 {
	return c.K1 / (halfDivisor * math.Sqrt(c.K2))
}

// CriticalStep returns the largest dt that leaves k2 unclamped. Steps above
// it engage the clamp in StableK2.
func (c Coefficients) CriticalStep() float64 {
	return math.Sqrt(c.K1*c.K1+quarterDivisor*c.K2/stabilityMargin) - c.K1
}
