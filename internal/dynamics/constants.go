package dynamics

import "math"

// Derivation constants
const (
	twoPi = 2 * math.Pi // Converts Hz to rad/s
)

// Stability clamp constants
const (
	// stabilityMargin scales the minimum stable k2 so the clamp keeps a
	// 10% safety margin.
	stabilityMargin = 1.1

	quarterDivisor = 4.0 // dt²/4 term of the stability bound
	halfDivisor    = 2.0 // dt·k1/2 term of the stability bound
)
