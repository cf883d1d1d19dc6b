package mathutil

import "math"

// Angle constants
const (
	fullTurn = 2 * math.Pi // One revolution in radians
)
