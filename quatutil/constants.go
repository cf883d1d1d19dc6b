package quatutil

// Numerical thresholds
const (
	// zeroRotationThreshold is the magnitude below which a rotation's
	// direction is numerically meaningless and the maps fall back to a
	// linear approximation.
	zeroRotationThreshold = 1e-8
)

// Common scale constants
const (
	half = 0.5 // Half-angle conversion factor
)
