package secondorder

// Preset parameters
const (
	// Smooth: soft follow with a small overshoot
	smoothFrequency = 1.8
	smoothDamping   = 0.5
	smoothResponse  = 1.0

	// Snappy: immediate reaction with overshoot
	snappyFrequency = 4.6
	snappyDamping   = 0.35
	snappyResponse  = 2.0

	// Critical: fastest settle without overshoot
	criticalFrequency = 2.0
	criticalDamping   = 1.0
	criticalResponse  = 0.0

	// Anticipate: wind-up before moving
	anticipateFrequency = 2.0
	anticipateDamping   = 0.5
	anticipateResponse  = -1.5

	// Wobbly: long-lived oscillation
	wobblyFrequency = 1.2
	wobblyDamping   = 0.15
	wobblyResponse  = 0.0
)
