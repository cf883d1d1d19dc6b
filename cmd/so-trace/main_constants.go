package main

// Default command-line flag values
const (
	defaultSystem    = "scalar"
	defaultFrequency = 1.8   // Hz
	defaultDamping   = 0.5   // Underdamped, slight overshoot
	defaultResponse  = 1.0   // Immediate response
	defaultDT        = 0.016 // ~60 fps frame time
	defaultFrames    = 300   // ~5 seconds at 60 fps
	defaultTarget    = 1.0   // Step size
)

// Vector system layout: element i steps to target·vectorGains[i]. Only
// element 0 is recorded.
var vectorGains = []float64{1, -1, 2}

// Demo settings
const (
	demoFrames = 600
)
