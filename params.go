package secondorder

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Params holds the three shape parameters of a second-order system.
type Params struct {
	// Frequency is the natural frequency in Hz (f > 0). It sets how fast
	// the system responds to a change of target and the frequency it
	// vibrates at, but not the shape of the response.
	Frequency float64

	// Damping is the damping ratio z.
	// 0 = undamped, vibrates forever
	// 0 < z < 1 = underdamped, vibrates while settling
	// z >= 1 = no vibration, no overshoot for a held target
	Damping float64

	// Response is the initial response factor r.
	// 0 = takes time to accelerate from rest
	// 0 < r < 1 = immediate response
	// r > 1 = overshoots the target
	// r < 0 = anticipates the motion (wind-up)
	Response float64
}

// Preset enumerates predefined parameter sets.
type Preset int

const (
	// PresetSmooth follows a pointer with a soft, slightly springy motion.
	PresetSmooth Preset = iota

	// PresetSnappy reacts immediately and overshoots, like a light object on
	// a stiff spring.
	PresetSnappy

	// PresetCritical settles as fast as possible without overshoot.
	PresetCritical

	// PresetAnticipate winds up in the opposite direction before moving.
	PresetAnticipate

	// PresetWobbly oscillates for a long time before settling. Suited to
	// liquid surfaces.
	PresetWobbly
)

// Common errors returned by the constructors.
var (
	// ErrInvalidParams indicates invalid frequency, damping or response.
	ErrInvalidParams = errors.New("invalid second-order parameters")

	// ErrLengthMismatch indicates a vector update with the wrong number of
	// elements. Vector systems panic with an error wrapping it.
	ErrLengthMismatch = errors.New("vector length mismatch")

	// ErrUnknownPreset indicates a preset name that ParsePreset does not know.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Validate checks that the parameters describe a well-defined system.
func (p Params) Validate() error {
	if !(p.Frequency > 0) || math.IsInf(p.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be positive and finite, got %v", ErrInvalidParams, p.Frequency)
	}

	if math.IsNaN(p.Damping) || math.IsInf(p.Damping, 0) {
		return fmt.Errorf("%w: damping must be finite, got %v", ErrInvalidParams, p.Damping)
	}

	if math.IsNaN(p.Response) || math.IsInf(p.Response, 0) {
		return fmt.Errorf("%w: response must be finite, got %v", ErrInvalidParams, p.Response)
	}

	return nil
}

// String formats the parameters as f/z/r.
func (p Params) String() string {
	return fmt.Sprintf("f=%g z=%g r=%g", p.Frequency, p.Damping, p.Response)
}

// GetPresetParams returns the parameters for a preset.
func GetPresetParams(preset Preset) Params {
	switch preset {
	case PresetSmooth:
		return Params{Frequency: smoothFrequency, Damping: smoothDamping, Response: smoothResponse}

	case PresetSnappy:
		return Params{Frequency: snappyFrequency, Damping: snappyDamping, Response: snappyResponse}

	case PresetCritical:
		return Params{Frequency: criticalFrequency, Damping: criticalDamping, Response: criticalResponse}

	case PresetAnticipate:
		return Params{Frequency: anticipateFrequency, Damping: anticipateDamping, Response: anticipateResponse}

	case PresetWobbly:
		return Params{Frequency: wobblyFrequency, Damping: wobblyDamping, Response: wobblyResponse}

	default:
		return Params{Frequency: smoothFrequency, Damping: smoothDamping, Response: smoothResponse}
	}
}

// String returns the preset's lower-case name.
func (p Preset) String() string {
	switch p {
	case PresetSmooth:
		return "smooth"
	case PresetSnappy:
		return "snappy"
	case PresetCritical:
		return "critical"
	case PresetAnticipate:
		return "anticipate"
	case PresetWobbly:
		return "wobbly"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// ParsePreset maps a case-insensitive preset name to its Preset.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "smooth":
		return PresetSmooth, nil
	case "snappy":
		return PresetSnappy, nil
	case "critical":
		return PresetCritical, nil
	case "anticipate":
		return PresetAnticipate, nil
	case "wobbly":
		return PresetWobbly, nil
	default:
		return PresetSmooth, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}
