package secondorder

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParamsValidate tests parameter validation.
func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"typical", Params{Frequency: 1.8, Damping: 0.5, Response: 1}, false},
		{"undamped", Params{Frequency: 1, Damping: 0, Response: 0}, false},
		{"negative response", Params{Frequency: 2, Damping: 0.5, Response: -1.5}, false},
		{"negative damping", Params{Frequency: 2, Damping: -0.1, Response: 0}, false},
		{"zero frequency", Params{Frequency: 0, Damping: 1, Response: 0}, true},
		{"negative frequency", Params{Frequency: -1, Damping: 1, Response: 0}, true},
		{"NaN frequency", Params{Frequency: math.NaN(), Damping: 1, Response: 0}, true},
		{"infinite frequency", Params{Frequency: math.Inf(1), Damping: 1, Response: 0}, true},
		{"NaN damping", Params{Frequency: 1, Damping: math.NaN(), Response: 0}, true},
		{"infinite response", Params{Frequency: 1, Damping: 1, Response: math.Inf(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidParams)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestConstructorsRejectInvalidParams tests that every constructor validates.
func TestConstructorsRejectInvalidParams(t *testing.T) {
	bad := Params{Frequency: 0, Damping: 1, Response: 0}

	_, err := NewScalar(bad, 0)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = NewAngle(bad, 0)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = NewVector(bad, []float64{0, 0})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = NewQuaternion(bad, Quat{Real: 1})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

// TestPresets tests that every preset is valid and round-trips through its name.
func TestPresets(t *testing.T) {
	presets := []Preset{PresetSmooth, PresetSnappy, PresetCritical, PresetAnticipate, PresetWobbly}

	for _, preset := range presets {
		t.Run(preset.String(), func(t *testing.T) {
			p := GetPresetParams(preset)
			require.NoError(t, p.Validate())

			parsed, err := ParsePreset(preset.String())
			require.NoError(t, err)
			assert.Equal(t, preset, parsed)
		})
	}

	assert.Equal(t, 1.0, GetPresetParams(PresetCritical).Damping)
	assert.Less(t, GetPresetParams(PresetAnticipate).Response, 0.0)
	assert.Greater(t, GetPresetParams(PresetSnappy).Response, 1.0)
}

// TestParsePreset tests name normalization and unknown names.
func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("  Wobbly ")
	require.NoError(t, err)
	assert.Equal(t, PresetWobbly, p)

	_, err = ParsePreset("bouncy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	assert.Contains(t, err.Error(), "bouncy")

	assert.Equal(t, "Preset(42)", Preset(42).String())
}

// TestParamsString tests the f/z/r formatting.
func TestParamsString(t *testing.T) {
	p := Params{Frequency: 1.8, Damping: 0.5, Response: 1}
	assert.Equal(t, "f=1.8 z=0.5 r=1", p.String())
}
