package launchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocityFor(t *testing.T) {
	tests := []struct {
		name        string
		color       Color
		bothBuffers bool
		clearOther  bool
		want        uint8
	}{
		{"off", Off, false, false, 0},
		{"red", Red, false, false, 3},
		{"green", Green, false, false, 48},
		{"amber", Amber, false, false, 51},
		{"amber low", AmberLow, false, false, 17},
		{"yellow", Yellow, false, false, 50},
		{"off both buffers", Off, true, false, 12},
		{"off clear other", Off, false, true, 8},
		{"red both buffers", Red, true, false, 15},
		{"green clear other", Green, false, true, 56},
		// Both flags sum literally; untested on hardware but the arithmetic
		// is fixed.
		{"off both flags", Off, true, true, 20},
		{"amber both flags", Amber, true, true, 71},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := velocityFor(tt.color, tt.bothBuffers, tt.clearOther)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVelocityForWholePalette(t *testing.T) {
	for _, c := range Palette {
		got, err := velocityFor(c, false, false)
		require.NoError(t, err)
		assert.Equal(t, c.Red+c.Green*16, got, c.Name)
	}
}

func TestVelocityForUnknownColor(t *testing.T) {
	_, err := velocityFor(Color{Name: "Teal", Red: 1, Green: 2}, false, false)
	assert.ErrorIs(t, err, ErrInvalidColor)

	// Right name, wrong intensities: still not a palette entry.
	_, err = velocityFor(Color{Name: "Red", Red: 2, Green: 0}, false, false)
	assert.ErrorIs(t, err, ErrInvalidColor)
}
