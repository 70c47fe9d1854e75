package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-launchpad/launchpad"
)

func TestFrameShape(t *testing.T) {
	f := New(0.35)
	frame := f.Frame(1.5)
	require.Len(t, frame, 80)
	for i, c := range frame {
		_, ok := launchpad.ColorByName(c.Name)
		assert.True(t, ok, "frame[%d] = %q not in palette", i, c.Name)
	}
}

func TestFrameDeterministic(t *testing.T) {
	f := New(0.35)
	assert.Equal(t, f.Frame(2.0), f.Frame(2.0))
}

func TestFieldDrifts(t *testing.T) {
	f := New(0.35)
	distinct := make(map[string]bool)
	for tick := 0; tick < 40; tick++ {
		for _, c := range f.Frame(float64(tick) * 0.25) {
			distinct[c.Name] = true
		}
	}
	assert.Greater(t, len(distinct), 3, "wash should cycle through several palette colors")
}
