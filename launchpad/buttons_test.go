package launchpad

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryShape(t *testing.T) {
	assert.Len(t, allButtons, 80)

	grid, side, top := 0, 0, 0
	for _, b := range allButtons {
		key := buttonKeys[b.Name]
		switch {
		case b.Grid:
			grid++
			require.True(t, key.isNote)
			assert.Equal(t, uint8(16*b.Y+b.X), key.note, b.Name)
		case key.isNote:
			side++
			assert.Equal(t, uint8(8), key.note%16, b.Name)
		default:
			top++
			assert.GreaterOrEqual(t, key.automap, uint8(104), b.Name)
			assert.LessOrEqual(t, key.automap, uint8(111), b.Name)
		}
	}
	assert.Equal(t, 64, grid)
	assert.Equal(t, 8, side)
	assert.Equal(t, 8, top)
}

func TestRegistryKeysUniquePerKeyspace(t *testing.T) {
	notes := make(map[uint8]string)
	automaps := make(map[uint8]string)
	for name, key := range buttonKeys {
		if key.isNote {
			prev, dup := notes[key.note]
			require.False(t, dup, "note key %d shared by %s and %s", key.note, prev, name)
			notes[key.note] = name
		} else {
			prev, dup := automaps[key.automap]
			require.False(t, dup, "automap key %d shared by %s and %s", key.automap, prev, name)
			automaps[key.automap] = name
		}
	}
	assert.Len(t, notes, 72)
	assert.Len(t, automaps, 8)
}

func TestOrderingsContainEveryButtonOnce(t *testing.T) {
	for _, order := range []Order{OrderPhysical, OrderBatch} {
		seen := make(map[string]bool)
		buttons := Buttons(order)
		require.Len(t, buttons, len(allButtons))
		for _, b := range buttons {
			require.False(t, seen[b.Name], "duplicate %s", b.Name)
			seen[b.Name] = true
		}
	}
}

func TestPhysicalOrderLayout(t *testing.T) {
	buttons := Buttons(OrderPhysical)
	for i, want := range topNames {
		assert.Equal(t, want, buttons[i].Name)
	}
	// Each row after the top: 8 grid buttons then the row's edge button.
	for y := 0; y < 8; y++ {
		row := buttons[8+y*9 : 8+(y+1)*9]
		for x := 0; x < 8; x++ {
			assert.Equal(t, fmt.Sprintf("%d%d", x, y), row[x].Name)
		}
		assert.Equal(t, sideNames[y], row[8].Name)
	}
}

func TestBatchOrderLayout(t *testing.T) {
	buttons := Buttons(OrderBatch)
	// Grid first, row-major with y outer.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, fmt.Sprintf("%d%d", x, y), buttons[y*8+x].Name)
		}
	}
	for i, want := range sideNames {
		assert.Equal(t, want, buttons[64+i].Name)
	}
	for i, want := range topNames {
		assert.Equal(t, want, buttons[72+i].Name)
	}
}

func TestButtonsReturnsCopies(t *testing.T) {
	a := Buttons(OrderBatch)
	a[0] = nil
	b := Buttons(OrderBatch)
	assert.NotNil(t, b[0])
}

func TestPaletteCoversEveryMix(t *testing.T) {
	require.Len(t, Palette, 16)
	seen := make(map[[2]uint8]string)
	for _, c := range Palette {
		mix := [2]uint8{c.Red, c.Green}
		prev, dup := seen[mix]
		require.False(t, dup, "mix %v shared by %s and %s", mix, prev, c.Name)
		seen[mix] = c.Name

		got, ok := ColorByName(c.Name)
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
}
