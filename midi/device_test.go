package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMessage(t *testing.T) {
	tests := []struct {
		name   string
		status uint8
		data1  uint8
		data2  uint8
		want   []byte
	}{
		{"note led set", 0x90, 0x24, 0x30, []byte{0x90, 0x24, 0x30}},
		{"rapid update pair", 0x92, 0x03, 0x33, []byte{0x92, 0x03, 0x33}},
		{"control reset", 0xB0, 0x00, 0x00, []byte{0xB0, 0x00, 0x00}},
		{"duty cycle", 0xB0, 0x1E, 0x47, []byte{0xB0, 0x1E, 0x47}},
		{"automap led set", 0xB0, 0x68, 0x3C, []byte{0xB0, 0x68, 0x3C}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toMessage(tt.status, tt.data1, tt.data2)
			assert.Equal(t, tt.want, []byte(got))
		})
	}
}

func TestManagerPatternMatch(t *testing.T) {
	dm := NewDeviceManager("Launchpad")
	assert.True(t, dm.matches("launchpad s midi 1"))
	assert.True(t, dm.matches("launchpad mini"))
	assert.False(t, dm.matches("usb midi keyboard"))
}
