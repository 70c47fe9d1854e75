package launchpad

import "fmt"

// velocityFor encodes a palette color plus buffer-targeting flags into the
// velocity byte of an LED-set message.
//
// clearOther sets bit 3 (clear the other buffer's copy of this LED),
// bothBuffers sets bits 2+3 (write the LED to both buffers). The
// contributions are summed literally; requesting both flags at once is
// untested device behavior and callers get whatever the arithmetic yields.
func velocityFor(c Color, bothBuffers, clearOther bool) (uint8, error) {
	if !c.valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, c.Name)
	}
	v := c.Red + c.Green*16
	if clearOther {
		v += 8
	}
	if bothBuffers {
		v += 12
	}
	return v, nil
}
