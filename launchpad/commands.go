package launchpad

import "fmt"

// Wire message status bytes.
const (
	statusControl uint8 = 0xB0 // control change: data1 = address, data2 = value
	statusNote    uint8 = 0x90 // note-keyed LED set / button report
	statusBatch   uint8 = 0x92 // rapid update: two velocities per message
)

// Control addresses for the two duty-cycle ranges.
const (
	ctrlDutyLow  uint8 = 0x1E // numerators 1-8
	ctrlDutyHigh uint8 = 0x1F // numerators 9-16
)

// Brightness selects one of the device's three all-on intensities.
type Brightness int

const (
	BrightnessLow Brightness = iota
	BrightnessMedium
	BrightnessHigh
)

// Reset sends the control-reset message, clears both mirrored buffers to Off
// and returns buffer-control state to buffer 0 / buffer 0 / no flash.
func (c *Controller) Reset() error {
	if err := c.out.Send(statusControl, 0, 0); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	c.mu.Lock()
	c.clearBuffers(Off)
	c.displaying, c.updating, c.flashing = 0, 0, false
	c.mu.Unlock()
	c.notifyLedChange()
	return nil
}

// AllOn lights every LED at the given intensity. Both mirrored buffers take
// the matching Amber shade, since that is what the device displays. An
// unrecognized brightness falls back to medium rather than failing.
func (c *Controller) AllOn(brightness Brightness) error {
	value, color := uint8(0x7E), AmberMed
	switch brightness {
	case BrightnessLow:
		value, color = 0x7D, AmberLow
	case BrightnessHigh:
		value, color = 0x7F, Amber
	}
	if err := c.out.Send(statusControl, 0, value); err != nil {
		return fmt.Errorf("all leds on: %w", err)
	}
	c.mu.Lock()
	c.clearBuffers(color)
	c.mu.Unlock()
	c.notifyLedChange()
	return nil
}

// SetLed writes one LED. The flags target the device's double buffering:
// bothBuffers writes the LED into both device buffers, clearOther clears the
// other buffer's copy. The mirror records the write in the updating buffer.
func (c *Controller) SetLed(button string, color Color, bothBuffers, clearOther bool) error {
	key, ok := buttonKeys[button]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidButton, button)
	}
	v, err := velocityFor(color, bothBuffers, clearOther)
	if err != nil {
		return err
	}
	if err := c.sendKeyed(key, v); err != nil {
		return fmt.Errorf("set led %s: %w", button, err)
	}
	c.mu.Lock()
	c.buffers[c.updating][button] = color
	c.mu.Unlock()
	c.notifyLedChange()
	return nil
}

// SetLeds writes up to 80 LEDs in one rapid-update run, assigning colors to
// buttons in batch order. Velocities go out two per message; the mirror is
// updated as each message is queued, so a mid-batch send failure leaves the
// mirror reflecting exactly the prefix that reached the wire (resynchronize
// with Reset or a fresh full batch).
func (c *Controller) SetLeds(colors []Color) error {
	if len(colors) == 0 || len(colors) > len(batchOrder) {
		return fmt.Errorf("%w: batch of %d colors (want 1-%d)", ErrInvalidArgument, len(colors), len(batchOrder))
	}
	// Validate everything before the first send.
	vels := make([]uint8, len(colors))
	for i, col := range colors {
		v, err := velocityFor(col, false, false)
		if err != nil {
			return err
		}
		vels[i] = v
	}

	for i := 0; i+1 < len(colors); i += 2 {
		if err := c.out.Send(statusBatch, vels[i], vels[i+1]); err != nil {
			return fmt.Errorf("batch led write: %w", err)
		}
		c.mu.Lock()
		c.buffers[c.updating][batchOrder[i].Name] = colors[i]
		c.buffers[c.updating][batchOrder[i+1].Name] = colors[i+1]
		c.mu.Unlock()
	}
	if len(colors)%2 == 1 {
		// Odd tail: one addressed write for the final button.
		last := len(colors) - 1
		if err := c.sendKeyed(buttonKeys[batchOrder[last].Name], vels[last]); err != nil {
			return fmt.Errorf("batch led write: %w", err)
		}
		c.mu.Lock()
		c.buffers[c.updating][batchOrder[last].Name] = colors[last]
		c.mu.Unlock()
	}

	// An addressed write takes the device out of rapid-update mode so the
	// next batch starts at button "00" again. It re-sends colors[0] to "00",
	// which the mirror already holds, so no mirror write happens here.
	if err := c.out.Send(statusNote, buttonKeys[batchOrder[0].Name].note, vels[0]); err != nil {
		return fmt.Errorf("batch flush: %w", err)
	}
	c.notifyLedChange()
	return nil
}

// SwitchDisplayingBuffer swaps which buffer the device shows.
func (c *Controller) SwitchDisplayingBuffer() error {
	c.mu.RLock()
	d, u, f := 1-c.displaying, c.updating, c.flashing
	c.mu.RUnlock()
	if err := c.out.Send(statusControl, 0, bufferControlByte(d, u, f, false)); err != nil {
		return fmt.Errorf("switch displaying buffer: %w", err)
	}
	c.mu.Lock()
	c.displaying = d
	c.mu.Unlock()
	return nil
}

// SwitchUpdatingBuffer swaps which buffer receives LED writes. With copyLeds
// the device copies the displaying buffer's LED states into the new updating
// buffer; the mirror follows suit. copyLeds is a one-shot bit in the control
// byte, not persistent state.
func (c *Controller) SwitchUpdatingBuffer(copyLeds bool) error {
	c.mu.RLock()
	d, u, f := c.displaying, 1-c.updating, c.flashing
	c.mu.RUnlock()
	if err := c.out.Send(statusControl, 0, bufferControlByte(d, u, f, copyLeds)); err != nil {
		return fmt.Errorf("switch updating buffer: %w", err)
	}
	c.mu.Lock()
	c.updating = u
	if copyLeds {
		for name, col := range c.buffers[d] {
			c.buffers[u][name] = col
		}
	}
	c.mu.Unlock()
	if copyLeds {
		c.notifyLedChange()
	}
	return nil
}

// SwitchFlash toggles device-side auto-alternation of the displayed buffer.
func (c *Controller) SwitchFlash() error {
	c.mu.RLock()
	d, u, f := c.displaying, c.updating, !c.flashing
	c.mu.RUnlock()
	if err := c.out.Send(statusControl, 0, bufferControlByte(d, u, f, false)); err != nil {
		return fmt.Errorf("switch flash: %w", err)
	}
	c.mu.Lock()
	c.flashing = f
	c.mu.Unlock()
	return nil
}

// SetDutyCycle sets the LED duty cycle to numerator/denominator, with
// numerator 1-16 and denominator 3-18. The two numerator halves go to
// separate control addresses.
func (c *Controller) SetDutyCycle(numerator, denominator int) error {
	if numerator < 1 || numerator > 16 || denominator < 3 || denominator > 18 {
		return fmt.Errorf("%w: duty cycle %d/%d", ErrInvalidArgument, numerator, denominator)
	}
	addr := ctrlDutyLow
	if numerator > 8 {
		addr = ctrlDutyHigh
	}
	value := uint8(16*((numerator-1)%8) + denominator - 3)
	if err := c.out.Send(statusControl, addr, value); err != nil {
		return fmt.Errorf("set duty cycle: %w", err)
	}
	return nil
}

// SetBrightness maps a 1-5 level onto duty cycles 1/5 through 5/5.
func (c *Controller) SetBrightness(level int) error {
	if level < 1 || level > 5 {
		return fmt.Errorf("%w: brightness level %d", ErrInvalidArgument, level)
	}
	return c.SetDutyCycle(level, 5)
}

func (c *Controller) sendKeyed(key buttonKey, velocity uint8) error {
	if key.isNote {
		return c.out.Send(statusNote, key.note, velocity)
	}
	return c.out.Send(statusControl, key.automap, velocity)
}

// bufferControlByte folds the persistent buffer-control state plus the
// one-shot copy bit into the device's control value.
func bufferControlByte(displaying, updating uint8, flashing, copyLeds bool) uint8 {
	v := 32 + displaying + updating*4
	if flashing {
		v += 8
	}
	if copyLeds {
		v += 16
	}
	return v
}
