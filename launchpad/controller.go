package launchpad

import "sync"

// Output is the send half of the device's message channel. Send queues one
// 3-byte wire message; it is expected to fail only when the underlying
// channel does, and such failures are surfaced to callers unretried.
type Output interface {
	Send(status, data1, data2 uint8) error
}

// Controller mirrors the device's double-buffered LED state and drives its
// wire protocol.
//
// The mutex only protects the in-memory mirror. The device itself carries an
// implicit state machine (rapid-update mode in particular), so callers must
// let each command return before issuing the next; two interleaved SetLeds
// calls will corrupt device-side batch state no matter what locking we do.
type Controller struct {
	out Output

	mu         sync.RWMutex
	buffers    [2]map[string]Color
	displaying uint8
	updating   uint8
	flashing   bool
	pressed    map[string]bool

	listeners listenerRegistry
}

// New creates a controller over the given output. Both LED buffers start
// with every button set to Off; the device is not touched until the first
// command (callers usually Reset right after connecting).
func New(out Output) *Controller {
	c := &Controller{
		out:     out,
		pressed: make(map[string]bool),
	}
	for i := range c.buffers {
		c.buffers[i] = make(map[string]Color, len(allButtons))
	}
	c.clearBuffers(Off)
	c.listeners.init()
	return c
}

// clearBuffers sets every button in both buffers to the given color.
// Callers hold the write lock or own the controller exclusively.
func (c *Controller) clearBuffers(color Color) {
	for _, b := range allButtons {
		c.buffers[0][b.Name] = color
		c.buffers[1][b.Name] = color
	}
}

// BufferColor returns the color of one button in buffer 0 or 1.
func (c *Controller) BufferColor(buffer int, button string) (Color, bool) {
	if buffer != 0 && buffer != 1 {
		return Color{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	col, ok := c.buffers[buffer][button]
	return col, ok
}

// BufferContents returns a copy of one buffer's button-to-color mapping.
func (c *Controller) BufferContents(buffer int) map[string]Color {
	if buffer != 0 && buffer != 1 {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]Color, len(c.buffers[buffer]))
	for name, col := range c.buffers[buffer] {
		out[name] = col
	}
	return out
}

// DisplayingBuffer returns the buffer currently shown on the device.
func (c *Controller) DisplayingBuffer() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int(c.displaying)
}

// UpdatingBuffer returns the buffer receiving LED writes.
func (c *Controller) UpdatingBuffer() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int(c.updating)
}

// Flashing reports whether the device auto-alternates displayed buffers.
func (c *Controller) Flashing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.flashing
}

// IsPressed reports whether the named button is currently held down.
func (c *Controller) IsPressed(button string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pressed[button]
}

// PressedButtons returns the currently held buttons in physical order.
func (c *Controller) PressedButtons() []*Button {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*Button
	for _, b := range physicalOrder {
		if c.pressed[b.Name] {
			out = append(out, b)
		}
	}
	return out
}
