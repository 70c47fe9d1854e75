package midi

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-launchpad/debug"
	"go-launchpad/launchpad"
)

// Device binds one Launchpad's MIDI in/out ports to a protocol controller.
// It implements launchpad.Output on the way out and feeds inbound messages
// into the controller's dispatcher.
type Device struct {
	id       string
	inPort   drivers.In
	outPort  drivers.Out
	send     func(msg gomidi.Message) error
	stopFunc func()
	ctrl     *launchpad.Controller
}

// NewDevice opens the ports and starts the device from a known LED state.
func NewDevice(id string, inPort drivers.In, outPort drivers.Out) (*Device, error) {
	d := &Device{
		id:      id,
		inPort:  inPort,
		outPort: outPort,
	}

	if outPort != nil {
		send, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		d.send = send
	}

	d.ctrl = launchpad.New(d)

	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, d.onMessage)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		d.stopFunc = stop
	}

	if d.send != nil {
		if err := d.ctrl.Reset(); err != nil {
			if d.stopFunc != nil {
				d.stopFunc()
			}
			return nil, fmt.Errorf("initial reset: %w", err)
		}
	}

	return d, nil
}

func (d *Device) ID() string {
	return d.id
}

// Controller returns the protocol controller mirroring this device.
func (d *Device) Controller() *launchpad.Controller {
	return d.ctrl
}

// Send implements launchpad.Output over the gomidi port.
func (d *Device) Send(status, data1, data2 uint8) error {
	if d.send == nil {
		return fmt.Errorf("device %s: no output port", d.id)
	}
	return d.send(toMessage(status, data1, data2))
}

// toMessage turns a raw 3-byte wire message into a gomidi message. The
// rapid-update status 0x92 is a note-on on channel 2, so the low nibble of
// note statuses carries through as the channel.
func toMessage(status, data1, data2 uint8) gomidi.Message {
	switch status & 0xF0 {
	case 0x90:
		return gomidi.NoteOn(status&0x0F, data1, data2)
	case 0xB0:
		return gomidi.ControlChange(status&0x0F, data1, data2)
	default:
		return gomidi.Message([]byte{status, data1, data2})
	}
}

// onMessage reconstructs the 3-byte inbound shape the dispatcher expects.
// Drivers may report a release as note-off instead of note-on velocity 0.
func (d *Device) onMessage(msg gomidi.Message, timestampms int32) {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		d.ctrl.Handle([]byte{0x90, key, velocity})
	case msg.GetNoteOff(&channel, &key, &velocity):
		d.ctrl.Handle([]byte{0x90, key, 0x00})
	case msg.GetControlChange(&channel, &key, &velocity):
		d.ctrl.Handle([]byte{0xB0, key, velocity})
	}
}

// Close turns all LEDs off and releases the ports.
func (d *Device) Close() error {
	if d.send != nil {
		if err := d.ctrl.Reset(); err != nil {
			debug.Log("midi", "reset on close: %v", err)
		}
	}
	if d.stopFunc != nil {
		d.stopFunc()
	}
	return nil
}

// Find scans the current ports once and opens the first device whose port
// name matches the pattern. Used by the diagnostic CLI; the demo uses the
// polling DeviceManager instead.
func Find(pattern string) (*Device, error) {
	pattern = strings.ToLower(pattern)

	var inPort drivers.In
	for _, p := range gomidi.GetInPorts() {
		if strings.Contains(strings.ToLower(p.String()), pattern) {
			inPort = p
			break
		}
	}
	var outPort drivers.Out
	for _, p := range gomidi.GetOutPorts() {
		if strings.Contains(strings.ToLower(p.String()), pattern) {
			outPort = p
			break
		}
	}
	if inPort == nil && outPort == nil {
		return nil, fmt.Errorf("no port matching %q", pattern)
	}

	id := pattern
	if outPort != nil {
		id = outPort.String()
	} else if inPort != nil {
		id = inPort.String()
	}
	return NewDevice(id, inPort, outPort)
}

// Shutdown releases the MIDI driver. Call once at process exit.
func Shutdown() {
	gomidi.CloseDriver()
}
