package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-launchpad/debug"
)

// DeviceEvent is emitted when devices connect/disconnect.
type DeviceEvent struct {
	Type   DeviceEventType
	Device *Device
	ID     string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager handles hot-plug detection of Launchpads whose port names
// match a pattern.
type DeviceManager struct {
	pattern  string
	devices  map[string]*Device
	mu       sync.RWMutex
	events   chan DeviceEvent
	pollRate time.Duration
}

// NewDeviceManager creates a manager matching port names against pattern
// (case-insensitive substring).
func NewDeviceManager(pattern string) *DeviceManager {
	return &DeviceManager{
		pattern:  strings.ToLower(pattern),
		devices:  make(map[string]*Device),
		events:   make(chan DeviceEvent, 16),
		pollRate: time.Second,
	}
}

// Events returns a channel of device connect/disconnect events.
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Devices returns a snapshot of connected devices.
func (dm *DeviceManager) Devices() map[string]*Device {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	out := make(map[string]*Device, len(dm.devices))
	for k, v := range dm.devices {
		out[k] = v
	}
	return out
}

// First returns any connected device (or nil).
func (dm *DeviceManager) First() *Device {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	for _, d := range dm.devices {
		return d
	}
	return nil
}

// Run starts the polling loop (blocking - run in goroutine).
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	// Enumerate ports with a timeout (CoreMIDI can hang).
	type portsResult struct {
		inPorts  []drivers.In
		outPorts []drivers.Out
	}

	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{inPorts: gomidi.GetInPorts(), outPorts: gomidi.GetOutPorts()}
	}()

	var inPorts []drivers.In
	var outPorts []drivers.Out
	select {
	case result := <-ch:
		inPorts = result.inPorts
		outPorts = result.outPorts
	case <-time.After(3 * time.Second):
		debug.Log("midi", "port enumeration timed out, skipping scan")
		return
	}

	seenIDs := make(map[string]bool)

	for i, inPort := range inPorts {
		name := strings.ToLower(inPort.String())
		if !dm.matches(name) {
			continue
		}
		id := inPort.String()
		seenIDs[id] = true

		dm.mu.RLock()
		_, exists := dm.devices[id]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		// Find the matching output port.
		var outPort drivers.Out
		for j, op := range outPorts {
			if strings.ToLower(op.String()) == name {
				outPort = outPorts[j]
				break
			}
		}

		dev, err := NewDevice(id, inPorts[i], outPort)
		if err != nil {
			debug.Log("midi", "open %s: %v", id, err)
			continue
		}

		dm.mu.Lock()
		dm.devices[id] = dev
		dm.mu.Unlock()

		dm.events <- DeviceEvent{Type: DeviceConnected, Device: dev, ID: id}
	}

	// Check for disconnects.
	dm.mu.Lock()
	var toRemove []string
	for id := range dm.devices {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		d := dm.devices[id]
		d.Close()
		delete(dm.devices, id)
		dm.events <- DeviceEvent{Type: DeviceDisconnected, ID: id}
	}
	dm.mu.Unlock()
}

func (dm *DeviceManager) matches(lowerName string) bool {
	return strings.Contains(lowerName, dm.pattern)
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, d := range dm.devices {
		d.Close()
	}
	dm.devices = make(map[string]*Device)
}
