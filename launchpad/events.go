package launchpad

import "github.com/google/uuid"

// Inbound status bytes reported with a button key.
const (
	statusPressed  uint8 = 0x7F
	statusReleased uint8 = 0x00
)

type listenerKind int

const (
	kindPress listenerKind = iota
	kindRelease
	kindLedChange
)

// listenerRegistry holds the three listener categories, keyed by
// subscription id so a cancel removes exactly one entry. Guarded by the
// controller mutex.
type listenerRegistry struct {
	press     map[uuid.UUID]func(*Button)
	release   map[uuid.UUID]func(*Button)
	ledChange map[uuid.UUID]func()
}

func (r *listenerRegistry) init() {
	r.press = make(map[uuid.UUID]func(*Button))
	r.release = make(map[uuid.UUID]func(*Button))
	r.ledChange = make(map[uuid.UUID]func())
}

// Subscription is an opaque handle for one registered listener.
type Subscription struct {
	c    *Controller
	kind listenerKind
	id   uuid.UUID
}

// Cancel removes the listener. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.c == nil {
		return
	}
	s.c.mu.Lock()
	switch s.kind {
	case kindPress:
		delete(s.c.listeners.press, s.id)
	case kindRelease:
		delete(s.c.listeners.release, s.id)
	case kindLedChange:
		delete(s.c.listeners.ledChange, s.id)
	}
	s.c.mu.Unlock()
	s.c = nil
}

// OnPress registers a listener for button presses.
func (c *Controller) OnPress(fn func(*Button)) *Subscription {
	id := uuid.New()
	c.mu.Lock()
	c.listeners.press[id] = fn
	c.mu.Unlock()
	return &Subscription{c: c, kind: kindPress, id: id}
}

// OnRelease registers a listener for button releases.
func (c *Controller) OnRelease(fn func(*Button)) *Subscription {
	id := uuid.New()
	c.mu.Lock()
	c.listeners.release[id] = fn
	c.mu.Unlock()
	return &Subscription{c: c, kind: kindRelease, id: id}
}

// OnLedChange registers a listener invoked after any LED-state mutation.
func (c *Controller) OnLedChange(fn func()) *Subscription {
	id := uuid.New()
	c.mu.Lock()
	c.listeners.ledChange[id] = fn
	c.mu.Unlock()
	return &Subscription{c: c, kind: kindLedChange, id: id}
}

// Handle processes one inbound wire message. Anything that is not a 3-byte
// press or release of a known button is dropped without comment: physical
// devices report keys and packets this model does not track.
func (c *Controller) Handle(msg []byte) {
	if len(msg) != 3 {
		return
	}
	var b *Button
	if msg[0] == statusNote {
		b = buttonsByNote[msg[1]]
	} else {
		b = buttonsByAutomap[msg[1]]
	}
	if b == nil {
		return
	}

	var fns []func(*Button)
	switch msg[2] {
	case statusPressed:
		c.mu.Lock()
		c.pressed[b.Name] = true
		fns = make([]func(*Button), 0, len(c.listeners.press))
		for _, fn := range c.listeners.press {
			fns = append(fns, fn)
		}
		c.mu.Unlock()
	case statusReleased:
		c.mu.Lock()
		delete(c.pressed, b.Name)
		fns = make([]func(*Button), 0, len(c.listeners.release))
		for _, fn := range c.listeners.release {
			fns = append(fns, fn)
		}
		c.mu.Unlock()
	default:
		return
	}
	for _, fn := range fns {
		fn(b)
	}
}

// notifyLedChange invokes LED-change listeners outside the lock.
func (c *Controller) notifyLedChange() {
	c.mu.RLock()
	fns := make([]func(), 0, len(c.listeners.ledChange))
	for _, fn := range c.listeners.ledChange {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
