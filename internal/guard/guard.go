// Package guard provides callbacks that fire at most once and can be
// disarmed before they fire.
//
// A Slot holds the single "next callback" of an owner. Arming a new guard in
// the slot cancels whatever was armed before, so at most one pending callback
// exists per owner at any time.
package guard

// Guard wraps a callback so it runs at most once.
// A nil *Guard is valid and behaves like a cancelled guard.
type Guard struct {
	fn     func()
	active bool
	slot   *Slot
}

// New returns an armed guard for fn that is not attached to any slot.
func New(fn func()) *Guard {
	return &Guard{fn: fn, active: true}
}

// Invoke runs the wrapped callback if the guard is still armed.
// Subsequent calls are no-ops. Returns true if the callback ran.
func (g *Guard) Invoke() bool {
	if g == nil || !g.active {
		return false
	}
	g.active = false
	if g.slot != nil && g.slot.current == g {
		g.slot.current = nil
	}
	if g.fn != nil {
		g.fn()
	}
	return true
}

// Cancel disarms the guard. A later Invoke does nothing.
func (g *Guard) Cancel() {
	if g == nil {
		return
	}
	g.active = false
}

// Armed reports whether Invoke would still run the callback.
func (g *Guard) Armed() bool {
	return g != nil && g.active
}

// Func returns a plain func that invokes the guard. Handy for APIs that take
// a completion callback.
func (g *Guard) Func() func() {
	return func() { g.Invoke() }
}

// Slot holds at most one armed guard.
type Slot struct {
	current *Guard
}

// Arm cancels the currently armed guard (if any) and returns a new guard for fn.
func (s *Slot) Arm(fn func()) *Guard {
	s.Cancel()
	g := &Guard{fn: fn, active: true, slot: s}
	s.current = g
	return g
}

// Cancel disarms and forgets the current guard.
func (s *Slot) Cancel() {
	if s.current != nil {
		s.current.Cancel()
		s.current = nil
	}
}

// Pending reports whether an armed guard is waiting in the slot.
func (s *Slot) Pending() bool {
	return s.current.Armed()
}
