// Package mount tracks whether a component instance is still alive so late
// asynchronous completions can be dropped after teardown.
package mount

// Tracker answers "is the owning instance still alive".
// The zero value is considered mounted: a freshly constructed instance that
// has not been painted yet is alive.
type Tracker struct {
	painted   bool
	unmounted bool
	hooks     []func()
}

// Mount records that the instance has been committed to the screen.
// It never revives a torn-down instance.
func (t *Tracker) Mount() {
	if t.unmounted {
		return
	}
	t.painted = true
}

// Painted reports whether Mount ran and the instance is still alive, i.e.
// there is a rendered element that can be measured.
func (t *Tracker) Painted() bool {
	return t.painted && !t.unmounted
}

// Mounted reports whether the instance is still alive.
func (t *Tracker) Mounted() bool {
	return !t.unmounted
}

// OnUnmount registers fn to run once at teardown. Registering after
// teardown runs nothing.
func (t *Tracker) OnUnmount(fn func()) {
	if t.unmounted || fn == nil {
		return
	}
	t.hooks = append(t.hooks, fn)
}

// Unmount flips the tracker to not-mounted and runs the teardown hooks.
// Only the first call has any effect.
func (t *Tracker) Unmount() {
	if t.unmounted {
		return
	}
	t.unmounted = true
	hooks := t.hooks
	t.hooks = nil
	for _, fn := range hooks {
		fn()
	}
}

// Do runs fn only while mounted and reports whether it ran.
func (t *Tracker) Do(fn func()) bool {
	if t.unmounted {
		return false
	}
	fn()
	return true
}
