package popup

import "time"

// Element is the rendered content of the tray.
type Element interface {
	View() string
}

// Text is an Element backed by a pre-rendered string.
type Text string

// View implements Element.
func (t Text) View() string { return string(t) }

// Handle is a cancellable token for one running transition.
type Handle interface {
	// Cancel stops the transition; its completion callback never runs.
	Cancel()
}

// Driver performs a single timed slide of el towards target and calls done
// exactly once when it finishes naturally, never when cancelled.
// done must be delivered on the owner's event loop, not synchronously from
// Animate.
type Driver interface {
	Animate(el Element, target Declaration, d time.Duration, easing string, done func()) Handle
}

// ProgressReporter is implemented by drivers that can report how far a
// transition has advanced, as an eased value in [0, 1].
type ProgressReporter interface {
	Progress(h Handle) (float64, bool)
}

// Prober measures the rendered height of an element, vertical margins included.
type Prober interface {
	MeasureHeight(el Element) int
}
