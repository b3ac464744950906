// Package transition drives popup slides from the bubbletea event loop.
package transition

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dropwidgets/internal/ui/popup"
)

// DefaultFrameInterval is the delay between two frames (~60fps).
const DefaultFrameInterval = time.Second / 60

// FrameMsg advances the animation with the given id.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// TickDriver implements popup.Driver on top of tea.Tick. It never calls a
// completion callback from a timer goroutine: frames come back as FrameMsg
// and completion happens inside Update.
type TickDriver struct {
	interval time.Duration
	now      func() time.Time

	nextID  int
	running map[int]*animation
	pending []tea.Cmd
}

type animation struct {
	id       int
	start    time.Time
	duration time.Duration
	ease     Func
	done     func()
	progress float64
	driver   *TickDriver
}

// Cancel stops the frames of the animation and drops its completion.
func (a *animation) Cancel() {
	if a == nil || a.driver == nil {
		return
	}
	delete(a.driver.running, a.id)
	a.driver = nil
}

// Option configures a TickDriver.
type Option func(*TickDriver)

// WithFrameInterval sets the delay between frames.
func WithFrameInterval(d time.Duration) Option {
	return func(t *TickDriver) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithClock overrides the clock used to stamp animation starts.
func WithClock(now func() time.Time) Option {
	return func(t *TickDriver) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTickDriver creates a driver with no running animation.
func NewTickDriver(opts ...Option) *TickDriver {
	d := &TickDriver{
		interval: DefaultFrameInterval,
		now:      time.Now,
		running:  make(map[int]*animation),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Animate implements popup.Driver. The first frame command is queued and must
// be collected with Cmd after the owner finished handling its message.
func (d *TickDriver) Animate(
	_ popup.Element,
	_ popup.Declaration,
	duration time.Duration,
	easing string,
	done func(),
) popup.Handle {
	d.nextID++
	a := &animation{
		id:       d.nextID,
		start:    d.now(),
		duration: duration,
		ease:     Lookup(easing),
		done:     done,
		driver:   d,
	}
	d.running[a.id] = a
	d.pending = append(d.pending, d.frame(a.id))
	return a
}

func (d *TickDriver) frame(id int) tea.Cmd {
	return tea.Tick(d.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Cmd drains the frame commands queued since the last call.
func (d *TickDriver) Cmd() tea.Cmd {
	if len(d.pending) == 0 {
		return nil
	}
	cmds := d.pending
	d.pending = nil
	return tea.Batch(cmds...)
}

// Update handles a FrameMsg. handled is false for any other message. Frames
// of cancelled animations are swallowed.
func (d *TickDriver) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	f, ok := msg.(FrameMsg)
	if !ok {
		return nil, false
	}
	a, ok := d.running[f.ID]
	if !ok {
		return d.Cmd(), true
	}

	t := 1.0
	if a.duration > 0 {
		t = float64(f.Time.Sub(a.start)) / float64(a.duration)
	}
	if t < 1 {
		a.progress = a.ease(max(t, 0))
		d.pending = append(d.pending, d.frame(a.id))
		return d.Cmd(), true
	}

	a.progress = 1
	delete(d.running, a.id)
	a.driver = nil
	if a.done != nil {
		a.done()
	}
	// done may have started a new animation
	return d.Cmd(), true
}

// Progress implements popup.ProgressReporter.
func (d *TickDriver) Progress(h popup.Handle) (float64, bool) {
	a, ok := h.(*animation)
	if !ok || a == nil {
		return 0, false
	}
	if _, running := d.running[a.id]; !running {
		return 0, false
	}
	return a.progress, true
}

// Running reports whether any animation is in flight.
func (d *TickDriver) Running() bool {
	return len(d.running) > 0
}
