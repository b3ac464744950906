package popup

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dropwidgets/internal/guard"
	"github.com/llehouerou/dropwidgets/internal/mount"
)

const (
	// DefaultDuration is the slide duration used when Props.Duration is zero.
	DefaultDuration = 200 * time.Millisecond

	// DefaultEasing is the easing name passed to the driver by default.
	DefaultEasing = "ease"
)

// Props is what the owner controls. The owner reports every change through
// OnPropsChanged (or SetProps).
type Props struct {
	Open     bool
	DropUp   bool
	Duration time.Duration

	// Content is the element sliding inside the tray.
	Content Element
	// ContentKey identifies the content; a different key between two updates
	// marks the content as changed.
	ContentKey string

	OnOpening func()
	OnOpen    func()
	OnClosing func()
	OnClose   func()
}

func noop() {}

func (p Props) withDefaults() Props {
	if p.Duration <= 0 {
		p.Duration = DefaultDuration
	}
	if p.OnOpening == nil {
		p.OnOpening = noop
	}
	if p.OnOpen == nil {
		p.OnOpen = noop
	}
	if p.OnClosing == nil {
		p.OnClosing = noop
	}
	if p.OnClose == nil {
		p.OnClose = noop
	}
	return p
}

// Config holds the collaborators injected at construction.
type Config struct {
	// Driver runs the slide. A nil driver completes every transition
	// immediately.
	Driver Driver
	// Prober measures content height. Defaults to counting rendered lines.
	Prober Prober
	// Easing is passed to the driver. Defaults to DefaultEasing.
	Easing string
	// TranslationMap, when set, turns the positional offset into a transform.
	TranslationMap TranslationMap
	Logger         *slog.Logger
}

// State is the record owned by one Machine.
type State struct {
	Status Status
	// Height is the container height in rows; HeightSet is false until the
	// first measurement.
	Height    int
	HeightSet bool
	// InitialRender is true until the first render commit and suppresses the
	// offset so the tray does not flash on first paint.
	InitialRender bool
	// ContentChanged is set when the content key differed on the last update.
	ContentChanged bool
}

// Style is the container style resolved for the current state.
type Style struct {
	Display   string
	Overflow  string
	Height    int
	HeightSet bool
	Offset    Declaration
}

// Machine drives a popup tray through closed, opening, open and closing.
//
// All methods must be called from the owner's event loop. Lifecycle
// callbacks fire in order (OnOpening then OnOpen, OnClosing then OnClose),
// never twice for one transition, and never after Unmount.
type Machine struct {
	props Props
	cfg   Config
	state State

	transition Handle
	next       guard.Slot
	mounted    mount.Tracker
	log        *slog.Logger
}

// New creates a machine. It starts opening if props.Open is set, closed
// otherwise; nothing animates until the first OnRenderCommitted.
func New(props Props, cfg Config) *Machine {
	if cfg.Easing == "" {
		cfg.Easing = DefaultEasing
	}
	if cfg.Prober == nil {
		cfg.Prober = lineProber{}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	m := &Machine{
		props: props.withDefaults(),
		cfg:   cfg,
		log:   log,
		state: State{
			Status:        initialStatus(props.Open),
			InitialRender: true,
		},
	}
	m.mounted.OnUnmount(m.cancelNext)
	return m
}

func initialStatus(open bool) Status {
	if open {
		return StatusOpening
	}
	return StatusClosed
}

// Props returns the current props.
func (m *Machine) Props() Props {
	return m.props
}

// State returns a copy of the current state record.
func (m *Machine) State() State {
	return m.state
}

// Status returns the current lifecycle phase.
func (m *Machine) Status() Status {
	return m.state.Status
}

// ContentChanged reports whether the content key changed on the last update.
func (m *Machine) ContentChanged() bool {
	return m.state.ContentChanged
}

// Transitioning reports whether a slide is logically in progress.
func (m *Machine) Transitioning() bool {
	return m.state.Status.Transitioning()
}

// Mounted reports whether the machine has not been torn down.
func (m *Machine) Mounted() bool {
	return m.mounted.Mounted()
}

// SetProps is OnPropsChanged with the machine's current props as old.
func (m *Machine) SetProps(next Props) {
	m.OnPropsChanged(m.props, next)
}

// OnPropsChanged reacts to an owner update. Opening happens only on a
// false->true edge of Open and closing on a true->false edge; everything else
// is idempotent. A DropUp flip during a slide restarts the same slide with
// the new geometry without firing enter callbacks again.
func (m *Machine) OnPropsChanged(old, next Props) {
	if !m.mounted.Mounted() {
		return
	}
	next = next.withDefaults()
	m.props = next
	m.state.ContentChanged = old.ContentKey != next.ContentKey

	if !m.mounted.Painted() {
		// Nothing is on screen yet; the first commit decides what to do.
		m.state.Status = initialStatus(next.Open)
		return
	}

	opening := !old.Open && next.Open
	closing := old.Open && !next.Open

	switch {
	case opening:
		m.open()
	case closing:
		m.close()
	case old.DropUp != next.DropUp:
		if m.state.Status.Transitioning() {
			m.restart()
		}
	case next.Open:
		m.settle()
	}
}

// OnRenderCommitted is the post-paint hook. The first call mounts the
// machine (opening without animation when it started open); later calls
// re-measure the height while settled open.
func (m *Machine) OnRenderCommitted() {
	if !m.mounted.Mounted() {
		return
	}
	if !m.mounted.Painted() {
		m.mounted.Mount()
		if m.state.Status == StatusOpening {
			m.enter(StatusOpening, StatusOpen, m.onOpening, m.onOpen, true)
		}
		m.state.InitialRender = false
		return
	}
	if m.props.Open {
		m.settle()
	}
}

// Unmount tears the machine down. Any in-flight transition is cancelled and
// no callback or state change happens afterwards.
func (m *Machine) Unmount() {
	if m.mounted.Mounted() {
		m.log.Debug("popup unmounted", "status", m.state.Status)
	}
	m.mounted.Unmount()
}

// Offset returns the offset for the current status.
func (m *Machine) Offset() Declaration {
	return m.OffsetFor(m.state.Status)
}

// OffsetFor returns the resting offset of a status, or the zero declaration
// during the initial render.
func (m *Machine) OffsetFor(s Status) Declaration {
	if m.state.InitialRender {
		return Declaration{}
	}
	return offsetFor(s, m.props.DropUp, m.cfg.TranslationMap)
}

// Style resolves the container style.
func (m *Machine) Style() Style {
	return Style{
		Display:   m.state.Status.Display(),
		Overflow:  m.state.Status.Overflow(),
		Height:    m.state.Height,
		HeightSet: m.state.HeightSet,
		Offset:    m.Offset(),
	}
}

// Progress returns how visible the tray is, from 0 (hidden) to 1 (fully
// shown), following the driver's eased progress when it reports one.
func (m *Machine) Progress() float64 {
	switch m.state.Status {
	case StatusOpen:
		return 1
	case StatusClosed:
		return 0
	}
	if m.state.InitialRender {
		return 1
	}
	p := 0.0
	if r, ok := m.cfg.Driver.(ProgressReporter); ok && m.transition != nil {
		if v, ok := r.Progress(m.transition); ok {
			p = v
		}
	}
	if m.state.Status == StatusClosing {
		return 1 - p
	}
	return p
}

func (m *Machine) onOpening() { m.props.OnOpening() }
func (m *Machine) onOpen()    { m.props.OnOpen() }
func (m *Machine) onClosing() { m.props.OnClosing() }
func (m *Machine) onClose()   { m.props.OnClose() }

func (m *Machine) open() {
	m.enter(StatusOpening, StatusOpen, m.onOpening, m.onOpen, false)
}

func (m *Machine) close() {
	m.enter(StatusClosing, StatusClosed, m.onClosing, m.onClose, false)
}

// enter moves into phase and slides towards rest. Any in-flight slide is
// cancelled first. instant skips the driver, which is used for the first
// paint of a tray that starts open.
func (m *Machine) enter(phase, rest Status, before, after func(), instant bool) {
	if !m.mounted.Mounted() {
		return
	}
	m.cancelNext()
	height, measured := m.measure()

	before()

	m.setState(func(s *State) {
		s.Status = phase
		if measured {
			s.Height = height
			s.HeightSet = true
		}
	}, func() {
		if instant {
			m.setState(func(s *State) { s.Status = rest }, after)
			return
		}
		m.slideTo(rest, after)
	})
}

// restart re-runs the current slide from scratch with fresh geometry.
func (m *Machine) restart() {
	m.cancelNext()
	if height, ok := m.measure(); ok {
		m.state.Height = height
		m.state.HeightSet = true
	}
	switch m.state.Status {
	case StatusOpening:
		m.log.Debug("popup slide restarted", "status", m.state.Status, "drop_up", m.props.DropUp)
		m.slideTo(StatusOpen, m.onOpen)
	case StatusClosing:
		m.log.Debug("popup slide restarted", "status", m.state.Status, "drop_up", m.props.DropUp)
		m.slideTo(StatusClosed, m.onClose)
	}
}

func (m *Machine) slideTo(rest Status, after func()) {
	target := offsetFor(rest, m.props.DropUp, m.cfg.TranslationMap)
	done := m.next.Arm(func() {
		m.transition = nil
		m.setState(func(s *State) { s.Status = rest }, after)
	})

	if m.cfg.Driver == nil {
		done.Invoke()
		return
	}
	h := m.cfg.Driver.Animate(m.props.Content, target, m.props.Duration, m.cfg.Easing, done.Func())
	if done.Armed() {
		m.transition = h
	}
}

// settle tracks content height while open, without any transition.
func (m *Machine) settle() {
	if m.state.Status != StatusOpen {
		return
	}
	height, ok := m.measure()
	if !ok || (m.state.HeightSet && height == m.state.Height) {
		return
	}
	m.setState(func(s *State) {
		s.Height = height
		s.HeightSet = true
	}, nil)
}

// setState mutates the record while mounted and then runs then through the
// next-callback slot.
func (m *Machine) setState(mutate func(*State), then func()) {
	if !m.mounted.Mounted() {
		return
	}
	prev := m.state
	mutate(&m.state)
	if prev.Status != m.state.Status {
		m.log.Debug("popup status changed", "from", prev.Status, "to", m.state.Status)
	} else if prev.Height != m.state.Height {
		m.log.Debug("popup height changed", "from", prev.Height, "to", m.state.Height)
	}
	if then != nil {
		m.next.Arm(then).Invoke()
	}
}

func (m *Machine) cancelNext() {
	if m.transition != nil {
		m.transition.Cancel()
		m.transition = nil
	}
	m.next.Cancel()
}

// measure never touches content that is not on screen yet.
func (m *Machine) measure() (int, bool) {
	if !m.mounted.Painted() || m.props.Content == nil {
		return 0, false
	}
	return m.cfg.Prober.MeasureHeight(m.props.Content), true
}

type lineProber struct{}

func (lineProber) MeasureHeight(el Element) int {
	v := el.View()
	if v == "" {
		return 0
	}
	return lipgloss.Height(v)
}
