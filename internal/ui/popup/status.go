package popup

// Status is the lifecycle phase of a popup tray. The zero value is closed.
type Status int

const (
	StatusClosed Status = iota
	StatusClosing
	StatusOpening
	StatusOpen
)

func (s Status) String() string {
	switch s {
	case StatusClosing:
		return "closing"
	case StatusClosed:
		return "closed"
	case StatusOpening:
		return "opening"
	case StatusOpen:
		return "open"
	}
	return "unknown"
}

// Overflow returns the overflow mode for the status: content is clipped
// everywhere except when settled open.
func (s Status) Overflow() string {
	if s == StatusOpen {
		return "visible"
	}
	return "hidden"
}

// Display returns the display mode for the status. A closed tray takes no
// space at all.
func (s Status) Display() string {
	if s == StatusClosed {
		return "none"
	}
	return "block"
}

// Transitioning reports whether the status is one of the animated phases.
func (s Status) Transitioning() bool {
	return s == StatusOpening || s == StatusClosing
}
