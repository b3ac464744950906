package ui

// Base holds the focus flag and the size given by the owner. Widgets embed
// it.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused records whether the widget has the keyboard.
func (b *Base) SetFocused(focused bool) { b.focused = focused }

// IsFocused implements part of Widget.
func (b Base) IsFocused() bool { return b.focused }

// SetSize records the size the owner laid the widget out at.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

// Width returns the laid out width.
func (b Base) Width() int { return b.width }

// Height returns the laid out height.
func (b Base) Height() int { return b.height }
