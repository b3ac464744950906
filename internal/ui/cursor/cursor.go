// Package cursor tracks the focused row and scroll window of an option list.
package cursor

// None is the position of a cursor that points at no row.
const None = -1

// Cursor manages the focused position and the scroll offset of a list.
// The list length and viewport height are passed to methods rather than
// stored, since they change with filtering and resizing.
type Cursor struct {
	pos    int // Focused row, or None
	offset int // First visible row
	margin int // Rows kept visible above/below the focused row
}

// New creates a cursor on the first row with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the focused row, or None.
func (c Cursor) Pos() int {
	return c.pos
}

// Valid reports whether the cursor points at a row of a list of listLen.
func (c Cursor) Valid(listLen int) bool {
	return c.pos >= 0 && c.pos < listLen
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Margin returns the scroll margin.
func (c Cursor) Margin() int {
	return c.margin
}

// Jump focuses pos, clamped to the list, and scrolls it into view.
// If listLen is 0, this is a no-op.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Move shifts the focus by delta rows. A cursor on no row starts from the
// top when moving down and from the bottom when moving up.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	if c.pos == None {
		if delta > 0 {
			c.Jump(0, listLen, height)
		} else {
			c.Jump(listLen-1, listLen, height)
		}
		return
	}
	c.Jump(c.pos+delta, listLen, height)
}

// Clear points the cursor at no row, keeping the scroll offset.
func (c *Cursor) Clear() {
	c.pos = None
}

// Reset focuses the first row and scrolls to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// ScrollTop scrolls to the top without moving the focus.
func (c *Cursor) ScrollTop() {
	c.offset = 0
}

// EnsureVisible adjusts the scroll offset to keep the focused row visible.
func (c *Cursor) EnsureVisible(listLen, height int) {
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos != None {
		// Margin cannot exceed half the window.
		margin := min(c.margin, (height-1)/2)
		if c.pos < c.offset+margin {
			c.offset = max(c.pos-margin, 0)
		}
		if c.pos >= c.offset+height-margin {
			c.offset = c.pos - height + margin + 1
		}
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds keeps the cursor inside a list that shrank. An empty list
// leaves the cursor on no row. Returns true if the position changed.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := c.pos
	switch {
	case listLen == 0:
		c.pos = None
		c.offset = 0
	case c.pos != None:
		c.pos = clamp(c.pos, listLen-1)
	}
	return c.pos != old
}

// VisibleRange returns the visible rows [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, max(listLen-height, 0))
	return start, min(start+height, listLen)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
