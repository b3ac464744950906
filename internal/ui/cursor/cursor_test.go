package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(1)
	if c.Pos() != 0 {
		t.Errorf("New() pos = %d, want 0", c.Pos())
	}
	if c.Offset() != 0 {
		t.Errorf("New() offset = %d, want 0", c.Offset())
	}
	if c.Margin() != 1 {
		t.Errorf("New() margin = %d, want 1", c.Margin())
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down within window", 1, 0, 1, 10, 5, 1, 0},
		{"down scrolls with margin", 1, 0, 4, 10, 5, 4, 1},
		{"up clamps to first", 1, 2, -5, 10, 5, 0, 0},
		{"down clamps to last", 1, 5, 15, 10, 5, 9, 5},
		{"from none down goes first", 1, None, 1, 10, 5, 0, 0},
		{"from none up goes last", 1, None, -1, 10, 5, 9, 5},
		{"large margin is capped", 10, 0, 3, 10, 5, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.pos = tt.initial
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Move() pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Move() offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(1)
	c.pos = 5
	c.Move(1, 0, 5)
	if c.Pos() != 5 {
		t.Errorf("Move() on empty list changed pos to %d", c.Pos())
	}
}

func TestJump(t *testing.T) {
	c := New(1)
	c.Jump(5, 10, 5)
	if c.Pos() != 5 {
		t.Errorf("Jump() pos = %d, want 5", c.Pos())
	}
	c.Jump(100, 10, 5)
	if c.Pos() != 9 {
		t.Errorf("Jump() pos = %d, want 9 (clamped)", c.Pos())
	}
	c.Jump(-5, 10, 5)
	if c.Pos() != 0 {
		t.Errorf("Jump() pos = %d, want 0 (clamped)", c.Pos())
	}
}

func TestClearAndValid(t *testing.T) {
	c := New(1)
	if !c.Valid(3) {
		t.Error("first row should be valid")
	}
	c.Clear()
	if c.Pos() != None || c.Valid(3) {
		t.Errorf("Clear() pos = %d, want None", c.Pos())
	}
	if c.Valid(0) {
		t.Error("nothing is valid in an empty list")
	}
}

func TestClampToBounds(t *testing.T) {
	tests := []struct {
		name    string
		pos     int
		len     int
		wantPos int
		changed bool
	}{
		{"inside", 2, 5, 2, false},
		{"shrunk", 7, 5, 4, true},
		{"emptied", 2, 0, None, true},
		{"none stays none", None, 5, None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			c.pos = tt.pos
			changed := c.ClampToBounds(tt.len)
			if c.Pos() != tt.wantPos || changed != tt.changed {
				t.Errorf("ClampToBounds(%d) = (%d, %v), want (%d, %v)",
					tt.len, c.Pos(), changed, tt.wantPos, tt.changed)
			}
		})
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		len       int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"top", 0, 10, 4, 0, 4},
		{"middle", 3, 10, 4, 3, 7},
		{"short list", 0, 2, 4, 0, 2},
		{"stale offset after shrink", 8, 5, 4, 1, 5},
		{"empty", 0, 0, 4, 0, 0},
		{"no height", 0, 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			c.offset = tt.offset
			start, end := c.VisibleRange(tt.len, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResetAndScrollTop(t *testing.T) {
	c := New(1)
	c.Jump(8, 10, 4)
	c.ScrollTop()
	if c.Offset() != 0 || c.Pos() != 8 {
		t.Errorf("ScrollTop() = (%d, %d), want offset 0 pos 8", c.Offset(), c.Pos())
	}
	c.Reset()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("Reset() = (%d, %d), want (0, 0)", c.Pos(), c.Offset())
	}
}
