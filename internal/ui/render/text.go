// Package render provides text helpers shared by the widgets' views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 so
// option labels coming from arbitrary data cannot break the terminal.
// Non-breaking spaces become regular spaces.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' {
			return true
		}
		if c >= 0x80 && c <= 0x9f {
			return true
		}
		if c == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return false
}

// Label prepares plain option text for a cell of maxWidth columns: it is
// sanitized and shortened with a single-character ellipsis. Wide characters
// (CJK, emoji) are measured with runewidth.
func Label(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Truncate shortens possibly styled text to maxWidth columns, keeping ANSI
// sequences intact.
func Truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills possibly styled text with spaces up to width columns.
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Row lays out left and right aligned content on one line of width columns.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
