// Package testutil provides helpers for testing widgets and their rendering.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// SplitLines splits output into lines without the trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Row returns line i of the stripped output, or "" past the end.
func Row(output string, i int) string {
	lines := SplitLines(StripANSI(output))
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}
