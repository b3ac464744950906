// Package filter narrows option lists down to the items matching a search
// term. Predicate modes keep the input order; trigram and fuzzy modes rank
// the results best first.
package filter

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Mode names a matching strategy.
type Mode string

// Matching strategies.
const (
	None       Mode = "none"
	StartsWith Mode = "startsWith"
	EndsWith   Mode = "endsWith"
	Contains   Mode = "contains"
	Eq         Mode = "eq"
	Trigram    Mode = "trigram"
	Fuzzy      Mode = "fuzzy"
)

// DefaultMinLength is the shortest term that triggers filtering.
const DefaultMinLength = 1

// ParseMode validates a mode name. An empty name means None.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return None, nil
	case None, StartsWith, EndsWith, Contains, Eq, Trigram, Fuzzy:
		return m, nil
	}
	return None, fmt.Errorf("unknown filter mode %q", s)
}

// Options configures Filter.
type Options struct {
	Mode          Mode
	CaseSensitive bool
	// MinLength is the shortest trimmed term that filters; shorter terms
	// return the items unchanged. Zero means DefaultMinLength.
	MinLength int
}

// Enabled reports whether the options filter anything at all.
func (o Options) Enabled() bool {
	return o.Mode != "" && o.Mode != None
}

func (o Options) active(term string) bool {
	minLength := o.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return o.Enabled() && term != "" && len([]rune(strings.TrimSpace(term))) >= minLength
}

// Match applies a mode to one text. Ranked modes answer whether the text
// would appear in their results at all.
func Match(mode Mode, text, term string, caseSensitive bool) bool {
	if !caseSensitive {
		text = strings.ToLower(text)
		term = strings.ToLower(term)
	}
	switch mode {
	case StartsWith:
		return strings.HasPrefix(text, term)
	case EndsWith:
		return strings.HasSuffix(text, term)
	case Contains:
		return strings.Contains(text, term)
	case Eq:
		return text == term
	case Trigram:
		return trigramScore(text, term) > 0
	case Fuzzy:
		return subsequence(term, text)
	default:
		return true
	}
}

// Filter returns the items whose text matches term.
func Filter[T any](items []T, text func(T) string, term string, opts Options) []T {
	if !opts.active(term) {
		return items
	}
	switch opts.Mode {
	case Trigram:
		return rankTrigram(items, text, term, opts.CaseSensitive)
	case Fuzzy:
		return rankFuzzy(items, text, term, opts.CaseSensitive)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(opts.Mode, text(it), term, opts.CaseSensitive) {
			out = append(out, it)
		}
	}
	return out
}

// IndexOf returns the index of the first item matching term with mode, or
// -1. It ignores MinLength and is used to focus the closest match.
func IndexOf[T any](items []T, text func(T) string, term string, opts Options) int {
	if term == "" {
		return -1
	}
	mode := opts.Mode
	if !opts.Enabled() {
		mode = StartsWith
	}
	for i, it := range items {
		if Match(mode, text(it), term, opts.CaseSensitive) {
			return i
		}
	}
	return -1
}

type source[T any] struct {
	items         []T
	text          func(T) string
	caseSensitive bool
}

func (s source[T]) String(i int) string {
	if s.caseSensitive {
		return s.text(s.items[i])
	}
	return strings.ToLower(s.text(s.items[i]))
}

func (s source[T]) Len() int { return len(s.items) }

func rankFuzzy[T any](items []T, text func(T) string, term string, caseSensitive bool) []T {
	if !caseSensitive {
		term = strings.ToLower(term)
	}
	matches := fuzzy.FindFrom(term, source[T]{items: items, text: text, caseSensitive: caseSensitive})
	out := make([]T, 0, len(matches))
	for _, m := range matches {
		// fuzzy folds case on its own
		if caseSensitive && !subsequence(term, m.Str) {
			continue
		}
		out = append(out, items[m.Index])
	}
	return out
}

// subsequence reports whether every rune of term appears in text in order.
func subsequence(term, text string) bool {
	rest := []rune(term)
	for _, r := range text {
		if len(rest) == 0 {
			break
		}
		if r == rest[0] {
			rest = rest[1:]
		}
	}
	return len(rest) == 0
}
