package filter

import (
	"sort"
	"strings"
)

// minCoverage is the share of a word's trigrams that must appear in a text.
const minCoverage = 0.4

// rankTrigram keeps the items scoring above zero, best first. Ties keep
// input order.
func rankTrigram[T any](items []T, text func(T) string, term string, caseSensitive bool) []T {
	type scored struct {
		index int
		score float64
	}
	q := newQuery(term, caseSensitive)
	var matches []scored
	for i, it := range items {
		if score := q.score(fold(text(it), caseSensitive)); score > 0 {
			matches = append(matches, scored{index: i, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]T, len(matches))
	for i, m := range matches {
		out[i] = items[m.index]
	}
	return out
}

func trigramScore(text, term string) float64 {
	return newQuery(term, true).score(text)
}

type query struct {
	words    []string
	trigrams []map[string]struct{}
}

func newQuery(term string, caseSensitive bool) query {
	words := strings.Fields(fold(term, caseSensitive))
	q := query{words: words, trigrams: make([]map[string]struct{}, len(words))}
	for i, w := range words {
		q.trigrams[i] = trigrams(w)
	}
	return q
}

// score averages per-word similarity. Every word must match for a
// non-zero result.
func (q query) score(text string) float64 {
	if len(q.words) == 0 {
		return 0
	}
	textTris := trigrams(text)
	total := 0.0
	for i, word := range q.words {
		// Short words have no useful trigrams.
		if len([]rune(word)) <= 2 {
			if !strings.Contains(text, word) {
				return 0
			}
			total++
			continue
		}
		similarity := coverage(q.trigrams[i], textTris)
		if similarity < minCoverage {
			return 0
		}
		if strings.Contains(text, word) {
			similarity += 0.5
		}
		total += similarity
	}
	return total / float64(len(q.words))
}

func fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// trigrams pads s with two spaces on each side so prefixes and suffixes
// produce their own trigrams.
func trigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}
	runes := []rune("  " + s + "  ")
	tris := make(map[string]struct{}, len(runes))
	for i := 0; i+3 <= len(runes); i++ {
		tri := string(runes[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// coverage is |query ∩ text| / |query|.
func coverage(query, text map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	n := 0
	for tri := range query {
		if _, ok := text[tri]; ok {
			n++
		}
	}
	return float64(n) / float64(len(query))
}
