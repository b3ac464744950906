package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruits = []string{"Apple", "Banana", "Cherry", "apricot", "Grape"}

func identity(s string) string { return s }

func TestFilter_Modes(t *testing.T) {
	tests := []struct {
		name string
		term string
		opts Options
		want []string
	}{
		{"starts with", "ap", Options{Mode: StartsWith}, []string{"Apple", "apricot"}},
		{"starts with case sensitive", "Ap", Options{Mode: StartsWith, CaseSensitive: true}, []string{"Apple"}},
		{"ends with", "E", Options{Mode: EndsWith}, []string{"Apple", "Grape"}},
		{"contains", "an", Options{Mode: Contains}, []string{"Banana"}},
		{"eq", "grape", Options{Mode: Eq}, []string{"Grape"}},
		{"eq case sensitive", "grape", Options{Mode: Eq, CaseSensitive: true}, []string{}},
		{"none", "zzz", Options{Mode: None}, fruits},
		{"zero options", "zzz", Options{}, fruits},
		{"below min length", "ap", Options{Mode: StartsWith, MinLength: 3}, fruits},
		{"blank term", "  ", Options{Mode: Contains}, fruits},
		{"empty term", "", Options{Mode: Contains}, fruits},
		{"fuzzy", "apl", Options{Mode: Fuzzy}, []string{"Apple"}},
		{"fuzzy case sensitive", "apl", Options{Mode: Fuzzy, CaseSensitive: true}, []string{}},
		{"trigram", "banan", Options{Mode: Trigram}, []string{"Banana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fruits, identity, tt.term, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_TrigramRanksExactMatchFirst(t *testing.T) {
	got := Filter([]string{"pineapple", "apple", "kiwi"}, identity, "apple", Options{Mode: Trigram})

	assert.Equal(t, []string{"apple", "pineapple"}, got)
}

func TestFilter_Structs(t *testing.T) {
	type person struct {
		ID   int
		Name string
	}
	people := []person{{1, "Jimmy"}, {2, "Sally"}, {3, "Jim"}}

	got := Filter(people, func(p person) string { return p.Name }, "jim", Options{Mode: StartsWith})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 2, IndexOf(fruits, identity, "ch", Options{}))
	assert.Equal(t, 3, IndexOf(fruits, identity, "cot", Options{Mode: EndsWith}))
	assert.Equal(t, -1, IndexOf(fruits, identity, "zz", Options{}))
	assert.Equal(t, -1, IndexOf(fruits, identity, "", Options{}))
}

func TestMatch(t *testing.T) {
	assert.True(t, Match(StartsWith, "Apple", "app", false))
	assert.False(t, Match(StartsWith, "Apple", "app", true))
	assert.True(t, Match(Fuzzy, "Apple", "ape", false))
	assert.True(t, Match(Trigram, "Apple", "appl", false))
	assert.True(t, Match(None, "Apple", "zzz", false))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("contains")
	require.NoError(t, err)
	assert.Equal(t, Contains, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, None, m)

	_, err = ParseMode("bogus")
	assert.Error(t, err)
}
