package primitives

import (
	"iter"
	"maps"
	"slices"
)

// WordSet is an immutable-by-convention set of normalized words or prefixes.
type WordSet map[string]struct{}

func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

func (s WordSet) Add(w string) { s[w] = struct{}{} }

func (s WordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// ContainsBytes looks up b without allocating a string.
func (s WordSet) ContainsBytes(b []byte) bool {
	_, ok := s[string(b)]
	return ok
}

func (s WordSet) Len() int { return len(s) }

// All iterates the members in no particular order.
func (s WordSet) All() iter.Seq[string] {
	return maps.Keys(s)
}

// Sorted returns the members in ascending order.
func (s WordSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
