package boggle

import (
	"cmp"
	"slices"
	"strings"

	"crosswarped.com/boggle/pkg/primitives"
)

// ResultSet accumulates the words found by a search. Adding a word twice is
// a no-op; the same word is often reachable along several paths.
type ResultSet struct {
	words primitives.WordSet
}

func NewResultSet() *ResultSet {
	return &ResultSet{words: primitives.NewWordSet()}
}

// Add records a normalized word.
func (r *ResultSet) Add(word string) {
	r.words.Add(word)
}

func (r *ResultSet) Len() int {
	return r.words.Len()
}

// Sorted returns the words with the Qu tile expanded, longest first and
// alphabetical among words of equal length.
func (r *ResultSet) Sorted() []string {
	out := make([]string, 0, r.words.Len())
	for word := range r.words.All() {
		out = append(out, primitives.Display(word))
	}
	SortWords(out)
	return out
}

// SortWords orders displayed words the way results are presented.
func SortWords(words []string) {
	slices.SortFunc(words, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
