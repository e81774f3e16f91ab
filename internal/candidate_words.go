package internal

import (
	"context"

	"crosswarped.com/boggle/pkg/primitives"
)

const defaultMinWordLength = 4

type CandidateWordsParams struct {
	// Words are normalized dictionary words; duplicates are harmless.
	Words []string
	// Alphabet is the set of symbols on the board.
	Alphabet *primitives.CharSet
	// NumCells bounds the longest possible path.
	NumCells      int
	MinWordLength *int
	MaxWordLength *int
}

type params struct {
	words         []string
	alphabet      *primitives.CharSet
	minWordLength int
	maxWordLength int
}

func asParams(p CandidateWordsParams) params {
	pp := params{
		words:    p.Words,
		alphabet: p.Alphabet,
	}

	if p.MinWordLength == nil {
		pp.minWordLength = defaultMinWordLength
	} else {
		pp.minWordLength = *p.MinWordLength
	}

	if p.MaxWordLength == nil || *p.MaxWordLength > p.NumCells {
		pp.maxWordLength = p.NumCells
	} else {
		pp.maxWordLength = *p.MaxWordLength
	}

	return pp
}

// CandidateWords is what a board search matches against.
type CandidateWords struct {
	// Words holds every dictionary word the board could conceivably spell.
	Words primitives.WordSet
	// Prefixes holds every non-empty prefix of every member of Words.
	Prefixes primitives.WordSet
}

// accepts applies the alphabet and length filter. Only membership in the
// alphabet is checked, not how often a symbol appears on the board; the
// search's distinct-cell rule rejects the rest.
//
// The minimum applies to the letters a player sees, so "quiz" counts as four.
// The maximum applies to cells, since a path cannot be longer than the board.
// A word may therefore show more letters than the board has cells: "quiet"
// fits a 2x2 board as four tiles.
func (p params) accepts(word string) bool {
	if primitives.DisplayLength(word) < p.minWordLength {
		return false
	}
	if primitives.SymbolCount(word) > p.maxWordLength {
		return false
	}
	return p.alphabet.ContainsAll(word)
}

// AllCandidateWords filters the dictionary down to the words worth searching
// for on a board and indexes their prefixes.
func AllCandidateWords(ctx context.Context, p CandidateWordsParams) (*CandidateWords, error) {
	params := asParams(p)

	cw := &CandidateWords{
		Words:    primitives.NewWordSet(),
		Prefixes: primitives.NewWordSet(),
	}

	for i, word := range params.words {
		if i%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !params.accepts(word) || cw.Words.Contains(word) {
			continue
		}
		cw.Words.Add(word)

		for end := len(word); end > 0; end-- {
			prefix := word[:end]
			if cw.Prefixes.Contains(prefix) {
				// Every shorter prefix was added along with this one.
				break
			}
			cw.Prefixes.Add(prefix)
		}
	}

	return cw, ctx.Err()
}
