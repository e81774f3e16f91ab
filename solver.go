package boggle

import (
	"context"
	"iter"

	"crosswarped.com/boggle/internal"
	"crosswarped.com/boggle/pkg/primitives"
)

type Solver struct {
	Board Board
	// Words is the reference word list, already normalized.
	Words         []string
	MinWordLength *int
	MaxWordLength *int

	// Do not access this field directly, use the candidateWords method instead.
	lazyCandidateWords *internal.CandidateWords
}

type SolverParams struct {
	MinWordLength int
	MaxWordLength int
}

// Result is the outcome of a finished search.
type Result struct {
	// Words are the distinct words found, Qu expanded, longest first and
	// alphabetical within a length.
	Words []string
	// Candidates is how many dictionary words survived the board filter.
	Candidates int
	// Prefixes is the size of the prefix index the search pruned with.
	Prefixes int
}

func CreateSolver(board Board, words []string, params SolverParams) *Solver {
	var minWordLength, maxWordLength *int
	if params.MinWordLength > 0 {
		minWordLength = &params.MinWordLength
	}
	if params.MaxWordLength > 0 {
		maxWordLength = &params.MaxWordLength
	}
	return &Solver{
		Board:         board,
		Words:         words,
		MinWordLength: minWordLength,
		MaxWordLength: maxWordLength,
	}
}

func (s *Solver) candidateWords(ctx context.Context) (*internal.CandidateWords, error) {
	var err error
	if s.lazyCandidateWords == nil {
		s.lazyCandidateWords, err = internal.AllCandidateWords(ctx, internal.CandidateWordsParams{
			Words:         s.Words,
			Alphabet:      s.Board.Alphabet(),
			NumCells:      s.Board.NumCells(),
			MinWordLength: s.MinWordLength,
			MaxWordLength: s.MaxWordLength,
		})
	}
	return s.lazyCandidateWords, err
}

// searchState is the single mutable arena shared by every branch of a search.
type searchState struct {
	letters   []rune
	neighbors [][]int
	words     primitives.WordSet
	prefixes  primitives.WordSet
	path      *primitives.Path
}

func newSearchState(b Board, cw *internal.CandidateWords) *searchState {
	neighbors := make([][]int, b.NumCells())
	for cell := range neighbors {
		for _, p := range b.AdjacentPoints(b.point(cell)) {
			neighbors[cell] = append(neighbors[cell], b.cell(p))
		}
	}
	return &searchState{
		letters:   b.letters,
		neighbors: neighbors,
		words:     cw.Words,
		prefixes:  cw.Prefixes,
		path:      primitives.NewPath(b.NumCells()),
	}
}

// extend pushes cell onto the path if the result is still a prefix of some
// candidate, reporting whether it did.
func (s *searchState) extend(cell int) bool {
	s.path.Push(cell, byte(s.letters[cell]))
	if s.prefixes.ContainsBytes(s.path.Letters()) {
		return true
	}
	s.path.Pop()
	return false
}

// continuePath explores every extension of the current path, depth first.
// It returns false if yield asked to stop.
func (s *searchState) continuePath(yield func(string) bool) bool {
	for _, next := range s.neighbors[s.path.Last()] {
		if s.path.Visited(next) || !s.extend(next) {
			continue
		}
		ok := s.visit(yield) && s.continuePath(yield)
		s.path.Pop()
		if !ok {
			return false
		}
	}
	return true
}

// visit reports the current path if it spells a candidate word.
func (s *searchState) visit(yield func(string) bool) bool {
	if s.words.ContainsBytes(s.path.Letters()) {
		return yield(string(s.path.Letters()))
	}
	return true
}

// FoundWords yields every distinct word on the board, in normalized form and
// discovery order. ctx is only checked between starting cells; once a
// starting cell is begun its subtree is searched to the end.
func (s *Solver) FoundWords(ctx context.Context) iter.Seq[string] {
	return func(yield func(string) bool) {
		cw, err := s.candidateWords(ctx)
		if err != nil {
			return
		}

		seen := make(map[string]bool)
		dedupe := func(word string) bool {
			if seen[word] {
				return true
			}
			seen[word] = true
			return yield(word)
		}

		state := newSearchState(s.Board, cw)
		for cell := range s.Board.NumCells() {
			if ctx.Err() != nil {
				return
			}
			if !state.extend(cell) {
				continue
			}
			ok := state.visit(dedupe) && state.continuePath(dedupe)
			state.path.Pop()
			if !ok {
				return
			}
		}
	}
}

// Candidates returns the dictionary words that survive the board filter,
// displayed and ordered like results, along with the size of the prefix index.
func (s *Solver) Candidates(ctx context.Context) ([]string, int, error) {
	cw, err := s.candidateWords(ctx)
	if err != nil {
		return nil, 0, err
	}
	words := make([]string, 0, cw.Words.Len())
	for w := range cw.Words.All() {
		words = append(words, primitives.Display(w))
	}
	SortWords(words)
	return words, cw.Prefixes.Len(), nil
}

// Solve runs the search to completion and returns the finalized result.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	cw, err := s.candidateWords(ctx)
	if err != nil {
		return Result{}, err
	}

	results := NewResultSet()
	for word := range s.FoundWords(ctx) {
		results.Add(word)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{
		Words:      results.Sorted(),
		Candidates: cw.Words.Len(),
		Prefixes:   cw.Prefixes.Len(),
	}, nil
}
