package boggle

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"crosswarped.com/boggle/pkg/cache"
)

func TestSolveCached(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	b := mustParseBoard(t, "ta", "ek")
	words := loadWords(t)

	first, hit, err := SolveCached(ctx, c, CreateSolver(b, words, SolverParams{}), time.Hour)
	if err != nil {
		t.Fatalf("SolveCached() error = %v", err)
	}
	if hit {
		t.Error("first SolveCached() should miss")
	}

	second, hit, err := SolveCached(ctx, c, CreateSolver(b, words, SolverParams{}), time.Hour)
	if err != nil {
		t.Fatalf("SolveCached() error = %v", err)
	}
	if !hit {
		t.Error("second SolveCached() should hit")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached result differs (-solved +cached):\n%s", diff)
	}

	_, hit, err = SolveCached(ctx, c, CreateSolver(b, words, SolverParams{MinWordLength: 3}), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("different length limits should not share a cache entry")
	}
}

func TestSolveCached_NullCache(t *testing.T) {
	b := mustParseBoard(t, "qi", "zx")
	res, hit, err := SolveCached(context.Background(), cache.NewNullCache(), CreateSolver(b, loadWords(t), SolverParams{}), 0)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("NullCache should never hit")
	}
	if diff := cmp.Diff([]string{"quiz"}, res.Words); diff != "" {
		t.Errorf("Words mismatch (-want +got):\n%s", diff)
	}
}
