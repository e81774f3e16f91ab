package boggle

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"crosswarped.com/boggle/pkg/cache"
)

type cachedResult struct {
	Words      []string `json:"words"`
	Candidates int      `json:"candidates"`
	Prefixes   int      `json:"prefixes"`
}

// SolveCached answers from c when this board was already solved against the
// same dictionary, and otherwise solves and stores the result for ttl. The
// boolean reports a cache hit. Cache failures never fail the solve.
func SolveCached(ctx context.Context, c cache.Cache, s *Solver, ttl time.Duration) (Result, bool, error) {
	key := cache.SolveKey(s.Board.Rows(), dictionaryKey(s))

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		var cr cachedResult
		if err := json.Unmarshal(data, &cr); err == nil {
			return Result(cr), true, nil
		}
	}

	res, err := s.Solve(ctx)
	if err != nil {
		return Result{}, false, err
	}

	if data, err := json.Marshal(cachedResult(res)); err == nil {
		_ = c.Set(ctx, key, data, ttl)
	}
	return res, false, nil
}

// dictionaryKey covers the word list and the length limits applied to it.
func dictionaryKey(s *Solver) string {
	limits := []string{"min", "-", "max", "-"}
	if s.MinWordLength != nil {
		limits[1] = strconv.Itoa(*s.MinWordLength)
	}
	if s.MaxWordLength != nil {
		limits[3] = strconv.Itoa(*s.MaxWordLength)
	}
	return cache.Fingerprint(append(limits, s.Words...))
}
