package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"crosswarped.com/boggle/pkg/cache"
)

func newTestServer(c cache.Cache) *server {
	return &server{
		logger: log.New(io.Discard),
		cache:  c,
		scopeWords: func(ctx context.Context, scope string) ([]string, error) {
			if scope == "animals" {
				return []string{"TEAK", "kate"}, nil
			}
			return nil, errors.New("unknown scope")
		},
	}
}

func post(t *testing.T, s *server, body string) (int, SolveBoardResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.solveBoard(rec, httptest.NewRequest(http.MethodPost, "/solve-board", strings.NewReader(body)))

	var resp SolveBoardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.RequestID == "" {
		t.Error("response should carry a request id")
	}
	return rec.Code, resp
}

func TestSolveBoard(t *testing.T) {
	tests := []struct {
		name string
		body string
		want SolveBoardResponse
	}{
		{
			name: "request words",
			body: `{"rows": ["ta", "ek"], "words": ["take", "teak", "kate", "tate", "teal"]}`,
			want: SolveBoardResponse{Success: true, Count: 3, Words: []string{"kate", "take", "teak"}},
		},
		{
			name: "scope words join request words",
			body: `{"rows": ["ta", "ek"], "words": ["take"], "wordScope": "animals"}`,
			want: SolveBoardResponse{Success: true, Count: 3, Words: []string{"kate", "take", "teak"}},
		},
		{
			name: "min word length",
			body: `{"rows": ["ta", "ek"], "words": ["take", "tea", "eat"], "minWordLength": 3}`,
			want: SolveBoardResponse{Success: true, Count: 3, Words: []string{"take", "eat", "tea"}},
		},
		{
			name: "qu tile",
			body: `{"rows": ["QI", "ZX"], "words": ["quiz"]}`,
			want: SolveBoardResponse{Success: true, Count: 1, Words: []string{"quiz"}},
		},
		{
			name: "bad board",
			body: `{"rows": ["ab", "c"], "words": ["abc"]}`,
			want: SolveBoardResponse{Error: "incorrect size for R2"},
		},
		{
			name: "unknown scope",
			body: `{"rows": ["ta", "ek"], "wordScope": "plants"}`,
			want: SolveBoardResponse{Error: "getWords: unknown scope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, got := post(t, newTestServer(cache.NewNullCache()), tt.body)
			if code != http.StatusOK {
				t.Errorf("status = %d, want %d", code, http.StatusOK)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(SolveBoardResponse{}, "RequestID")); diff != "" {
				t.Errorf("solveBoard() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolveBoard_Cached(t *testing.T) {
	s := newTestServer(cache.NewNullCache())
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s.cache = c

	body := `{"rows": ["ta", "ek"], "words": ["take", "teak"]}`
	if _, first := post(t, s, body); first.Cached {
		t.Error("first request should not be cached")
	}
	_, second := post(t, s, body)
	if !second.Cached || second.Count != 2 {
		t.Errorf("second request = %+v, want 2 cached words", second)
	}
}

func TestRequestTimeout(t *testing.T) {
	if got := requestTimeout(context.Background()); got != time.Minute {
		t.Errorf("requestTimeout() without deadline = %v, want 1m", got)
	}

	tests := []struct {
		name     string
		deadline time.Duration
		lo, hi   time.Duration
	}{
		{"long deadline keeps a 5s margin", time.Minute, 50 * time.Second, 55 * time.Second},
		{"short deadline keeps half", 3 * time.Second, time.Second, 1500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), tt.deadline)
			defer cancel()

			if got := requestTimeout(ctx); got <= tt.lo || got > tt.hi {
				t.Errorf("requestTimeout() = %v, want in (%v, %v]", got, tt.lo, tt.hi)
			}
		})
	}
}

func TestSolveBoard_ShortDeadline(t *testing.T) {
	s := newTestServer(cache.NewNullCache())
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, _, err := s.execute(ctx, SolveBoardRequest{Rows: []string{"ta", "ek"}, Words: []string{"take"}})
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if diff := cmp.Diff([]string{"take"}, res.Words); diff != "" {
		t.Errorf("execute() mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveBoard_Methods(t *testing.T) {
	s := newTestServer(cache.NewNullCache())

	tests := []struct {
		method string
		body   string
		want   int
	}{
		{http.MethodOptions, "", http.StatusOK},
		{http.MethodGet, "", http.StatusMethodNotAllowed},
		{http.MethodPost, "{not json", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.solveBoard(rec, httptest.NewRequest(tt.method, "/solve-board", strings.NewReader(tt.body)))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
			}
		})
	}
}
