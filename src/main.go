package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"crosswarped.com/boggle"
	"crosswarped.com/boggle/pkg/cache"
	"crosswarped.com/boggle/pkg/wordlist"
)

const cacheTTL = 24 * time.Hour

type SolveBoardRequest struct {
	Rows          []string `json:"rows"`
	Words         []string `json:"words"`
	WordScope     string   `json:"wordScope"`
	MinWordLength int      `json:"minWordLength"`
}

type SolveBoardResponse struct {
	Success   bool     `json:"success"`
	RequestID string   `json:"requestId"`
	Count     int      `json:"count"`
	Words     []string `json:"words"`
	Cached    bool     `json:"cached,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type server struct {
	logger *log.Logger
	cache  cache.Cache

	// scopeWords loads the words of a scope; getWords outside of tests.
	scopeWords func(ctx context.Context, scope string) ([]string, error)
}

func (s *server) execute(ctx context.Context, req SolveBoardRequest) (boggle.Result, bool, error) {
	board, err := boggle.ParseBoard(req.Rows)
	if err != nil {
		return boggle.Result{}, false, err
	}
	if req.MinWordLength < 0 {
		return boggle.Result{}, false, fmt.Errorf("minWordLength must not be negative")
	}

	words := wordlist.Normalize(req.Words)
	if req.WordScope != "" {
		scoped, err := s.scopeWords(ctx, req.WordScope)
		if err != nil {
			return boggle.Result{}, false, fmt.Errorf("getWords: %w", err)
		}
		s.logger.Info("Loaded scope words", "scope", req.WordScope, "count", len(scoped))
		words = append(words, wordlist.Normalize(scoped)...)
	}
	if len(words) == 0 {
		words = wordlist.Default()
	}

	timeout := requestTimeout(ctx)
	s.logger.Debug("Setting timeout", "timeout", timeout)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	solver := boggle.CreateSolver(board, words, boggle.SolverParams{MinWordLength: req.MinWordLength})
	return boggle.SolveCached(ctx, s.cache, solver, cacheTTL)
}

// requestTimeout leaves 5s of the request deadline for writing the response,
// or half of it when less than 10s remain.
func requestTimeout(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 1 * time.Minute
	}
	remaining := time.Until(deadline)
	return max(remaining-5*time.Second, remaining/2)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (s *server) solveBoard(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	requestID := uuid.NewString()
	logger := s.logger.With("request", requestID)

	var req SolveBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Error parsing JSON body", "err", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SolveBoardResponse{
			RequestID: requestID,
			Error:     fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	start := time.Now()
	res, cached, err := s.execute(r.Context(), req)

	response := SolveBoardResponse{
		Success:   err == nil,
		RequestID: requestID,
		Count:     len(res.Words),
		Words:     res.Words,
		Cached:    cached,
	}
	if err != nil {
		logger.Error("Solve failed", "err", err)
		response.Error = err.Error()
	} else {
		logger.Info("Solved board", "size", len(req.Rows), "words", response.Count, "cached", cached, "took", time.Since(start))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Error marshaling response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
	}
}

// openCache uses Redis when REDIS_ADDR is set and carries on uncached when
// it cannot be reached.
func openCache(ctx context.Context, logger *log.Logger) cache.Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return cache.NewNullCache()
	}
	c, err := cache.NewRedisCache(ctx, addr, "solve-board:")
	if err != nil {
		logger.Warn("Redis unavailable, solving uncached", "addr", addr, "err", err)
		return cache.NewNullCache()
	}
	return c
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	c := openCache(ctx, logger)
	cancel()
	defer c.Close()

	s := &server{logger: logger, cache: c, scopeWords: getWords}
	funcframework.RegisterHTTPFunction("/solve-board", s.solveBoard)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		logger.Fatal("funcframework.StartHostPort", "err", err)
	}
}
