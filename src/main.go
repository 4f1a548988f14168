package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"go.uber.org/zap"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/corpus"
	"crosswarped.com/wordle/internal/logging"
)

const maxTop = 100

type SolveRequest struct {
	Greens  string   `json:"greens"`
	Yellows []string `json:"yellows"`
	Blacks  string   `json:"blacks"`
	Top     int      `json:"top"`
}

type SolveResponse struct {
	Success     bool                `json:"success"`
	SearchSpace int                 `json:"searchSpace"`
	Suggestions []wordle.Suggestion `json:"suggestions"`
	Error       string              `json:"error,omitempty"`
}

type server struct {
	cfg    config.Config
	logger *zap.Logger
	load   func(context.Context) (wordle.Corpus, error)

	// mu guards words; a failed load is retried by the next request.
	mu    sync.Mutex
	words wordle.Corpus
}

func newServer(cfg config.Config, logger *zap.Logger, load func(context.Context) (wordle.Corpus, error)) *server {
	return &server{
		cfg:    cfg,
		logger: logger,
		load:   load,
	}
}

// corpus returns the shared corpus, loading it on first use.
func (s *server) corpus(ctx context.Context) (wordle.Corpus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.words != nil {
		return s.words, nil
	}
	words, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.words = words
	return words, nil
}

func execute(words wordle.Corpus, req SolveRequest, defaultTop int) (wordle.Suggestions, int, error) {
	top := req.Top
	if top == 0 {
		top = defaultTop
	}
	if top < 0 || top > maxTop {
		return wordle.Suggestions{}, 0, fmt.Errorf("top must be between 1 and %d", maxTop)
	}

	greens := strings.ToLower(req.Greens)
	if greens == "" {
		greens = wordle.EmptyPattern.Repr()
	}

	s := wordle.CreateSolver(words, wordle.SolverParams{})
	if err := s.SetGreens(greens); err != nil {
		return wordle.Suggestions{}, 0, err
	}
	for _, y := range req.Yellows {
		if err := s.AddYellow(strings.ToLower(y)); err != nil {
			return wordle.Suggestions{}, 0, err
		}
	}
	if err := s.AddBlacks(strings.ToLower(req.Blacks)); err != nil {
		return wordle.Suggestions{}, 0, err
	}
	return s.Solve(), top, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (s *server) writeResponse(w http.ResponseWriter, status int, resp SolveResponse) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("writing response", zap.Error(err))
	}
}

func (s *server) solve(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		s.writeResponse(w, http.StatusMethodNotAllowed, SolveResponse{Error: fmt.Sprintf("Method %s not allowed", r.Method)})
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Info("bad request body", zap.Error(err))
		s.writeResponse(w, http.StatusBadRequest, SolveResponse{Error: fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	words, err := s.corpus(r.Context())
	if err != nil {
		s.logger.Error("loading corpus", zap.Error(err))
		s.writeResponse(w, http.StatusInternalServerError, SolveResponse{Error: "Internal server error"})
		return
	}

	got, top, err := execute(words, req, s.cfg.Display.Top)
	if err != nil {
		s.logger.Debug("rejected request", zap.Error(err), zap.Bool("invalid_input", errors.Is(err, wordle.ErrInvalidInput)))
		s.writeResponse(w, http.StatusBadRequest, SolveResponse{Error: err.Error()})
		return
	}

	s.logger.Debug("solved",
		zap.String("greens", req.Greens),
		zap.Strings("yellows", req.Yellows),
		zap.String("blacks", req.Blacks),
		zap.Int("search_space", got.SearchSpace),
	)
	s.writeResponse(w, http.StatusOK, SolveResponse{
		Success:     true,
		SearchSpace: got.SearchSpace,
		Suggestions: got.Top(top),
	})
}

func main() {
	cfg, err := config.Load(os.Getenv("WORDLE_CONFIG"))
	if err != nil {
		log.Fatalf("config.Load: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("cfg.Validate: %v\n", err)
	}
	logger, err := logging.NewJSON(cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging.NewJSON: %v\n", err)
	}
	defer logger.Sync()

	s := newServer(cfg, logger, func(ctx context.Context) (wordle.Corpus, error) {
		c, err := corpus.Load(ctx, cfg.Corpus.Params())
		if err != nil {
			return nil, err
		}
		logger.Info("loaded words", zap.String("source", cfg.Corpus.Source), zap.Int("words", c.Len()))
		return c, nil
	})
	funcframework.RegisterHTTPFunction("/solve", s.solve)

	if err := funcframework.StartHostPort(cfg.Server.Host, cfg.Server.Port); err != nil {
		logger.Fatal("funcframework.StartHostPort", zap.Error(err))
	}
}
