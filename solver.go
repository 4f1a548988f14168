package wordle

import (
	"time"

	"go.uber.org/zap"
)

// Solver is one solving session: the constraints gathered so far and the
// suggestions computed from them.
//
// Starting over means creating a new Solver. The corpus is shared and never
// modified.
type Solver struct {
	Constraints *Constraints

	corpus  Corpus
	logger  *zap.Logger
	last    Suggestions
	history []int
}

type SolverParams struct {
	Logger *zap.Logger
}

// CreateSolver starts a session over corpus and runs an initial solve.
func CreateSolver(corpus Corpus, params SolverParams) *Solver {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Solver{
		Constraints: NewConstraints(),
		corpus:      corpus,
		logger:      logger,
	}
	s.Solve()
	return s
}

func (s *Solver) SetGreens(pattern string) error {
	return s.Constraints.SetGreens(pattern)
}

func (s *Solver) AddYellow(sequence string) error {
	return s.Constraints.AddYellow(sequence)
}

func (s *Solver) ResetYellows() {
	s.Constraints.ResetYellows()
}

func (s *Solver) AddBlacks(letters string) error {
	return s.Constraints.AddBlacks(letters)
}

func (s *Solver) ResetBlacks() {
	s.Constraints.ResetBlacks()
}

// Solve filters the corpus against the current constraints.
func (s *Solver) Solve() Suggestions {
	start := time.Now()
	s.last = Filter(s.Constraints.Snapshot(), s.corpus)
	s.history = append(s.history, s.last.SearchSpace)
	s.logger.Debug("solved",
		zap.String("greens", s.Constraints.Greens()),
		zap.Strings("yellows", s.Constraints.Yellows()),
		zap.String("blacks", s.Constraints.Blacks()),
		zap.Int("search_space", s.last.SearchSpace),
		zap.Duration("dur", time.Since(start)),
	)
	return s.last
}

// Suggestions returns the result of the most recent Solve.
func (s *Solver) Suggestions() Suggestions {
	return s.last
}

// SearchSpace returns the match count of the most recent Solve.
func (s *Solver) SearchSpace() int {
	return s.last.SearchSpace
}

// History returns the search space of every Solve so far, oldest first.
// It grows by one entry per Solve for the life of the session.
func (s *Solver) History() []int {
	return append([]int(nil), s.history...)
}
