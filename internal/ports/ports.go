package ports

import (
	"context"
	"time"

	"svw.info/truthpuzzle/internal/domain"
)

// Stats captures performance characteristics of an operation.
// Nodes counts search nodes and stays zero for operations that do not search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator creates new shuffled puzzles from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64) (*domain.Puzzle, Stats, error)
}

// Evaluator checks a guess against every statement of a puzzle.
type Evaluator interface {
	Evaluate(ctx context.Context, p *domain.Puzzle, g domain.Guess) (domain.Evaluation, error)
}

// Solver lists the guesses under which every statement holds.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) ([]domain.Guess, Stats, error)
	Unique(ctx context.Context, p *domain.Puzzle) (bool, Stats, error)
}

// Hinter suggests the next move for a guess.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, g domain.Guess) (domain.Hint, bool, error)
}

// SessionStore keeps play sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session) error
	Load(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
