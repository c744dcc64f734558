package usecase

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Evaluator ports.Evaluator
	Solver    ports.Solver
	Hinter    ports.Hinter
	Sessions  ports.SessionStore
	Logger    *zap.Logger

	seedMu sync.Mutex
	seeds  *rand.Rand

	// serializes load-modify-save on sessions
	sessMu sync.Mutex
}

// NewService wires the providers. Puzzle seeds for sessions are drawn from a
// source seeded with baseSeed, so a fixed baseSeed replays the same puzzles.
func NewService(g ports.Generator, e ports.Evaluator, s ports.Solver, h ports.Hinter, st ports.SessionStore, baseSeed int64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Generator: g,
		Evaluator: e,
		Solver:    s,
		Hinter:    h,
		Sessions:  st,
		Logger:    logger,
		seeds:     rand.New(rand.NewSource(baseSeed)),
	}
}

// NextSeed draws the seed for the next generated puzzle.
func (u *Service) NextSeed() int64 {
	u.seedMu.Lock()
	defer u.seedMu.Unlock()
	return u.seeds.Int63()
}

func (u *Service) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, domain.ErrNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed)
	if err != nil {
		return nil, st, err
	}
	u.Logger.Debug("puzzle generated",
		zap.Int64("seed", seed),
		zap.Int("size", p.Size()),
		zap.Duration("dur", st.Duration),
	)
	return p, st, nil
}

func (u *Service) Evaluate(ctx context.Context, p *domain.Puzzle, g domain.Guess) (domain.Evaluation, error) {
	if u.Evaluator == nil {
		return domain.Evaluation{}, domain.ErrNotConfigured
	}
	return u.Evaluator.Evaluate(ctx, p, g)
}

func (u *Service) Solve(ctx context.Context, p *domain.Puzzle) ([]domain.Guess, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, domain.ErrNotConfigured
	}
	return u.Solver.Solve(ctx, p)
}

func (u *Service) Hint(ctx context.Context, p *domain.Puzzle, g domain.Guess) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, domain.ErrNotConfigured
	}
	return u.Hinter.Hint(ctx, p, g)
}
