package solver

import (
	"context"
	"time"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/evaluator"
	"svw.info/truthpuzzle/internal/ports"
)

// Solve returns every guess under which all statements hold, ordered with
// true before false at each position. A shuffled puzzle may have none.
func (s *BacktrackingSolver) Solve(ctx context.Context, p *domain.Puzzle) ([]domain.Guess, ports.Stats, error) {
	start := time.Now()
	if err := evaluator.Validate(p); err != nil {
		return nil, ports.Stats{}, err
	}
	var out []domain.Guess
	nodes := search(p, func() bool { return ctx.Err() != nil }, func(grid []bool) bool {
		out = append(out, append(domain.Guess(nil), grid...))
		return false
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	return out, st, nil
}
