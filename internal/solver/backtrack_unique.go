package solver

import (
	"context"
	"time"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/evaluator"
	"svw.info/truthpuzzle/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, p *domain.Puzzle) (bool, ports.Stats, error) {
	start := time.Now()
	if err := evaluator.Validate(p); err != nil {
		return false, ports.Stats{}, err
	}
	count := 0
	nodes := search(p, func() bool { return ctx.Err() != nil || count >= 2 }, func([]bool) bool {
		count++
		return count >= 2
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
