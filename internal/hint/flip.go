package hint

import (
	"context"
	"fmt"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/evaluator"
	"svw.info/truthpuzzle/internal/ports"
	"svw.info/truthpuzzle/internal/render"
)

// Flip implements a Hinter that steers a guess toward the nearest
// assignment under which every statement holds.
type Flip struct {
	Solver ports.Solver
}

func NewFlip(s ports.Solver) *Flip { return &Flip{Solver: s} }

// Hint returns no hint for a passing guess. Otherwise it suggests the lowest
// position to flip toward the closest solution, or, when the puzzle has no
// solution, points at the lowest statement that does not hold.
func (h *Flip) Hint(ctx context.Context, p *domain.Puzzle, g domain.Guess) (domain.Hint, bool, error) {
	ev, err := evaluator.Evaluate(p, g)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if ev.Pass {
		return domain.Hint{}, false, nil
	}
	if h.Solver != nil {
		solutions, _, err := h.Solver.Solve(ctx, p)
		if err != nil {
			return domain.Hint{}, false, err
		}
		if best, ok := nearest(solutions, g); ok {
			for i := range g {
				if g[i] != best[i] {
					return domain.Hint{
						Message:  fmt.Sprintf("Try flipping the %s sentence", render.Ordinal(i+1)),
						Position: i + 1,
						Flip:     true,
					}, true, nil
				}
			}
		}
	}
	pos := ev.Inconsistent()[0]
	return domain.Hint{
		Message:  fmt.Sprintf("The %s sentence does not hold", render.Ordinal(pos)),
		Position: pos,
	}, true, nil
}

// nearest returns the solution with the fewest differences from g; ties go
// to the earliest.
func nearest(solutions []domain.Guess, g domain.Guess) (domain.Guess, bool) {
	var best domain.Guess
	bestDist := -1
	for _, s := range solutions {
		d := 0
		for i := range s {
			if s[i] != g[i] {
				d++
			}
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, bestDist >= 0
}
