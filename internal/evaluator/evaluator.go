package evaluator

import (
	"context"

	"svw.info/truthpuzzle/internal/domain"
)

// ConsistencyEvaluator checks guesses against puzzles. It holds no state.
type ConsistencyEvaluator struct{}

func New() *ConsistencyEvaluator { return &ConsistencyEvaluator{} }

func (e *ConsistencyEvaluator) Evaluate(ctx context.Context, p *domain.Puzzle, g domain.Guess) (domain.Evaluation, error) {
	return Evaluate(p, g)
}

// Evaluate computes every statement's claim against g and compares it with
// g at the statement's own position. It neither mutates its inputs nor draws
// randomness, so equal inputs give equal results.
func Evaluate(p *domain.Puzzle, g domain.Guess) (domain.Evaluation, error) {
	if err := Validate(p); err != nil {
		return domain.Evaluation{}, err
	}
	if err := ValidateGuess(p, g); err != nil {
		return domain.Evaluation{}, err
	}
	out := domain.Evaluation{Consistent: make([]bool, p.Size()), Pass: true}
	for i, st := range p.Statements {
		claim, err := Claim(st, g)
		if err != nil {
			return domain.Evaluation{}, err
		}
		out.Consistent[i] = claim == g.At(st.Position)
		if !out.Consistent[i] {
			out.Pass = false
		}
	}
	return out, nil
}
