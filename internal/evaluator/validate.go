package evaluator

import (
	"fmt"

	"svw.info/truthpuzzle/internal/domain"
)

// Validate checks that p is well formed: a supported size, dense 1-based
// positions, slots that match each kind and references inside [1,n].
func Validate(p *domain.Puzzle) error {
	if p == nil {
		return fmt.Errorf("%w: nil puzzle", domain.ErrInvalidPuzzle)
	}
	n := p.Size()
	if n < domain.MinSize || n > domain.MaxSize {
		return fmt.Errorf("%w: %d statements, want %d..%d", domain.ErrInvalidPuzzle, n, domain.MinSize, domain.MaxSize)
	}
	for i, st := range p.Statements {
		if st.Position != i+1 {
			return fmt.Errorf("%w: statement %d has position %d", domain.ErrInvalidPuzzle, i+1, st.Position)
		}
		if err := validateStatement(st, n); err != nil {
			return err
		}
	}
	return nil
}

func validateStatement(st domain.Statement, n int) error {
	if !st.Kind.Valid() {
		return fmt.Errorf("%w: statement %d has unknown kind %d", domain.ErrInvalidPuzzle, st.Position, int(st.Kind))
	}
	slots := st.Kind.Slots()
	if len(st.Values) != len(slots) {
		return fmt.Errorf("%w: statement %d (%s) has %d values, want %d",
			domain.ErrInvalidPuzzle, st.Position, st.Kind, len(st.Values), len(slots))
	}
	for j, c := range slots {
		v := st.Values[j]
		if v.Category != c {
			return fmt.Errorf("%w: statement %d slot %d holds %s, want %s",
				domain.ErrInvalidPuzzle, st.Position, j, v.Category, c)
		}
		if c != domain.CategoryBool && (v.N < 1 || v.N > n) {
			return fmt.Errorf("%w: statement %d slot %d %s %d out of range 1..%d",
				domain.ErrInvalidPuzzle, st.Position, j, c, v.N, n)
		}
	}
	return nil
}

// ValidateGuess checks that g covers every position of p.
func ValidateGuess(p *domain.Puzzle, g domain.Guess) error {
	if len(g) != p.Size() {
		return fmt.Errorf("%w: %d entries for %d positions", domain.ErrInvalidGuess, len(g), p.Size())
	}
	return nil
}
