package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/ports"
)

// ShuffledGenerator creates puzzles whose statements all hold for a hidden
// assignment, then shuffles the values between statements.
type ShuffledGenerator struct{}

// New returns a generator. It carries no state; all randomness comes from
// the seed handed to Generate.
func New() *ShuffledGenerator { return &ShuffledGenerator{} }

// Generate builds a fresh shuffled puzzle from seed.
func (g *ShuffledGenerator) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	p := Puzzle(rng)
	p.Seed = seed
	p.CreatedAt = time.Now().UnixNano()
	return p, ports.Stats{Duration: time.Since(start)}, nil
}

// Puzzle runs one full generation cycle: a random assignment, one statement
// per position, then the value shuffle. The assignment is discarded.
func Puzzle(rng *rand.Rand) *domain.Puzzle {
	a := RandomAssignment(rng)
	return Shuffle(rng, &domain.Puzzle{Statements: Statements(rng, a)})
}
