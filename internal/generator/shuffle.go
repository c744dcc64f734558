package generator

import (
	"math/rand"

	"svw.info/truthpuzzle/internal/domain"
)

// Shuffle pools every value by category, permutes each pool and deals the
// values back into the statements slot by slot. Kinds and positions are kept;
// the per-kind slot layout guarantees each pool is drained exactly.
// The input puzzle is not modified.
func Shuffle(rng *rand.Rand, p *domain.Puzzle) *domain.Puzzle {
	pools := make(map[domain.Category][]domain.Value, len(domain.Categories))
	for _, st := range p.Statements {
		for _, v := range st.Values {
			pools[v.Category] = append(pools[v.Category], v)
		}
	}
	for _, c := range domain.Categories {
		pool := pools[c]
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}

	out := p.Clone()
	for i := range out.Statements {
		st := &out.Statements[i]
		slots := st.Kind.Slots()
		st.Values = make([]domain.Value, len(slots))
		for j, c := range slots {
			pool := pools[c]
			st.Values[j] = pool[len(pool)-1]
			pools[c] = pool[:len(pool)-1]
		}
	}
	return out
}
