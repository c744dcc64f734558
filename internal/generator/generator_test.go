package generator

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/evaluator"
)

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	g := New()
	ctx := context.Background()
	a, _, err := g.Generate(ctx, 12345)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 12345)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b, cmpopts.IgnoreFields(domain.Puzzle{}, "CreatedAt")); diff != "" {
		t.Fatalf("same seed, different puzzles (-a +b):\n%s", diff)
	}
	require.Equal(t, int64(12345), a.Seed)
}

func TestGenerateDoesNotSearch(t *testing.T) {
	_, st, err := New().Generate(context.Background(), 7)
	require.NoError(t, err)
	require.Zero(t, st.Nodes)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New().Generate(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGeneratedPuzzlesAreWellFormed(t *testing.T) {
	sizes := map[int]bool{}
	for seed := int64(0); seed < 20000; seed++ {
		p := Puzzle(rand.New(rand.NewSource(seed)))
		require.NoError(t, evaluator.Validate(p), "seed %d", seed)
		sizes[p.Size()] = true
	}
	require.True(t, sizes[domain.MinSize], "no puzzle of size %d", domain.MinSize)
	require.True(t, sizes[domain.MaxSize], "no puzzle of size %d", domain.MaxSize)
}

func valuesByCategory(p *domain.Puzzle) map[domain.Category][]domain.Value {
	out := map[domain.Category][]domain.Value{}
	for _, st := range p.Statements {
		for _, v := range st.Values {
			out[v.Category] = append(out[v.Category], v)
		}
	}
	for _, vs := range out {
		sort.Slice(vs, func(i, j int) bool {
			if vs[i].N != vs[j].N {
				return vs[i].N < vs[j].N
			}
			return !vs[i].B && vs[j].B
		})
	}
	return out
}

func TestShufflePreservesPoolsAndLayout(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a := RandomAssignment(rng)
		orig := &domain.Puzzle{Statements: Statements(rng, a)}
		before := orig.Clone()

		shuffled := Shuffle(rng, orig)

		require.Empty(t, cmp.Diff(before, orig), "input puzzle modified")
		require.Equal(t, orig.Size(), shuffled.Size())
		for i, st := range shuffled.Statements {
			require.Equal(t, orig.Statements[i].Kind, st.Kind)
			require.Equal(t, orig.Statements[i].Position, st.Position)
			for j, c := range st.Kind.Slots() {
				require.Equal(t, c, st.Values[j].Category)
			}
		}
		if diff := cmp.Diff(valuesByCategory(orig), valuesByCategory(shuffled)); diff != "" {
			t.Fatalf("seed %d: pools changed (-orig +shuffled):\n%s", seed, diff)
		}
	}
}
