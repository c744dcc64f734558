package evaluator

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/truthpuzzle/internal/domain"
)

func st(kind domain.Kind, pos int, vals ...domain.Value) domain.Statement {
	return domain.Statement{Kind: kind, Position: pos, Values: vals}
}

func TestCountOfBoolIsConsistent(t *testing.T) {
	p := &domain.Puzzle{Statements: []domain.Statement{
		st(domain.CountOfBoolIs, 1, domain.Number(2), domain.Bool(true)),
		st(domain.PositionsDiffer, 2, domain.ID(1), domain.ID(3)),
		st(domain.PositionIsBool, 3, domain.ID(1), domain.Bool(true)),
	}}
	ev, err := New().Evaluate(context.Background(), p, domain.Guess{true, false, true})
	require.NoError(t, err)
	assert.True(t, ev.Consistent[0], "count(true)=2 should hold at a true position")
	// 1st and 3rd are both true, so "differ" is false and matches guess[2]=false.
	assert.True(t, ev.Consistent[1])
	assert.True(t, ev.Consistent[2])
	assert.True(t, ev.Pass)
	assert.Empty(t, ev.Inconsistent())
}

func TestPositionsDifferConsistent(t *testing.T) {
	s := st(domain.PositionsDiffer, 1, domain.ID(1), domain.ID(3))
	claim, err := Claim(s, domain.Guess{true, true, false})
	require.NoError(t, err)
	require.True(t, claim)

	p := &domain.Puzzle{Statements: []domain.Statement{
		s,
		st(domain.AlternatingGroupCount, 2, domain.Number(1)),
		st(domain.ClosestBoolIsDistance, 3, domain.Bool(true), domain.Number(1)),
	}}
	ev, err := Evaluate(p, domain.Guess{true, true, false})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, ev.Consistent)
	assert.False(t, ev.Pass)
	assert.Equal(t, []int{2, 3}, ev.Inconsistent())
}

func TestClaimPerKind(t *testing.T) {
	g := domain.Guess{true, false, false, true, true}
	cases := []struct {
		name string
		st   domain.Statement
		want bool
	}{
		{"is bool true", st(domain.PositionIsBool, 1, domain.ID(4), domain.Bool(true)), true},
		{"is bool false", st(domain.PositionIsBool, 1, domain.ID(2), domain.Bool(true)), false},
		{"count true", st(domain.CountOfBoolIs, 2, domain.Number(3), domain.Bool(true)), true},
		{"count false", st(domain.CountOfBoolIs, 2, domain.Number(3), domain.Bool(false)), false},
		{"closest right", st(domain.ClosestBoolIsDistance, 3, domain.Bool(true), domain.Number(1)), true},
		{"closest left", st(domain.ClosestBoolIsDistance, 2, domain.Bool(true), domain.Number(1)), true},
		{"closest too far", st(domain.ClosestBoolIsDistance, 3, domain.Bool(true), domain.Number(2)), false},
		{"closest none", st(domain.ClosestBoolIsDistance, 1, domain.Bool(true), domain.Number(1)), false},
		{"closest self ignored", st(domain.ClosestBoolIsDistance, 4, domain.Bool(true), domain.Number(1)), true},
		{"groups", st(domain.AlternatingGroupCount, 1, domain.Number(3)), true},
		{"groups wrong", st(domain.AlternatingGroupCount, 1, domain.Number(2)), false},
		{"match", st(domain.PositionsMatch, 1, domain.ID(2), domain.ID(3)), true},
		{"match self", st(domain.PositionsMatch, 1, domain.ID(1), domain.ID(1)), true},
		{"differ", st(domain.PositionsDiffer, 1, domain.ID(1), domain.ID(5)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Claim(tc.st, g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// scan mirrors the outward search used at generation time.
func scan(truths []bool, pos int, b bool) int {
	for d := 1; d < len(truths); d++ {
		if pos+d <= len(truths) && truths[pos+d-1] == b {
			return d
		}
		if pos-d >= 1 && truths[pos-d-1] == b {
			return d
		}
	}
	return 0
}

func TestClosestIsMatchesScan(t *testing.T) {
	for n := domain.MinSize; n <= domain.MaxSize; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			truths := make([]bool, n)
			for i := range truths {
				truths[i] = mask&(1<<i) != 0
			}
			for pos := 1; pos <= n; pos++ {
				for _, b := range []bool{true, false} {
					want := scan(truths, pos, b)
					for d := 1; d <= n; d++ {
						require.Equal(t, want == d, closestIs(truths, pos, b, d),
							"truths %v pos %d b %v d %d", truths, pos, b, d)
					}
				}
			}
		}
	}
}

func TestEvaluateIsPure(t *testing.T) {
	p := &domain.Puzzle{Statements: []domain.Statement{
		st(domain.ClosestBoolIsDistance, 1, domain.Bool(false), domain.Number(2)),
		st(domain.PositionsMatch, 2, domain.ID(3), domain.ID(4)),
		st(domain.CountOfBoolIs, 3, domain.Number(1), domain.Bool(false)),
		st(domain.AlternatingGroupCount, 4, domain.Number(4)),
	}}
	g := domain.Guess{true, true, false, true}
	pBefore, gBefore := p.Clone(), append(domain.Guess(nil), g...)

	first, err := Evaluate(p, g)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Evaluate(p, g)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(first, again))
	}
	require.Empty(t, cmp.Diff(pBefore, p))
	require.Equal(t, gBefore, g)
}

func TestEvaluateRejectsMalformedInput(t *testing.T) {
	valid := func() *domain.Puzzle {
		return &domain.Puzzle{Statements: []domain.Statement{
			st(domain.PositionIsBool, 1, domain.ID(2), domain.Bool(true)),
			st(domain.CountOfBoolIs, 2, domain.Number(1), domain.Bool(false)),
			st(domain.PositionsMatch, 3, domain.ID(1), domain.ID(2)),
		}}
	}
	good := domain.Guess{true, true, true}

	_, err := Evaluate(valid(), good)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(p *domain.Puzzle)
	}{
		{"id out of range", func(p *domain.Puzzle) { p.Statements[0].Values[0] = domain.ID(4) }},
		{"id zero", func(p *domain.Puzzle) { p.Statements[2].Values[1] = domain.ID(0) }},
		{"number out of range", func(p *domain.Puzzle) { p.Statements[1].Values[0] = domain.Number(9) }},
		{"wrong category", func(p *domain.Puzzle) { p.Statements[0].Values[1] = domain.Number(1) }},
		{"missing value", func(p *domain.Puzzle) { p.Statements[2].Values = p.Statements[2].Values[:1] }},
		{"unknown kind", func(p *domain.Puzzle) { p.Statements[1].Kind = domain.Kind(42) }},
		{"position gap", func(p *domain.Puzzle) { p.Statements[2].Position = 4 }},
		{"too small", func(p *domain.Puzzle) { p.Statements = p.Statements[:2] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(p)
			_, err := Evaluate(p, good[:p.Size()])
			require.ErrorIs(t, err, domain.ErrInvalidPuzzle)
		})
	}

	_, err = Evaluate(valid(), domain.Guess{true, false})
	require.ErrorIs(t, err, domain.ErrInvalidGuess)
	_, err = Evaluate(nil, good)
	require.ErrorIs(t, err, domain.ErrInvalidPuzzle)
}
