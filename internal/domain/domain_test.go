package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePuzzle() *Puzzle {
	return &Puzzle{Statements: []Statement{
		{Kind: PositionIsBool, Position: 1, Values: []Value{ID(2), Bool(true)}},
		{Kind: ClosestBoolIsDistance, Position: 2, Values: []Value{Bool(false), Number(1)}},
		{Kind: PositionsMatch, Position: 3, Values: []Value{ID(1), ID(3)}},
	}}
}

func TestSwapValuesSameCategory(t *testing.T) {
	p := samplePuzzle()
	require.True(t, p.SwapValues(1, 1, 2, 0))
	assert.Equal(t, Bool(false), p.Statements[0].Values[1])
	assert.Equal(t, Bool(true), p.Statements[1].Values[0])

	require.True(t, p.SwapValues(1, 0, 3, 1))
	assert.Equal(t, ID(3), p.Statements[0].Values[0])
	assert.Equal(t, ID(2), p.Statements[2].Values[1])
}

func TestSwapValuesRejectedIsNoop(t *testing.T) {
	cases := []struct {
		name                     string
		posA, slotA, posB, slotB int
	}{
		{"category mismatch", 1, 0, 2, 1},
		{"same slot", 3, 0, 3, 0},
		{"position out of range", 0, 0, 3, 0},
		{"slot out of range", 1, 2, 3, 0},
		{"beyond last position", 1, 0, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := samplePuzzle()
			before := p.Clone()
			assert.False(t, p.SwapValues(tc.posA, tc.slotA, tc.posB, tc.slotB))
			assert.Empty(t, cmp.Diff(before, p))
		})
	}
}

func TestKindSlots(t *testing.T) {
	want := map[Kind][]Category{
		PositionIsBool:        {CategoryID, CategoryBool},
		CountOfBoolIs:         {CategoryNumber, CategoryBool},
		ClosestBoolIsDistance: {CategoryBool, CategoryNumber},
		AlternatingGroupCount: {CategoryNumber},
		PositionsMatch:        {CategoryID, CategoryID},
		PositionsDiffer:       {CategoryID, CategoryID},
	}
	require.Len(t, Kinds, len(want))
	for _, k := range Kinds {
		assert.Equal(t, want[k], k.Slots(), k.String())
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Nil(t, Kind(99).Slots())
	assert.False(t, Kind(99).Valid())
}

func TestPuzzleJSON(t *testing.T) {
	p := samplePuzzle()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `{"kind":"position_is_bool","position":1,"values":[{"category":"id","value":2},{"category":"bool","value":true}]}`)

	var back Puzzle
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Empty(t, cmp.Diff(p, &back))

	var bad Puzzle
	assert.Error(t, json.Unmarshal([]byte(`{"statements":[{"kind":"nope","position":1}]}`), &bad))
}

func TestGuessParseAndString(t *testing.T) {
	g, err := ParseGuess("TfT10")
	require.NoError(t, err)
	assert.Equal(t, Guess{true, false, true, true, false}, g)
	assert.Equal(t, "TFTTF", g.String())
	assert.True(t, g.At(1))
	assert.False(t, g.At(2))

	_, err = ParseGuess("TX")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	assert.Equal(t, Guess{true, true, true, true}, NewGuess(4))
}

func TestSessionCloneIsDeep(t *testing.T) {
	s := &Session{ID: "a", Puzzle: samplePuzzle(), Guess: NewGuess(3)}
	c := s.Clone()
	c.Guess[0] = false
	c.Puzzle.Statements[0].Values[0] = ID(3)
	assert.True(t, s.Guess[0])
	assert.Equal(t, ID(2), s.Puzzle.Statements[0].Values[0])
}
