// Package testutil holds hand-built puzzles with known solution sets.
package testutil

import "svw.info/truthpuzzle/internal/domain"

// UniquePuzzle has exactly one solution: FFF.
//
//	1. 2nd sentence is true
//	2. Both 1st and 3rd sentences have the opposite truth values
//	3. There are 2 sentences that are true
func UniquePuzzle() *domain.Puzzle {
	return &domain.Puzzle{Statements: []domain.Statement{
		{Kind: domain.PositionIsBool, Position: 1, Values: []domain.Value{domain.ID(2), domain.Bool(true)}},
		{Kind: domain.PositionsDiffer, Position: 2, Values: []domain.Value{domain.ID(1), domain.ID(3)}},
		{Kind: domain.CountOfBoolIs, Position: 3, Values: []domain.Value{domain.Number(2), domain.Bool(true)}},
	}}
}

// OpenPuzzle is satisfied by every guess: each sentence says "This sentence
// is true".
func OpenPuzzle() *domain.Puzzle {
	p := &domain.Puzzle{}
	for pos := 1; pos <= 3; pos++ {
		p.Statements = append(p.Statements, domain.Statement{
			Kind: domain.PositionIsBool, Position: pos,
			Values: []domain.Value{domain.ID(pos), domain.Bool(true)},
		})
	}
	return p
}

// ParadoxPuzzle has no solution: the 1st sentence says it is false.
func ParadoxPuzzle() *domain.Puzzle {
	p := OpenPuzzle()
	p.Statements[0].Values[1] = domain.Bool(false)
	return p
}
