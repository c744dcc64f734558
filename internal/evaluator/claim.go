package evaluator

import (
	"fmt"

	"svw.info/truthpuzzle/internal/domain"
)

// Claim evaluates what st asserts about truths, where truths[i] is the value
// of position i+1. truths may be a generation assignment or a guess.
func Claim(st domain.Statement, truths []bool) (bool, error) {
	n := len(truths)
	if n < 1 {
		return false, fmt.Errorf("%w: empty truth table", domain.ErrInvalidGuess)
	}
	if err := validateStatement(st, n); err != nil {
		return false, err
	}
	if st.Position < 1 || st.Position > n {
		return false, fmt.Errorf("%w: statement position %d out of range 1..%d", domain.ErrInvalidPuzzle, st.Position, n)
	}
	at := func(pos int) bool { return truths[pos-1] }
	v := st.Values

	switch st.Kind {
	case domain.PositionIsBool:
		return at(v[0].N) == v[1].B, nil
	case domain.CountOfBoolIs:
		count := 0
		for _, t := range truths {
			if t == v[1].B {
				count++
			}
		}
		return count == v[0].N, nil
	case domain.ClosestBoolIsDistance:
		return closestIs(truths, st.Position, v[0].B, v[1].N), nil
	case domain.AlternatingGroupCount:
		groups := 1
		for i := 1; i < n; i++ {
			if truths[i] != truths[i-1] {
				groups++
			}
		}
		return groups == v[0].N, nil
	case domain.PositionsMatch:
		return at(v[0].N) == at(v[1].N), nil
	case domain.PositionsDiffer:
		return at(v[0].N) != at(v[1].N), nil
	}
	return false, fmt.Errorf("%w: statement %d has unknown kind %d", domain.ErrInvalidPuzzle, st.Position, int(st.Kind))
}

// closestIs reports whether the nearest position other than pos holding b is
// exactly d away: nothing strictly closer holds b, and a position at distance
// d on either side does.
func closestIs(truths []bool, pos int, b bool, d int) bool {
	n := len(truths)
	for i := pos - d + 1; i <= pos+d-1; i++ {
		if i < 1 || i > n || i == pos {
			continue
		}
		if truths[i-1] == b {
			return false
		}
	}
	if pos-d >= 1 && truths[pos-d-1] == b {
		return true
	}
	return pos+d <= n && truths[pos+d-1] == b
}
