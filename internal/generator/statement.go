package generator

import (
	"math/rand"

	"svw.info/truthpuzzle/internal/domain"
)

// Statements builds one statement per position of a. Each statement's claim,
// evaluated against a, equals a at the statement's own position.
func Statements(rng *rand.Rand, a domain.Assignment) []domain.Statement {
	out := make([]domain.Statement, len(a))
	for i := range a {
		out[i] = NewStatement(rng, a, i+1)
	}
	return out
}

// NewStatement picks a kind uniformly and fills its values so the claim
// evaluates to a[position-1].
func NewStatement(rng *rand.Rand, a domain.Assignment, position int) domain.Statement {
	kind := domain.Kinds[rng.Intn(len(domain.Kinds))]
	return statementOf(rng, kind, a, position)
}

func statementOf(rng *rand.Rand, kind domain.Kind, a domain.Assignment, position int) domain.Statement {
	n := len(a)
	t := a[position-1]
	st := domain.Statement{Kind: kind, Position: position}

	switch kind {
	case domain.PositionIsBool:
		id := RandomExcluding(rng, 1, n, position)
		st.Values = []domain.Value{domain.ID(id), domain.Bool(a[id-1] != !t)}

	case domain.CountOfBoolIs:
		b := randomBool(rng)
		actual := countOf(a, b)
		if t && actual == 0 {
			// Every position holds !b.
			b, actual = !b, n
		}
		number := actual
		if !t {
			number = RandomExcluding(rng, 1, n, actual)
		}
		st.Values = []domain.Value{domain.Number(number), domain.Bool(b)}

	case domain.ClosestBoolIsDistance:
		b := randomBool(rng)
		d := closestDistance(a, position, b)
		var dist int
		switch {
		case t && d == 0:
			// Every other position holds !b, so a neighbour one step away does.
			b, dist = !b, 1
		case t:
			dist = d
		case d == 0:
			dist = 1 + rng.Intn(n)
		default:
			dist = RandomExcluding(rng, 1, n, d)
		}
		st.Values = []domain.Value{domain.Bool(b), domain.Number(dist)}

	case domain.AlternatingGroupCount:
		actual := groupCount(a)
		number := actual
		if !t {
			number = RandomExcluding(rng, 1, n, actual)
		}
		st.Values = []domain.Value{domain.Number(number)}

	case domain.PositionsMatch, domain.PositionsDiffer:
		id1 := 1 + rng.Intn(n)
		// The second id must share id1's value when the claim is "match"
		// and true, or "differ" and false.
		want := a[id1-1]
		if (kind == domain.PositionsMatch) != t {
			want = !want
		}
		var options []int
		for i, v := range a {
			if i+1 != id1 && v == want {
				options = append(options, i+1)
			}
		}
		var id2 int
		if len(options) > 0 {
			id2 = options[rng.Intn(len(options))]
		} else {
			// All other positions hold !want: the complementary kind with
			// any other id carries the intended truth.
			st.Kind = complement(kind)
			id2 = RandomExcluding(rng, 1, n, id1)
		}
		st.Values = []domain.Value{domain.ID(id1), domain.ID(id2)}
	}
	return st
}

func complement(k domain.Kind) domain.Kind {
	if k == domain.PositionsMatch {
		return domain.PositionsDiffer
	}
	return domain.PositionsMatch
}

func countOf(a domain.Assignment, b bool) int {
	n := 0
	for _, v := range a {
		if v == b {
			n++
		}
	}
	return n
}

// closestDistance scans outward from position, checking position+d before
// position-d, and returns the first d at which the value equals b, or 0.
func closestDistance(a domain.Assignment, position int, b bool) int {
	i := position - 1
	for d := 1; d < len(a); d++ {
		if i+d < len(a) && a[i+d] == b {
			return d
		}
		if i-d >= 0 && a[i-d] == b {
			return d
		}
	}
	return 0
}

// groupCount counts maximal runs of equal consecutive values.
func groupCount(a domain.Assignment) int {
	if len(a) == 0 {
		return 0
	}
	groups := 1
	for i := 1; i < len(a); i++ {
		if a[i] != a[i-1] {
			groups++
		}
	}
	return groups
}
