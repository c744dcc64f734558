package solver

import (
	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/evaluator"
)

// BacktrackingSolver assigns positions left to right and checks each
// statement as soon as every position it reads has a value.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// readyAt groups statement indexes by the depth at which they can be
// checked: the highest position the statement reads.
func readyAt(p *domain.Puzzle) [][]int {
	n := p.Size()
	out := make([][]int, n+1)
	for i, st := range p.Statements {
		d := depth(st, n)
		out[d] = append(out[d], i)
	}
	return out
}

func depth(st domain.Statement, n int) int {
	switch st.Kind {
	case domain.PositionIsBool:
		return max(st.Position, st.Values[0].N)
	case domain.PositionsMatch, domain.PositionsDiffer:
		return max(st.Position, st.Values[0].N, st.Values[1].N)
	default:
		return n
	}
}

// holds reports whether every statement in idx is consistent with grid.
func holds(p *domain.Puzzle, idx []int, grid []bool) bool {
	for _, i := range idx {
		st := p.Statements[i]
		claim, err := evaluator.Claim(st, grid)
		if err != nil || claim != grid[st.Position-1] {
			return false
		}
	}
	return true
}

// search walks every assignment, calling leaf for each one that satisfies
// all statements. leaf returns true to stop the walk.
func search(p *domain.Puzzle, stop func() bool, leaf func(grid []bool) bool) int {
	n := p.Size()
	ready := readyAt(p)
	grid := make([]bool, n)
	nodes := 0
	var dfs func(k int) bool
	dfs = func(k int) bool {
		if stop() {
			return true
		}
		if k == n {
			return leaf(grid)
		}
		for _, v := range [2]bool{true, false} {
			nodes++
			grid[k] = v
			if !holds(p, ready[k+1], grid) {
				continue
			}
			if dfs(k + 1) {
				return true
			}
		}
		return false
	}
	_ = dfs(0)
	return nodes
}
