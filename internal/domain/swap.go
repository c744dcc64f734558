package domain

// SwapValues exchanges the value in slot slotA of the statement at posA with
// the value in slot slotB of the statement at posB. Positions are 1-based and
// slots 0-based. Only values of the same category can trade places; any other
// request leaves the puzzle untouched and reports false.
func (p *Puzzle) SwapValues(posA, slotA, posB, slotB int) bool {
	a, ok := p.slot(posA, slotA)
	if !ok {
		return false
	}
	b, ok := p.slot(posB, slotB)
	if !ok {
		return false
	}
	if a == b || a.Category != b.Category {
		return false
	}
	*a, *b = *b, *a
	return true
}

func (p *Puzzle) slot(pos, slot int) (*Value, bool) {
	if pos < 1 || pos > len(p.Statements) {
		return nil, false
	}
	vals := p.Statements[pos-1].Values
	if slot < 0 || slot >= len(vals) {
		return nil, false
	}
	return &vals[slot], true
}
