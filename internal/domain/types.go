package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Puzzle sizes. A puzzle holds one statement per position.
const (
	MinSize = 3
	MaxSize = 6
)

// Value is one entry in a statement slot. Category decides which of the
// payload fields is meaningful: N for ids and numbers, B for bools.
type Value struct {
	Category Category
	N        int
	B        bool
}

// ID references a 1-based position.
func ID(position int) Value { return Value{Category: CategoryID, N: position} }

// Bool is a literal truth value.
func Bool(b bool) Value { return Value{Category: CategoryBool, B: b} }

// Number is a count or distance.
func Number(n int) Value { return Value{Category: CategoryNumber, N: n} }

func (v Value) String() string {
	switch v.Category {
	case CategoryID:
		return "#" + strconv.Itoa(v.N)
	case CategoryBool:
		return strconv.FormatBool(v.B)
	case CategoryNumber:
		return strconv.Itoa(v.N)
	default:
		return "?"
	}
}

type valueJSON struct {
	Category Category        `json:"category"`
	Value    json.RawMessage `json:"value"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	var raw []byte
	switch v.Category {
	case CategoryID, CategoryNumber:
		raw = []byte(strconv.Itoa(v.N))
	case CategoryBool:
		raw = []byte(strconv.FormatBool(v.B))
	default:
		return nil, fmt.Errorf("unknown value category %d", int(v.Category))
	}
	return json.Marshal(valueJSON{Category: v.Category, Value: raw})
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var in valueJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	out := Value{Category: in.Category}
	switch in.Category {
	case CategoryID, CategoryNumber:
		if err := json.Unmarshal(in.Value, &out.N); err != nil {
			return fmt.Errorf("%s value: %w", in.Category, err)
		}
	case CategoryBool:
		if err := json.Unmarshal(in.Value, &out.B); err != nil {
			return fmt.Errorf("bool value: %w", err)
		}
	}
	*v = out
	return nil
}

// Statement is one puzzle line, attached to its own 1-based position.
type Statement struct {
	Kind     Kind    `json:"kind"`
	Position int     `json:"position"`
	Values   []Value `json:"values"`
}

// Puzzle is an ordered set of statements, one per position 1..n.
type Puzzle struct {
	ID         string      `json:"id,omitempty"`
	Seed       int64       `json:"seed,omitempty"`
	Statements []Statement `json:"statements"`
	CreatedAt  int64       `json:"createdAt,omitempty"`
}

// Size is the number of positions in the puzzle.
func (p *Puzzle) Size() int { return len(p.Statements) }

// Clone returns a deep copy so callers can mutate values independently.
func (p *Puzzle) Clone() *Puzzle {
	if p == nil {
		return nil
	}
	out := *p
	out.Statements = make([]Statement, len(p.Statements))
	for i, st := range p.Statements {
		st.Values = append([]Value(nil), st.Values...)
		out.Statements[i] = st
	}
	return &out
}

// Assignment is the hidden truth table a puzzle is generated from.
// Index i holds the value of position i+1.
type Assignment []bool

// Guess is the player's candidate assignment, indexed like Assignment.
type Guess []bool

// NewGuess returns the initial guess for a puzzle of size n: every box ticked.
func NewGuess(n int) Guess {
	g := make(Guess, n)
	for i := range g {
		g[i] = true
	}
	return g
}

// At returns the value of a 1-based position.
func (g Guess) At(position int) bool { return g[position-1] }

// String renders the guess as T/F letters, e.g. "TFT".
func (g Guess) String() string {
	b := make([]byte, len(g))
	for i, v := range g {
		if v {
			b[i] = 'T'
		} else {
			b[i] = 'F'
		}
	}
	return string(b)
}

// ParseGuess reads a T/F (or 1/0) string produced by Guess.String.
func ParseGuess(s string) (Guess, error) {
	g := make(Guess, 0, len(s))
	for i, r := range s {
		switch r {
		case 'T', 't', '1':
			g = append(g, true)
		case 'F', 'f', '0':
			g = append(g, false)
		default:
			return nil, fmt.Errorf("%w: character %q at %d", ErrInvalidGuess, r, i+1)
		}
	}
	return g, nil
}

// Evaluation is the outcome of checking a guess against a puzzle.
// Consistent[i] reports whether the statement at position i+1 holds.
type Evaluation struct {
	Consistent []bool `json:"consistent"`
	Pass       bool   `json:"pass"`
}

// Inconsistent returns the 1-based positions whose statements do not hold.
func (e Evaluation) Inconsistent() []int {
	var out []int
	for i, ok := range e.Consistent {
		if !ok {
			out = append(out, i+1)
		}
	}
	return out
}

// Hint describes a suggestion for the player.
type Hint struct {
	Message  string `json:"message,omitempty"`
	Position int    `json:"position,omitempty"`
	// Flip is set when the hint suggests toggling Position; otherwise the
	// hint only points at a statement that does not hold.
	Flip bool `json:"flip,omitempty"`
}

// Session is one player's run through a sequence of puzzles.
type Session struct {
	ID        string  `json:"id"`
	Level     int     `json:"level"`
	State     State   `json:"state"`
	Puzzle    *Puzzle `json:"puzzle"`
	Guess     Guess   `json:"guess"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Puzzle = s.Puzzle.Clone()
	out.Guess = append(Guess(nil), s.Guess...)
	return &out
}
