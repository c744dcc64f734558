package domain

import (
	"fmt"
	"strings"
)

// Kind selects the claim a statement makes.
type Kind int

const (
	PositionIsBool        Kind = iota // "{id} sentence is {bool}"
	CountOfBoolIs                     // "There are {number} sentences that are {bool}"
	ClosestBoolIsDistance             // "The closest {bool} sentence is {number} spots away"
	AlternatingGroupCount             // "There are {number} alternating groups"
	PositionsMatch                    // "Both {id} and {id} sentences have the same truth value"
	PositionsDiffer                   // "Both {id} and {id} sentences have the opposite truth values"
)

// Kinds lists every statement kind in declaration order.
var Kinds = []Kind{
	PositionIsBool,
	CountOfBoolIs,
	ClosestBoolIsDistance,
	AlternatingGroupCount,
	PositionsMatch,
	PositionsDiffer,
}

// Slots returns the value categories a statement of this kind carries, in
// display order. Both generation and shuffling are driven by this table.
func (k Kind) Slots() []Category {
	switch k {
	case PositionIsBool:
		return []Category{CategoryID, CategoryBool}
	case CountOfBoolIs:
		return []Category{CategoryNumber, CategoryBool}
	case ClosestBoolIsDistance:
		return []Category{CategoryBool, CategoryNumber}
	case AlternatingGroupCount:
		return []Category{CategoryNumber}
	case PositionsMatch, PositionsDiffer:
		return []Category{CategoryID, CategoryID}
	default:
		return nil
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= PositionIsBool && k <= PositionsDiffer }

func (k Kind) String() string {
	switch k {
	case PositionIsBool:
		return "position_is_bool"
	case CountOfBoolIs:
		return "count_of_bool_is"
	case ClosestBoolIsDistance:
		return "closest_bool_is_distance"
	case AlternatingGroupCount:
		return "alternating_group_count"
	case PositionsMatch:
		return "positions_match"
	case PositionsDiffer:
		return "positions_differ"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown statement kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown statement kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Category is the kind of value a statement slot holds.
type Category int

const (
	CategoryID     Category = iota // 1-based position reference
	CategoryBool                   // literal true/false
	CategoryNumber                 // count or distance in [1,n]
)

// Categories lists every value category.
var Categories = []Category{CategoryID, CategoryBool, CategoryNumber}

func (c Category) String() string {
	switch c {
	case CategoryID:
		return "id"
	case CategoryBool:
		return "bool"
	case CategoryNumber:
		return "number"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

func (c Category) MarshalText() ([]byte, error) {
	switch c {
	case CategoryID, CategoryBool, CategoryNumber:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("unknown value category %d", int(c))
}

func (c *Category) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "id":
		*c = CategoryID
	case "bool":
		*c = CategoryBool
	case "number":
		*c = CategoryNumber
	default:
		return fmt.Errorf("unknown value category %q", string(b))
	}
	return nil
}

// State tracks a play session through generate / input / evaluate.
type State int

const (
	AwaitingInput State = iota // fresh puzzle, or guess revised since the last check
	Failed                     // last submission had inconsistent statements
)

func (s State) String() string {
	if s == Failed {
		return "failed"
	}
	return "awaiting_input"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
