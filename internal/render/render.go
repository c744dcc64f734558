// Package render turns statements into the text shown to players.
package render

import (
	"strconv"
	"strings"

	"svw.info/truthpuzzle/internal/domain"
)

// Segment is one piece of a rendered statement. Slot is the index of the
// value it displays, or -1 for fixed template text; Category is empty for
// fixed text.
type Segment struct {
	Text     string `json:"text"`
	Slot     int    `json:"slot"`
	Category string `json:"category,omitempty"`
}

// Segments renders st as alternating template text and value slots,
// starting with the "N. " position prefix.
func Segments(st domain.Statement) []Segment {
	out := []Segment{plain(strconv.Itoa(st.Position) + ". ")}
	slot := func(i int) Segment {
		if i >= len(st.Values) {
			return Segment{Text: "?", Slot: i}
		}
		v := st.Values[i]
		return Segment{Text: Value(v, st.Position), Slot: i, Category: v.Category.String()}
	}

	switch st.Kind {
	case domain.PositionIsBool:
		out = append(out, slot(0), plain(" sentence is "), slot(1))
	case domain.CountOfBoolIs:
		out = append(out, plain("There are "), slot(0), plain(" sentences that are "), slot(1))
	case domain.ClosestBoolIsDistance:
		out = append(out, plain("The closest "), slot(0), plain(" sentence is "), slot(1), plain(" spots away"))
	case domain.AlternatingGroupCount:
		out = append(out, plain("There are "), slot(0), plain(" alternating groups"))
	case domain.PositionsMatch:
		out = append(out, plain("Both "), slot(0), plain(" and "), slot(1), plain(" sentences have the same truth value"))
	case domain.PositionsDiffer:
		out = append(out, plain("Both "), slot(0), plain(" and "), slot(1), plain(" sentences have the opposite truth values"))
	}
	return out
}

// Statement renders st as a single line.
func Statement(st domain.Statement) string {
	var b strings.Builder
	for _, s := range Segments(st) {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Lines renders every statement of p.
func Lines(p *domain.Puzzle) []string {
	out := make([]string, len(p.Statements))
	for i, st := range p.Statements {
		out[i] = Statement(st)
	}
	return out
}

// Value renders v as it appears inside the statement at own.
func Value(v domain.Value, own int) string {
	switch v.Category {
	case domain.CategoryID:
		if v.N == own {
			return "This"
		}
		return Ordinal(v.N)
	case domain.CategoryBool:
		return strconv.FormatBool(v.B)
	case domain.CategoryNumber:
		return strconv.Itoa(v.N)
	}
	return "?"
}

// Ordinal renders n as 1st, 2nd, 3rd, 4th, ...
func Ordinal(n int) string {
	s := strconv.Itoa(n)
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return s + "th"
	case n%10 == 1:
		return s + "st"
	case n%10 == 2:
		return s + "nd"
	case n%10 == 3:
		return s + "rd"
	}
	return s + "th"
}

func plain(s string) Segment { return Segment{Text: s, Slot: -1} }
