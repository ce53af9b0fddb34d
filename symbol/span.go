package symbol

import "fmt"

// Span captures a run of input positions [From, To). Every terminal and
// nonterminal occurrence inside a parse carries a span denoting which
// slice of the sentence it covers.
type Span [2]uint64

// From returns the start value of a span.
func (s Span) From() uint64 { return s[0] }

// To returns the end value of a span.
func (s Span) To() uint64 { return s[1] }

// Len returns the length of (from…to).
func (s Span) Len() uint64 { return s[1] - s[0] }

// IsNull returns true for the zero span.
func (s Span) IsNull() bool { return s == Span{} }

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
