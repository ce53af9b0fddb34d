package iteratable

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Set is an insertion-order-preserving set of arbitrary values,
// suitable for chart-like algorithms where new members are appended
// while a caller is in the middle of iterating: IterateOnce followed by
// repeated Next/Item walks the set by position, and items Add-ed after
// the walk has started are still visited once the cursor reaches them.
//
// All operations mutate the set in place; there is no immutable variant.
type Set struct {
	list  *arraylist.List
	index map[interface{}]int // value -> position in list
	pos   int                 // iteration cursor, -1 before IterateOnce
}

// NewSet creates a Set, optionally pre-populated with items (duplicates
// are dropped, first occurrence wins).
func NewSet(items ...interface{}) *Set {
	s := &Set{
		list:  arraylist.New(),
		index: make(map[interface{}]int),
		pos:   -1,
	}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts item if not already present. Returns the set for chaining.
func (s *Set) Add(item interface{}) *Set {
	if _, ok := s.index[item]; ok {
		return s
	}
	s.index[item] = s.list.Size()
	s.list.Add(item)
	return s
}

// Remove deletes item if present. Returns the set for chaining.
func (s *Set) Remove(item interface{}) *Set {
	i, ok := s.index[item]
	if !ok {
		return s
	}
	s.list.Remove(i)
	delete(s.index, item)
	for v, p := range s.index {
		if p > i {
			s.index[v] = p - 1
		}
	}
	if s.pos >= i {
		s.pos--
	}
	return s
}

// Contains reports whether item is a member of the set.
func (s *Set) Contains(item interface{}) bool {
	_, ok := s.index[item]
	return ok
}

// Size returns the number of members.
func (s *Set) Size() int {
	return s.list.Size()
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s.list.Empty()
}

// Items returns a snapshot of the members in insertion order.
func (s *Set) Items() []interface{} {
	return s.list.Values()
}

// IterateOnce resets the iteration cursor to the start of the set.
// Items appended after this call (but before iteration completes) are
// still visited by subsequent Next calls.
func (s *Set) IterateOnce() {
	s.pos = -1
}

// Next advances the cursor and reports whether an item is available.
// The size is re-checked on every call, so items appended mid-iteration
// are picked up.
func (s *Set) Next() bool {
	s.pos++
	return s.pos < s.list.Size()
}

// Item returns the member at the current cursor position. Valid only
// after a Next call that returned true.
func (s *Set) Item() interface{} {
	v, _ := s.list.Get(s.pos)
	return v
}

// Each calls f once for every current member, in insertion order. f may
// not mutate the set.
func (s *Set) Each(f func(item interface{})) {
	for _, v := range s.list.Values() {
		f(v)
	}
}

// Union destructively adds every member of other to s.
func (s *Set) Union(other *Set) *Set {
	other.Each(func(item interface{}) {
		s.Add(item)
	})
	return s
}

func (s *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, v := range s.list.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("}")
	return b.String()
}
