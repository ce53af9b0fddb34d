package earley

import (
	"github.com/svedang/pcfg/iteratable"
	"github.com/svedang/pcfg/symbol"
)

type magicEntry struct {
	c    *symbol.Nonterminal
	item *Item
}

// StateSet is the chart's per-position container of items: an ordered,
// deduplicating set (new items appended during the same scan are
// themselves visited, via package iteratable), plus the bookkeeping
// prediction and magic-item tracking needs.
type StateSet struct {
	index     int
	items     *iteratable.Set // of *Item
	byKey     map[itemKey]*Item
	predicted map[*symbol.Nonterminal]bool
	magic     []magicEntry
}

func newStateSet(index int) *StateSet {
	return &StateSet{
		index:     index,
		items:     iteratable.NewSet(),
		byKey:     make(map[itemKey]*Item),
		predicted: make(map[*symbol.Nonterminal]bool),
	}
}

// Size returns the number of items currently in the set.
func (S *StateSet) Size() int {
	return S.items.Size()
}

// add inserts it if no item with the same (prod, dot, origin) exists
// yet, returning the canonical pointer for the key either way.
func (S *StateSet) add(it *Item) *Item {
	k := keyOf(it)
	if existing, ok := S.byKey[k]; ok {
		return existing
	}
	it.State = S.index
	S.byKey[k] = it
	S.items.Add(it)
	return it
}
