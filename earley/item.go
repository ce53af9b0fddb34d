package earley

import (
	"fmt"

	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

// Edge is a back-pointer from an item to another item, labeled with
// the chart index at which the edge was created.
type Edge struct {
	Label  int
	Target *Item
}

// Item is an Earley item: a production with a dot position and an
// origin, plus the back-pointer edges needed to reconstruct an SPPF.
//
// Predecessors link to items of the same production whose dot is one
// position earlier. Reductions link to completed items of a
// nonterminal child. Both are populated incrementally as the chart is
// built; an Item is uniquely identified by (Prod, Dot, Origin), so two
// derivations of the same item share one Item value with merged edges.
//
// State records the chart position this item lives in (its "i" in the
// spec's (j, i) span notation); Origin is the span's "j".
type Item struct {
	Prod   *grammar.Production
	Dot    int
	Origin int
	State  int

	Predecessors []Edge
	Reductions   []Edge
}

// Complete reports whether the item's dot has reached the end of its RHS.
func (it *Item) Complete() bool {
	return it.Dot == len(it.Prod.RHS)
}

// NextSymbol returns the word right after the dot, or nil if complete.
func (it *Item) NextSymbol() symbol.Word {
	if it.Complete() {
		return nil
	}
	return it.Prod.RHS[it.Dot]
}

func (it *Item) String() string {
	return fmt.Sprintf("[%s, %d, %d]", it.Prod, it.Dot, it.Origin)
}

type itemKey struct {
	prod   *grammar.Production
	dot    int
	origin int
}

func keyOf(it *Item) itemKey {
	return itemKey{it.Prod, it.Dot, it.Origin}
}
