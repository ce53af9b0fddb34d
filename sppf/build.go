package sppf

import (
	"github.com/svedang/pcfg/earley"
	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

// Builder constructs a Forest from a recognized earley.Chart.
//
// Per-item families are attached inline during construction rather
// than in a separate "production annotation" pass: a family is
// annotated with its item's production exactly once per rule. For a
// rule with at most one RHS symbol, that's the complete item's own
// SymbolNode family (it has no IntermediateNode child). For longer
// rules, it's the IntermediateNode one position short of complete (the
// "root split" of the rule); the complete item's SymbolNode family,
// and every deeper IntermediateNode in the chain, stays transparent.
// This produces the same annotated forest a separate pass would,
// without double-counting the rule's probability, and with less
// bookkeeping.
type Builder struct {
	chart      *earley.Chart
	forest     *Forest
	processing map[*earley.Item]bool
	done       map[*earley.Item]bool
}

// NewBuilder creates a Builder for chart.
func NewBuilder(chart *earley.Chart) *Builder {
	return &Builder{
		chart:      chart,
		forest:     newForest(chart.Grammar),
		processing: make(map[*earley.Item]bool),
		done:       make(map[*earley.Item]bool),
	}
}

// Build constructs the forest. If the chart had no successful
// derivation, the returned forest has a nil Root and no nodes.
func (b *Builder) Build() *Forest {
	for _, q := range b.chart.Successes() {
		b.forest.root = b.node(q)
	}
	b.forest.assignIDs()
	return b.forest
}

// node returns the Symbol- or IntermediateNode for item, building its
// families on first visit. Revisits during an in-progress build (the
// cyclic case, possible only through nullable derivations) return the
// node immediately without re-attaching families, breaking the cycle;
// the families get attached once the outer call that started the
// cycle completes.
func (b *Builder) node(item *earley.Item) *Node {
	rhs := item.Prod.RHS
	span := symbol.Span{uint64(item.Origin), uint64(item.State)}
	var n *Node
	if item.Dot == len(rhs) {
		n = b.forest.symbolNode(item.Prod.LHS, span)
	} else {
		n = b.forest.intermediateNode(item.Prod, item.Dot, span)
	}
	if b.processing[item] || b.done[item] {
		return n
	}
	b.processing[item] = true
	b.attachFamilies(n, item)
	b.done[item] = true
	delete(b.processing, item)
	return n
}

func (b *Builder) annotationFor(item *earley.Item) *grammar.Production {
	rhs := item.Prod.RHS
	if item.Dot == len(rhs)-1 {
		return item.Prod
	}
	if item.Dot == len(rhs) && len(rhs) <= 1 {
		return item.Prod
	}
	return nil
}

func (b *Builder) attachFamilies(n *Node, item *earley.Item) {
	rhs := item.Prod.RHS
	dot := item.Dot
	j, i := item.Origin, item.State
	prod := b.annotationFor(item)

	if len(rhs) == 0 {
		eps := b.forest.epsilonNode(i)
		n.addFamily(&Family{Children: []*Node{eps}, Prod: prod})
		return
	}

	if dot == 1 {
		w := rhs[0]
		if t, ok := w.(*symbol.Terminal); ok {
			v := b.forest.terminalNode(t, i-1)
			n.addFamily(&Family{Children: []*Node{v}, Prod: prod})
			return
		}
		for _, red := range item.Reductions {
			if red.Label != j {
				continue
			}
			child := b.node(red.Target)
			n.addFamily(&Family{Children: []*Node{child}, Prod: prod})
		}
		return
	}

	// dot > 1
	w := rhs[dot-1]
	if t, ok := w.(*symbol.Terminal); ok {
		v := b.forest.terminalNode(t, i-1)
		for _, pred := range item.Predecessors {
			if pred.Label != i-1 {
				continue
			}
			w := b.node(pred.Target)
			n.addFamily(&Family{Children: []*Node{w, v}, Prod: prod})
		}
		return
	}
	for _, red := range item.Reductions {
		l := red.Label
		v := b.node(red.Target)
		for _, pred := range item.Predecessors {
			if pred.Label != l {
				continue
			}
			w := b.node(pred.Target)
			n.addFamily(&Family{Children: []*Node{w, v}, Prod: prod})
		}
	}
}
