/*
Package sppf builds a Shared Packed Parse Forest from a recognized
Earley chart, following Scott's 2008 construction scheme, and computes
derivation probability as a fixpoint over the resulting DAG.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sppf

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

// tracer traces with key 'pcfg.sppf'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.sppf")
}

// Kind tags the four SPPF node variants.
type Kind int

const (
	KindSymbol Kind = iota
	KindIntermediate
	KindTerminal
	KindEpsilon
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindIntermediate:
		return "Intermediate"
	case KindTerminal:
		return "Terminal"
	case KindEpsilon:
		return "Epsilon"
	}
	return "?"
}

// Family is one alternative derivation at an interior node: 1 or 2
// children, optionally labeled with the production it instantiates.
type Family struct {
	Children []*Node
	Prod     *grammar.Production
}

// Node is a single SPPF node. SymbolNode and TerminalNode carry Sym;
// IntermediateNode carries Prod/Dot (the partial production it
// represents); EpsilonNode carries neither. Interior nodes (Symbol,
// Intermediate) own a Families list; multiple families mean ambiguity.
type Node struct {
	Kind Kind
	Sym  symbol.Word // Symbol: *symbol.Nonterminal; Terminal: *symbol.Terminal
	Prod *grammar.Production
	Dot  int
	Span symbol.Span

	Families []*Family

	id int // assigned by a preorder traversal once the forest is finalized
}

// ID returns the node's stable, preorder-assigned identifier.
func (n *Node) ID() int {
	return n.id
}

// IsLeaf reports whether n is a Terminal or Epsilon node, or an
// interior node with no families attached.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindTerminal || n.Kind == KindEpsilon || len(n.Families) == 0
}

func (n *Node) addFamily(f *Family) {
	for _, existing := range n.Families {
		if sameFamily(existing, f) {
			return
		}
	}
	n.Families = append(n.Families, f)
}

func sameFamily(a, b *Family) bool {
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if a.Children[i] != b.Children[i] {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	switch n.Kind {
	case KindSymbol, KindTerminal:
		return fmt.Sprintf("%s%s", n.Sym, n.Span)
	case KindIntermediate:
		return fmt.Sprintf("[%s•%d]%s", n.Prod, n.Dot, n.Span)
	default:
		return fmt.Sprintf("ε%s", n.Span)
	}
}
