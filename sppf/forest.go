package sppf

import (
	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

type nodeKey struct {
	kind Kind
	sym  symbol.Word
	prod *grammar.Production
	dot  int
	span symbol.Span
}

// Forest is a DAG of SPPF nodes, uniqued by structural value within
// one parse. It exclusively owns its nodes.
type Forest struct {
	grammar *grammar.Grammar
	nodes   map[nodeKey]*Node
	all     []*Node // dense, in creation order; reindexed to preorder ids by assignIDs
	root    *Node
}

func newForest(g *grammar.Grammar) *Forest {
	return &Forest{grammar: g, nodes: make(map[nodeKey]*Node)}
}

// Root returns the forest's root SymbolNode, or nil if the parse had
// no successful derivation.
func (f *Forest) Root() *Node {
	return f.root
}

// Grammar returns the grammar the forest's productions are drawn from.
func (f *Forest) Grammar() *grammar.Grammar {
	return f.grammar
}

// Nodes returns every node in the forest, ordered by ID.
func (f *Forest) Nodes() []*Node {
	return f.all
}

func (f *Forest) symbolNode(sym *symbol.Nonterminal, span symbol.Span) *Node {
	k := nodeKey{kind: KindSymbol, sym: sym, span: span}
	if n, ok := f.nodes[k]; ok {
		return n
	}
	n := &Node{Kind: KindSymbol, Sym: sym, Span: span}
	f.nodes[k] = n
	f.all = append(f.all, n)
	return n
}

func (f *Forest) intermediateNode(prod *grammar.Production, dot int, span symbol.Span) *Node {
	k := nodeKey{kind: KindIntermediate, prod: prod, dot: dot, span: span}
	if n, ok := f.nodes[k]; ok {
		return n
	}
	n := &Node{Kind: KindIntermediate, Prod: prod, Dot: dot, Span: span}
	f.nodes[k] = n
	f.all = append(f.all, n)
	return n
}

func (f *Forest) terminalNode(t *symbol.Terminal, start int) *Node {
	span := symbol.Span{uint64(start), uint64(start + 1)}
	k := nodeKey{kind: KindTerminal, sym: t, span: span}
	if n, ok := f.nodes[k]; ok {
		return n
	}
	n := &Node{Kind: KindTerminal, Sym: t, Span: span}
	f.nodes[k] = n
	f.all = append(f.all, n)
	return n
}

func (f *Forest) epsilonNode(pos int) *Node {
	span := symbol.Span{uint64(pos), uint64(pos)}
	k := nodeKey{kind: KindEpsilon, span: span}
	if n, ok := f.nodes[k]; ok {
		return n
	}
	n := &Node{Kind: KindEpsilon, Span: span}
	f.nodes[k] = n
	f.all = append(f.all, n)
	return n
}

// assignIDs performs the single preorder traversal from root that gives
// every reachable node a stable external identifier.
func (f *Forest) assignIDs() {
	if f.root == nil {
		f.all = nil
		return
	}
	visited := make(map[*Node]bool)
	ordered := make([]*Node, 0, len(f.all))
	var visit func(n *Node)
	visit = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		n.id = len(ordered)
		ordered = append(ordered, n)
		for _, fam := range n.Families {
			for _, c := range fam.Children {
				visit(c)
			}
		}
	}
	visit(f.root)
	f.all = ordered
}
