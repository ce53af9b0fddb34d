package sppf

import (
	"github.com/svedang/pcfg/symbol"
)

// Direction lets a caller choose whether a node's children are
// traversed left-to-right (default) or right-to-left.
type Direction int

const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// RuleCtxt carries contextual information for one node visited during
// a traversal.
type RuleCtxt struct {
	Span  symbol.Span
	Level int
}

// Listener walks a disambiguated path through a forest. EnterNode
// returns false to skip a node's children. ExitNode and Terminal
// return a user-defined value that is propagated to the parent's
// ExitNode call, in RHS order.
//
// Conflict is called whenever the walk reaches a node with more than
// one family — an ambiguous node, where the grammar produced this span
// more than one way. Its return value is the index of the family to
// descend into; an error aborts the walk.
type Listener interface {
	EnterNode(*Node, RuleCtxt) bool
	ExitNode(*Node, []interface{}, RuleCtxt) interface{}
	Terminal(*Node, RuleCtxt) interface{}
	Conflict(*Node, RuleCtxt) (int, error)
}

// Walk traverses the forest's root top-down with listener, returning
// the value ExitNode produced at the root, or nil if the forest has no
// root or the walk was aborted by a Conflict error.
func Walk(f *Forest, listener Listener, dir Direction) interface{} {
	if f.root == nil {
		return nil
	}
	v, _ := walk(f.root, listener, dir, 0)
	return v
}

func walk(n *Node, listener Listener, dir Direction, level int) (interface{}, error) {
	ctxt := RuleCtxt{Span: n.Span, Level: level}
	if n.Kind == KindTerminal {
		return listener.Terminal(n, ctxt), nil
	}
	if n.Kind == KindEpsilon || len(n.Families) == 0 {
		return listener.Terminal(n, ctxt), nil
	}

	fam := n.Families[0]
	if len(n.Families) > 1 {
		idx, err := listener.Conflict(n, ctxt)
		if err != nil {
			return nil, err
		}
		fam = n.Families[idx]
	}

	if !listener.EnterNode(n, ctxt) {
		return listener.ExitNode(n, nil, ctxt), nil
	}

	children := fam.Children
	values := make([]interface{}, len(children))
	order := make([]int, len(children))
	for i := range order {
		if dir == RtoL {
			order[i] = len(children) - 1 - i
		} else {
			order[i] = i
		}
	}
	for _, i := range order {
		v, err := walk(children[i], listener, dir, level+1)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return listener.ExitNode(n, values, ctxt), nil
}
