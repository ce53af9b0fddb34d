/*
Package grammar implements weighted context-free productions and the
grammars built from them: lookup by left-hand side, lazy per-LHS
probability normalization, and nullable-probability queries.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"github.com/svedang/pcfg/symbol"
)

func compareByName(a, b interface{}) int {
	return strings.Compare(a.(symbol.Word).String(), b.(symbol.Word).String())
}

// tracer traces with key 'pcfg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.grammar")
}

// ErrInvalidGrammar is returned when a grammar's invariants are
// violated at construction time. New rejects negative weights only; a
// RHS nonterminal without productions of its own is not rejected.
var ErrInvalidGrammar = errors.New("invalid grammar")

// Production is a weighted rule LHS -> RHS.
type Production struct {
	LHS    *symbol.Nonterminal
	RHS    symbol.Sentence
	Weight float64
}

// IsEpsilon reports whether p is an epsilon rule (empty RHS).
func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// IsUnit reports whether p is a unit rule: a single nonterminal on the RHS.
func (p *Production) IsUnit() bool {
	return len(p.RHS) == 1 && !p.RHS[0].IsTerminal()
}

// IsSelfLoop reports whether p is a unit rule whose RHS nonterminal equals its LHS.
func (p *Production) IsSelfLoop() bool {
	if !p.IsUnit() {
		return false
	}
	return p.RHS[0].(*symbol.Nonterminal) == p.LHS
}

func (p *Production) String() string {
	return p.LHS.String() + " -> " + p.RHS.String()
}

// Grammar is an immutable-after-construction collection of weighted
// productions over a designated start symbol.
type Grammar struct {
	start *symbol.Nonterminal
	prods []*Production
	byLHS map[*symbol.Nonterminal][]*Production

	totalsOnce sync.Once
	totals     map[*symbol.Nonterminal]float64

	nullableOnce sync.Once
	nullable     map[*symbol.Nonterminal]float64
}

// New constructs a Grammar from start and prods, validating that every
// weight is non-negative.
func New(start *symbol.Nonterminal, prods []*Production) (*Grammar, error) {
	byLHS := make(map[*symbol.Nonterminal][]*Production)
	for _, p := range prods {
		if p.Weight < 0 {
			return nil, errors.Wrapf(ErrInvalidGrammar, "negative weight on production %s", p)
		}
		byLHS[p.LHS] = append(byLHS[p.LHS], p)
	}
	g := &Grammar{start: start, prods: prods, byLHS: byLHS}
	tracer().Debugf("built grammar with %d productions, start=%v", len(prods), start)
	return g, nil
}

// Start returns the grammar's start symbol.
func (g *Grammar) Start() *symbol.Nonterminal {
	return g.start
}

// Productions returns every production in the grammar, in declaration order.
func (g *Grammar) Productions() []*Production {
	return g.prods
}

// ProductionsFrom returns every production with the given LHS.
func (g *Grammar) ProductionsFrom(a *symbol.Nonterminal) []*Production {
	return g.byLHS[a]
}

func (g *Grammar) totalWeight(a *symbol.Nonterminal) float64 {
	g.totalsOnce.Do(func() {
		g.totals = make(map[*symbol.Nonterminal]float64)
		for lhs, ps := range g.byLHS {
			var sum float64
			for _, p := range ps {
				sum += p.Weight
			}
			g.totals[lhs] = sum
		}
	})
	return g.totals[a]
}

// Probability returns weight(p) / Σ weight(p') over every p' sharing
// p's LHS. Computed lazily; weights, not probabilities, are the
// storage form.
func (g *Grammar) Probability(p *Production) float64 {
	total := g.totalWeight(p.LHS)
	if total == 0 {
		return 0
	}
	return p.Weight / total
}

// Nonterminals returns every nonterminal that appears as a LHS, sorted
// by name for reproducible dumps.
func (g *Grammar) Nonterminals() []*symbol.Nonterminal {
	set := treeset.NewWith(compareByName)
	for nt := range g.byLHS {
		set.Add(nt)
	}
	nts := make([]*symbol.Nonterminal, 0, set.Size())
	for _, v := range set.Values() {
		nts = append(nts, v.(*symbol.Nonterminal))
	}
	return nts
}

// Terminals returns every distinct terminal appearing in any RHS,
// sorted by name for reproducible dumps.
func (g *Grammar) Terminals() []*symbol.Terminal {
	set := treeset.NewWith(compareByName)
	for _, p := range g.prods {
		for _, w := range p.RHS {
			if t, ok := w.(*symbol.Terminal); ok {
				set.Add(t)
			}
		}
	}
	ts := make([]*symbol.Terminal, 0, set.Size())
	for _, v := range set.Values() {
		ts = append(ts, v.(*symbol.Terminal))
	}
	return ts
}

// FindProduction returns the production with the given LHS and RHS, or
// nil if no such production exists. RHS words are compared by identity
// (they are interned).
func (g *Grammar) FindProduction(lhs *symbol.Nonterminal, rhs symbol.Sentence) *Production {
	for _, p := range g.byLHS[lhs] {
		if sameRHS(p.RHS, rhs) {
			return p
		}
	}
	return nil
}

func sameRHS(a, b symbol.Sentence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
