/*
Package earley implements a probabilistic Earley chart parser:
prediction, scan and completion over state sets, with nullable "magic"
items and back-pointer edges sufficient to reconstruct an SPPF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

// tracer traces with key 'pcfg.earley'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.earley")
}

// Chart is the result of recognizing a sentence: one StateSet per
// chart position 0..len(sentence), plus the sentence itself (needed by
// the SPPF builder to know terminal spans).
type Chart struct {
	States   []*StateSet
	Sentence symbol.Sentence
	Grammar  *grammar.Grammar
}

// Successes returns every complete item in the final state that
// originates at 0 and has the grammar's start symbol as LHS.
func (c *Chart) Successes() []*Item {
	final := c.States[len(c.States)-1]
	var out []*Item
	final.items.IterateOnce()
	for final.items.Next() {
		it := final.items.Item().(*Item)
		if it.Complete() && it.Origin == 0 && it.Prod.LHS == c.Grammar.Start() {
			out = append(out, it)
		}
	}
	return out
}

// Parser recognizes sentences against an arbitrary (not necessarily
// CNF) grammar, using the grammar's own nullable-probability oracle to
// drive nullable eager-advance ("magic items") during prediction.
type Parser struct {
	g        *grammar.Grammar
	nullable map[*symbol.Nonterminal]float64
}

// NewParser creates an earley.Parser bound to g.
func NewParser(g *grammar.Grammar) *Parser {
	return &Parser{g: g, nullable: g.NullableProbabilities()}
}

// Recognize builds the full chart for s and reports whether the start
// symbol derives it. If any intermediate state set (besides the last)
// ends up empty, recognition fails outright (EmptyChart).
func (p *Parser) Recognize(s symbol.Sentence) (*Chart, bool) {
	n := s.Len()
	states := make([]*StateSet, n+1)
	for i := range states {
		states[i] = newStateSet(i)
	}
	for _, prod := range p.g.ProductionsFrom(p.g.Start()) {
		states[0].add(&Item{Prod: prod, Dot: 0, Origin: 0})
	}

	for i := 0; i <= n; i++ {
		S := states[i]
		S.items.IterateOnce()
		for S.items.Next() {
			it := S.items.Item().(*Item)
			next := it.NextSymbol()
			switch {
			case next == nil:
				p.complete(states, i, it)
			case !next.IsTerminal():
				p.predict(states, i, it, next.(*symbol.Nonterminal))
			case i < n && next.(*symbol.Terminal) == s[i]:
				p.scan(states, i, it)
			}
		}
		p.resolveMagicItems(states, i)
		if S.Size() == 0 && i < n {
			tracer().Debugf("EmptyChart at position %d", i)
			return &Chart{States: states, Sentence: s, Grammar: p.g}, false
		}
	}

	chart := &Chart{States: states, Sentence: s, Grammar: p.g}
	return chart, len(chart.Successes()) > 0
}

func (p *Parser) advance(it *Item) *Item {
	return &Item{Prod: it.Prod, Dot: it.Dot + 1, Origin: it.Origin}
}

// predict implements the Earley prediction step, including eager
// advance over nullable nonterminals via magic items.
func (p *Parser) predict(states []*StateSet, i int, I *Item, C *symbol.Nonterminal) {
	S := states[i]
	if !S.predicted[C] {
		S.predicted[C] = true
		for _, prod := range p.g.ProductionsFrom(C) {
			S.add(&Item{Prod: prod, Dot: 0, Origin: i})
		}
	}
	if p.nullable[C] > 0 {
		adv := S.add(p.advance(I))
		if I.Dot > 0 {
			adv.Predecessors = append(adv.Predecessors, Edge{Label: i, Target: I})
		}
		S.magic = append(S.magic, magicEntry{c: C, item: adv})
	}
}

// complete implements the Earley completion step.
func (p *Parser) complete(states []*StateSet, i int, I *Item) {
	A := I.Prod.LHS
	origin := I.Origin
	O := states[origin]
	// Snapshot O's members rather than sharing its live iteration
	// cursor: when origin == i, O is the very state set the caller in
	// Recognize is still walking, and a nested IterateOnce/Next pair
	// would reset that cursor out from under it.
	for _, v := range O.items.Items() {
		J := v.(*Item)
		next := J.NextSymbol()
		if next == nil || next.IsTerminal() {
			continue
		}
		if next.(*symbol.Nonterminal) != A {
			continue
		}
		adv := states[i].add(p.advance(J))
		adv.Reductions = append(adv.Reductions, Edge{Label: origin, Target: I})
		if J.Dot > 0 {
			adv.Predecessors = append(adv.Predecessors, Edge{Label: origin, Target: J})
		}
	}
}

// scan implements the Earley scan step.
func (p *Parser) scan(states []*StateSet, i int, I *Item) {
	adv := states[i+1].add(p.advance(I))
	if I.Dot > 0 {
		adv.Predecessors = append(adv.Predecessors, Edge{Label: i, Target: I})
	}
}

// resolveMagicItems is the post-pass the design calls for: once a
// state set has settled, every magic item recorded during prediction
// gets a reduction edge to any complete item of the same nonterminal
// and origin that ended up living in the same state.
func (p *Parser) resolveMagicItems(states []*StateSet, i int) {
	S := states[i]
	if len(S.magic) == 0 {
		return
	}
	for _, me := range S.magic {
		// Same reasoning as in complete: S is the state set Recognize
		// is still walking, so snapshot rather than reuse its cursor.
		for _, v := range S.items.Items() {
			q := v.(*Item)
			if q.Complete() && q.Prod.LHS == me.c && q.Origin == i {
				me.item.Reductions = append(me.item.Reductions, Edge{Label: i, Target: q})
			}
		}
	}
}
