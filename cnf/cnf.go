/*
Package cnf represents grammars in Chomsky Normal Form and normalizes
arbitrary weighted grammars into that form via the classic
START/TERM/BIN/DEL/UNIT pipeline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"

	"github.com/svedang/pcfg/symbol"
)

// tracer traces with key 'pcfg.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.cnf")
}

// Binary is a CNF production A -> B C.
type Binary struct {
	LHS    *symbol.Nonterminal
	B, C   *symbol.Nonterminal
	Weight float64
}

func (b *Binary) String() string {
	return b.LHS.String() + " -> " + b.B.String() + " " + b.C.String()
}

// Terminal is a CNF production A -> t.
type Terminal struct {
	LHS    *symbol.Nonterminal
	T      *symbol.Terminal
	Weight float64
}

func (t *Terminal) String() string {
	return t.LHS.String() + " -> " + t.T.String()
}

// Grammar is a grammar in Chomsky Normal Form, plus the accumulated
// empty weight for the start symbol (see the DEL step of Normalizer).
type Grammar struct {
	start     *symbol.Nonterminal
	binaries  []*Binary
	terminals []*Terminal

	emptyWeight float64

	binaryByPair map[*symbol.Nonterminal]map[*symbol.Nonterminal][]*Binary
	termByLetter map[*symbol.Terminal][]*Terminal

	totalsOnce sync.Once
	totals     map[*symbol.Nonterminal]float64
}

// New constructs a CNF Grammar from explicit binary and terminal
// productions, plus the accumulated empty weight attributed to start.
func New(start *symbol.Nonterminal, binaries []*Binary, terminals []*Terminal, emptyWeight float64) *Grammar {
	g := &Grammar{
		start:       start,
		binaries:    binaries,
		terminals:   terminals,
		emptyWeight: emptyWeight,
	}
	g.index()
	return g
}

func (g *Grammar) index() {
	g.binaryByPair = make(map[*symbol.Nonterminal]map[*symbol.Nonterminal][]*Binary)
	for _, b := range g.binaries {
		m := g.binaryByPair[b.B]
		if m == nil {
			m = make(map[*symbol.Nonterminal][]*Binary)
			g.binaryByPair[b.B] = m
		}
		m[b.C] = append(m[b.C], b)
	}
	g.termByLetter = make(map[*symbol.Terminal][]*Terminal)
	for _, t := range g.terminals {
		g.termByLetter[t.T] = append(g.termByLetter[t.T], t)
	}
}

// Start returns the (fresh) CNF start symbol.
func (g *Grammar) Start() *symbol.Nonterminal {
	return g.start
}

// Binaries returns every binary production.
func (g *Grammar) Binaries() []*Binary {
	return g.binaries
}

// Terminals returns every terminal production.
func (g *Grammar) Terminals() []*Terminal {
	return g.terminals
}

// BinariesFor returns every A -> B C production for the given B, C pair.
func (g *Grammar) BinariesFor(b, c *symbol.Nonterminal) []*Binary {
	return g.binaryByPair[b][c]
}

// TerminalRulesFor returns every A -> t production for the given terminal.
func (g *Grammar) TerminalRulesFor(t *symbol.Terminal) []*Terminal {
	return g.termByLetter[t]
}

func (g *Grammar) totalWeight(a *symbol.Nonterminal) float64 {
	g.totalsOnce.Do(func() {
		g.totals = make(map[*symbol.Nonterminal]float64)
		for _, b := range g.binaries {
			g.totals[b.LHS] += b.Weight
		}
		for _, t := range g.terminals {
			g.totals[t.LHS] += t.Weight
		}
		g.totals[g.start] += g.emptyWeight
	})
	return g.totals[a]
}

// ProbabilityBinary returns the per-LHS normalized probability of a
// binary production.
func (g *Grammar) ProbabilityBinary(b *Binary) float64 {
	total := g.totalWeight(b.LHS)
	if total == 0 {
		return 0
	}
	return b.Weight / total
}

// ProbabilityTerminal returns the per-LHS normalized probability of a
// terminal production.
func (g *Grammar) ProbabilityTerminal(t *Terminal) float64 {
	total := g.totalWeight(t.LHS)
	if total == 0 {
		return 0
	}
	return t.Weight / total
}

// EmptyProbability returns the normalized probability that the start
// symbol derives the empty string directly (i.e. parse-probability of
// the empty sentence).
func (g *Grammar) EmptyProbability() float64 {
	total := g.totalWeight(g.start)
	if total == 0 {
		return 0
	}
	return g.emptyWeight / total
}
