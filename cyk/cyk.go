/*
Package cyk implements the weighted CYK recognizer over a Chomsky
Normal Form grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/svedang/pcfg/cnf"
	"github.com/svedang/pcfg/symbol"
)

// tracer traces with key 'pcfg.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.cyk")
}

// Parser recognizes sentences against a CNF grammar via the classic
// triangular dynamic-programming table. It computes a probability only;
// it does not build a parse forest (see package earley/sppf for that).
type Parser struct {
	g *cnf.Grammar
}

// NewParser creates a CYK Parser bound to g.
func NewParser(g *cnf.Grammar) *Parser {
	return &Parser{g: g}
}

// Accepts reports whether s has non-zero derivation probability.
func (p *Parser) Accepts(s symbol.Sentence) bool {
	return p.ParseProbability(s) > 0
}

// ParseProbability computes the total probability of the start symbol
// deriving s.
func (p *Parser) ParseProbability(s symbol.Sentence) float64 {
	n := s.Len()
	if n == 0 {
		return p.g.EmptyProbability()
	}
	// cell[i][l] is the probability table for the span s[i : i+l],
	// keyed by nonterminal. l ranges over [1, n-i].
	cell := make([][]map[*symbol.Nonterminal]float64, n)
	for i := range cell {
		cell[i] = make([]map[*symbol.Nonterminal]float64, n-i+1)
	}

	for i := 0; i < n; i++ {
		t, ok := s[i].(*symbol.Terminal)
		if !ok {
			continue // not a terminal alphabet member: contributes nothing
		}
		m := make(map[*symbol.Nonterminal]float64)
		for _, rule := range p.g.TerminalRulesFor(t) {
			m[rule.LHS] += p.g.ProbabilityTerminal(rule)
		}
		cell[i][1] = m
	}

	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			m := cell[i][l]
			if m == nil {
				m = make(map[*symbol.Nonterminal]float64)
				cell[i][l] = m
			}
			for k := 1; k < l; k++ {
				left := cell[i][k]
				right := cell[i+k][l-k]
				if left == nil || right == nil {
					continue
				}
				for B, pb := range left {
					for C, pc := range right {
						for _, rule := range p.g.BinariesFor(B, C) {
							m[rule.LHS] += p.g.ProbabilityBinary(rule) * pb * pc
						}
					}
				}
			}
		}
	}

	final := cell[0][n]
	if final == nil {
		return 0
	}
	prob := final[p.g.Start()]
	tracer().Debugf("CYK: P(start derives %v) = %g", s, prob)
	return prob
}
