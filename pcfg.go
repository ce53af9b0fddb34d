package pcfg

import (
	"github.com/svedang/pcfg/cnf"
	"github.com/svedang/pcfg/cyk"
	"github.com/svedang/pcfg/earley"
	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/sppf"
	"github.com/svedang/pcfg/symbol"
)

// Parser is the capability every concrete parser in this module
// exposes: a probability for a sentence, and — where derivation
// structure is available — a forest of every way the grammar produced
// it.
type Parser interface {
	// ParseProbability returns the total probability, in [0,1], that
	// the grammar's start symbol derives s.
	ParseProbability(s symbol.Sentence) float64
	// Accepts reports whether ParseProbability(s) > 0.
	Accepts(s symbol.Sentence) bool
	// ParseForest returns the SPPF for s, or nil if CYK-backed (CYK
	// computes probability only) or if s has no derivation.
	ParseForest(s symbol.Sentence) *sppf.Forest
}

// cykParser adapts cyk.Parser to the Parser interface; it never builds
// a forest.
type cykParser struct {
	p *cyk.Parser
}

// NewCYKParser creates a Parser backed by the CYK recognizer. g must
// already be in Chomsky Normal Form; use cnf.NewNormalizer to get one
// from an arbitrary grammar.
func NewCYKParser(g *cnf.Grammar) Parser {
	return &cykParser{p: cyk.NewParser(g)}
}

func (c *cykParser) ParseProbability(s symbol.Sentence) float64 {
	return c.p.ParseProbability(s)
}

func (c *cykParser) Accepts(s symbol.Sentence) bool {
	return c.p.Accepts(s)
}

func (c *cykParser) ParseForest(s symbol.Sentence) *sppf.Forest {
	return nil
}

// earleyParser adapts earley.Parser to the Parser interface, building
// the SPPF and running its probability fixpoint lazily and at most once
// per sentence.
type earleyParser struct {
	p *earley.Parser
}

// NewEarleyParser creates a Parser backed by the Earley chart recognizer
// and SPPF builder. Unlike CYK, g need not be in CNF.
func NewEarleyParser(g *grammar.Grammar) Parser {
	return &earleyParser{p: earley.NewParser(g)}
}

func (e *earleyParser) ParseProbability(s symbol.Sentence) float64 {
	chart, ok := e.p.Recognize(s)
	if !ok {
		return 0
	}
	f := sppf.NewBuilder(chart).Build()
	return f.Probability()
}

func (e *earleyParser) Accepts(s symbol.Sentence) bool {
	return e.ParseProbability(s) > 0
}

func (e *earleyParser) ParseForest(s symbol.Sentence) *sppf.Forest {
	chart, ok := e.p.Recognize(s)
	if !ok {
		return nil
	}
	return sppf.NewBuilder(chart).Build()
}
