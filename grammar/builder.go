package grammar

import (
	"github.com/svedang/pcfg/symbol"
)

// Builder assembles a Grammar through a fluent, rule-at-a-time API:
//
//	b := grammar.NewBuilder("G")
//	b.LHS("S").N("X").N("X").End(2)
//	b.LHS("S").T("a").End(8)
//	g, err := b.Grammar()
//
// The start symbol defaults to the LHS of the first rule added; call
// StartSymbol to override it.
type Builder struct {
	name  string
	start *symbol.Nonterminal
	prods []*Production
}

// NewBuilder creates an empty Builder. name is descriptive only.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// StartSymbol overrides the grammar's start symbol.
func (b *Builder) StartSymbol(name string) *Builder {
	b.start = symbol.InternNonterminal(name)
	return b
}

// RuleBuilder accumulates the RHS of a single rule under construction.
type RuleBuilder struct {
	b   *Builder
	lhs *symbol.Nonterminal
	rhs symbol.Sentence
}

// LHS begins a new rule with the given left-hand side.
func (b *Builder) LHS(name string) *RuleBuilder {
	lhs := symbol.InternNonterminal(name)
	if b.start == nil {
		b.start = lhs
	}
	return &RuleBuilder{b: b, lhs: lhs}
}

// N appends a nonterminal to the rule's RHS.
func (r *RuleBuilder) N(name string) *RuleBuilder {
	r.rhs = append(r.rhs, symbol.InternNonterminal(name))
	return r
}

// T appends a terminal to the rule's RHS.
func (r *RuleBuilder) T(name string) *RuleBuilder {
	r.rhs = append(r.rhs, symbol.Intern(name))
	return r
}

// End finalizes the rule with the given weight and registers it with
// the builder, returning the resulting Production.
func (r *RuleBuilder) End(weight float64) *Production {
	p := &Production{LHS: r.lhs, RHS: r.rhs, Weight: weight}
	r.b.prods = append(r.b.prods, p)
	return p
}

// Grammar finalizes the builder into a Grammar.
func (b *Builder) Grammar() (*Grammar, error) {
	return New(b.start, b.prods)
}
