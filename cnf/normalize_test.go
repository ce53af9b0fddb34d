package cnf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svedang/pcfg/grammar"
)

func TestNormalizeEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.cnf")
	defer teardown()
	//
	b := grammar.NewBuilder("G")
	b.StartSymbol("S")
	g, err := b.Grammar()
	require.NoError(t, err)
	cg, err := NewNormalizer().Normalize(g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cg.EmptyProbability())
	assert.Empty(t, cg.Binaries())
	assert.Empty(t, cg.Terminals())
}

func TestNormalizePurelyNullable(t *testing.T) {
	b := grammar.NewBuilder("G")
	b.LHS("S").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)
	cg, err := NewNormalizer().Normalize(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cg.EmptyProbability(), 1e-9)
}

func TestNormalizeUnitChainCollapse(t *testing.T) {
	b := grammar.NewBuilder("G")
	b.LHS("A").N("B").End(1)
	b.LHS("B").N("C").End(1)
	b.LHS("C").T("a").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)
	cg, err := NewNormalizer().Normalize(g)
	require.NoError(t, err)
	require.Len(t, cg.Terminals(), 1)
	term := cg.Terminals()[0]
	assert.Equal(t, cg.Start(), term.LHS)
	assert.InDelta(t, 1.0, cg.ProbabilityTerminal(term), 1e-9)
}

func TestNormalizeCatalanGrammarShape(t *testing.T) {
	b := grammar.NewBuilder("G")
	b.LHS("S").N("X").N("X").End(2)
	b.LHS("S").T("a").End(8)
	b.LHS("X").N("X").N("X").End(2)
	b.LHS("X").T("a").End(8)
	g, err := b.Grammar()
	require.NoError(t, err)
	cg, err := NewNormalizer().Normalize(g)
	require.NoError(t, err)
	// S0 -> S is a unit rule eliminated by UNIT; S0 should end up with
	// the same shape of rules S itself has: one binary, one terminal.
	var binForStart, termForStart int
	for _, bi := range cg.Binaries() {
		if bi.LHS == cg.Start() {
			binForStart++
		}
	}
	for _, te := range cg.Terminals() {
		if te.LHS == cg.Start() {
			termForStart++
		}
	}
	assert.Equal(t, 1, binForStart)
	assert.Equal(t, 1, termForStart)
}
