package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilityNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	pXX := b.LHS("S").N("X").N("X").End(2)
	pA := b.LHS("S").T("a").End(8)
	g, err := b.Grammar()
	require.NoError(t, err)
	assert.InDelta(t, 0.2, g.Probability(pXX), 1e-9)
	assert.InDelta(t, 0.8, g.Probability(pA), 1e-9)
}

func TestNegativeWeightRejected(t *testing.T) {
	b := NewBuilder("G")
	b.LHS("S").T("a").End(-1)
	_, err := b.Grammar()
	assert.Error(t, err)
}

func TestPurelyNullableGrammar(t *testing.T) {
	b := NewBuilder("G")
	b.LHS("S").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g.NullableProbability(g.Start()), 1e-9)
}

func TestRightRecursionNullableTail(t *testing.T) {
	b := NewBuilder("G")
	b.LHS("S").T("a").N("S").End(1)
	b.LHS("S").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)
	// S -> a S has a terminal, so it never contributes to nullability;
	// only S -> epsilon does, giving p_null(S) = 1/2.
	assert.InDelta(t, 0.5, g.NullableProbability(g.Start()), 1e-9)
}

func TestFindProduction(t *testing.T) {
	b := NewBuilder("G")
	p := b.LHS("S").N("A").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)
	found := g.FindProduction(g.Start(), p.RHS)
	assert.Same(t, p, found)
}
