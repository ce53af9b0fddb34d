package sppf

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svedang/pcfg/earley"
	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

func ambiguousGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("ambiguous")
	b.LHS("S").N("S").N("S").End(1)
	b.LHS("S").T("a").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

func TestForestBinaryAmbiguity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.sppf")
	defer teardown()
	//
	g := ambiguousGrammar(t)
	p := earley.NewParser(g)
	chart, ok := p.Recognize(symbol.FromLetters("aaa"))
	require.True(t, ok)

	f := NewBuilder(chart).Build()
	require.NotNil(t, f.Root())

	root := f.Root()
	assert.True(t, len(root.Families) >= 2, "S over \"aaa\" should have at least two derivations, got %d", len(root.Families))

	prob := f.Probability()
	assert.True(t, prob > 0 && prob <= 1, "expected a probability in (0,1], got %v", prob)
}

func TestForestProbabilityNeverRises(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.sppf")
	defer teardown()
	//
	g := ambiguousGrammar(t)
	p := earley.NewParser(g)
	chart, ok := p.Recognize(symbol.FromLetters("aaaaa"))
	require.True(t, ok)

	f := NewBuilder(chart).Build()
	require.NotPanics(t, func() {
		f.Probability()
	}, "a correctly built forest must never trip the monotonicity violation")
}

func TestForestFamilyAnnotationMatchesLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.sppf")
	defer teardown()
	//
	g := ambiguousGrammar(t)
	p := earley.NewParser(g)
	chart, ok := p.Recognize(symbol.FromLetters("aa"))
	require.True(t, ok)

	f := NewBuilder(chart).Build()
	for _, n := range f.Nodes() {
		if n.Kind != KindSymbol {
			continue
		}
		for _, fam := range n.Families {
			if fam.Prod == nil {
				continue
			}
			assert.Same(t, n.Sym, fam.Prod.LHS, "a family's production LHS must match the node it hangs from")
		}
	}
}

func nullableTailGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("G")
	b.LHS("S").T("a").N("S").End(1)
	b.LHS("S").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

// TestForestRightRecursionNullableTail checks the seeded scenario
// S -> a S (w=1), S -> ε (w=1): parse-probability("a"×k) = 0.5^(k+1).
func TestForestRightRecursionNullableTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.sppf")
	defer teardown()
	//
	g := nullableTailGrammar(t)
	p := earley.NewParser(g)
	for k := 0; k <= 5; k++ {
		s := make([]byte, k)
		for i := range s {
			s[i] = 'a'
		}
		chart, ok := p.Recognize(symbol.FromLetters(string(s)))
		require.True(t, ok, "k=%d", k)
		f := NewBuilder(chart).Build()
		want := math.Pow(0.5, float64(k+1))
		assert.InDelta(t, want, f.Probability(), 1e-9, "k=%d", k)
	}
}

func TestForestNoDerivationHasNoRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.sppf")
	defer teardown()
	//
	g := ambiguousGrammar(t)
	p := earley.NewParser(g)
	chart, ok := p.Recognize(symbol.FromLetters("ab"))
	require.False(t, ok)

	f := NewBuilder(chart).Build()
	assert.Nil(t, f.Root())
	assert.Equal(t, float64(0), f.Probability())
}
