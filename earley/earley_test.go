package earley

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

// TestRightRecursionNullableTail exercises the case the CNF pipeline
// cannot represent directly: S -> a S (w=1), S -> ε (w=1). Earley must
// compute parse-probability("a"×k) = 0.5^(k+1).
func TestRightRecursionNullableTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.earley")
	defer teardown()
	//
	b := grammar.NewBuilder("G")
	b.LHS("S").T("a").N("S").End(1)
	b.LHS("S").End(1)
	g, err := b.Grammar()
	require.NoError(t, err)

	p := NewParser(g)
	for k := 0; k <= 5; k++ {
		s := symbol.FromLetters(repeatA(k))
		chart, ok := p.Recognize(s)
		require.True(t, ok, "k=%d", k)
		assert.True(t, len(chart.Successes()) > 0, "k=%d", k)
	}
	// The 0.5^(k+1) value itself is checked against the sppf
	// fixpoint's output in sppf_test.go, which has to import this
	// package anyway to build its chart.
}

func TestRecognizeCatalanGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.earley")
	defer teardown()
	//
	b := grammar.NewBuilder("G")
	b.LHS("S").N("X").N("X").End(2)
	b.LHS("S").T("a").End(8)
	b.LHS("X").N("X").N("X").End(2)
	b.LHS("X").T("a").End(8)
	g, err := b.Grammar()
	require.NoError(t, err)

	p := NewParser(g)
	_, ok := p.Recognize(symbol.FromLetters("aaa"))
	assert.True(t, ok)
	_, ok = p.Recognize(symbol.FromLetters("b"))
	assert.False(t, ok)
}

func TestRecognizeEmptyGrammarRejectsNonEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.earley")
	defer teardown()
	//
	b := grammar.NewBuilder("G")
	b.StartSymbol("S")
	g, err := b.Grammar()
	require.NoError(t, err)

	p := NewParser(g)
	_, ok := p.Recognize(symbol.FromLetters("a"))
	assert.False(t, ok)
}

func TestRecognizeUnitChainCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.earley")
	defer teardown()
	//
	b := grammar.NewBuilder("G")
	b.LHS("A").N("B").End(1)
	b.LHS("B").N("C").End(1)
	b.LHS("C").T("a").End(1)
	b.StartSymbol("A")
	g, err := b.Grammar()
	require.NoError(t, err)

	p := NewParser(g)
	_, ok := p.Recognize(symbol.FromLetters("a"))
	assert.True(t, ok)
}

func repeatA(k int) string {
	b := make([]byte, k)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
