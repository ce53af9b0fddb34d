package pcfg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svedang/pcfg/cnf"
	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

func catalanGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("G")
	b.LHS("S").N("X").N("X").End(2)
	b.LHS("S").T("a").End(8)
	b.LHS("X").N("X").N("X").End(2)
	b.LHS("X").T("a").End(8)
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

// TestCYKAndEarleyAgree checks the CNF-vs-Earley agreement property: for
// a grammar with no pathological epsilon ambiguity, both recognizers
// assign the same sentence the same total probability.
func TestCYKAndEarleyAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg")
	defer teardown()
	//
	g := catalanGrammar(t)
	cg, err := cnf.NewNormalizer().Normalize(g)
	require.NoError(t, err)

	cykP := NewCYKParser(cg)
	earleyP := NewEarleyParser(g)

	for _, s := range []string{"a", "aa", "aaa", "aaaa"} {
		sentence := symbol.FromLetters(s)
		cykProb := cykP.ParseProbability(sentence)
		earleyProb := earleyP.ParseProbability(sentence)
		assert.InDelta(t, cykProb, earleyProb, 1e-9, "P(%s): CYK=%v Earley=%v", s, cykProb, earleyProb)
	}
}

func TestEarleyParserForest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg")
	defer teardown()
	//
	g := catalanGrammar(t)
	p := NewEarleyParser(g)

	f := p.ParseForest(symbol.FromLetters("aaa"))
	require.NotNil(t, f)
	assert.NotNil(t, f.Root())
	assert.True(t, p.Accepts(symbol.FromLetters("aaa")))
}

func TestEarleyParserRejectsUnknownTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg")
	defer teardown()
	//
	g := catalanGrammar(t)
	p := NewEarleyParser(g)

	assert.False(t, p.Accepts(symbol.FromLetters("b")))
	assert.Nil(t, p.ParseForest(symbol.FromLetters("b")))
}

func TestCYKParserHasNoForest(t *testing.T) {
	g := catalanGrammar(t)
	cg, err := cnf.NewNormalizer().Normalize(g)
	require.NoError(t, err)
	p := NewCYKParser(cg)
	assert.Nil(t, p.ParseForest(symbol.FromLetters("a")))
}
