package symbol

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.symbol")
	defer teardown()
	//
	a1 := Intern("a")
	a2 := Intern("a")
	assert.Same(t, a1, a2, "two interned terminals with the same name must be the same value")
	b := Intern("b")
	assert.NotSame(t, a1, b)
}

func TestInternNonterminalIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.symbol")
	defer teardown()
	//
	s1 := InternNonterminal("S")
	s2 := InternNonterminal("S")
	assert.Same(t, s1, s2)
}

func TestFreshIsUnique(t *testing.T) {
	f1 := Fresh("S")
	f2 := Fresh("S")
	assert.NotEqual(t, f1.Name(), f2.Name())
}

func TestSentenceFromLetters(t *testing.T) {
	s := FromLetters("aab")
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "a", s[0].String())
	assert.Equal(t, "b", s[2].String())
	assert.True(t, s[0].IsTerminal())
}

func TestSpan(t *testing.T) {
	s := Span{2, 5}
	assert.Equal(t, uint64(2), s.From())
	assert.Equal(t, uint64(5), s.To())
	assert.Equal(t, uint64(3), s.Len())
	assert.False(t, s.IsNull())
	assert.True(t, (Span{}).IsNull())
	ext := s.Extend(Span{0, 3})
	assert.Equal(t, Span{0, 5}, ext)
}
