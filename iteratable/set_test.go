package iteratable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddContains(t *testing.T) {
	s := NewSet()
	s.Add("a").Add("b").Add("a")
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
}

func TestRemove(t *testing.T) {
	s := NewSet("a", "b", "c")
	s.Remove("b")
	require.Equal(t, 2, s.Size())
	assert.False(t, s.Contains("b"))
	assert.Equal(t, []interface{}{"a", "c"}, s.Items())
}

// TestAppendDuringIteration mirrors the chart-building pattern: items
// inserted while walking the set are themselves visited.
func TestAppendDuringIteration(t *testing.T) {
	s := NewSet(1)
	seen := []int{}
	s.IterateOnce()
	for s.Next() {
		v := s.Item().(int)
		seen = append(seen, v)
		if v < 3 {
			s.Add(v + 1)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestUnion(t *testing.T) {
	a := NewSet("x", "y")
	b := NewSet("y", "z")
	a.Union(b)
	assert.Equal(t, 3, a.Size())
	assert.True(t, a.Contains("z"))
}
