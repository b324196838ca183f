package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	t.Run("getOrCreate allocates once", func(t *testing.T) {
		a := newArena()
		first, err := a.getOrCreate(0, 'q')
		require.NoError(t, err)
		second, err := a.getOrCreate(0, 'Q')
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, a.nodes, 2)

		child, ok, err := a.get(0, 'q')
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, first, child)
	})

	t.Run("get on a missing child is not an error", func(t *testing.T) {
		a := newArena()
		_, ok, err := a.get(0, 'x')
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-letters have no slot", func(t *testing.T) {
		a := newArena()
		_, _, err := a.get(0, '?')
		assert.ErrorIs(t, err, ErrNonAlphabeticIndex)
		_, err = a.getOrCreate(0, '-')
		assert.ErrorIs(t, err, ErrNonAlphabeticIndex)
		assert.Len(t, a.nodes, 1)
	})

	t.Run("marking twice is harmless", func(t *testing.T) {
		a := newArena()
		require.NoError(t, a.insert(0, "ab"))
		require.NoError(t, a.insert(0, "ab"))
		assert.Equal(t, 3, a.nodeCount(0))
		assert.Equal(t, 1, a.wordCount(0))
	})

	t.Run("own word comes before children", func(t *testing.T) {
		a := newArena()
		for _, w := range []string{"b", "ba", "a"} {
			require.NoError(t, a.insert(0, w))
		}
		l, _ := ParseLetters("ab")
		assert.Equal(t, []string{"a", "b", "ba"}, a.anagrams(0, l, nil, nil))
	})
}
