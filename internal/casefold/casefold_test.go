package casefold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrbit(t *testing.T) {
	// k folds with K and the Kelvin sign U+212A.
	assert.ElementsMatch(t, []rune{'K', 0x212A}, Orbit('k'))
	assert.ElementsMatch(t, []rune{'k', 0x212A}, Orbit('K'))
	assert.ElementsMatch(t, []rune{'B'}, Orbit('b'))
	assert.Empty(t, Orbit('1'))
	assert.Empty(t, Orbit('_'))
}

func TestHasFoldable(t *testing.T) {
	assert.True(t, HasFoldable('a', 'z'))
	assert.True(t, HasFoldable('k', 'k'))
	assert.False(t, HasFoldable('0', '9'))
	assert.False(t, HasFoldable(' ', ' '))
}

func TestFoldableIn(t *testing.T) {
	assert.Len(t, FoldableIn('A', 'Z'), 26)
	assert.Empty(t, FoldableIn('0', '9'))

	// The table is ascending, so slicing by range preserves order.
	rs := FoldableIn('a', 'e')
	assert.Equal(t, []rune{'a', 'b', 'c', 'd', 'e'}, rs)
}
