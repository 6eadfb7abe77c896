package hir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uranges(ranges ...[2]rune) []ClassUnicodeRange {
	out := make([]ClassUnicodeRange, len(ranges))
	for i, r := range ranges {
		out[i] = ClassUnicodeRange{Start: r[0], End: r[1]}
	}
	return out
}

func TestClassUnicodeCaseFold(t *testing.T) {
	cls := NewClassUnicode(ClassUnicodeRange{Start: 'a', End: 'z'})
	require.NoError(t, cls.TryCaseFoldSimple())

	rs := cls.Ranges()
	assert.Contains(t, rs, ClassUnicodeRange{Start: 'A', End: 'Z'})
	// The Kelvin sign and the long s fold into k and s respectively.
	assert.Contains(t, rs, ClassUnicodeRange{Start: 0x17F, End: 0x17F})
	assert.Contains(t, rs, ClassUnicodeRange{Start: 0x212A, End: 0x212A})
}

func TestClassUnicodeNegate(t *testing.T) {
	cls := NewClassUnicode(ClassUnicodeRange{Start: 'b', End: 'd'})
	cls.Negate()
	assert.Equal(t, uranges([2]rune{0, 'a'}, [2]rune{'e', 0x10FFFF}), cls.Ranges())

	cls.Negate()
	assert.Equal(t, uranges([2]rune{'b', 'd'}), cls.Ranges())
}

func TestClassUnicodeSetAlgebra(t *testing.T) {
	az := NewClassUnicode(ClassUnicodeRange{Start: 'a', End: 'z'})
	vowels := NewClassUnicode(
		ClassUnicodeRange{Start: 'a', End: 'a'},
		ClassUnicodeRange{Start: 'e', End: 'e'},
		ClassUnicodeRange{Start: 'i', End: 'i'},
		ClassUnicodeRange{Start: 'o', End: 'o'},
		ClassUnicodeRange{Start: 'u', End: 'u'},
	)

	inter := az.Clone()
	inter.Intersect(vowels)
	assert.Equal(t, vowels.Ranges(), inter.Ranges())

	diff := az.Clone()
	diff.Difference(vowels)
	assert.Equal(t, uranges(
		[2]rune{'b', 'd'}, [2]rune{'f', 'h'}, [2]rune{'j', 'n'},
		[2]rune{'p', 't'}, [2]rune{'v', 'z'},
	), diff.Ranges())

	sym := az.Clone()
	sym.SymmetricDifference(vowels)
	assert.Equal(t, diff.Ranges(), sym.Ranges())
}

func TestClassBytesCaseFold(t *testing.T) {
	cls := NewClassBytes(ClassBytesRange{Start: 'a', End: 'z'})
	cls.CaseFoldSimple()
	assert.Equal(t, []ClassBytesRange{{'A', 'Z'}, {'a', 'z'}}, cls.Ranges())

	// Partial overlap folds only the alphabetic part.
	cls = NewClassBytes(ClassBytesRange{Start: 'x', End: 0x7F})
	cls.CaseFoldSimple()
	assert.Equal(t, []ClassBytesRange{{'X', 'Z'}, {'x', 0x7F}}, cls.Ranges())

	// Non-alphabetic bytes are untouched.
	cls = NewClassBytes(ClassBytesRange{Start: '0', End: '9'})
	cls.CaseFoldSimple()
	assert.Equal(t, []ClassBytesRange{{'0', '9'}}, cls.Ranges())
}

func TestClassBytesNegate(t *testing.T) {
	cls := NewClassBytes(ClassBytesRange{Start: 0x61, End: 0x7A})
	cls.Negate()
	assert.Equal(t, []ClassBytesRange{{0x00, 0x60}, {0x7B, 0xFF}}, cls.Ranges())
}

func TestClassBytesIsAllASCII(t *testing.T) {
	assert.True(t, NewClassBytes().IsAllASCII())
	assert.True(t, NewClassBytes(ClassBytesRange{Start: 0, End: 0x7F}).IsAllASCII())
	assert.False(t, NewClassBytes(ClassBytesRange{Start: 0, End: 0x80}).IsAllASCII())

	cls := NewClassBytes(ClassBytesRange{Start: 'a', End: 'z'})
	cls.Negate()
	assert.False(t, cls.IsAllASCII())
}

func TestClassRangeConstructorsOrder(t *testing.T) {
	assert.Equal(t, ClassUnicodeRange{Start: 'a', End: 'z'}, NewClassUnicodeRange('z', 'a'))
	assert.Equal(t, ClassBytesRange{Start: 1, End: 9}, NewClassBytesRange(9, 1))
}
