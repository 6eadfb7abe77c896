package ucd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexkit/rehir/pkg/hir"
)

func containsRune(cls *hir.ClassUnicode, r rune) bool {
	for _, rg := range cls.Ranges() {
		if rg.Start <= r && r <= rg.End {
			return true
		}
	}
	return false
}

func TestOneLetterCategory(t *testing.T) {
	cls, err := Class(OneLetter('L'))
	require.NoError(t, err)
	assert.True(t, containsRune(cls, 'a'))
	assert.True(t, containsRune(cls, 'Z'))
	assert.True(t, containsRune(cls, 0x3B1)) // α
	assert.False(t, containsRune(cls, '7'))

	cls, err = Class(OneLetter('N'))
	require.NoError(t, err)
	assert.True(t, containsRune(cls, '7'))
	assert.False(t, containsRune(cls, 'a'))

	_, err = Class(OneLetter('q'))
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ErrKindPropertyValueNotFound, uerr.Kind)
}

func TestBinaryLookupOrder(t *testing.T) {
	// Scripts resolve through a bare name.
	cls, err := Class(Binary("Greek"))
	require.NoError(t, err)
	assert.True(t, containsRune(cls, 0x3B1))
	assert.False(t, containsRune(cls, 'a'))

	// So do binary properties and spelled-out categories.
	cls, err = Class(Binary("White_Space"))
	require.NoError(t, err)
	assert.True(t, containsRune(cls, ' '))

	cls, err = Class(Binary("Letter"))
	require.NoError(t, err)
	assert.True(t, containsRune(cls, 'a'))

	_, err = Class(Binary("Bogus_Property"))
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ErrKindPropertyNotFound, uerr.Kind)
}

func TestLooseMatching(t *testing.T) {
	names := []string{"White_Space", "whitespace", "WHITE-SPACE", "white space"}
	for _, name := range names {
		cls, err := Class(Binary(name))
		require.NoError(t, err, "name %q", name)
		assert.True(t, containsRune(cls, '\t'), "name %q", name)
	}
}

func TestByValue(t *testing.T) {
	cls, err := Class(ByValue("sc", "Latin"))
	require.NoError(t, err)
	assert.True(t, containsRune(cls, 'a'))
	assert.False(t, containsRune(cls, 0x3B1))

	cls, err = Class(ByValue("General_Category", "Nd"))
	require.NoError(t, err)
	assert.True(t, containsRune(cls, '0'))

	_, err = Class(ByValue("gc", "Bogus"))
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ErrKindPropertyValueNotFound, uerr.Kind)
	assert.Equal(t, "Bogus", uerr.Name)

	_, err = Class(ByValue("shoesize", "44"))
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ErrKindPropertyNotFound, uerr.Kind)
}

func TestSpecialClasses(t *testing.T) {
	cls, err := Class(Binary("any"))
	require.NoError(t, err)
	assert.Equal(t,
		[]hir.ClassUnicodeRange{{Start: 0, End: 0x10FFFF}},
		cls.Ranges())

	cls, err = Class(Binary("ascii"))
	require.NoError(t, err)
	assert.Equal(t,
		[]hir.ClassUnicodeRange{{Start: 0, End: 0x7F}},
		cls.Ranges())

	assigned, err := Class(Binary("assigned"))
	require.NoError(t, err)
	unassigned, err := Class(Binary("cn"))
	require.NoError(t, err)
	assert.True(t, containsRune(assigned, 'a'))
	assert.False(t, containsRune(unassigned, 'a'))

	// The two must partition the scalar value space.
	union := assigned.Clone()
	union.Union(unassigned)
	assert.Equal(t,
		[]hir.ClassUnicodeRange{{Start: 0, End: 0x10FFFF}},
		union.Ranges())
}

func TestPerlClasses(t *testing.T) {
	d := PerlDigit()
	assert.True(t, containsRune(d, '0'))
	assert.True(t, containsRune(d, 0x660)) // ARABIC-INDIC DIGIT ZERO
	assert.False(t, containsRune(d, 'a'))

	s := PerlSpace()
	assert.True(t, containsRune(s, ' '))
	assert.True(t, containsRune(s, '\n'))
	assert.True(t, containsRune(s, 0x2028)) // LINE SEPARATOR
	assert.False(t, containsRune(s, 'x'))

	w := PerlWord()
	assert.True(t, containsRune(w, 'a'))
	assert.True(t, containsRune(w, '_'))
	assert.True(t, containsRune(w, '0'))
	assert.True(t, containsRune(w, 0x3B1))
	assert.False(t, containsRune(w, '-'))
	assert.False(t, containsRune(w, ' '))
}

func TestCaseFolding(t *testing.T) {
	assert.Contains(t, SimpleFold('k'), rune(0x212A))
	assert.NotContains(t, SimpleFold('k'), 'k')

	assert.True(t, ContainsSimpleCaseMapping('a', 'z'))
	assert.False(t, ContainsSimpleCaseMapping('0', '9'))
}

func TestErrorMessages(t *testing.T) {
	err := &Error{Kind: ErrKindPropertyNotFound, Name: "Frob"}
	assert.Equal(t, "unicode property not found: Frob", err.Error())
	assert.True(t, errors.As(error(err), new(*Error)))
}
