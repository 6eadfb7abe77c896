package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStringCollapse(t *testing.T) {
	assert.IsType(t, &Empty{}, NewString(""))
	assert.IsType(t, &Literal{}, NewString("a"))

	cat, ok := NewString("abc").(*Concat)
	require.True(t, ok)
	require.Len(t, cat.Asts, 3)
	assert.Equal(t, rune('b'), cat.Asts[1].(*Literal).C)
}

func TestConcatCollapse(t *testing.T) {
	assert.IsType(t, &Empty{}, NewConcat())

	sole := NewLiteral('a')
	assert.Same(t, Ast(sole), NewConcat(sole))

	assert.IsType(t, &Concat{}, NewConcat(NewLiteral('a'), NewLiteral('b')))
}

func TestAlternationCollapse(t *testing.T) {
	assert.IsType(t, &Empty{}, NewAlternation())

	sole := NewLiteral('a')
	assert.Same(t, Ast(sole), NewAlternation(sole))
}

func TestClassSetUnionIntoItem(t *testing.T) {
	empty := (&ClassSetUnion{}).IntoItem()
	assert.IsType(t, &ClassSetUnion{}, empty)

	sole := NewLiteral('a')
	one := NewClassSetUnion(sole)
	assert.Same(t, ClassSetItem(sole), one.IntoItem())

	two := NewClassSetUnion(NewLiteral('a'), NewLiteral('b'))
	assert.IsType(t, &ClassSetUnion{}, two.IntoItem())
}

func TestLiteralByte(t *testing.T) {
	b, ok := NewByteLiteral(0xFF).Byte()
	require.True(t, ok)
	assert.Equal(t, byte(0xFF), b)

	// Only \xNN escapes report a byte value.
	_, ok = NewLiteral('a').Byte()
	assert.False(t, ok)
}

func TestGroupAccessors(t *testing.T) {
	cap := NewCaptureGroup(3, NewEmpty())
	assert.True(t, cap.IsCapturing())
	idx, ok := cap.CaptureIndexOf()
	require.True(t, ok)
	assert.Equal(t, uint32(3), idx)
	assert.Nil(t, cap.Flags())

	named := NewNamedGroup(2, "year", NewEmpty())
	assert.True(t, named.IsCapturing())
	idx, ok = named.CaptureIndexOf()
	require.True(t, ok)
	assert.Equal(t, uint32(2), idx)

	plain := NewNonCapturingGroup(NewEmpty())
	assert.False(t, plain.IsCapturing())
	_, ok = plain.CaptureIndexOf()
	assert.False(t, ok)
	assert.Nil(t, plain.Flags())

	flagged := NewFlagGroup("i", NewEmpty())
	assert.False(t, flagged.IsCapturing())
	require.NotNil(t, flagged.Flags())
}

func TestFlagsParsing(t *testing.T) {
	flags := NewFlags("im-u")

	enabled, ok := flags.FlagState(FlagCaseInsensitive)
	require.True(t, ok)
	assert.True(t, enabled)

	enabled, ok = flags.FlagState(FlagMultiLine)
	require.True(t, ok)
	assert.True(t, enabled)

	enabled, ok = flags.FlagState(FlagUnicode)
	require.True(t, ok)
	assert.False(t, enabled)

	_, ok = flags.FlagState(FlagSwapGreed)
	assert.False(t, ok)

	assert.Panics(t, func() { NewFlags("iq") })
}

func TestFlagsDuplicateItem(t *testing.T) {
	flags := Flags{}
	_, ok := flags.AddItem(FlagsItem{Kind: FlagCaseInsensitive})
	require.True(t, ok)
	_, ok = flags.AddItem(FlagsItem{Kind: FlagCaseInsensitive})
	assert.False(t, ok, "a flag may appear at most once")
}

func TestClassUnicodeNegation(t *testing.T) {
	// \p{Greek} and \P{Greek}.
	assert.False(t, NewClassUnicode(NamedProperty("Greek"), false).IsNegated())
	assert.True(t, NewClassUnicode(NamedProperty("Greek"), true).IsNegated())

	// \p{sc!=Greek} inverts, and \P{sc!=Greek} undoes the inversion.
	ne := NamedValue{Op: UnicodeOpNotEqual, Name: "sc", Value: "Greek"}
	assert.True(t, NewClassUnicode(ne, false).IsNegated())
	assert.False(t, NewClassUnicode(ne, true).IsNegated())
}

func TestRangeValidity(t *testing.T) {
	assert.True(t, NewClassSetRange('a', 'z').IsValid())
	assert.False(t, NewClassSetRange('z', 'a').IsValid())

	assert.True(t, RangeBounded{Min: 2, Max: 4}.IsValid())
	assert.True(t, RangeBounded{Min: 4, Max: 4}.IsValid())
	assert.False(t, RangeBounded{Min: 5, Max: 4}.IsValid())
}

func TestClassAsciiKindFromName(t *testing.T) {
	kind, ok := ClassAsciiKindFromName("alnum")
	require.True(t, ok)
	assert.Equal(t, AsciiAlnum, kind)

	kind, ok = ClassAsciiKindFromName("xdigit")
	require.True(t, ok)
	assert.Equal(t, AsciiXdigit, kind)

	_, ok = ClassAsciiKindFromName("bogus")
	assert.False(t, ok)
}

func TestSpanHelpers(t *testing.T) {
	start := Position{Offset: 0, Line: 1, Column: 1}
	end := Position{Offset: 3, Line: 1, Column: 4}
	span := NewSpan(start, end)

	assert.True(t, span.IsOneLine())
	assert.False(t, span.IsEmpty())
	assert.True(t, SplatSpan(start).IsEmpty())

	moved := span.WithStart(Position{Offset: 1, Line: 1, Column: 2})
	assert.Equal(t, 1, moved.Start.Offset)
	assert.Equal(t, 3, moved.End.Offset)
}
