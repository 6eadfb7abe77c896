package hir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lit(c rune) *Hir { return NewLiteral(UnicodeLiteral(c)) }

func str(s string) *Hir {
	var exprs []*Hir
	for _, c := range s {
		exprs = append(exprs, lit(c))
	}
	return NewConcat(exprs)
}

func TestLiteralByteInvariant(t *testing.T) {
	require.Panics(t, func() { NewLiteral(ByteLiteral('a')) })
	require.NotPanics(t, func() { NewLiteral(ByteLiteral(0xFF)) })

	assert.True(t, lit('a').IsAlwaysUTF8())
	assert.False(t, NewLiteral(ByteLiteral(0xFF)).IsAlwaysUTF8())
}

func TestConcatArity(t *testing.T) {
	assert.True(t, IsEmpty(NewConcat(nil).Kind()))

	sole := lit('a')
	assert.Same(t, sole, NewConcat([]*Hir{sole}))

	pair := NewConcat([]*Hir{lit('a'), lit('b')})
	kids, ok := pair.Kind().(Concat)
	require.True(t, ok)
	assert.Len(t, kids, 2)
}

func TestAlternationArity(t *testing.T) {
	assert.True(t, IsEmpty(NewAlternation(nil).Kind()))

	sole := lit('a')
	assert.Same(t, sole, NewAlternation([]*Hir{sole}))
}

func TestAnchoringFacts(t *testing.T) {
	caret := NewAnchor(AnchorStartText)
	dollar := NewAnchor(AnchorEndText)
	bol := NewAnchor(AnchorStartLine)

	tests := []struct {
		name              string
		expr              *Hir
		anchoredStart     bool
		lineAnchoredStart bool
	}{
		{"start text anchor", caret, true, true},
		{"start line anchor", bol, false, true},
		{"anchored concat", NewConcat([]*Hir{caret, str("foo")}), true, true},
		{"unanchored concat", str("foo"), false, false},
		{
			// Zero-width assertions before the anchor do not break the
			// prefix chain.
			"assertion prefix",
			NewConcat([]*Hir{dollar, NewWordBoundary(WordBoundaryUnicode), caret, str("foo")}),
			true, true,
		},
		{
			"anchored alternation",
			NewAlternation([]*Hir{
				NewConcat([]*Hir{caret, str("foo")}),
				NewConcat([]*Hir{caret, str("bar")}),
			}),
			true, true,
		},
		{
			"half anchored alternation",
			NewAlternation([]*Hir{
				NewConcat([]*Hir{caret, str("foo")}),
				str("bar"),
			}),
			false, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.anchoredStart, tt.expr.IsAnchoredStart(), "anchored start")
			assert.Equal(t, tt.lineAnchoredStart, tt.expr.IsLineAnchoredStart(), "line anchored start")
		})
	}
}

func TestAnyAnchoredPropagates(t *testing.T) {
	inner := NewConcat([]*Hir{str("foo"), NewAnchor(AnchorStartText)})
	assert.False(t, inner.IsAnchoredStart())
	assert.True(t, inner.IsAnyAnchoredStart())

	rep := NewRepetition(&Repetition{Kind: ZeroOrMore{}, Greedy: true, Sub: inner})
	assert.True(t, rep.IsAnyAnchoredStart())
	assert.False(t, rep.IsAnchoredStart())
}

func TestRepetitionMatchEmpty(t *testing.T) {
	tests := []struct {
		name string
		kind RepetitionKind
		want bool
	}{
		{"zero or one", ZeroOrOne{}, true},
		{"zero or more", ZeroOrMore{}, true},
		{"one or more", OneOrMore{}, false},
		{"exactly zero", RepeatExactly(0), true},
		{"exactly three", RepeatExactly(3), false},
		{"at least zero", RepeatAtLeast(0), true},
		{"at least one", RepeatAtLeast(1), false},
		{"bounded from zero", RepeatBounded{Min: 0, Max: 4}, true},
		{"bounded from two", RepeatBounded{Min: 2, Max: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := NewRepetition(&Repetition{Kind: tt.kind, Greedy: true, Sub: lit('a')})
			assert.Equal(t, tt.want, rep.IsMatchEmpty())
		})
	}
}

func TestRepetitionAnchoring(t *testing.T) {
	anchored := NewConcat([]*Hir{NewAnchor(AnchorStartText), str("a")})

	must := NewRepetition(&Repetition{Kind: OneOrMore{}, Greedy: true, Sub: anchored})
	assert.True(t, must.IsAnchoredStart())

	may := NewRepetition(&Repetition{Kind: ZeroOrMore{}, Greedy: true, Sub: anchored})
	assert.False(t, may.IsAnchoredStart(), "zero repetitions can skip the anchor")
}

func TestWordBoundaryFacts(t *testing.T) {
	wb := NewWordBoundary(WordBoundaryUnicode)
	assert.False(t, wb.IsMatchEmpty())
	assert.True(t, wb.IsAllAssertions())
	assert.True(t, wb.IsAlwaysUTF8())

	nwb := NewWordBoundary(WordBoundaryUnicodeNegate)
	assert.True(t, nwb.IsMatchEmpty())

	nawb := NewWordBoundary(WordBoundaryAsciiNegate)
	assert.True(t, nawb.IsMatchEmpty())
	assert.False(t, nawb.IsAlwaysUTF8())
}

func TestLiteralFacts(t *testing.T) {
	assert.True(t, lit('a').IsLiteral())
	assert.True(t, str("abc").IsLiteral())
	assert.True(t, str("abc").IsAlternationLiteral())

	alt := NewAlternation([]*Hir{str("abc"), str("xyz")})
	assert.False(t, alt.IsLiteral())
	assert.True(t, alt.IsAlternationLiteral())

	mixed := NewAlternation([]*Hir{str("abc"), NewDot(false)})
	assert.False(t, mixed.IsAlternationLiteral())
}

func TestDotRanges(t *testing.T) {
	dot := NewDot(false)
	cls, ok := dot.Kind().(*ClassUnicode)
	require.True(t, ok)
	assert.Equal(t, uranges([2]rune{0x00, 0x09}, [2]rune{0x0B, 0x10FFFF}), cls.Ranges())

	bdot := NewDot(true)
	bcls, ok := bdot.Kind().(*ClassBytes)
	require.True(t, ok)
	assert.Equal(t, []ClassBytesRange{{0x00, 0x09}, {0x0B, 0xFF}}, bcls.Ranges())

	any := NewAnyChar(false)
	acls, ok := any.Kind().(*ClassUnicode)
	require.True(t, ok)
	assert.Equal(t, uranges([2]rune{0x00, 0x10FFFF}), acls.Ranges())
	assert.False(t, NewAnyChar(true).IsAlwaysUTF8())
}

func TestDiscardDeepTree(t *testing.T) {
	// Deep enough that native recursion would overflow the stack.
	const depth = 200_000
	expr := lit('a')
	for i := 0; i < depth; i++ {
		expr = NewGroup(&Group{Kind: NonCapturing{}, Sub: expr})
	}

	expr.Discard()
	assert.True(t, IsEmpty(expr.Kind()))
	assert.True(t, expr.IsMatchEmpty())
}

func TestDiscardMixedTree(t *testing.T) {
	expr := lit('a')
	for i := 0; i < 10_000; i++ {
		if i%2 == 0 {
			expr = NewConcat([]*Hir{expr, lit('b')})
		} else {
			expr = NewRepetition(&Repetition{Kind: ZeroOrOne{}, Greedy: true, Sub: expr})
		}
	}
	expr.Discard()
	assert.True(t, IsEmpty(expr.Kind()))
}

func TestHasSubexprs(t *testing.T) {
	assert.True(t, HasSubexprs(NewConcat([]*Hir{lit('a'), lit('b')}).Kind()))
	assert.False(t, HasSubexprs(lit('a').Kind()))
	assert.False(t, HasSubexprs(Empty{}))
}
