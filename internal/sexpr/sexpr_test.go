package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexkit/rehir/pkg/ast"
	"github.com/regexkit/rehir/pkg/hir"
)

func TestReadBasics(t *testing.T) {
	tree, err := Read(`(cat "ab" dot)`)
	require.NoError(t, err)
	cat, ok := tree.(*ast.Concat)
	require.True(t, ok)
	require.Len(t, cat.Asts, 2)
	assert.IsType(t, &ast.Concat{}, cat.Asts[0])
	assert.IsType(t, &ast.Dot{}, cat.Asts[1])

	tree, err = Read(`'a'`)
	require.NoError(t, err)
	lit, ok := tree.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, rune('a'), lit.C)

	tree, err = Read(`(rep 2,3 lazy 'a')`)
	require.NoError(t, err)
	rep, ok := tree.(*ast.Repetition)
	require.True(t, ok)
	assert.Equal(t, ast.RangeBounded{Min: 2, Max: 3}, rep.Op.Kind)
	assert.False(t, rep.Greedy)
}

func TestReadCaptureNumbering(t *testing.T) {
	tree, err := Read(`(cat (cap 'a') (capn "year" 'b') (cap 'c'))`)
	require.NoError(t, err)
	cat := tree.(*ast.Concat)
	require.Len(t, cat.Asts, 3)

	idx, ok := cat.Asts[0].(*ast.Group).CaptureIndexOf()
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)

	named := cat.Asts[1].(*ast.Group).Kind.(*ast.CaptureName)
	assert.Equal(t, "year", named.Name)
	assert.Equal(t, uint32(2), named.Index)

	idx, ok = cat.Asts[2].(*ast.Group).CaptureIndexOf()
	require.True(t, ok)
	assert.Equal(t, uint32(3), idx)
}

func TestReadNestedCaptureNumbering(t *testing.T) {
	// The outer group is read first, so it takes the lower index.
	tree, err := Read(`(capn "outer" (cap 'a'))`)
	require.NoError(t, err)
	outer := tree.(*ast.Group).Kind.(*ast.CaptureName)
	assert.Equal(t, uint32(1), outer.Index)

	inner := tree.(*ast.Group).Sub.(*ast.Group)
	idx, ok := inner.CaptureIndexOf()
	require.True(t, ok)
	assert.Equal(t, uint32(2), idx)
}

func TestReadClass(t *testing.T) {
	tree, err := Read(`(class 'a' (range '0' '9') (posix lower) (perl d) (uni L))`)
	require.NoError(t, err)
	cls := tree.(*ast.ClassBracketed)
	assert.False(t, cls.Negated)
	union := cls.Kind.(*ast.ClassSetUnion)
	require.Len(t, union.Items, 5)
	assert.IsType(t, &ast.Literal{}, union.Items[0])
	assert.IsType(t, &ast.ClassSetRange{}, union.Items[1])
	assert.IsType(t, &ast.ClassAscii{}, union.Items[2])
	assert.IsType(t, &ast.ClassPerl{}, union.Items[3])
	assert.IsType(t, &ast.ClassUnicode{}, union.Items[4])
}

func TestReadClassOperation(t *testing.T) {
	tree, err := Read(`(class (and (range 'a' 'z') 'q'))`)
	require.NoError(t, err)
	op := tree.(*ast.ClassBracketed).Kind.(*ast.ClassSetBinaryOp)
	assert.Equal(t, ast.SetIntersection, op.Kind)
	assert.IsType(t, &ast.ClassSetRange{}, op.Lhs)
	assert.IsType(t, &ast.Literal{}, op.Rhs)

	// Operands may nest further operations.
	tree, err = Read(`(class (diff (range 'a' 'z') (xor 'a' 'b')))`)
	require.NoError(t, err)
	op = tree.(*ast.ClassBracketed).Kind.(*ast.ClassSetBinaryOp)
	assert.Equal(t, ast.SetDifference, op.Kind)
	assert.IsType(t, &ast.ClassSetBinaryOp{}, op.Rhs)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown posix class", `(class (posix bogus))`},
		{"byte out of range", `(byte 300)`},
		{"unknown flag", `(flags "q" 'a')`},
		{"range out of order", `(class (range 'z' 'a'))`},
		{"repetition out of order", `(rep 3,2 'a')`},
		{"operation not alone", `(class 'a' (and 'b' 'c'))`},
		{"multi character char", `'ab'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Each source is already in the form Write produces, so reading and
	// writing it back must be the identity.
	sources := []string{
		`empty`,
		`'a'`,
		`(byte 255)`,
		`(cat 'f' 'o' (rep + 'o'))`,
		`(alt (cat 'c' 'a' 't') (cat 'd' 'o' 'g'))`,
		`(rep 2,3 lazy 'a')`,
		`(rep 1, 'a')`,
		`(rep 0 'a')`,
		`(cap 'a')`,
		`(capn "year" (cap 'a'))`,
		`(grp 'a')`,
		`(flags "im-u" (grp 'a'))`,
		`(set "i")`,
		`(cat bol eol bot eot wb nwb dot)`,
		`(perl D)`,
		`(uni L)`,
		`(nuni "Greek")`,
		`(uni "gc" "Nd")`,
		`(class 'a' (range '0' '9') (posix lower) (perl d) (nclass 'z'))`,
		`(class (and (range 'a' 'z') 'q'))`,
		`(nclass (diff (range 'a' 'z') (xor 'a' 'b')))`,
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			tree, err := Read(src)
			require.NoError(t, err)
			assert.Equal(t, src, Write(tree))
		})
	}
}

func TestRoundTripNormalizes(t *testing.T) {
	// Strings flatten to their literals on the first round trip and are
	// stable afterwards.
	tree, err := Read(`(cat "ab" 'c')`)
	require.NoError(t, err)
	first := Write(tree)
	assert.Equal(t, `(cat (cat 'a' 'b') 'c')`, first)

	tree, err = Read(first)
	require.NoError(t, err)
	assert.Equal(t, first, Write(tree))
}

func TestWriteHir(t *testing.T) {
	lit := func(c rune) *hir.Hir { return hir.NewLiteral(hir.UnicodeLiteral(c)) }

	tests := []struct {
		name string
		expr *hir.Hir
		want string
	}{
		{"empty", hir.NewEmpty(), `empty`},
		{"literal", lit('a'), `'a'`},
		{"byte literal", hir.NewLiteral(hir.ByteLiteral(0xFF)), `(byte 255)`},
		{
			"byte dot",
			hir.NewDot(true),
			`(bclass (range 0x00 0x09) (range 0x0B 0xFF))`,
		},
		{
			"singleton class ranges",
			hir.NewClass(hir.NewClassUnicode(
				hir.ClassUnicodeRange{Start: 'a', End: 'a'},
				hir.ClassUnicodeRange{Start: 'x', End: 'z'},
			)),
			`(class 'a' (range 'x' 'z'))`,
		},
		{"anchor", hir.NewAnchor(hir.AnchorStartText), `bot`},
		{"ascii word boundary", hir.NewWordBoundary(hir.WordBoundaryAsciiNegate), `nawb`},
		{
			"lazy repetition",
			hir.NewRepetition(&hir.Repetition{Kind: hir.ZeroOrMore{}, Greedy: false, Sub: lit('a')}),
			`(rep * lazy 'a')`,
		},
		{
			"capture",
			hir.NewGroup(&hir.Group{Kind: hir.CaptureIndex(1), Sub: lit('a')}),
			`(cap 1 'a')`,
		},
		{
			"named capture",
			hir.NewGroup(&hir.Group{Kind: hir.CaptureName{Name: "y", Index: 2}, Sub: lit('a')}),
			`(capn 2 "y" 'a')`,
		},
		{
			"concat",
			hir.NewConcat([]*hir.Hir{lit('a'), lit('b')}),
			`(cat 'a' 'b')`,
		},
		{
			"alternation",
			hir.NewAlternation([]*hir.Hir{lit('a'), lit('b')}),
			`(alt 'a' 'b')`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WriteHir(tt.expr))
		})
	}
}
