// Package sexpr reads and writes regular expression trees in a small
// s-expression syntax, so tools can feed the translator without a pattern
// parser. The syntax mirrors the tree shape one to one:
//
//	(cat "fo" (rep + 'o'))               fo+ with the trailing o repeated
//	(alt "cat" "dog")                    cat|dog
//	(flags "i" (class (range 'a' 'z')))  (?i:[a-z])
//	(class (and (range 'a' 'z') 'q'))    [a-z&&q]
//
// Atoms: empty, dot, bol, eol, bot, eot, wb, nwb. Strings concatenate
// their characters, chars are single literals, (byte N) is a raw byte
// escape. Capture groups (cap x) and (capn "name" x) are numbered left to
// right starting at 1.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/regexkit/rehir/pkg/ast"
)

type node struct {
	Str  *string `parser:"@String"`
	Chr  *string `parser:"| @Char"`
	Atom *string `parser:"| @('empty' | 'dot' | 'bol' | 'eol' | 'bot' | 'eot' | 'wb' | 'nwb')"`
	Form *form   `parser:"| '(' @@ ')'"`
}

type form struct {
	Cat      *catForm   `parser:"@@"`
	Alt      *altForm   `parser:"| @@"`
	Rep      *repForm   `parser:"| @@"`
	Cap      *capForm   `parser:"| @@"`
	CapNamed *capnForm  `parser:"| @@"`
	Grp      *grpForm   `parser:"| @@"`
	FlagGrp  *flagsForm `parser:"| @@"`
	Set      *setForm   `parser:"| @@"`
	Byte     *byteForm  `parser:"| @@"`
	Perl     *perlForm  `parser:"| @@"`
	Uni      *uniForm   `parser:"| @@"`
	Class    *classForm `parser:"| @@"`
}

type catForm struct {
	Nodes []*node `parser:"'cat' @@*"`
}

type altForm struct {
	Nodes []*node `parser:"'alt' @@*"`
}

type repForm struct {
	Op    *string `parser:"'rep' ( @('?' | '*' | '+')"`
	Min   *uint32 `parser:"| @Int"`
	Comma bool    `parser:"( @','"`
	Max   *uint32 `parser:"@Int? )? )"`
	Lazy  bool    `parser:"@'lazy'?"`
	Sub   *node   `parser:"@@"`
}

type capForm struct {
	Sub *node `parser:"'cap' @@"`
}

type capnForm struct {
	Name string `parser:"'capn' @String"`
	Sub  *node  `parser:"@@"`
}

type grpForm struct {
	Sub *node `parser:"'grp' @@"`
}

type flagsForm struct {
	Spec string `parser:"'flags' @String"`
	Sub  *node  `parser:"@@"`
}

type setForm struct {
	Spec string `parser:"'set' @String"`
}

type byteForm struct {
	Value uint32 `parser:"'byte' @Int"`
}

type perlForm struct {
	Letter string `parser:"'perl' @('d' | 's' | 'w' | 'D' | 'S' | 'W')"`
}

type uniForm struct {
	Kw     string  `parser:"@('uni' | 'nuni')"`
	Letter *string `parser:"( @Ident"`
	Name   *string `parser:"| @String"`
	Value  *string `parser:"@String? )"`
}

type classForm struct {
	Kw    string  `parser:"@('class' | 'nclass')"`
	Items []*item `parser:"@@*"`
}

type item struct {
	Chr  *string   `parser:"@Char"`
	Form *itemForm `parser:"| '(' @@ ')'"`
}

type itemForm struct {
	Range *rangeForm `parser:"@@"`
	Posix *posixForm `parser:"| @@"`
	Perl  *perlForm  `parser:"| @@"`
	Uni   *uniForm   `parser:"| @@"`
	Class *classForm `parser:"| @@"`
	Op    *opForm    `parser:"| @@"`
}

type rangeForm struct {
	Lo string `parser:"'range' @Char"`
	Hi string `parser:"@Char"`
}

type posixForm struct {
	Kw   string `parser:"@('posix' | 'nposix')"`
	Name string `parser:"@Ident"`
}

type opForm struct {
	Op  string `parser:"@('and' | 'diff' | 'xor')"`
	Lhs *item  `parser:"@@"`
	Rhs *item  `parser:"@@"`
}

var parser = participle.MustBuild[node]()

// Read parses an s-expression into a tree. Capture indices are assigned in
// reading order, starting at 1.
func Read(src string) (ast.Ast, error) {
	n, err := parser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	b := &builder{nextIndex: 1}
	return b.node(n)
}

type builder struct {
	nextIndex uint32
}

func (b *builder) node(n *node) (ast.Ast, error) {
	switch {
	case n.Str != nil:
		s, err := unquote(*n.Str)
		if err != nil {
			return nil, err
		}
		return ast.NewString(s), nil
	case n.Chr != nil:
		c, err := unquoteChar(*n.Chr)
		if err != nil {
			return nil, err
		}
		return ast.NewLiteral(c), nil
	case n.Atom != nil:
		return atomNode(*n.Atom), nil
	}
	return b.form(n.Form)
}

func atomNode(atom string) ast.Ast {
	switch atom {
	case "empty":
		return ast.NewEmpty()
	case "dot":
		return ast.NewDot()
	case "bol":
		return ast.NewAssertion(ast.AssertStartLine)
	case "eol":
		return ast.NewAssertion(ast.AssertEndLine)
	case "bot":
		return ast.NewAssertion(ast.AssertStartText)
	case "eot":
		return ast.NewAssertion(ast.AssertEndText)
	case "wb":
		return ast.NewAssertion(ast.AssertWordBoundary)
	case "nwb":
		return ast.NewAssertion(ast.AssertNotWordBoundary)
	}
	panic("sexpr: unknown atom " + atom)
}

func (b *builder) form(f *form) (ast.Ast, error) {
	switch {
	case f.Cat != nil:
		asts, err := b.nodes(f.Cat.Nodes)
		if err != nil {
			return nil, err
		}
		return ast.NewConcat(asts...), nil
	case f.Alt != nil:
		asts, err := b.nodes(f.Alt.Nodes)
		if err != nil {
			return nil, err
		}
		return ast.NewAlternation(asts...), nil
	case f.Rep != nil:
		return b.rep(f.Rep)
	case f.Cap != nil:
		// Capture indices follow reading order, so the index is claimed
		// before descending into the group body.
		index := b.nextIndex
		b.nextIndex++
		sub, err := b.node(f.Cap.Sub)
		if err != nil {
			return nil, err
		}
		return ast.NewCaptureGroup(index, sub), nil
	case f.CapNamed != nil:
		name, err := unquote(f.CapNamed.Name)
		if err != nil {
			return nil, err
		}
		index := b.nextIndex
		b.nextIndex++
		sub, err := b.node(f.CapNamed.Sub)
		if err != nil {
			return nil, err
		}
		return ast.NewNamedGroup(index, name, sub), nil
	case f.Grp != nil:
		sub, err := b.node(f.Grp.Sub)
		if err != nil {
			return nil, err
		}
		return ast.NewNonCapturingGroup(sub), nil
	case f.FlagGrp != nil:
		spec, err := flagSpec(f.FlagGrp.Spec)
		if err != nil {
			return nil, err
		}
		sub, err := b.node(f.FlagGrp.Sub)
		if err != nil {
			return nil, err
		}
		return ast.NewFlagGroup(spec, sub), nil
	case f.Set != nil:
		spec, err := flagSpec(f.Set.Spec)
		if err != nil {
			return nil, err
		}
		return ast.NewSetFlags(spec), nil
	case f.Byte != nil:
		if f.Byte.Value > 0xFF {
			return nil, fmt.Errorf("sexpr: byte value %d out of range", f.Byte.Value)
		}
		return ast.NewByteLiteral(byte(f.Byte.Value)), nil
	case f.Perl != nil:
		kind, negated := perlKind(f.Perl.Letter)
		return ast.NewClassPerl(kind, negated), nil
	case f.Uni != nil:
		return b.uni(f.Uni)
	case f.Class != nil:
		return b.class(f.Class)
	}
	return nil, fmt.Errorf("sexpr: empty form")
}

func (b *builder) nodes(ns []*node) ([]ast.Ast, error) {
	asts := make([]ast.Ast, 0, len(ns))
	for _, n := range ns {
		a, err := b.node(n)
		if err != nil {
			return nil, err
		}
		asts = append(asts, a)
	}
	return asts, nil
}

func (b *builder) rep(r *repForm) (ast.Ast, error) {
	var kind ast.RepetitionKind
	switch {
	case r.Op != nil:
		switch *r.Op {
		case "?":
			kind = ast.ZeroOrOne{}
		case "*":
			kind = ast.ZeroOrMore{}
		case "+":
			kind = ast.OneOrMore{}
		}
	case r.Max != nil:
		if *r.Min > *r.Max {
			return nil, fmt.Errorf("sexpr: repetition range %d,%d out of order", *r.Min, *r.Max)
		}
		kind = ast.RangeBounded{Min: *r.Min, Max: *r.Max}
	case r.Comma:
		kind = ast.RangeAtLeast(*r.Min)
	default:
		kind = ast.RangeExactly(*r.Min)
	}
	sub, err := b.node(r.Sub)
	if err != nil {
		return nil, err
	}
	return ast.NewRepetition(sub, kind, !r.Lazy), nil
}

func (b *builder) uni(u *uniForm) (*ast.ClassUnicode, error) {
	negated := u.Kw == "nuni"
	if u.Letter != nil {
		rs := []rune(*u.Letter)
		if len(rs) != 1 {
			return nil, fmt.Errorf("sexpr: one-letter class %q must be a single letter", *u.Letter)
		}
		return ast.NewClassUnicode(ast.OneLetterName(rs[0]), negated), nil
	}
	name, err := unquote(*u.Name)
	if err != nil {
		return nil, err
	}
	if u.Value == nil {
		return ast.NewClassUnicode(ast.NamedProperty(name), negated), nil
	}
	value, err := unquote(*u.Value)
	if err != nil {
		return nil, err
	}
	kind := ast.NamedValue{Op: ast.UnicodeOpEqual, Name: name, Value: value}
	return ast.NewClassUnicode(kind, negated), nil
}

func (b *builder) class(c *classForm) (*ast.ClassBracketed, error) {
	negated := c.Kw == "nclass"
	// A set operation spanning the whole class sits directly under the
	// brackets; anywhere else it must be wrapped in a nested class, which
	// is also what the concrete regex syntax requires.
	if len(c.Items) == 1 && c.Items[0].Form != nil && c.Items[0].Form.Op != nil {
		op, err := b.op(c.Items[0].Form.Op)
		if err != nil {
			return nil, err
		}
		return ast.NewClassBracketed(negated, op), nil
	}
	items := make([]ast.ClassSetItem, 0, len(c.Items))
	for _, it := range c.Items {
		built, err := b.item(it)
		if err != nil {
			return nil, err
		}
		items = append(items, built)
	}
	set := ast.NewClassSetUnion(items...).IntoItem().(ast.ClassSet)
	return ast.NewClassBracketed(negated, set), nil
}

func (b *builder) item(it *item) (ast.ClassSetItem, error) {
	if it.Chr != nil {
		c, err := unquoteChar(*it.Chr)
		if err != nil {
			return nil, err
		}
		return ast.NewLiteral(c), nil
	}
	f := it.Form
	switch {
	case f.Range != nil:
		lo, err := unquoteChar(f.Range.Lo)
		if err != nil {
			return nil, err
		}
		hi, err := unquoteChar(f.Range.Hi)
		if err != nil {
			return nil, err
		}
		if lo > hi {
			return nil, fmt.Errorf("sexpr: range %q-%q out of order", lo, hi)
		}
		return ast.NewClassSetRange(lo, hi), nil
	case f.Posix != nil:
		kind, ok := ast.ClassAsciiKindFromName(f.Posix.Name)
		if !ok {
			return nil, fmt.Errorf("sexpr: unknown posix class %q", f.Posix.Name)
		}
		return ast.NewClassAscii(kind, f.Posix.Kw == "nposix"), nil
	case f.Perl != nil:
		kind, negated := perlKind(f.Perl.Letter)
		return ast.NewClassPerl(kind, negated), nil
	case f.Uni != nil:
		return b.uni(f.Uni)
	case f.Class != nil:
		return b.class(f.Class)
	case f.Op != nil:
		return nil, fmt.Errorf("sexpr: set operation must be the only element of a class")
	}
	return nil, fmt.Errorf("sexpr: empty class item")
}

func (b *builder) op(o *opForm) (*ast.ClassSetBinaryOp, error) {
	var kind ast.ClassSetBinaryOpKind
	switch o.Op {
	case "and":
		kind = ast.SetIntersection
	case "diff":
		kind = ast.SetDifference
	case "xor":
		kind = ast.SetSymmetricDifference
	}
	lhs, err := b.operand(o.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := b.operand(o.Rhs)
	if err != nil {
		return nil, err
	}
	return ast.NewClassSetBinaryOp(kind, lhs, rhs), nil
}

// operand builds a set operand, which unlike a union member may itself be
// a set operation.
func (b *builder) operand(it *item) (ast.ClassSet, error) {
	if it.Form != nil && it.Form.Op != nil {
		return b.op(it.Form.Op)
	}
	built, err := b.item(it)
	if err != nil {
		return nil, err
	}
	return built.(ast.ClassSet), nil
}

func perlKind(letter string) (ast.ClassPerlKind, bool) {
	switch letter {
	case "d":
		return ast.PerlDigit, false
	case "D":
		return ast.PerlDigit, true
	case "s":
		return ast.PerlSpace, false
	case "S":
		return ast.PerlSpace, true
	case "w":
		return ast.PerlWord, false
	case "W":
		return ast.PerlWord, true
	}
	panic("sexpr: unknown perl class letter " + letter)
}

// flagSpec validates a flag string like "im-u" before it reaches the ast
// builders, which panic on unknown characters.
func flagSpec(quoted string) (string, error) {
	spec, err := unquote(quoted)
	if err != nil {
		return "", err
	}
	for _, c := range spec {
		if !strings.ContainsRune("imsuUx-", c) {
			return "", fmt.Errorf("sexpr: unknown flag character %q", c)
		}
	}
	return spec, nil
}

func unquote(tok string) (string, error) {
	s, err := strconv.Unquote(tok)
	if err != nil {
		return "", fmt.Errorf("sexpr: bad string %s: %w", tok, err)
	}
	return s, nil
}

func unquoteChar(tok string) (rune, error) {
	s, err := strconv.Unquote(tok)
	if err != nil {
		return 0, fmt.Errorf("sexpr: bad char %s: %w", tok, err)
	}
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, fmt.Errorf("sexpr: char %s must hold a single character", tok)
	}
	return rs[0], nil
}
