package ast

// This file provides span-free constructors for building trees by hand.
// Tests and tools that do not track source positions use these; every node
// gets the zero span.

// NewEmpty returns an empty expression node.
func NewEmpty() *Empty {
	return &Empty{}
}

// NewLiteral returns a verbatim literal node for the given character.
func NewLiteral(c rune) *Literal {
	return &Literal{Kind: LiteralVerbatim, C: c}
}

// NewByteLiteral returns a literal node written as a two-digit hex escape,
// the form that denotes a raw byte.
func NewByteLiteral(b byte) *Literal {
	return &Literal{Kind: LiteralHexFixedX, C: rune(b)}
}

// NewString returns the concatenation of verbatim literals spelling s. An
// empty string yields Empty and a single character yields the literal
// itself.
func NewString(s string) Ast {
	var asts []Ast
	for _, c := range s {
		asts = append(asts, NewLiteral(c))
	}
	return NewConcat(asts...)
}

// NewDot returns an "any character" node.
func NewDot() *Dot {
	return &Dot{}
}

// NewAssertion returns a zero-width assertion node.
func NewAssertion(kind AssertionKind) *Assertion {
	return &Assertion{Kind: kind}
}

// NewClassPerl returns a perl class node, e.g. \d, or \D when negated.
func NewClassPerl(kind ClassPerlKind, negated bool) *ClassPerl {
	return &ClassPerl{Kind: kind, Negated: negated}
}

// NewClassUnicode returns a Unicode property class node.
func NewClassUnicode(kind ClassUnicodeKind, negated bool) *ClassUnicode {
	return &ClassUnicode{Kind: kind, Negated: negated}
}

// NewClassBracketed returns a bracketed class node over the given set
// expression.
func NewClassBracketed(negated bool, set ClassSet) *ClassBracketed {
	return &ClassBracketed{Negated: negated, Kind: set}
}

// NewClassSetRange returns a character range item, e.g. a-z.
func NewClassSetRange(start, end rune) *ClassSetRange {
	return &ClassSetRange{Start: *NewLiteral(start), End: *NewLiteral(end)}
}

// NewClassSetUnion returns a union of the given items.
func NewClassSetUnion(items ...ClassSetItem) *ClassSetUnion {
	return &ClassSetUnion{Items: items}
}

// NewClassSetBinaryOp returns a set operation over two set expressions.
func NewClassSetBinaryOp(kind ClassSetBinaryOpKind, lhs, rhs ClassSet) *ClassSetBinaryOp {
	return &ClassSetBinaryOp{Kind: kind, Lhs: lhs, Rhs: rhs}
}

// NewClassAscii returns a POSIX ASCII class item, e.g. [:alpha:].
func NewClassAscii(kind ClassAsciiKind, negated bool) *ClassAscii {
	return &ClassAscii{Kind: kind, Negated: negated}
}

// NewRepetition returns a repetition node applying kind to sub.
func NewRepetition(sub Ast, kind RepetitionKind, greedy bool) *Repetition {
	return &Repetition{Op: RepetitionOp{Kind: kind}, Greedy: greedy, Sub: sub}
}

// NewCaptureGroup returns an unnamed capturing group with the given index.
func NewCaptureGroup(index uint32, sub Ast) *Group {
	return &Group{Kind: CaptureIndex(index), Sub: sub}
}

// NewNamedGroup returns a named capturing group.
func NewNamedGroup(index uint32, name string, sub Ast) *Group {
	return &Group{Kind: &CaptureName{Name: name, Index: index}, Sub: sub}
}

// NewNonCapturingGroup returns a plain non-capturing group, (?:sub).
func NewNonCapturingGroup(sub Ast) *Group {
	return &Group{Kind: NonCapturing(Flags{}), Sub: sub}
}

// NewFlagGroup returns a non-capturing group with inline flags, e.g.
// (?i-u:sub). The spec string uses the concrete flag characters with -
// introducing the negated ones, so "i-u" enables i and disables u.
// NewFlagGroup panics on characters that are not flags.
func NewFlagGroup(spec string, sub Ast) *Group {
	return &Group{Kind: NonCapturing(NewFlags(spec)), Sub: sub}
}

// NewSetFlags returns a flag-only node, e.g. (?is). The spec string follows
// the NewFlagGroup format.
func NewSetFlags(spec string) *SetFlags {
	return &SetFlags{Flags: NewFlags(spec)}
}

// NewFlags builds a flag group from the concrete flag characters, e.g.
// "ims-u". NewFlags panics on characters that are not flags, since it
// exists for hand-built trees.
func NewFlags(spec string) Flags {
	var flags Flags
	for _, c := range spec {
		var kind FlagsItemKind
		switch c {
		case '-':
			kind = Negation{}
		case 'i':
			kind = FlagCaseInsensitive
		case 'm':
			kind = FlagMultiLine
		case 's':
			kind = FlagDotMatchesNewLine
		case 'U':
			kind = FlagSwapGreed
		case 'u':
			kind = FlagUnicode
		case 'x':
			kind = FlagIgnoreWhitespace
		default:
			panic("ast: unknown flag character " + string(c))
		}
		flags.AddItem(FlagsItem{Kind: kind})
	}
	return flags
}

// NewConcat returns the concatenation of the given expressions, collapsed
// by arity like IntoAst: zero children yield Empty, one child is returned
// as is.
func NewConcat(asts ...Ast) Ast {
	c := &Concat{Asts: asts}
	return c.IntoAst()
}

// NewAlternation returns the alternation of the given expressions,
// collapsed by arity like IntoAst.
func NewAlternation(asts ...Ast) Ast {
	a := &Alternation{Asts: asts}
	return a.IntoAst()
}
