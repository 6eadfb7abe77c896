package ast

// Position is a single location in a pattern string.
type Position struct {
	// Offset is the absolute byte offset, starting at 0.
	Offset int
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based approximate column number, in characters.
	Column int
}

// Span is the range of a pattern covered by a node. The range is half open:
// Start points at the first byte and End at the byte just past the last.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span from a start and end position.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// SplatSpan builds an empty span at the given position.
func SplatSpan(pos Position) Span {
	return Span{Start: pos, End: pos}
}

// WithStart returns a copy of the span with the start position replaced.
func (s Span) WithStart(pos Position) Span {
	s.Start = pos
	return s
}

// WithEnd returns a copy of the span with the end position replaced.
func (s Span) WithEnd(pos Position) Span {
	s.End = pos
	return s
}

// IsOneLine reports whether the span starts and ends on the same line.
func (s Span) IsOneLine() bool {
	return s.Start.Line == s.End.Line
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start.Offset == s.End.Offset
}

// Ast is the closed set of expression nodes. Exactly the types in this
// package implement it: *Empty, *SetFlags, *Literal, *Dot, *Assertion,
// *ClassPerl, *ClassUnicode, *ClassBracketed, *Repetition, *Group,
// *Alternation and *Concat.
type Ast interface {
	isAst()
}

// SpanOf returns the span of any expression node.
func SpanOf(ast Ast) Span {
	switch x := ast.(type) {
	case *Empty:
		return x.Span
	case *SetFlags:
		return x.Span
	case *Literal:
		return x.Span
	case *Dot:
		return x.Span
	case *Assertion:
		return x.Span
	case *ClassPerl:
		return x.Span
	case *ClassUnicode:
		return x.Span
	case *ClassBracketed:
		return x.Span
	case *Repetition:
		return x.Span
	case *Group:
		return x.Span
	case *Alternation:
		return x.Span
	case *Concat:
		return x.Span
	}
	return Span{}
}

// IsEmpty reports whether the node is the empty expression.
func IsEmpty(ast Ast) bool {
	_, ok := ast.(*Empty)
	return ok
}

// Empty is an empty expression, which matches everything.
type Empty struct {
	Span Span
}

// SetFlags is a group of flags not applied to a particular expression, such
// as (?is).
type SetFlags struct {
	Span  Span
	Flags Flags
}

// Literal is a single character, possibly written as an escape sequence.
type Literal struct {
	Span Span
	Kind LiteralKind
	// C is the character this literal denotes.
	C rune
}

// Byte returns the raw byte this literal denotes and true when the literal
// was written as a two-digit hex escape for a value at most 0xFF. Such
// escapes are the only way to spell a raw byte.
func (l *Literal) Byte() (byte, bool) {
	if l.Kind == LiteralHexFixedX && l.C <= 0xFF {
		return byte(l.C), true
	}
	return 0, false
}

// LiteralKind records how a literal was written in the concrete syntax.
type LiteralKind int

const (
	// LiteralVerbatim is a character written as itself, e.g. a.
	LiteralVerbatim LiteralKind = iota
	// LiteralPunctuation is escaped punctuation, e.g. \*.
	LiteralPunctuation
	// LiteralOctal is an octal escape, e.g. \141.
	LiteralOctal
	// LiteralHexFixedX is a two-digit hex escape, e.g. \x61.
	LiteralHexFixedX
	// LiteralHexFixedUnicodeShort is a four-digit hex escape, e.g. a.
	LiteralHexFixedUnicodeShort
	// LiteralHexFixedUnicodeLong is an eight-digit hex escape.
	LiteralHexFixedUnicodeLong
	// LiteralHexBrace is a bracketed hex escape, e.g. \x{61}.
	LiteralHexBrace
	// LiteralSpecial is a recognized escape such as \n or \t.
	LiteralSpecial
)

// Dot is the "any character" expression.
type Dot struct {
	Span Span
}

// Assertion is a single zero-width assertion.
type Assertion struct {
	Span Span
	Kind AssertionKind
}

// AssertionKind enumerates the zero-width assertions.
type AssertionKind int

const (
	// AssertStartLine is ^.
	AssertStartLine AssertionKind = iota
	// AssertEndLine is $.
	AssertEndLine
	// AssertStartText is \A.
	AssertStartText
	// AssertEndText is \z.
	AssertEndText
	// AssertWordBoundary is \b.
	AssertWordBoundary
	// AssertNotWordBoundary is \B.
	AssertNotWordBoundary
)

// ClassPerl is a perl character class, e.g. \d or \W.
type ClassPerl struct {
	Span    Span
	Kind    ClassPerlKind
	Negated bool
}

// ClassPerlKind enumerates the perl character classes.
type ClassPerlKind int

const (
	// PerlDigit is \d.
	PerlDigit ClassPerlKind = iota
	// PerlSpace is \s.
	PerlSpace
	// PerlWord is \w.
	PerlWord
)

// ClassUnicode is a Unicode property class, e.g. \pL or \p{Greek}.
type ClassUnicode struct {
	Span Span
	// Negated records whether the class was written with \P. Whether the
	// class is semantically negated also depends on the kind; see
	// IsNegated.
	Negated bool
	Kind    ClassUnicodeKind
}

// IsNegated reports whether the class is semantically negated. A != value
// operator inverts the meaning of Negated.
func (c *ClassUnicode) IsNegated() bool {
	if nv, ok := c.Kind.(NamedValue); ok && nv.Op == UnicodeOpNotEqual {
		return !c.Negated
	}
	return c.Negated
}

// ClassUnicodeKind is the closed set of Unicode class query forms:
// OneLetterName, NamedProperty and NamedValue.
type ClassUnicodeKind interface {
	isClassUnicodeKind()
}

// OneLetterName is a one-letter abbreviated class, e.g. \pN.
type OneLetterName rune

// NamedProperty is a property referenced by bare name, e.g. \p{Greek}.
type NamedProperty string

// NamedValue is a property name with an associated value, e.g.
// \p{sc=Latin}.
type NamedValue struct {
	Op    ClassUnicodeOpKind
	Name  string
	Value string
}

// ClassUnicodeOpKind enumerates the operators binding a property name to a
// value.
type ClassUnicodeOpKind int

const (
	// UnicodeOpEqual is =, as in \p{sc=Latin}.
	UnicodeOpEqual ClassUnicodeOpKind = iota
	// UnicodeOpColon is :, as in \p{sc:Latin}.
	UnicodeOpColon
	// UnicodeOpNotEqual is !=, as in \p{sc!=Latin}.
	UnicodeOpNotEqual
)

// IsEqual reports whether the operator asserts equality.
func (op ClassUnicodeOpKind) IsEqual() bool {
	return op == UnicodeOpEqual || op == UnicodeOpColon
}

// ClassAscii is a POSIX-style ASCII class, e.g. [:alpha:]. It only occurs
// inside bracketed classes.
type ClassAscii struct {
	Span    Span
	Kind    ClassAsciiKind
	Negated bool
}

// ClassAsciiKind enumerates the POSIX ASCII classes.
type ClassAsciiKind int

const (
	AsciiAlnum ClassAsciiKind = iota
	AsciiAlpha
	AsciiAscii
	AsciiBlank
	AsciiCntrl
	AsciiDigit
	AsciiGraph
	AsciiLower
	AsciiPrint
	AsciiPunct
	AsciiSpace
	AsciiUpper
	AsciiWord
	AsciiXdigit
)

// ClassAsciiKindFromName resolves a POSIX class name like "alpha".
func ClassAsciiKindFromName(name string) (ClassAsciiKind, bool) {
	switch name {
	case "alnum":
		return AsciiAlnum, true
	case "alpha":
		return AsciiAlpha, true
	case "ascii":
		return AsciiAscii, true
	case "blank":
		return AsciiBlank, true
	case "cntrl":
		return AsciiCntrl, true
	case "digit":
		return AsciiDigit, true
	case "graph":
		return AsciiGraph, true
	case "lower":
		return AsciiLower, true
	case "print":
		return AsciiPrint, true
	case "punct":
		return AsciiPunct, true
	case "space":
		return AsciiSpace, true
	case "upper":
		return AsciiUpper, true
	case "word":
		return AsciiWord, true
	case "xdigit":
		return AsciiXdigit, true
	}
	return 0, false
}

// ClassBracketed is a bracketed character class, e.g. [a-z0-9].
type ClassBracketed struct {
	Span    Span
	Negated bool
	Kind    ClassSet
}

// ClassSet is one level of a bracketed class expression: either a
// ClassSetItem or a *ClassSetBinaryOp.
type ClassSet interface {
	isClassSet()
}

// ClassSetItem is a single item in a class set expression. The
// implementations are *Empty, *Literal, *ClassSetRange, *ClassAscii,
// *ClassPerl, *ClassUnicode, *ClassBracketed and *ClassSetUnion.
type ClassSetItem interface {
	ClassSet
	isClassSetItem()
}

// ClassSetRange is a range of characters inside a class, e.g. a-z.
type ClassSetRange struct {
	Span  Span
	Start Literal
	End   Literal
}

// IsValid reports whether the range endpoints are ordered.
func (r *ClassSetRange) IsValid() bool {
	return r.Start.C <= r.End.C
}

// ClassSetUnion is a union of class set items.
type ClassSetUnion struct {
	Span  Span
	Items []ClassSetItem
}

// Push adds an item to the union, growing the span to cover it.
func (u *ClassSetUnion) Push(item ClassSetItem) {
	span := SpanOfItem(item)
	if len(u.Items) == 0 {
		u.Span.Start = span.Start
	}
	u.Span.End = span.End
	u.Items = append(u.Items, item)
}

// IntoItem unwraps a union of exactly one item to the item itself, the way
// nested unions collapse. Empty and larger unions are returned unchanged.
func (u *ClassSetUnion) IntoItem() ClassSetItem {
	if len(u.Items) == 1 {
		return u.Items[0]
	}
	return u
}

// ClassSetBinaryOp applies a set operation to two class set expressions.
type ClassSetBinaryOp struct {
	Span Span
	Kind ClassSetBinaryOpKind
	Lhs  ClassSet
	Rhs  ClassSet
}

// ClassSetBinaryOpKind enumerates the class set operators.
type ClassSetBinaryOpKind int

const (
	// SetIntersection is &&, e.g. [a-z&&aeiou].
	SetIntersection ClassSetBinaryOpKind = iota
	// SetDifference is --, e.g. [a-z--aeiou].
	SetDifference
	// SetSymmetricDifference is ~~, e.g. [a-z~~aeiou].
	SetSymmetricDifference
)

// SpanOfSet returns the span of any class set expression.
func SpanOfSet(set ClassSet) Span {
	if op, ok := set.(*ClassSetBinaryOp); ok {
		return op.Span
	}
	return SpanOfItem(set.(ClassSetItem))
}

// SpanOfItem returns the span of any class set item.
func SpanOfItem(item ClassSetItem) Span {
	switch x := item.(type) {
	case *Empty:
		return x.Span
	case *Literal:
		return x.Span
	case *ClassSetRange:
		return x.Span
	case *ClassAscii:
		return x.Span
	case *ClassPerl:
		return x.Span
	case *ClassUnicode:
		return x.Span
	case *ClassBracketed:
		return x.Span
	case *ClassSetUnion:
		return x.Span
	}
	return Span{}
}

// Repetition applies a repetition operator to a child expression.
type Repetition struct {
	Span   Span
	Op     RepetitionOp
	Greedy bool
	Sub    Ast
}

// RepetitionOp is a repetition operator together with its own span, which
// covers just the operator, not the expression it applies to.
type RepetitionOp struct {
	Span Span
	Kind RepetitionKind
}

// RepetitionKind is the closed set of repetition operators: ZeroOrOne,
// ZeroOrMore, OneOrMore, RangeExactly, RangeAtLeast and RangeBounded.
type RepetitionKind interface {
	isRepetitionKind()
}

// ZeroOrOne is ?.
type ZeroOrOne struct{}

// ZeroOrMore is *.
type ZeroOrMore struct{}

// OneOrMore is +.
type OneOrMore struct{}

// RangeExactly is {m}.
type RangeExactly uint32

// RangeAtLeast is {m,}.
type RangeAtLeast uint32

// RangeBounded is {m,n}.
type RangeBounded struct {
	Min uint32
	Max uint32
}

// IsValid reports whether the bounds are ordered.
func (r RangeBounded) IsValid() bool {
	return r.Min <= r.Max
}

// Group is a grouped expression: capturing, named capturing, or
// non-capturing with optional inline flags. Flag-only groups like (?is)
// are SetFlags nodes, not groups.
type Group struct {
	Span Span
	Kind GroupKind
	Sub  Ast
}

// Flags returns the inline flags of a non-capturing group, or nil.
func (g *Group) Flags() *Flags {
	if nc, ok := g.Kind.(NonCapturing); ok {
		f := Flags(nc)
		return &f
	}
	return nil
}

// IsCapturing reports whether the group captures.
func (g *Group) IsCapturing() bool {
	switch g.Kind.(type) {
	case CaptureIndex, *CaptureName:
		return true
	}
	return false
}

// CaptureIndexOf returns the capture index and true for capturing groups.
func (g *Group) CaptureIndexOf() (uint32, bool) {
	switch k := g.Kind.(type) {
	case CaptureIndex:
		return uint32(k), true
	case *CaptureName:
		return k.Index, true
	}
	return 0, false
}

// GroupKind is the closed set of group variants: CaptureIndex,
// *CaptureName and NonCapturing.
type GroupKind interface {
	isGroupKind()
}

// CaptureIndex is an unnamed capturing group holding its capture index.
type CaptureIndex uint32

// CaptureName is a named capturing group, e.g. (?P<name>expr).
type CaptureName struct {
	Span  Span
	Name  string
	Index uint32
}

// NonCapturing is a non-capturing group carrying its inline flags, which
// may be empty.
type NonCapturing Flags

// Alternation is an alternation of expressions.
type Alternation struct {
	Span Span
	Asts []Ast
}

// IntoAst collapses the alternation by arity: zero branches become Empty
// and a single branch is returned as is.
func (a *Alternation) IntoAst() Ast {
	switch len(a.Asts) {
	case 0:
		return &Empty{Span: a.Span}
	case 1:
		return a.Asts[0]
	}
	return a
}

// Concat is a concatenation of expressions.
type Concat struct {
	Span Span
	Asts []Ast
}

// IntoAst collapses the concatenation by arity: zero children become Empty
// and a single child is returned as is.
func (c *Concat) IntoAst() Ast {
	switch len(c.Asts) {
	case 0:
		return &Empty{Span: c.Span}
	case 1:
		return c.Asts[0]
	}
	return c
}

// Flags is an ordered group of flag items, e.g. the ims-u in (?ims-u:...).
type Flags struct {
	Span  Span
	Items []FlagsItem
}

// AddItem appends an item unless an equivalent item is already present, in
// which case the index of the existing item is returned.
func (f *Flags) AddItem(item FlagsItem) (int, bool) {
	for i, x := range f.Items {
		if x.Kind == item.Kind {
			return i, false
		}
	}
	f.Items = append(f.Items, item)
	return len(f.Items) - 1, true
}

// FlagState reports the state of the given flag in this group: enabled,
// disabled (it follows a negation), or absent.
func (f *Flags) FlagState(flag Flag) (enabled, ok bool) {
	negated := false
	for _, x := range f.Items {
		switch k := x.Kind.(type) {
		case Negation:
			negated = true
		case Flag:
			if k == flag {
				return !negated, true
			}
		}
	}
	return false, false
}

// FlagsItem is a single element of a flag group.
type FlagsItem struct {
	Span Span
	// Kind is either a Flag or Negation.
	Kind FlagsItemKind
}

// IsNegation reports whether the item is the negation operator.
func (i FlagsItem) IsNegation() bool {
	_, ok := i.Kind.(Negation)
	return ok
}

// FlagsItemKind is the closed set of flag item variants: Flag and Negation.
type FlagsItemKind interface {
	isFlagsItemKind()
}

// Negation is the - operator, which disables all subsequent flags in the
// enclosing group.
type Negation struct{}

// Flag is a single flag character.
type Flag int

const (
	// FlagCaseInsensitive is i.
	FlagCaseInsensitive Flag = iota
	// FlagMultiLine is m.
	FlagMultiLine
	// FlagDotMatchesNewLine is s.
	FlagDotMatchesNewLine
	// FlagSwapGreed is U.
	FlagSwapGreed
	// FlagUnicode is u.
	FlagUnicode
	// FlagIgnoreWhitespace is x.
	FlagIgnoreWhitespace
)

func (*Empty) isAst()          {}
func (*SetFlags) isAst()       {}
func (*Literal) isAst()        {}
func (*Dot) isAst()            {}
func (*Assertion) isAst()      {}
func (*ClassPerl) isAst()      {}
func (*ClassUnicode) isAst()   {}
func (*ClassBracketed) isAst() {}
func (*Repetition) isAst()     {}
func (*Group) isAst()          {}
func (*Alternation) isAst()    {}
func (*Concat) isAst()         {}

func (*Empty) isClassSet()            {}
func (*Literal) isClassSet()          {}
func (*ClassSetRange) isClassSet()    {}
func (*ClassAscii) isClassSet()       {}
func (*ClassPerl) isClassSet()        {}
func (*ClassUnicode) isClassSet()     {}
func (*ClassBracketed) isClassSet()   {}
func (*ClassSetUnion) isClassSet()    {}
func (*ClassSetBinaryOp) isClassSet() {}

func (*Empty) isClassSetItem()          {}
func (*Literal) isClassSetItem()        {}
func (*ClassSetRange) isClassSetItem()  {}
func (*ClassAscii) isClassSetItem()     {}
func (*ClassPerl) isClassSetItem()      {}
func (*ClassUnicode) isClassSetItem()   {}
func (*ClassBracketed) isClassSetItem() {}
func (*ClassSetUnion) isClassSetItem()  {}

func (OneLetterName) isClassUnicodeKind() {}
func (NamedProperty) isClassUnicodeKind() {}
func (NamedValue) isClassUnicodeKind()    {}

func (ZeroOrOne) isRepetitionKind()    {}
func (ZeroOrMore) isRepetitionKind()   {}
func (OneOrMore) isRepetitionKind()    {}
func (RangeExactly) isRepetitionKind() {}
func (RangeAtLeast) isRepetitionKind() {}
func (RangeBounded) isRepetitionKind() {}

func (CaptureIndex) isGroupKind() {}
func (*CaptureName) isGroupKind() {}
func (NonCapturing) isGroupKind() {}

func (Negation) isFlagsItemKind() {}
func (Flag) isFlagsItemKind()     {}
