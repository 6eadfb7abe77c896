package hir

// Kind is the closed set of expression node variants. Exactly the types in
// this package implement it: Empty, Literal, Class (via *ClassUnicode and
// *ClassBytes), Anchor, WordBoundary, *Repetition, *Group, Concat and
// Alternation.
type Kind interface {
	isKind()
}

// Hir is a single node of the intermediate representation, pairing a node
// variant with analysis facts derived at construction. Build values through
// the New* constructors so the facts stay consistent with the tree.
type Hir struct {
	kind Kind
	info info
}

// Kind returns the node variant.
func (h *Hir) Kind() Kind { return h.kind }

// NewEmpty returns the empty expression, which always matches, including
// against the empty string.
func NewEmpty() *Hir {
	return &Hir{
		kind: Empty{},
		info: info{
			alwaysUTF8:    true,
			allAssertions: true,
			matchEmpty:    true,
		},
	}
}

// NewLiteral returns a literal expression.
//
// NewLiteral panics when given a byte literal holding an ASCII byte. Byte
// literals exist solely to express matching of invalid UTF-8; ASCII bytes
// belong in the Unicode variant.
func NewLiteral(lit Literal) *Hir {
	if lit.byteLit && lit.b <= 0x7F {
		panic("hir: byte literal holds an ASCII byte")
	}
	return &Hir{
		kind: lit,
		info: info{
			alwaysUTF8:         lit.IsUnicode(),
			literal:            true,
			alternationLiteral: true,
		},
	}
}

// NewClass returns a character class expression.
func NewClass(c Class) *Hir {
	return &Hir{
		kind: c,
		info: info{alwaysUTF8: c.IsAlwaysUTF8()},
	}
}

// NewAnchor returns an anchor assertion expression.
func NewAnchor(a Anchor) *Hir {
	nfo := info{
		alwaysUTF8:    true,
		allAssertions: true,
		matchEmpty:    true,
	}
	switch a {
	case AnchorStartText:
		nfo.anchoredStart = true
		nfo.lineAnchoredStart = true
		nfo.anyAnchoredStart = true
	case AnchorEndText:
		nfo.anchoredEnd = true
		nfo.lineAnchoredEnd = true
		nfo.anyAnchoredEnd = true
	case AnchorStartLine:
		nfo.lineAnchoredStart = true
	case AnchorEndLine:
		nfo.lineAnchoredEnd = true
	}
	return &Hir{kind: a, info: nfo}
}

// NewWordBoundary returns a word boundary assertion expression.
func NewWordBoundary(wb WordBoundary) *Hir {
	nfo := info{
		alwaysUTF8:    true,
		allAssertions: true,
		matchEmpty:    wb.IsNegated(),
	}
	// A negated ASCII word boundary can match between any two non-ASCII
	// bytes, so it may split a UTF-8 encoded scalar value.
	if wb == WordBoundaryAsciiNegate {
		nfo.alwaysUTF8 = false
	}
	return &Hir{kind: wb, info: nfo}
}

// NewRepetition returns a repetition expression over rep.Sub.
func NewRepetition(rep *Repetition) *Hir {
	me := rep.IsMatchEmpty()
	return &Hir{
		kind: rep,
		info: info{
			alwaysUTF8:        rep.Sub.IsAlwaysUTF8(),
			allAssertions:     rep.Sub.IsAllAssertions(),
			anchoredStart:     !me && rep.Sub.IsAnchoredStart(),
			anchoredEnd:       !me && rep.Sub.IsAnchoredEnd(),
			lineAnchoredStart: !me && rep.Sub.IsAnchoredStart(),
			lineAnchoredEnd:   !me && rep.Sub.IsAnchoredEnd(),
			anyAnchoredStart:  rep.Sub.IsAnyAnchoredStart(),
			anyAnchoredEnd:    rep.Sub.IsAnyAnchoredEnd(),
			matchEmpty:        me || rep.Sub.IsMatchEmpty(),
		},
	}
}

// NewGroup returns a group expression around g.Sub.
func NewGroup(g *Group) *Hir {
	return &Hir{
		kind: g,
		info: info{
			alwaysUTF8:        g.Sub.IsAlwaysUTF8(),
			allAssertions:     g.Sub.IsAllAssertions(),
			anchoredStart:     g.Sub.IsAnchoredStart(),
			anchoredEnd:       g.Sub.IsAnchoredEnd(),
			lineAnchoredStart: g.Sub.IsLineAnchoredStart(),
			lineAnchoredEnd:   g.Sub.IsLineAnchoredEnd(),
			anyAnchoredStart:  g.Sub.IsAnyAnchoredStart(),
			anyAnchoredEnd:    g.Sub.IsAnyAnchoredEnd(),
			matchEmpty:        g.Sub.IsMatchEmpty(),
		},
	}
}

// NewConcat returns the concatenation of the given expressions. Zero
// expressions collapse to Empty and a single expression is returned as is,
// so a Concat node always has at least two children.
func NewConcat(exprs []*Hir) *Hir {
	switch len(exprs) {
	case 0:
		return NewEmpty()
	case 1:
		return exprs[0]
	}
	nfo := info{
		alwaysUTF8:         true,
		allAssertions:      true,
		matchEmpty:         true,
		literal:            true,
		alternationLiteral: true,
	}
	for _, e := range exprs {
		nfo.alwaysUTF8 = nfo.alwaysUTF8 && e.IsAlwaysUTF8()
		nfo.allAssertions = nfo.allAssertions && e.IsAllAssertions()
		nfo.anyAnchoredStart = nfo.anyAnchoredStart || e.IsAnyAnchoredStart()
		nfo.anyAnchoredEnd = nfo.anyAnchoredEnd || e.IsAnyAnchoredEnd()
		nfo.matchEmpty = nfo.matchEmpty && e.IsMatchEmpty()
		nfo.literal = nfo.literal && e.IsLiteral()
		nfo.alternationLiteral = nfo.alternationLiteral && e.IsAlternationLiteral()
	}
	// The concatenation is anchored when an anchor appears before any
	// expression that can consume input, and symmetrically at the end.
	// Zero-width assertions in between do not break the chain.
	for _, e := range exprs {
		if e.IsAnchoredStart() {
			nfo.anchoredStart = true
		}
		if !(e.IsAnchoredStart() || e.IsAllAssertions()) {
			break
		}
	}
	for i := len(exprs) - 1; i >= 0; i-- {
		e := exprs[i]
		if e.IsAnchoredEnd() {
			nfo.anchoredEnd = true
		}
		if !(e.IsAnchoredEnd() || e.IsAllAssertions()) {
			break
		}
	}
	for _, e := range exprs {
		if e.IsLineAnchoredStart() {
			nfo.lineAnchoredStart = true
		}
		if !(e.IsLineAnchoredStart() || e.IsAllAssertions()) {
			break
		}
	}
	for i := len(exprs) - 1; i >= 0; i-- {
		e := exprs[i]
		if e.IsLineAnchoredEnd() {
			nfo.lineAnchoredEnd = true
		}
		if !(e.IsLineAnchoredEnd() || e.IsAllAssertions()) {
			break
		}
	}
	return &Hir{kind: Concat(exprs), info: nfo}
}

// NewAlternation returns the alternation of the given expressions. Zero
// expressions collapse to Empty and a single expression is returned as is,
// so an Alternation node always has at least two children.
func NewAlternation(exprs []*Hir) *Hir {
	switch len(exprs) {
	case 0:
		return NewEmpty()
	case 1:
		return exprs[0]
	}
	nfo := info{
		alwaysUTF8:         true,
		allAssertions:      true,
		anchoredStart:      true,
		anchoredEnd:        true,
		lineAnchoredStart:  true,
		lineAnchoredEnd:    true,
		alternationLiteral: true,
	}
	for _, e := range exprs {
		nfo.alwaysUTF8 = nfo.alwaysUTF8 && e.IsAlwaysUTF8()
		nfo.allAssertions = nfo.allAssertions && e.IsAllAssertions()
		nfo.anchoredStart = nfo.anchoredStart && e.IsAnchoredStart()
		nfo.anchoredEnd = nfo.anchoredEnd && e.IsAnchoredEnd()
		nfo.lineAnchoredStart = nfo.lineAnchoredStart && e.IsLineAnchoredStart()
		nfo.lineAnchoredEnd = nfo.lineAnchoredEnd && e.IsLineAnchoredEnd()
		nfo.anyAnchoredStart = nfo.anyAnchoredStart || e.IsAnyAnchoredStart()
		nfo.anyAnchoredEnd = nfo.anyAnchoredEnd || e.IsAnyAnchoredEnd()
		nfo.matchEmpty = nfo.matchEmpty || e.IsMatchEmpty()
		nfo.alternationLiteral = nfo.alternationLiteral && e.IsLiteral()
	}
	return &Hir{kind: Alternation(exprs), info: nfo}
}

// NewDot returns an expression matching any character except \n. With bytes
// set, characters are single bytes.
func NewDot(bytes bool) *Hir {
	if bytes {
		return NewClass(NewClassBytes(
			ClassBytesRange{Start: 0x00, End: 0x09},
			ClassBytesRange{Start: 0x0B, End: 0xFF},
		))
	}
	return NewClass(NewClassUnicode(
		ClassUnicodeRange{Start: 0x00, End: 0x09},
		ClassUnicodeRange{Start: 0x0B, End: 0x10FFFF},
	))
}

// NewAnyChar returns an expression matching any character, including \n.
// With bytes set, characters are single bytes.
func NewAnyChar(bytes bool) *Hir {
	if bytes {
		return NewClass(NewClassBytes(ClassBytesRange{Start: 0x00, End: 0xFF}))
	}
	return NewClass(NewClassUnicode(ClassUnicodeRange{Start: 0x00, End: 0x10FFFF}))
}

// IsAlwaysUTF8 reports whether every match of this expression is valid
// UTF-8. When false, the expression can match invalid UTF-8.
func (h *Hir) IsAlwaysUTF8() bool { return h.info.alwaysUTF8 }

// IsAllAssertions reports whether the expression is built entirely from
// zero-width assertions, such as a concatenation of anchors and word
// boundaries.
func (h *Hir) IsAllAssertions() bool { return h.info.allAssertions }

// IsAnchoredStart reports whether every match must start at the beginning
// of text.
func (h *Hir) IsAnchoredStart() bool { return h.info.anchoredStart }

// IsAnchoredEnd reports whether every match must end at the end of text.
func (h *Hir) IsAnchoredEnd() bool { return h.info.anchoredEnd }

// IsLineAnchoredStart reports whether every match must start at the
// beginning of text or the beginning of a line. IsAnchoredStart implies
// this; the reverse does not hold.
func (h *Hir) IsLineAnchoredStart() bool { return h.info.lineAnchoredStart }

// IsLineAnchoredEnd reports whether every match must end at the end of text
// or the end of a line. IsAnchoredEnd implies this; the reverse does not
// hold.
func (h *Hir) IsLineAnchoredEnd() bool { return h.info.lineAnchoredEnd }

// IsAnyAnchoredStart reports whether a start-of-text anchor appears
// anywhere in the expression.
func (h *Hir) IsAnyAnchoredStart() bool { return h.info.anyAnchoredStart }

// IsAnyAnchoredEnd reports whether an end-of-text anchor appears anywhere
// in the expression.
func (h *Hir) IsAnyAnchoredEnd() bool { return h.info.anyAnchoredEnd }

// IsMatchEmpty reports whether the empty string is part of the language
// matched by this expression.
func (h *Hir) IsMatchEmpty() bool { return h.info.matchEmpty }

// IsLiteral reports whether the expression is a single literal or a
// concatenation of literals.
func (h *Hir) IsLiteral() bool { return h.info.literal }

// IsAlternationLiteral reports whether the expression is a literal, a
// concatenation of literals, or an alternation whose branches are such.
func (h *Hir) IsAlternationLiteral() bool { return h.info.alternationLiteral }

// IsEmpty reports whether k is the Empty variant. This is not the inductive
// definition; for that, use Hir.IsMatchEmpty.
func IsEmpty(k Kind) bool {
	_, ok := k.(Empty)
	return ok
}

// HasSubexprs reports whether k carries child expressions.
func HasSubexprs(k Kind) bool {
	switch k.(type) {
	case *Repetition, *Group, Concat, Alternation:
		return true
	}
	return false
}

// Discard detaches and unlinks the entire tree below h, leaving h as the
// empty expression. It uses constant stack space and heap space
// proportional to the depth of the tree, so arbitrarily deep trees can be
// torn down without growing the call stack. Afterwards no former child is
// reachable from any other, letting the collector reclaim each node
// independently of the tree's depth.
func (h *Hir) Discard() {
	kind := h.kind
	*h = *NewEmpty()
	switch x := kind.(type) {
	case *Group:
		if !HasSubexprs(x.Sub.kind) {
			return
		}
	case *Repetition:
		if !HasSubexprs(x.Sub.kind) {
			return
		}
	case Concat:
		if len(x) == 0 {
			return
		}
	case Alternation:
		if len(x) == 0 {
			return
		}
	default:
		return
	}
	stack := []Kind{kind}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch x := k.(type) {
		case *Group:
			stack = append(stack, x.Sub.kind)
			x.Sub.kind = Empty{}
		case *Repetition:
			stack = append(stack, x.Sub.kind)
			x.Sub.kind = Empty{}
		case Concat:
			for _, e := range x {
				stack = append(stack, e.kind)
				e.kind = Empty{}
			}
		case Alternation:
			for _, e := range x {
				stack = append(stack, e.kind)
				e.kind = Empty{}
			}
		}
	}
}

// Empty is the expression matching everywhere, including the empty string.
type Empty struct{}

// Literal is a single character, either a Unicode scalar value or an
// arbitrary byte. Scalar values are preferred; the byte variant only ever
// holds a non-ASCII byte, so it can express matching of invalid UTF-8.
type Literal struct {
	r       rune
	b       byte
	byteLit bool
}

// UnicodeLiteral returns a literal for the given scalar value.
func UnicodeLiteral(r rune) Literal { return Literal{r: r} }

// ByteLiteral returns a literal for the given raw byte.
func ByteLiteral(b byte) Literal { return Literal{b: b, byteLit: true} }

// IsUnicode reports whether the literal corresponds to a Unicode scalar
// value. ASCII byte literals qualify.
func (l Literal) IsUnicode() bool { return !l.byteLit || l.b <= 0x7F }

// Rune returns the scalar value of a Unicode literal.
func (l Literal) Rune() rune {
	if l.byteLit {
		return rune(l.b)
	}
	return l.r
}

// Byte returns the raw byte of a byte literal.
func (l Literal) Byte() byte { return l.b }

// Anchor is a zero-width assertion tied to a position in the input.
type Anchor int

const (
	// AnchorStartLine matches at the start of the input or just after \n.
	AnchorStartLine Anchor = iota
	// AnchorEndLine matches at the end of the input or just before \n.
	AnchorEndLine
	// AnchorStartText matches only at the start of the input.
	AnchorStartText
	// AnchorEndText matches only at the end of the input.
	AnchorEndText
)

// WordBoundary is a zero-width assertion on the word-ness of the adjacent
// characters.
type WordBoundary int

const (
	// WordBoundaryUnicode matches where exactly one neighbor is a Unicode
	// word character.
	WordBoundaryUnicode WordBoundary = iota
	// WordBoundaryUnicodeNegate is the negation of WordBoundaryUnicode.
	WordBoundaryUnicodeNegate
	// WordBoundaryAscii matches where exactly one neighbor is an ASCII
	// word character.
	WordBoundaryAscii
	// WordBoundaryAsciiNegate is the negation of WordBoundaryAscii.
	WordBoundaryAsciiNegate
)

// IsNegated reports whether the assertion is one of the negated variants.
func (wb WordBoundary) IsNegated() bool {
	return wb == WordBoundaryUnicodeNegate || wb == WordBoundaryAsciiNegate
}

// Repetition applies a repetition operator to a child expression.
type Repetition struct {
	Kind RepetitionKind
	// Greedy repetitions match as much as possible, non-greedy ones as
	// little as possible. The ungreedy flag swaps the default.
	Greedy bool
	Sub    *Hir
}

// IsMatchEmpty reports whether the operator itself permits matching the
// empty string, meaning it allows zero repetitions. This is not inductive:
// a OneOrMore over an empty-matching child reports false here even though
// the whole expression matches the empty string.
func (r *Repetition) IsMatchEmpty() bool {
	switch k := r.Kind.(type) {
	case ZeroOrOne, ZeroOrMore:
		return true
	case OneOrMore:
		return false
	case RepeatExactly:
		return k == 0
	case RepeatAtLeast:
		return k == 0
	case RepeatBounded:
		return k.Min == 0
	}
	return false
}

// RepetitionKind is the closed set of repetition operators: ZeroOrOne,
// ZeroOrMore, OneOrMore, RepeatExactly, RepeatAtLeast and RepeatBounded.
type RepetitionKind interface {
	isRepetitionKind()
}

// ZeroOrOne matches the child zero or one times.
type ZeroOrOne struct{}

// ZeroOrMore matches the child any number of times, including zero.
type ZeroOrMore struct{}

// OneOrMore matches the child one or more times.
type OneOrMore struct{}

// RepeatExactly matches the child exactly this many times.
type RepeatExactly uint32

// RepeatAtLeast matches the child at least this many times.
type RepeatAtLeast uint32

// RepeatBounded matches the child at least Min and at most Max times.
type RepeatBounded struct {
	Min uint32
	Max uint32
}

// Group wraps a child expression in a capturing or non-capturing group.
type Group struct {
	Kind GroupKind
	Sub  *Hir
}

// GroupKind is the closed set of group variants: CaptureIndex, CaptureName
// and NonCapturing.
type GroupKind interface {
	isGroupKind()
}

// CaptureIndex is an unnamed capturing group holding its capture index.
type CaptureIndex uint32

// CaptureName is a named capturing group.
type CaptureName struct {
	Name  string
	Index uint32
}

// NonCapturing is a group that does not capture.
type NonCapturing struct{}

// Concat is a concatenation of at least two expressions. It matches when
// its children match one after the other.
type Concat []*Hir

// Alternation is an alternation of at least two expressions. It matches
// when at least one child matches, preferring the leftmost.
type Alternation []*Hir

func (Empty) isKind()         {}
func (Literal) isKind()       {}
func (*ClassUnicode) isKind() {}
func (*ClassBytes) isKind()   {}
func (Anchor) isKind()        {}
func (WordBoundary) isKind()  {}
func (*Repetition) isKind()   {}
func (*Group) isKind()        {}
func (Concat) isKind()        {}
func (Alternation) isKind()   {}

func (ZeroOrOne) isRepetitionKind()     {}
func (ZeroOrMore) isRepetitionKind()    {}
func (OneOrMore) isRepetitionKind()     {}
func (RepeatExactly) isRepetitionKind() {}
func (RepeatAtLeast) isRepetitionKind() {}
func (RepeatBounded) isRepetitionKind() {}

func (CaptureIndex) isGroupKind() {}
func (CaptureName) isGroupKind()  {}
func (NonCapturing) isGroupKind() {}
