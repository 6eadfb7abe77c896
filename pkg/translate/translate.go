package translate

import (
	"errors"
	"slices"
	"unicode/utf8"

	"github.com/regexkit/rehir/pkg/ast"
	"github.com/regexkit/rehir/pkg/hir"
	"github.com/regexkit/rehir/pkg/ucd"
)

// Builder configures and constructs a Translator. The zero value is ready
// to use and produces a translator with default options: Unicode mode on,
// every other flag off, invalid UTF-8 disallowed.
type Builder struct {
	allowInvalidUTF8 bool
	flags            flags
}

// NewBuilder returns a builder with default options.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build constructs a translator from the current options.
func (b *Builder) Build() *Translator {
	return &Translator{
		flags:            b.flags,
		defaultFlags:     b.flags,
		allowInvalidUTF8: b.allowInvalidUTF8,
	}
}

// AllowInvalidUTF8 permits expressions that may match byte sequences that
// are not valid UTF-8, such as (?-u:.) or byte escapes above 0x7F. When
// disallowed, translating such an expression fails with
// ErrorKindInvalidUTF8.
func (b *Builder) AllowInvalidUTF8(yes bool) *Builder {
	b.allowInvalidUTF8 = yes
	return b
}

// CaseInsensitive sets the default for the i flag. A default can always be
// overridden from inside the pattern with (?i) or (?-i).
func (b *Builder) CaseInsensitive(yes bool) *Builder {
	b.flags.caseInsensitive = defaultFlag(yes)
	return b
}

// MultiLine sets the default for the m flag, under which ^ and $ match at
// line boundaries.
func (b *Builder) MultiLine(yes bool) *Builder {
	b.flags.multiLine = defaultFlag(yes)
	return b
}

// DotMatchesNewLine sets the default for the s flag, under which . also
// matches \n.
func (b *Builder) DotMatchesNewLine(yes bool) *Builder {
	b.flags.dotMatchesNewLine = defaultFlag(yes)
	return b
}

// SwapGreed sets the default for the U flag, which swaps the meaning of
// greedy and non-greedy repetition operators.
func (b *Builder) SwapGreed(yes bool) *Builder {
	b.flags.swapGreed = defaultFlag(yes)
	return b
}

// Unicode sets the default for the u flag. Unicode mode is on unless
// disabled here or in the pattern, so enabling leaves the flag unset and
// only disabling records an explicit value.
func (b *Builder) Unicode(yes bool) *Builder {
	if yes {
		b.flags.unicode = optUnset
	} else {
		b.flags.unicode = optFalse
	}
	return b
}

// defaultFlag records an explicit default only when the option is turned
// on, so that (?-x) inside the pattern can still disable it.
func defaultFlag(yes bool) optBool {
	if yes {
		return optTrue
	}
	return optUnset
}

// Translator compiles an abstract syntax tree into the intermediate
// representation of package hir.
//
// A Translator may be reused to translate any number of patterns, and each
// call starts from the flag defaults it was built with. It is not safe for
// concurrent use.
type Translator struct {
	// stack is the explicit call stack of the tree walk. Kept across
	// translations so its capacity is reused.
	stack            []hirFrame
	flags            flags
	defaultFlags     flags
	allowInvalidUTF8 bool
}

// New returns a translator with default options. Use a Builder to change
// them.
func New() *Translator {
	return NewBuilder().Build()
}

// Translate compiles the given tree into an expression. The pattern string
// must be the pattern the tree was produced from; it is only used for
// error reporting and never reparsed.
func (t *Translator) Translate(pattern string, tree ast.Ast) (*hir.Hir, error) {
	t.stack = t.stack[:0]
	t.flags = t.defaultFlags
	v := &visitor{t: t, pattern: pattern}
	if err := ast.Visit(tree, v); err != nil {
		return nil, err
	}
	// A complete walk reduces the tree to a single finished expression.
	return v.mustPop().unwrapExpr(), nil
}

// visitor drives one translation. It holds the pattern for error spans and
// reduces the tree bottom-up over the translator's frame stack: base cases
// push finished expressions, inductive cases pop their children.
type visitor struct {
	t       *Translator
	pattern string
}

func (v *visitor) flags() flags { return v.t.flags }

func (v *visitor) push(f hirFrame) {
	v.t.stack = append(v.t.stack, f)
}

func (v *visitor) pop() (hirFrame, bool) {
	if len(v.t.stack) == 0 {
		return hirFrame{}, false
	}
	f := v.t.stack[len(v.t.stack)-1]
	v.t.stack = v.t.stack[:len(v.t.stack)-1]
	return f, true
}

func (v *visitor) mustPop() hirFrame {
	f, ok := v.pop()
	if !ok {
		panic("translate: pop on empty stack")
	}
	return f
}

// setFlags installs the flags of a group or flag directive, filling unset
// flags from the currently active ones, and returns the previous flags so
// a closing group can restore them.
func (v *visitor) setFlags(astFlags *ast.Flags) flags {
	next := flagsFromAst(astFlags)
	old := v.t.flags
	next.merge(old)
	v.t.flags = next
	return old
}

func (v *visitor) errorAt(span ast.Span, kind ErrorKind) error {
	return &Error{kind: kind, pattern: v.pattern, span: span}
}

func (v *visitor) Start() {}

func (v *visitor) VisitPre(a ast.Ast) error {
	switch x := a.(type) {
	case *ast.ClassBracketed:
		if v.flags().isUnicode() {
			v.push(classUnicodeFrame(hir.NewClassUnicode()))
		} else {
			v.push(classBytesFrame(hir.NewClassBytes()))
		}
	case *ast.Group:
		// Inline flags take effect for the duration of the group. The
		// flags active before it opened are parked on the stack.
		oldFlags := v.t.flags
		if f := x.Flags(); f != nil {
			oldFlags = v.setFlags(f)
		}
		v.push(groupFrame(oldFlags))
	case *ast.Concat:
		if len(x.Asts) > 0 {
			v.push(hirFrame{kind: frameConcat})
		}
	case *ast.Alternation:
		if len(x.Asts) > 0 {
			v.push(hirFrame{kind: frameAlternation})
		}
	}
	return nil
}

func (v *visitor) VisitPost(a ast.Ast) error {
	switch x := a.(type) {
	case *ast.Empty:
		v.push(exprFrame(hir.NewEmpty()))
	case *ast.SetFlags:
		// A flag directive mutates the active flags until the end of the
		// enclosing group and contributes nothing to the match itself.
		v.setFlags(&x.Flags)
		v.push(exprFrame(hir.NewEmpty()))
	case *ast.Literal:
		expr, err := v.hirLiteral(x)
		if err != nil {
			return err
		}
		v.push(exprFrame(expr))
	case *ast.Dot:
		expr, err := v.hirDot(x.Span)
		if err != nil {
			return err
		}
		v.push(exprFrame(expr))
	case *ast.Assertion:
		expr, err := v.hirAssertion(x)
		if err != nil {
			return err
		}
		v.push(exprFrame(expr))
	case *ast.ClassPerl:
		if v.flags().isUnicode() {
			v.push(exprFrame(hir.NewClass(v.hirPerlUnicodeClass(x))))
		} else {
			v.push(exprFrame(hir.NewClass(v.hirPerlByteClass(x))))
		}
	case *ast.ClassUnicode:
		cls, err := v.hirUnicodeClass(x)
		if err != nil {
			return err
		}
		v.push(exprFrame(hir.NewClass(cls)))
	case *ast.ClassBracketed:
		if v.flags().isUnicode() {
			cls := v.mustPop().unwrapClassUnicode()
			if err := v.unicodeFoldAndNegate(x.Span, x.Negated, cls); err != nil {
				return err
			}
			if cls.IsEmpty() {
				return v.errorAt(x.Span, ErrorKindEmptyClassNotAllowed)
			}
			v.push(exprFrame(hir.NewClass(cls)))
		} else {
			cls := v.mustPop().unwrapClassBytes()
			if err := v.bytesFoldAndNegate(x.Span, x.Negated, cls); err != nil {
				return err
			}
			if cls.IsEmpty() {
				return v.errorAt(x.Span, ErrorKindEmptyClassNotAllowed)
			}
			v.push(exprFrame(hir.NewClass(cls)))
		}
	case *ast.Repetition:
		expr := v.mustPop().unwrapExpr()
		v.push(exprFrame(v.hirRepetition(x, expr)))
	case *ast.Group:
		expr := v.mustPop().unwrapExpr()
		oldFlags := v.mustPop().unwrapGroup()
		v.t.flags = oldFlags
		v.push(exprFrame(hirGroup(x, expr)))
	case *ast.Concat:
		// Pop finished children down to the concat marker, which is
		// consumed along the way. Empty expressions contribute nothing
		// and are dropped here.
		var exprs []*hir.Hir
		for {
			f, ok := v.pop()
			if !ok || f.kind != frameExpr {
				break
			}
			if !hir.IsEmpty(f.expr.Kind()) {
				exprs = append(exprs, f.expr)
			}
		}
		slices.Reverse(exprs)
		v.push(exprFrame(hir.NewConcat(exprs)))
	case *ast.Alternation:
		var exprs []*hir.Hir
		for {
			f, ok := v.pop()
			if !ok || f.kind != frameExpr {
				break
			}
			exprs = append(exprs, f.expr)
		}
		slices.Reverse(exprs)
		v.push(exprFrame(hir.NewAlternation(exprs)))
	}
	return nil
}

func (v *visitor) VisitAlternationIn() error { return nil }

func (v *visitor) VisitClassSetItemPre(item ast.ClassSetItem) error {
	// Only nested bracketed classes open a new class frame; every other
	// item folds into the frame already on top of the stack.
	if _, ok := item.(*ast.ClassBracketed); ok {
		if v.flags().isUnicode() {
			v.push(classUnicodeFrame(hir.NewClassUnicode()))
		} else {
			v.push(classBytesFrame(hir.NewClassBytes()))
		}
	}
	return nil
}

func (v *visitor) VisitClassSetItemPost(item ast.ClassSetItem) error {
	switch x := item.(type) {
	case *ast.Literal:
		if v.flags().isUnicode() {
			cls := v.mustPop().unwrapClassUnicode()
			cls.Push(hir.ClassUnicodeRange{Start: x.C, End: x.C})
			v.push(classUnicodeFrame(cls))
		} else {
			b, err := v.classLiteralByte(x)
			if err != nil {
				return err
			}
			cls := v.mustPop().unwrapClassBytes()
			cls.Push(hir.ClassBytesRange{Start: b, End: b})
			v.push(classBytesFrame(cls))
		}
	case *ast.ClassSetRange:
		if v.flags().isUnicode() {
			cls := v.mustPop().unwrapClassUnicode()
			cls.Push(hir.ClassUnicodeRange{Start: x.Start.C, End: x.End.C})
			v.push(classUnicodeFrame(cls))
		} else {
			start, err := v.classLiteralByte(&x.Start)
			if err != nil {
				return err
			}
			end, err := v.classLiteralByte(&x.End)
			if err != nil {
				return err
			}
			cls := v.mustPop().unwrapClassBytes()
			cls.Push(hir.ClassBytesRange{Start: start, End: end})
			v.push(classBytesFrame(cls))
		}
	case *ast.ClassAscii:
		if v.flags().isUnicode() {
			cls := v.mustPop().unwrapClassUnicode()
			for _, r := range asciiRanges(x.Kind) {
				cls.Push(hir.ClassUnicodeRange{Start: r[0], End: r[1]})
			}
			if err := v.unicodeFoldAndNegate(x.Span, x.Negated, cls); err != nil {
				return err
			}
			v.push(classUnicodeFrame(cls))
		} else {
			cls := v.mustPop().unwrapClassBytes()
			for _, r := range asciiRanges(x.Kind) {
				cls.Push(hir.ClassBytesRange{Start: uint8(r[0]), End: uint8(r[1])})
			}
			if err := v.bytesFoldAndNegate(x.Span, x.Negated, cls); err != nil {
				return err
			}
			v.push(classBytesFrame(cls))
		}
	case *ast.ClassUnicode:
		xcls, err := v.hirUnicodeClass(x)
		if err != nil {
			return err
		}
		cls := v.mustPop().unwrapClassUnicode()
		cls.Union(xcls)
		v.push(classUnicodeFrame(cls))
	case *ast.ClassPerl:
		if v.flags().isUnicode() {
			xcls := v.hirPerlUnicodeClass(x)
			cls := v.mustPop().unwrapClassUnicode()
			cls.Union(xcls)
			v.push(classUnicodeFrame(cls))
		} else {
			xcls := v.hirPerlByteClass(x)
			cls := v.mustPop().unwrapClassBytes()
			cls.Union(xcls)
			v.push(classBytesFrame(cls))
		}
	case *ast.ClassBracketed:
		// The inner class was built in its own frame; fold and negate
		// it, then merge it into the enclosing frame underneath.
		if v.flags().isUnicode() {
			inner := v.mustPop().unwrapClassUnicode()
			if err := v.unicodeFoldAndNegate(x.Span, x.Negated, inner); err != nil {
				return err
			}
			cls := v.mustPop().unwrapClassUnicode()
			cls.Union(inner)
			v.push(classUnicodeFrame(cls))
		} else {
			inner := v.mustPop().unwrapClassBytes()
			if err := v.bytesFoldAndNegate(x.Span, x.Negated, inner); err != nil {
				return err
			}
			cls := v.mustPop().unwrapClassBytes()
			cls.Union(inner)
			v.push(classBytesFrame(cls))
		}
	}
	return nil
}

func (v *visitor) VisitClassSetBinaryOpPre(op *ast.ClassSetBinaryOp) error {
	if v.flags().isUnicode() {
		v.push(classUnicodeFrame(hir.NewClassUnicode()))
	} else {
		v.push(classBytesFrame(hir.NewClassBytes()))
	}
	return nil
}

func (v *visitor) VisitClassSetBinaryOpIn(op *ast.ClassSetBinaryOp) error {
	if v.flags().isUnicode() {
		v.push(classUnicodeFrame(hir.NewClassUnicode()))
	} else {
		v.push(classBytesFrame(hir.NewClassBytes()))
	}
	return nil
}

func (v *visitor) VisitClassSetBinaryOpPost(op *ast.ClassSetBinaryOp) error {
	// Three frames are open at this point: the operand frames pushed by
	// the Pre and In hooks, and the enclosing class underneath them. Case
	// folding must happen before the operation so that, say, [x&&y] with
	// the i flag is the fold of x intersected with the fold of y.
	if v.flags().isUnicode() {
		rhs := v.mustPop().unwrapClassUnicode()
		lhs := v.mustPop().unwrapClassUnicode()
		cls := v.mustPop().unwrapClassUnicode()
		if v.flags().isCaseInsensitive() {
			if err := rhs.TryCaseFoldSimple(); err != nil {
				return v.errorAt(ast.SpanOfSet(op.Rhs), ErrorKindUnicodeCaseUnavailable)
			}
			if err := lhs.TryCaseFoldSimple(); err != nil {
				return v.errorAt(ast.SpanOfSet(op.Lhs), ErrorKindUnicodeCaseUnavailable)
			}
		}
		switch op.Kind {
		case ast.SetIntersection:
			lhs.Intersect(rhs)
		case ast.SetDifference:
			lhs.Difference(rhs)
		case ast.SetSymmetricDifference:
			lhs.SymmetricDifference(rhs)
		}
		cls.Union(lhs)
		v.push(classUnicodeFrame(cls))
	} else {
		rhs := v.mustPop().unwrapClassBytes()
		lhs := v.mustPop().unwrapClassBytes()
		cls := v.mustPop().unwrapClassBytes()
		if v.flags().isCaseInsensitive() {
			rhs.CaseFoldSimple()
			lhs.CaseFoldSimple()
		}
		switch op.Kind {
		case ast.SetIntersection:
			lhs.Intersect(rhs)
		case ast.SetDifference:
			lhs.Difference(rhs)
		case ast.SetSymmetricDifference:
			lhs.SymmetricDifference(rhs)
		}
		cls.Union(lhs)
		v.push(classBytesFrame(cls))
	}
	return nil
}

// hirLiteral translates a literal, which in case insensitive mode may
// become a character class.
func (v *visitor) hirLiteral(x *ast.Literal) (*hir.Hir, error) {
	lit, err := v.literalToChar(x)
	if err != nil {
		return nil, err
	}
	if !lit.IsUnicode() {
		// A raw non-ASCII byte never participates in case folding.
		return hir.NewLiteral(lit), nil
	}
	if v.flags().isCaseInsensitive() {
		return v.hirFromCharCaseInsensitive(x.Span, lit.Rune())
	}
	return v.hirFromChar(x.Span, lit.Rune())
}

// literalToChar converts a literal to a scalar value, or to a raw byte
// when Unicode mode is off and the literal was written as a byte escape
// above 0x7F. Such a byte can match invalid UTF-8, which must be allowed.
func (v *visitor) literalToChar(x *ast.Literal) (hir.Literal, error) {
	if v.flags().isUnicode() {
		return hir.UnicodeLiteral(x.C), nil
	}
	b, ok := x.Byte()
	if !ok {
		return hir.UnicodeLiteral(x.C), nil
	}
	if b <= 0x7F {
		return hir.UnicodeLiteral(rune(b)), nil
	}
	if !v.t.allowInvalidUTF8 {
		return hir.Literal{}, v.errorAt(x.Span, ErrorKindInvalidUTF8)
	}
	return hir.ByteLiteral(b), nil
}

func (v *visitor) hirFromChar(span ast.Span, c rune) (*hir.Hir, error) {
	if !v.flags().isUnicode() && utf8.RuneLen(c) > 1 {
		return nil, v.errorAt(span, ErrorKindUnicodeNotAllowed)
	}
	return hir.NewLiteral(hir.UnicodeLiteral(c)), nil
}

func (v *visitor) hirFromCharCaseInsensitive(span ast.Span, c rune) (*hir.Hir, error) {
	if v.flags().isUnicode() {
		// Skip the class when folding would not add anything.
		if !ucd.ContainsSimpleCaseMapping(c, c) {
			return v.hirFromChar(span, c)
		}
		cls := hir.NewClassUnicode(hir.ClassUnicodeRange{Start: c, End: c})
		if err := cls.TryCaseFoldSimple(); err != nil {
			return nil, v.errorAt(span, ErrorKindUnicodeCaseUnavailable)
		}
		return hir.NewClass(cls), nil
	}
	if utf8.RuneLen(c) > 1 {
		return nil, v.errorAt(span, ErrorKindUnicodeNotAllowed)
	}
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return v.hirFromChar(span, c)
	}
	cls := hir.NewClassBytes(hir.ClassBytesRange{Start: uint8(c), End: uint8(c)})
	cls.CaseFoldSimple()
	return hir.NewClass(cls), nil
}

func (v *visitor) hirDot(span ast.Span) (*hir.Hir, error) {
	unicode := v.flags().isUnicode()
	if !unicode && !v.t.allowInvalidUTF8 {
		return nil, v.errorAt(span, ErrorKindInvalidUTF8)
	}
	if v.flags().isDotMatchesNewLine() {
		return hir.NewAnyChar(!unicode), nil
	}
	return hir.NewDot(!unicode), nil
}

func (v *visitor) hirAssertion(x *ast.Assertion) (*hir.Hir, error) {
	unicode := v.flags().isUnicode()
	multiLine := v.flags().isMultiLine()
	switch x.Kind {
	case ast.AssertStartLine:
		if multiLine {
			return hir.NewAnchor(hir.AnchorStartLine), nil
		}
		return hir.NewAnchor(hir.AnchorStartText), nil
	case ast.AssertEndLine:
		if multiLine {
			return hir.NewAnchor(hir.AnchorEndLine), nil
		}
		return hir.NewAnchor(hir.AnchorEndText), nil
	case ast.AssertStartText:
		return hir.NewAnchor(hir.AnchorStartText), nil
	case ast.AssertEndText:
		return hir.NewAnchor(hir.AnchorEndText), nil
	case ast.AssertWordBoundary:
		if unicode {
			return hir.NewWordBoundary(hir.WordBoundaryUnicode), nil
		}
		return hir.NewWordBoundary(hir.WordBoundaryAscii), nil
	case ast.AssertNotWordBoundary:
		if unicode {
			return hir.NewWordBoundary(hir.WordBoundaryUnicodeNegate), nil
		}
		// A negated ASCII word boundary can match between any two
		// non-ASCII bytes, splitting a UTF-8 encoded scalar value.
		if !v.t.allowInvalidUTF8 {
			return nil, v.errorAt(x.Span, ErrorKindInvalidUTF8)
		}
		return hir.NewWordBoundary(hir.WordBoundaryAsciiNegate), nil
	}
	panic("translate: unknown assertion kind")
}

func hirGroup(x *ast.Group, expr *hir.Hir) *hir.Hir {
	var kind hir.GroupKind
	switch k := x.Kind.(type) {
	case ast.CaptureIndex:
		kind = hir.CaptureIndex(k)
	case *ast.CaptureName:
		kind = hir.CaptureName{Name: k.Name, Index: k.Index}
	case ast.NonCapturing:
		kind = hir.NonCapturing{}
	}
	return hir.NewGroup(&hir.Group{Kind: kind, Sub: expr})
}

func (v *visitor) hirRepetition(x *ast.Repetition, expr *hir.Hir) *hir.Hir {
	var kind hir.RepetitionKind
	switch k := x.Op.Kind.(type) {
	case ast.ZeroOrOne:
		kind = hir.ZeroOrOne{}
	case ast.ZeroOrMore:
		kind = hir.ZeroOrMore{}
	case ast.OneOrMore:
		kind = hir.OneOrMore{}
	case ast.RangeExactly:
		kind = hir.RepeatExactly(k)
	case ast.RangeAtLeast:
		kind = hir.RepeatAtLeast(k)
	case ast.RangeBounded:
		kind = hir.RepeatBounded{Min: k.Min, Max: k.Max}
	}
	greedy := x.Greedy
	if v.flags().isSwapGreed() {
		greedy = !x.Greedy
	}
	return hir.NewRepetition(&hir.Repetition{Kind: kind, Greedy: greedy, Sub: expr})
}

// hirUnicodeClass resolves a property class like \pL or \p{Greek}, applies
// case folding and negation, and rejects classes that end up empty.
func (v *visitor) hirUnicodeClass(x *ast.ClassUnicode) (*hir.ClassUnicode, error) {
	if !v.flags().isUnicode() {
		return nil, v.errorAt(x.Span, ErrorKindUnicodeNotAllowed)
	}
	var q ucd.Query
	switch k := x.Kind.(type) {
	case ast.OneLetterName:
		q = ucd.OneLetter(rune(k))
	case ast.NamedProperty:
		q = ucd.Binary(string(k))
	case ast.NamedValue:
		q = ucd.ByValue(k.Name, k.Value)
	}
	cls, err := ucd.Class(q)
	if err != nil {
		return nil, v.convertClassError(x.Span, err)
	}
	if err := v.unicodeFoldAndNegate(x.Span, x.IsNegated(), cls); err != nil {
		return nil, err
	}
	if cls.IsEmpty() {
		return nil, v.errorAt(x.Span, ErrorKindEmptyClassNotAllowed)
	}
	return cls, nil
}

// hirPerlUnicodeClass translates \d, \s or \w in Unicode mode. The Unicode
// perl classes are closed under simple case folding, so the i flag needs
// no extra work here.
func (v *visitor) hirPerlUnicodeClass(x *ast.ClassPerl) *hir.ClassUnicode {
	var cls *hir.ClassUnicode
	switch x.Kind {
	case ast.PerlDigit:
		cls = ucd.PerlDigit()
	case ast.PerlSpace:
		cls = ucd.PerlSpace()
	case ast.PerlWord:
		cls = ucd.PerlWord()
	}
	if x.Negated {
		cls.Negate()
	}
	return cls
}

// hirPerlByteClass translates \d, \s or \w with Unicode mode off, where
// they shrink to their ASCII subsets. Those are closed under ASCII case
// folding, so the i flag needs no extra work here either.
func (v *visitor) hirPerlByteClass(x *ast.ClassPerl) *hir.ClassBytes {
	var cls *hir.ClassBytes
	switch x.Kind {
	case ast.PerlDigit:
		cls = asciiClassBytes(ast.AsciiDigit)
	case ast.PerlSpace:
		cls = asciiClassBytes(ast.AsciiSpace)
	case ast.PerlWord:
		cls = asciiClassBytes(ast.AsciiWord)
	}
	if x.Negated {
		cls.Negate()
	}
	return cls
}

// convertClassError rewrites a Unicode data error into a translation error
// at the given span.
func (v *visitor) convertClassError(span ast.Span, err error) error {
	var uerr *ucd.Error
	if errors.As(err, &uerr) {
		switch uerr.Kind {
		case ucd.ErrKindPropertyNotFound:
			return v.errorAt(span, ErrorKindUnicodePropertyNotFound)
		case ucd.ErrKindPropertyValueNotFound:
			return v.errorAt(span, ErrorKindUnicodePropertyValueNotFound)
		case ucd.ErrKindPerlClassNotFound:
			return v.errorAt(span, ErrorKindUnicodePerlClassNotFound)
		}
	}
	return err
}

// unicodeFoldAndNegate applies case folding, then negation, in that order.
// Folding first matters: the negation of a fold is not the fold of a
// negation.
func (v *visitor) unicodeFoldAndNegate(span ast.Span, negated bool, cls *hir.ClassUnicode) error {
	if v.flags().isCaseInsensitive() {
		if err := cls.TryCaseFoldSimple(); err != nil {
			return v.errorAt(span, ErrorKindUnicodeCaseUnavailable)
		}
	}
	if negated {
		cls.Negate()
	}
	return nil
}

// bytesFoldAndNegate is the byte class counterpart of
// unicodeFoldAndNegate. Negating a byte class can introduce bytes above
// 0x7F, so the invalid UTF-8 check runs after negation.
func (v *visitor) bytesFoldAndNegate(span ast.Span, negated bool, cls *hir.ClassBytes) error {
	if v.flags().isCaseInsensitive() {
		cls.CaseFoldSimple()
	}
	if negated {
		cls.Negate()
	}
	if !v.t.allowInvalidUTF8 && !cls.IsAllASCII() {
		return v.errorAt(span, ErrorKindInvalidUTF8)
	}
	return nil
}

// classLiteralByte converts a class literal to a single byte with Unicode
// mode off. Characters above 0x7F must be written as byte escapes; as
// scalar values they would occupy more than one byte.
func (v *visitor) classLiteralByte(x *ast.Literal) (uint8, error) {
	lit, err := v.literalToChar(x)
	if err != nil {
		return 0, err
	}
	if !lit.IsUnicode() {
		return lit.Byte(), nil
	}
	c := lit.Rune()
	if c <= 0x7F {
		return uint8(c), nil
	}
	return 0, v.errorAt(x.Span, ErrorKindUnicodeNotAllowed)
}
