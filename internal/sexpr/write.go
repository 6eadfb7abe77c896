package sexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/regexkit/rehir/pkg/ast"
	"github.com/regexkit/rehir/pkg/hir"
)

// Write renders a tree in the syntax Read accepts. Reading the result
// yields a structurally equal tree, with capture indices renumbered in
// reading order.
func Write(a ast.Ast) string {
	var b strings.Builder
	writeAst(&b, a)
	return b.String()
}

func writeAst(b *strings.Builder, a ast.Ast) {
	switch x := a.(type) {
	case *ast.Empty:
		b.WriteString("empty")
	case *ast.SetFlags:
		fmt.Fprintf(b, "(set %q)", specOf(x.Flags))
	case *ast.Literal:
		if raw, ok := x.Byte(); ok {
			fmt.Fprintf(b, "(byte %d)", raw)
		} else {
			b.WriteString(strconv.QuoteRune(x.C))
		}
	case *ast.Dot:
		b.WriteString("dot")
	case *ast.Assertion:
		b.WriteString(assertionAtom(x.Kind))
	case *ast.ClassPerl:
		fmt.Fprintf(b, "(perl %s)", perlLetter(x.Kind, x.Negated))
	case *ast.ClassUnicode:
		writeUnicodeClass(b, x)
	case *ast.ClassBracketed:
		writeBracketed(b, x)
	case *ast.Repetition:
		b.WriteString("(rep ")
		writeRepOp(b, x.Op.Kind)
		if !x.Greedy {
			b.WriteString(" lazy")
		}
		b.WriteByte(' ')
		writeAst(b, x.Sub)
		b.WriteByte(')')
	case *ast.Group:
		switch k := x.Kind.(type) {
		case ast.CaptureIndex:
			b.WriteString("(cap ")
		case *ast.CaptureName:
			fmt.Fprintf(b, "(capn %q ", k.Name)
		case ast.NonCapturing:
			if spec := specOf(ast.Flags(k)); spec != "" {
				fmt.Fprintf(b, "(flags %q ", spec)
			} else {
				b.WriteString("(grp ")
			}
		}
		writeAst(b, x.Sub)
		b.WriteByte(')')
	case *ast.Alternation:
		b.WriteString("(alt")
		for _, sub := range x.Asts {
			b.WriteByte(' ')
			writeAst(b, sub)
		}
		b.WriteByte(')')
	case *ast.Concat:
		b.WriteString("(cat")
		for _, sub := range x.Asts {
			b.WriteByte(' ')
			writeAst(b, sub)
		}
		b.WriteByte(')')
	}
}

func writeUnicodeClass(b *strings.Builder, x *ast.ClassUnicode) {
	kw := "uni"
	if x.Negated {
		kw = "nuni"
	}
	switch k := x.Kind.(type) {
	case ast.OneLetterName:
		fmt.Fprintf(b, "(%s %c)", kw, rune(k))
	case ast.NamedProperty:
		fmt.Fprintf(b, "(%s %q)", kw, string(k))
	case ast.NamedValue:
		// The != operator folds into the class keyword, so the written
		// form always uses =.
		if k.Op == ast.UnicodeOpNotEqual {
			if x.Negated {
				kw = "uni"
			} else {
				kw = "nuni"
			}
		}
		fmt.Fprintf(b, "(%s %q %q)", kw, k.Name, k.Value)
	}
}

func writeBracketed(b *strings.Builder, x *ast.ClassBracketed) {
	if x.Negated {
		b.WriteString("(nclass")
	} else {
		b.WriteString("(class")
	}
	switch set := x.Kind.(type) {
	case *ast.ClassSetBinaryOp:
		b.WriteByte(' ')
		writeOp(b, set)
	case *ast.ClassSetUnion:
		for _, it := range set.Items {
			b.WriteByte(' ')
			writeItem(b, it)
		}
	case ast.ClassSetItem:
		b.WriteByte(' ')
		writeItem(b, set)
	}
	b.WriteByte(')')
}

func writeItem(b *strings.Builder, it ast.ClassSetItem) {
	switch x := it.(type) {
	case *ast.Empty:
	case *ast.Literal:
		if raw, ok := x.Byte(); ok {
			fmt.Fprintf(b, "(byte %d)", raw)
		} else {
			b.WriteString(strconv.QuoteRune(x.C))
		}
	case *ast.ClassSetRange:
		fmt.Fprintf(b, "(range %s %s)", strconv.QuoteRune(x.Start.C), strconv.QuoteRune(x.End.C))
	case *ast.ClassAscii:
		kw := "posix"
		if x.Negated {
			kw = "nposix"
		}
		fmt.Fprintf(b, "(%s %s)", kw, posixName(x.Kind))
	case *ast.ClassPerl:
		fmt.Fprintf(b, "(perl %s)", perlLetter(x.Kind, x.Negated))
	case *ast.ClassUnicode:
		writeUnicodeClass(b, x)
	case *ast.ClassBracketed:
		writeBracketed(b, x)
	case *ast.ClassSetUnion:
		for i, sub := range x.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeItem(b, sub)
		}
	}
}

func writeOp(b *strings.Builder, op *ast.ClassSetBinaryOp) {
	switch op.Kind {
	case ast.SetIntersection:
		b.WriteString("(and ")
	case ast.SetDifference:
		b.WriteString("(diff ")
	case ast.SetSymmetricDifference:
		b.WriteString("(xor ")
	}
	writeOperand(b, op.Lhs)
	b.WriteByte(' ')
	writeOperand(b, op.Rhs)
	b.WriteByte(')')
}

func writeOperand(b *strings.Builder, set ast.ClassSet) {
	if op, ok := set.(*ast.ClassSetBinaryOp); ok {
		writeOp(b, op)
		return
	}
	writeItem(b, set.(ast.ClassSetItem))
}

func writeRepOp(b *strings.Builder, kind ast.RepetitionKind) {
	switch k := kind.(type) {
	case ast.ZeroOrOne:
		b.WriteByte('?')
	case ast.ZeroOrMore:
		b.WriteByte('*')
	case ast.OneOrMore:
		b.WriteByte('+')
	case ast.RangeExactly:
		fmt.Fprintf(b, "%d", uint32(k))
	case ast.RangeAtLeast:
		fmt.Fprintf(b, "%d,", uint32(k))
	case ast.RangeBounded:
		fmt.Fprintf(b, "%d,%d", k.Min, k.Max)
	}
}

func assertionAtom(kind ast.AssertionKind) string {
	switch kind {
	case ast.AssertStartLine:
		return "bol"
	case ast.AssertEndLine:
		return "eol"
	case ast.AssertStartText:
		return "bot"
	case ast.AssertEndText:
		return "eot"
	case ast.AssertWordBoundary:
		return "wb"
	case ast.AssertNotWordBoundary:
		return "nwb"
	}
	return "?"
}

func perlLetter(kind ast.ClassPerlKind, negated bool) string {
	var letter string
	switch kind {
	case ast.PerlDigit:
		letter = "d"
	case ast.PerlSpace:
		letter = "s"
	case ast.PerlWord:
		letter = "w"
	}
	if negated {
		letter = strings.ToUpper(letter)
	}
	return letter
}

func posixName(kind ast.ClassAsciiKind) string {
	switch kind {
	case ast.AsciiAlnum:
		return "alnum"
	case ast.AsciiAlpha:
		return "alpha"
	case ast.AsciiAscii:
		return "ascii"
	case ast.AsciiBlank:
		return "blank"
	case ast.AsciiCntrl:
		return "cntrl"
	case ast.AsciiDigit:
		return "digit"
	case ast.AsciiGraph:
		return "graph"
	case ast.AsciiLower:
		return "lower"
	case ast.AsciiPrint:
		return "print"
	case ast.AsciiPunct:
		return "punct"
	case ast.AsciiSpace:
		return "space"
	case ast.AsciiUpper:
		return "upper"
	case ast.AsciiWord:
		return "word"
	case ast.AsciiXdigit:
		return "xdigit"
	}
	return "?"
}

// specOf renders a flag group back to its spec string, e.g. "im-u".
func specOf(f ast.Flags) string {
	var b strings.Builder
	for _, it := range f.Items {
		switch k := it.Kind.(type) {
		case ast.Negation:
			b.WriteByte('-')
		case ast.Flag:
			switch k {
			case ast.FlagCaseInsensitive:
				b.WriteByte('i')
			case ast.FlagMultiLine:
				b.WriteByte('m')
			case ast.FlagDotMatchesNewLine:
				b.WriteByte('s')
			case ast.FlagSwapGreed:
				b.WriteByte('U')
			case ast.FlagUnicode:
				b.WriteByte('u')
			case ast.FlagIgnoreWhitespace:
				b.WriteByte('x')
			}
		}
	}
	return b.String()
}

// WriteHir renders a translated expression in the same surface syntax,
// extended with the forms translation can produce: bclass for byte
// classes, awb and nawb for ASCII word boundaries, and explicit capture
// indices.
func WriteHir(h *hir.Hir) string {
	var b strings.Builder
	writeHir(&b, h)
	return b.String()
}

func writeHir(b *strings.Builder, h *hir.Hir) {
	switch x := h.Kind().(type) {
	case hir.Empty:
		b.WriteString("empty")
	case hir.Literal:
		if x.IsUnicode() {
			b.WriteString(strconv.QuoteRune(x.Rune()))
		} else {
			fmt.Fprintf(b, "(byte %d)", x.Byte())
		}
	case *hir.ClassUnicode:
		b.WriteString("(class")
		for _, r := range x.Ranges() {
			b.WriteByte(' ')
			if r.Start == r.End {
				b.WriteString(strconv.QuoteRune(r.Start))
			} else {
				fmt.Fprintf(b, "(range %s %s)", strconv.QuoteRune(r.Start), strconv.QuoteRune(r.End))
			}
		}
		b.WriteByte(')')
	case *hir.ClassBytes:
		b.WriteString("(bclass")
		for _, r := range x.Ranges() {
			b.WriteByte(' ')
			if r.Start == r.End {
				fmt.Fprintf(b, "0x%02X", r.Start)
			} else {
				fmt.Fprintf(b, "(range 0x%02X 0x%02X)", r.Start, r.End)
			}
		}
		b.WriteByte(')')
	case hir.Anchor:
		switch x {
		case hir.AnchorStartLine:
			b.WriteString("bol")
		case hir.AnchorEndLine:
			b.WriteString("eol")
		case hir.AnchorStartText:
			b.WriteString("bot")
		case hir.AnchorEndText:
			b.WriteString("eot")
		}
	case hir.WordBoundary:
		switch x {
		case hir.WordBoundaryUnicode:
			b.WriteString("wb")
		case hir.WordBoundaryUnicodeNegate:
			b.WriteString("nwb")
		case hir.WordBoundaryAscii:
			b.WriteString("awb")
		case hir.WordBoundaryAsciiNegate:
			b.WriteString("nawb")
		}
	case *hir.Repetition:
		b.WriteString("(rep ")
		writeHirRepOp(b, x.Kind)
		if !x.Greedy {
			b.WriteString(" lazy")
		}
		b.WriteByte(' ')
		writeHir(b, x.Sub)
		b.WriteByte(')')
	case *hir.Group:
		switch k := x.Kind.(type) {
		case hir.CaptureIndex:
			fmt.Fprintf(b, "(cap %d ", uint32(k))
		case hir.CaptureName:
			fmt.Fprintf(b, "(capn %d %q ", k.Index, k.Name)
		case hir.NonCapturing:
			b.WriteString("(grp ")
		}
		writeHir(b, x.Sub)
		b.WriteByte(')')
	case hir.Concat:
		b.WriteString("(cat")
		for _, sub := range x {
			b.WriteByte(' ')
			writeHir(b, sub)
		}
		b.WriteByte(')')
	case hir.Alternation:
		b.WriteString("(alt")
		for _, sub := range x {
			b.WriteByte(' ')
			writeHir(b, sub)
		}
		b.WriteByte(')')
	}
}

func writeHirRepOp(b *strings.Builder, kind hir.RepetitionKind) {
	switch k := kind.(type) {
	case hir.ZeroOrOne:
		b.WriteByte('?')
	case hir.ZeroOrMore:
		b.WriteByte('*')
	case hir.OneOrMore:
		b.WriteByte('+')
	case hir.RepeatExactly:
		fmt.Fprintf(b, "%d", uint32(k))
	case hir.RepeatAtLeast:
		fmt.Fprintf(b, "%d,", uint32(k))
	case hir.RepeatBounded:
		fmt.Fprintf(b, "%d,%d", k.Min, k.Max)
	}
}
