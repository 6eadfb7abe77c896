package translate

import (
	"fmt"

	"github.com/regexkit/rehir/pkg/hir"
)

type hirFrameKind int

const (
	// frameExpr holds a finished expression. Pushed at every base case,
	// popped when an enclosing inductive step completes.
	frameExpr hirFrameKind = iota
	// frameClassUnicode holds a Unicode class under construction. Class
	// frames are mutated as the class set expression is walked.
	frameClassUnicode
	// frameClassBytes holds a byte class under construction. Byte
	// classes are built when Unicode mode is disabled.
	frameClassBytes
	// frameGroup marks an open group and remembers the flags that were
	// active when it opened, to be restored when it closes.
	frameGroup
	// frameConcat marks an open concatenation. When it closes, finished
	// expressions are popped down to this marker.
	frameConcat
	// frameAlternation marks an open alternation, popped like
	// frameConcat.
	frameAlternation
)

func (k hirFrameKind) String() string {
	switch k {
	case frameExpr:
		return "expression"
	case frameClassUnicode:
		return "unicode class"
	case frameClassBytes:
		return "byte class"
	case frameGroup:
		return "group"
	case frameConcat:
		return "concat marker"
	case frameAlternation:
		return "alternation marker"
	}
	return "unknown"
}

// hirFrame is a single frame of the translator's explicit call stack. One
// is created for each inductive step of the tree walk.
type hirFrame struct {
	kind     hirFrameKind
	expr     *hir.Hir
	clsU     *hir.ClassUnicode
	clsB     *hir.ClassBytes
	oldFlags flags
}

func exprFrame(expr *hir.Hir) hirFrame {
	return hirFrame{kind: frameExpr, expr: expr}
}

func classUnicodeFrame(cls *hir.ClassUnicode) hirFrame {
	return hirFrame{kind: frameClassUnicode, clsU: cls}
}

func classBytesFrame(cls *hir.ClassBytes) hirFrame {
	return hirFrame{kind: frameClassBytes, clsB: cls}
}

func groupFrame(oldFlags flags) hirFrame {
	return hirFrame{kind: frameGroup, oldFlags: oldFlags}
}

// unwrapExpr asserts that the frame holds a finished expression.
func (f hirFrame) unwrapExpr() *hir.Hir {
	if f.kind != frameExpr {
		panic(fmt.Sprintf("translate: expected expression frame, got %s", f.kind))
	}
	return f.expr
}

// unwrapClassUnicode asserts that the frame holds a Unicode class.
func (f hirFrame) unwrapClassUnicode() *hir.ClassUnicode {
	if f.kind != frameClassUnicode {
		panic(fmt.Sprintf("translate: expected unicode class frame, got %s", f.kind))
	}
	return f.clsU
}

// unwrapClassBytes asserts that the frame holds a byte class.
func (f hirFrame) unwrapClassBytes() *hir.ClassBytes {
	if f.kind != frameClassBytes {
		panic(fmt.Sprintf("translate: expected byte class frame, got %s", f.kind))
	}
	return f.clsB
}

// unwrapGroup asserts that the frame is a group marker and returns the
// flags that were active when the group opened.
func (f hirFrame) unwrapGroup() flags {
	if f.kind != frameGroup {
		panic(fmt.Sprintf("translate: expected group frame, got %s", f.kind))
	}
	return f.oldFlags
}
