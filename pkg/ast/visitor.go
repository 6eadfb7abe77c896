package ast

// Visitor is called back for every node during a depth first traversal
// driven by Visit. Any error aborts the traversal and is returned as is.
//
// Class set expressions form their own mini syntax inside bracketed
// classes, so they get their own callbacks; a bracketed class is visited
// through the ClassSet methods rather than VisitPre and VisitPost.
type Visitor interface {
	// Start is called once before traversal begins.
	Start()
	// VisitPre is called on a node before descending into its children.
	VisitPre(ast Ast) error
	// VisitPost is called on a node after all of its children.
	VisitPost(ast Ast) error
	// VisitAlternationIn is called between adjacent alternation branches.
	VisitAlternationIn() error
	// VisitClassSetItemPre is called on a class set item before its
	// children.
	VisitClassSetItemPre(item ClassSetItem) error
	// VisitClassSetItemPost is called on a class set item after its
	// children.
	VisitClassSetItemPost(item ClassSetItem) error
	// VisitClassSetBinaryOpPre is called on a set operation before its
	// operands.
	VisitClassSetBinaryOpPre(op *ClassSetBinaryOp) error
	// VisitClassSetBinaryOpPost is called on a set operation after its
	// operands.
	VisitClassSetBinaryOpPost(op *ClassSetBinaryOp) error
	// VisitClassSetBinaryOpIn is called between the two operands of a set
	// operation.
	VisitClassSetBinaryOpIn(op *ClassSetBinaryOp) error
}

// Visit walks the tree in depth first order, calling the visitor's methods
// at each step. The traversal uses an explicit heap stack instead of
// recursion, so stack usage is constant regardless of how deeply the tree
// nests.
func Visit(ast Ast, v Visitor) error {
	w := walker{}
	return w.walk(ast, v)
}

type frameKind int

const (
	frameRepetition frameKind = iota
	frameGroup
	frameConcat
	frameAlternation
)

// frame is one entry of the traversal call stack. For concatenations and
// alternations, head is the child currently being visited and tail holds
// the children still to visit.
type frame struct {
	kind frameKind
	rep  *Repetition
	grp  *Group
	head Ast
	tail []Ast
}

func (f frame) child() Ast {
	switch f.kind {
	case frameRepetition:
		return f.rep.Sub
	case frameGroup:
		return f.grp.Sub
	}
	return f.head
}

type classFrameKind int

const (
	classFrameUnion classFrameKind = iota
	classFrameBinary
	classFrameBinaryLHS
	classFrameBinaryRHS
)

// classFrame is one entry of the class set call stack.
type classFrame struct {
	kind classFrameKind
	op   *ClassSetBinaryOp
	head ClassSetItem
	tail []ClassSetItem
	lhs  ClassSet
	rhs  ClassSet
}

func (f classFrame) child() classInduct {
	switch f.kind {
	case classFrameUnion:
		return classInduct{item: f.head}
	case classFrameBinary:
		return classInduct{op: f.op}
	case classFrameBinaryLHS:
		return inductFromSet(f.lhs)
	}
	return inductFromSet(f.rhs)
}

// classInduct is the inductive step inside a class set: either an item or
// a binary operation, never both.
type classInduct struct {
	item ClassSetItem
	op   *ClassSetBinaryOp
}

func inductFromSet(set ClassSet) classInduct {
	if op, ok := set.(*ClassSetBinaryOp); ok {
		return classInduct{op: op}
	}
	return classInduct{item: set.(ClassSetItem)}
}

type stackEntry struct {
	ast Ast
	fr  frame
}

type classStackEntry struct {
	induct classInduct
	fr     classFrame
}

// walker drives a Visitor over a tree with constant stack usage and heap
// usage proportional to the tree's depth.
type walker struct {
	stack      []stackEntry
	stackClass []classStackEntry
}

func (w *walker) walk(ast Ast, v Visitor) error {
	w.stack = w.stack[:0]
	w.stackClass = w.stackClass[:0]

	v.Start()
	for {
		if err := v.VisitPre(ast); err != nil {
			return err
		}
		fr, ok, err := w.induct(ast, v)
		if err != nil {
			return err
		}
		if ok {
			child := fr.child()
			w.stack = append(w.stack, stackEntry{ast: ast, fr: fr})
			ast = child
			continue
		}
		// A node with no children is a base case, post visit it now.
		if err := v.VisitPost(ast); err != nil {
			return err
		}

		// Unwind until the stack is empty or a frame has a further
		// inductive step.
		for {
			if len(w.stack) == 0 {
				return nil
			}
			entry := w.stack[len(w.stack)-1]
			w.stack = w.stack[:len(w.stack)-1]
			if next, ok := pop(entry.fr); ok {
				if next.kind == frameAlternation {
					if err := v.VisitAlternationIn(); err != nil {
						return err
					}
				}
				ast = next.child()
				w.stack = append(w.stack, stackEntry{ast: entry.ast, fr: next})
				break
			}
			// All children of this node are done.
			if err := v.VisitPost(entry.ast); err != nil {
				return err
			}
		}
	}
}

// induct builds a stack frame for the node when it has children. Bracketed
// classes are traversed in full here, through the class set stack.
func (w *walker) induct(ast Ast, v Visitor) (frame, bool, error) {
	switch x := ast.(type) {
	case *ClassBracketed:
		err := w.walkClass(x, v)
		return frame{}, false, err
	case *Repetition:
		return frame{kind: frameRepetition, rep: x}, true, nil
	case *Group:
		return frame{kind: frameGroup, grp: x}, true, nil
	case *Concat:
		if len(x.Asts) == 0 {
			return frame{}, false, nil
		}
		return frame{kind: frameConcat, head: x.Asts[0], tail: x.Asts[1:]}, true, nil
	case *Alternation:
		if len(x.Asts) == 0 {
			return frame{}, false, nil
		}
		return frame{kind: frameAlternation, head: x.Asts[0], tail: x.Asts[1:]}, true, nil
	}
	return frame{}, false, nil
}

// pop advances a frame to its next inductive step, if it has one.
func pop(fr frame) (frame, bool) {
	switch fr.kind {
	case frameConcat, frameAlternation:
		if len(fr.tail) == 0 {
			return frame{}, false
		}
		return frame{kind: fr.kind, head: fr.tail[0], tail: fr.tail[1:]}, true
	}
	return frame{}, false
}

func (w *walker) walkClass(cls *ClassBracketed, v Visitor) error {
	induct := inductFromSet(cls.Kind)
	for {
		if err := w.visitClassPre(induct, v); err != nil {
			return err
		}
		if fr, ok := inductClass(induct); ok {
			child := fr.child()
			w.stackClass = append(w.stackClass, classStackEntry{induct: induct, fr: fr})
			induct = child
			continue
		}
		if err := w.visitClassPost(induct, v); err != nil {
			return err
		}

		for {
			if len(w.stackClass) == 0 {
				return nil
			}
			entry := w.stackClass[len(w.stackClass)-1]
			w.stackClass = w.stackClass[:len(w.stackClass)-1]
			if next, ok := popClass(entry.fr); ok {
				if next.kind == classFrameBinaryRHS {
					if err := v.VisitClassSetBinaryOpIn(next.op); err != nil {
						return err
					}
				}
				induct = next.child()
				w.stackClass = append(w.stackClass, classStackEntry{induct: entry.induct, fr: next})
				break
			}
			if err := w.visitClassPost(entry.induct, v); err != nil {
				return err
			}
		}
	}
}

func (w *walker) visitClassPre(induct classInduct, v Visitor) error {
	if induct.op != nil {
		return v.VisitClassSetBinaryOpPre(induct.op)
	}
	return v.VisitClassSetItemPre(induct.item)
}

func (w *walker) visitClassPost(induct classInduct, v Visitor) error {
	if induct.op != nil {
		return v.VisitClassSetBinaryOpPost(induct.op)
	}
	return v.VisitClassSetItemPost(induct.item)
}

// inductClass builds a class stack frame when the step has children.
func inductClass(induct classInduct) (classFrame, bool) {
	if induct.op != nil {
		return classFrame{
			kind: classFrameBinaryLHS,
			op:   induct.op,
			lhs:  induct.op.Lhs,
			rhs:  induct.op.Rhs,
		}, true
	}
	switch x := induct.item.(type) {
	case *ClassBracketed:
		if op, ok := x.Kind.(*ClassSetBinaryOp); ok {
			return classFrame{kind: classFrameBinary, op: op}, true
		}
		return classFrame{kind: classFrameUnion, head: x.Kind.(ClassSetItem)}, true
	case *ClassSetUnion:
		if len(x.Items) == 0 {
			return classFrame{}, false
		}
		return classFrame{kind: classFrameUnion, head: x.Items[0], tail: x.Items[1:]}, true
	}
	return classFrame{}, false
}

// popClass advances a class frame to its next inductive step, if any.
func popClass(fr classFrame) (classFrame, bool) {
	switch fr.kind {
	case classFrameUnion:
		if len(fr.tail) == 0 {
			return classFrame{}, false
		}
		return classFrame{kind: classFrameUnion, head: fr.tail[0], tail: fr.tail[1:]}, true
	case classFrameBinaryLHS:
		return classFrame{kind: classFrameBinaryRHS, op: fr.op, rhs: fr.rhs}, true
	}
	return classFrame{}, false
}
