package hir

// info records the analysis facts attached to every expression node. Each
// fact is computed once, at construction, from the facts of the node's direct
// children.
type info struct {
	alwaysUTF8         bool
	allAssertions      bool
	anchoredStart      bool
	anchoredEnd        bool
	lineAnchoredStart  bool
	lineAnchoredEnd    bool
	anyAnchoredStart   bool
	anyAnchoredEnd     bool
	matchEmpty         bool
	literal            bool
	alternationLiteral bool
}
