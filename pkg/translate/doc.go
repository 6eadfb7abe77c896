// Package translate compiles a regular expression syntax tree into the
// intermediate representation of package hir.
//
// # Overview
//
// Translation resolves everything the concrete syntax leaves implicit: inline
// flags are applied and erased, literals are case folded, perl and Unicode
// property classes are expanded to explicit ranges, and class set expressions
// such as [a-z&&[^aeiou]] are evaluated down to a single canonical class.
//
// The walk runs over an explicit heap stack, so arbitrarily deep patterns
// translate in constant call stack space.
//
// # Usage
//
//	t := translate.New()
//	expr, err := t.Translate(pattern, tree)
//
// A Translator built with default options works in Unicode mode and rejects
// any pattern that could match invalid UTF-8. Both can be changed through a
// Builder:
//
//	t := translate.NewBuilder().
//	    Unicode(false).
//	    AllowInvalidUTF8(true).
//	    Build()
//
// # Errors
//
// Failures are reported as *Error values carrying the pattern, the span of
// the offending construct and an ErrorKind. Error.Diagnostic renders a
// caret-annotated message for terminal display.
package translate
