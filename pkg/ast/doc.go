// Package ast defines an abstract syntax tree for regular expressions.
//
// # Overview
//
// The AST is a faithful, span-annotated representation of a pattern's
// concrete syntax: flags, escapes and class set expressions are all still
// present. It is the input format consumed by the translator, which compiles
// it down to the simpler intermediate representation in package hir.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Ast: the closed set of expression nodes (Empty, Flags, Literal, Dot,
//     Assertion, the class nodes, Repetition, Group, Alternation, Concat)
//   - ClassSet / ClassSetItem: the nested expression language inside
//     bracketed classes, including the set operators && (intersection),
//     -- (difference) and ~~ (symmetric difference)
//   - Span / Position: byte-offset source locations carried by every node
//   - Visitor: depth first traversal without recursion
//
// # Traversal
//
// Visit walks a tree in depth first order using an explicit heap stack, so
// the call stack stays constant no matter how deeply a pattern nests. This
// matters because tree depth is proportional to end user input.
//
// # Construction
//
// Nodes are ordinary structs and can be built directly when spans matter.
// For tests and tools that do not care about positions, builder.go provides
// span-free constructors:
//
//	pat := ast.NewConcat(
//	    ast.NewString("fo"),
//	    ast.NewRepetition(ast.NewLiteral('o'), ast.OneOrMore{}, true),
//	)
package ast
