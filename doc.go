// Package rehir is the root of a toolkit for compiling regular expression
// syntax trees into a canonical intermediate representation.
//
// The interesting code lives in the subpackages:
//
//   - pkg/ast: span-annotated syntax trees and a constant-stack visitor
//   - pkg/hir: the intermediate representation, with analysis facts
//     computed at construction
//   - pkg/translate: the compiler from ast to hir, including flag
//     resolution, case folding and class set evaluation
//   - pkg/ucd: Unicode property, perl class and case folding data
//   - cmd/rehirctl: a CLI for translating trees written as s-expressions
//
// This module deliberately contains no pattern parser and no matching
// engine. It starts where a parser ends and stops where an engine begins.
package rehir
