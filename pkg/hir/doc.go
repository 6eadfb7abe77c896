// Package hir defines a high-level intermediate representation for regular
// expressions.
//
// # Overview
//
// An HIR value is a small tree of expression nodes with every syntactic
// nicety already compiled away: no flags, no escapes, no class set
// expressions. Character classes are flattened into canonical sets of
// non-overlapping, non-adjacent ranges, and every node carries a set of
// precomputed analysis facts (anchoring, UTF-8 safety, literalness) that are
// answered in constant time.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Hir: an expression node paired with its analysis facts
//   - Kind: the closed set of node variants (Empty, Literal, Class, Anchor,
//     WordBoundary, Repetition, Group, Concat, Alternation)
//   - ClassUnicode: a character class over Unicode scalar values
//   - ClassBytes: a character class over arbitrary bytes
//
// # Construction
//
// Hir values are built bottom-up through the New* constructors. Each
// constructor derives the node's facts from the facts of its direct children,
// so analysis is O(1) per node and never revisits the tree:
//
//	foo := hir.NewConcat([]*hir.Hir{
//	    hir.NewLiteral(hir.UnicodeLiteral('f')),
//	    hir.NewLiteral(hir.UnicodeLiteral('o')),
//	    hir.NewLiteral(hir.UnicodeLiteral('o')),
//	})
//	anchored := hir.NewConcat([]*hir.Hir{hir.NewAnchor(hir.AnchorStartText), foo})
//	_ = anchored.IsAnchoredStart() // true
//
// # Byte versus Unicode
//
// Literals and classes come in two character domains. The Unicode domain
// ranges over scalar values and always matches valid UTF-8. The byte domain
// ranges over raw bytes and exists so that Unicode-disabled expressions can
// match invalid UTF-8; a byte Literal is only ever allowed to hold a
// non-ASCII byte, which NewLiteral enforces.
package hir
