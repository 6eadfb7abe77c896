// Package casefold provides Unicode simple case folding primitives shared by
// the character class engine and the Unicode data oracle.
//
// Simple case folding is the context-free, one-to-many equivalence used for
// case-insensitive matching: folding 'k' yields 'K' and the Kelvin sign
// U+212A. The fold data comes from the standard library's case orbit tables.
package casefold

import (
	"sort"
	"sync"
	"unicode"
)

// foldable lists, in ascending order, every scalar value that has at least
// one non-trivial simple case mapping. Built once on first use.
var foldable = sync.OnceValue(func() []rune {
	var rs []rune
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r == 0xD800 {
			r = 0xDFFF
			continue
		}
		if unicode.SimpleFold(r) != r {
			rs = append(rs, r)
		}
	}
	return rs
})

// HasFoldable reports whether the closed range [lo, hi] contains at least
// one scalar value with a non-trivial simple case mapping.
func HasFoldable(lo, hi rune) bool {
	return len(FoldableIn(lo, hi)) > 0
}

// FoldableIn returns, in ascending order, every scalar value in the closed
// range [lo, hi] that has a non-trivial simple case mapping. The returned
// slice is shared; callers must not mutate it.
func FoldableIn(lo, hi rune) []rune {
	tbl := foldable()
	i := sort.Search(len(tbl), func(i int) bool { return tbl[i] >= lo })
	j := sort.Search(len(tbl), func(j int) bool { return tbl[j] > hi })
	return tbl[i:j]
}

// Orbit returns the simple case fold equivalence class of r, excluding r
// itself. The result is empty for scalar values with no case mapping.
func Orbit(r rune) []rune {
	var orbit []rune
	for c := unicode.SimpleFold(r); c != r; c = unicode.SimpleFold(c) {
		orbit = append(orbit, c)
	}
	return orbit
}
