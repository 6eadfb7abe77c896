package hir

import (
	"github.com/regexkit/rehir/internal/casefold"
	"github.com/regexkit/rehir/internal/interval"
)

// Class is the interface shared by the two character class variants,
// ClassUnicode and ClassBytes. A class is a set of characters kept as
// non-overlapping, non-adjacent ranges in ascending order.
//
// A ClassBytes may be produced even when it only matches valid UTF-8: a byte
// class records that the author disabled Unicode mode, which changes the
// semantics of case insensitive matching. Compiling `k` case-insensitively
// in the Unicode domain also matches the Kelvin sign, while the byte domain
// folds only ASCII.
type Class interface {
	Kind
	// IsAlwaysUTF8 reports whether every match of this class is valid
	// UTF-8. Unicode classes always are; byte classes are when they
	// contain no byte above 0x7F.
	IsAlwaysUTF8() bool
	// CaseFoldSimple expands the class to its simple case fold closure,
	// in place. Byte classes fold only ASCII a-z and A-Z.
	CaseFoldSimple()
	// Negate complements the class against its character domain, in place.
	Negate()
}

// ClassUnicodeRange is a single closed range of Unicode scalar values.
type ClassUnicodeRange struct {
	Start rune
	End   rune
}

// NewClassUnicodeRange builds a range from two scalar values in either order.
func NewClassUnicodeRange(start, end rune) ClassUnicodeRange {
	if start > end {
		start, end = end, start
	}
	return ClassUnicodeRange{Start: start, End: end}
}

// ClassBytesRange is a single closed range of bytes.
type ClassBytesRange struct {
	Start uint8
	End   uint8
}

// NewClassBytesRange builds a range from two bytes in either order.
func NewClassBytesRange(start, end uint8) ClassBytesRange {
	if start > end {
		start, end = end, start
	}
	return ClassBytesRange{Start: start, End: end}
}

// ClassUnicode is a set of characters represented by Unicode scalar values.
type ClassUnicode struct {
	set interval.Set[rune]
}

// NewClassUnicode builds a class from the given ranges, which may be given
// in any order and may overlap. With no ranges the class is empty.
func NewClassUnicode(ranges ...ClassUnicodeRange) *ClassUnicode {
	rs := make([]interval.Range[rune], len(ranges))
	for i, r := range ranges {
		rs[i] = interval.Range[rune]{Lo: r.Start, Hi: r.End}
	}
	return &ClassUnicode{set: interval.New(interval.Runes(), rs...)}
}

// Clone returns an independent copy of the class.
func (c *ClassUnicode) Clone() *ClassUnicode {
	return &ClassUnicode{set: c.set.Clone()}
}

// Push adds a range to the class, restoring canonical form.
func (c *ClassUnicode) Push(r ClassUnicodeRange) {
	c.set.Push(interval.MakeRange(r.Start, r.End))
}

// Ranges returns the ranges of the class in ascending order.
func (c *ClassUnicode) Ranges() []ClassUnicodeRange {
	rs := c.set.Ranges()
	out := make([]ClassUnicodeRange, len(rs))
	for i, r := range rs {
		out[i] = ClassUnicodeRange{Start: r.Lo, End: r.Hi}
	}
	return out
}

// IsEmpty reports whether the class matches no characters.
func (c *ClassUnicode) IsEmpty() bool { return c.set.IsEmpty() }

// TryCaseFoldSimple expands the class to its simple case fold closure, in
// place. For example, folding the range a-z adds the range A-Z as well as
// the scalar values whose folds land inside a-z, such as the Kelvin sign.
//
// The error mirrors oracles whose case tables may be absent; the tables
// bundled here always carry the mapping, so the returned error is nil.
func (c *ClassUnicode) TryCaseFoldSimple() error {
	return c.set.Expand(func(r interval.Range[rune], push func(lo, hi rune)) error {
		for _, cp := range casefold.FoldableIn(r.Lo, r.Hi) {
			for _, folded := range casefold.Orbit(cp) {
				push(folded, folded)
			}
		}
		return nil
	})
}

// CaseFoldSimple is TryCaseFoldSimple for callers that know the fold data
// is available.
func (c *ClassUnicode) CaseFoldSimple() { _ = c.TryCaseFoldSimple() }

// Negate complements the class against the full scalar value domain, in
// place. The surrogate range U+D800-U+DFFF is never part of the domain.
func (c *ClassUnicode) Negate() { c.set.Negate() }

// Union adds every character of other to this class, in place.
func (c *ClassUnicode) Union(other *ClassUnicode) { c.set.Union(&other.set) }

// Intersect keeps only the characters present in both classes, in place.
func (c *ClassUnicode) Intersect(other *ClassUnicode) { c.set.Intersect(&other.set) }

// Difference removes every character of other from this class, in place.
func (c *ClassUnicode) Difference(other *ClassUnicode) { c.set.Difference(&other.set) }

// SymmetricDifference keeps the characters present in exactly one of the two
// classes, in place.
func (c *ClassUnicode) SymmetricDifference(other *ClassUnicode) {
	c.set.SymmetricDifference(&other.set)
}

// IsAlwaysUTF8 reports true: a Unicode class only ever matches scalar
// values, which encode to valid UTF-8.
func (c *ClassUnicode) IsAlwaysUTF8() bool { return true }

// ClassBytes is a set of characters represented by arbitrary bytes, one byte
// per character.
type ClassBytes struct {
	set interval.Set[uint8]
}

// NewClassBytes builds a class from the given ranges, which may be given in
// any order and may overlap. With no ranges the class is empty.
func NewClassBytes(ranges ...ClassBytesRange) *ClassBytes {
	rs := make([]interval.Range[uint8], len(ranges))
	for i, r := range ranges {
		rs[i] = interval.Range[uint8]{Lo: r.Start, Hi: r.End}
	}
	return &ClassBytes{set: interval.New(interval.Bytes(), rs...)}
}

// Clone returns an independent copy of the class.
func (c *ClassBytes) Clone() *ClassBytes {
	return &ClassBytes{set: c.set.Clone()}
}

// Push adds a range to the class, restoring canonical form.
func (c *ClassBytes) Push(r ClassBytesRange) {
	c.set.Push(interval.MakeRange(r.Start, r.End))
}

// Ranges returns the ranges of the class in ascending order.
func (c *ClassBytes) Ranges() []ClassBytesRange {
	rs := c.set.Ranges()
	out := make([]ClassBytesRange, len(rs))
	for i, r := range rs {
		out[i] = ClassBytesRange{Start: r.Lo, End: r.Hi}
	}
	return out
}

// IsEmpty reports whether the class matches no characters.
func (c *ClassBytes) IsEmpty() bool { return c.set.IsEmpty() }

// CaseFoldSimple expands the class with ASCII case folding, in place. Only
// the ranges a-z and A-Z participate.
func (c *ClassBytes) CaseFoldSimple() {
	_ = c.set.Expand(func(r interval.Range[uint8], push func(lo, hi uint8)) error {
		if r.Lo <= 'z' && r.Hi >= 'a' {
			lo, hi := max(r.Lo, 'a'), min(r.Hi, 'z')
			push(lo-32, hi-32)
		}
		if r.Lo <= 'Z' && r.Hi >= 'A' {
			lo, hi := max(r.Lo, 'A'), min(r.Hi, 'Z')
			push(lo+32, hi+32)
		}
		return nil
	})
}

// Negate complements the class against the full byte domain, in place.
func (c *ClassBytes) Negate() { c.set.Negate() }

// Union adds every byte of other to this class, in place.
func (c *ClassBytes) Union(other *ClassBytes) { c.set.Union(&other.set) }

// Intersect keeps only the bytes present in both classes, in place.
func (c *ClassBytes) Intersect(other *ClassBytes) { c.set.Intersect(&other.set) }

// Difference removes every byte of other from this class, in place.
func (c *ClassBytes) Difference(other *ClassBytes) { c.set.Difference(&other.set) }

// SymmetricDifference keeps the bytes present in exactly one of the two
// classes, in place.
func (c *ClassBytes) SymmetricDifference(other *ClassBytes) {
	c.set.SymmetricDifference(&other.set)
}

// IsAllASCII reports whether the class is empty or contains only bytes at
// or below 0x7F. The canonical range order makes the last range decisive.
func (c *ClassBytes) IsAllASCII() bool {
	rs := c.set.Ranges()
	return len(rs) == 0 || rs[len(rs)-1].Hi <= 0x7F
}

// IsAlwaysUTF8 reports whether every match of this class is valid UTF-8,
// which for a byte class means it contains no byte above 0x7F.
func (c *ClassBytes) IsAlwaysUTF8() bool { return c.IsAllASCII() }
