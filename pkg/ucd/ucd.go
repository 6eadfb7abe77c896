// Package ucd answers Unicode data queries on behalf of the translator.
//
// It resolves property lookups such as \pL or \p{Greek} to character
// classes, provides the Unicode-aware perl classes \d, \s and \w, and
// exposes simple case folding. All data comes from the standard library's
// unicode tables, merged through golang.org/x/text/unicode/rangetable.
//
// Property and value names are matched loosely, following UAX44-LM3: case,
// whitespace, underscores and hyphens are ignored, so "White_Space",
// "whitespace" and "WHITE-SPACE" all resolve to the same property.
package ucd

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/regexkit/rehir/internal/casefold"
	"github.com/regexkit/rehir/pkg/hir"
)

type queryKind int

const (
	queryOneLetter queryKind = iota
	queryBinary
	queryByValue
)

// Query describes a single Unicode property lookup. Construct one with
// OneLetter, Binary or ByValue.
type Query struct {
	kind     queryKind
	letter   rune
	property string
	value    string
}

// OneLetter queries a one-letter general category name, such as 'L' or 'N'.
func OneLetter(c rune) Query {
	return Query{kind: queryOneLetter, letter: c}
}

// Binary queries a property by bare name, such as \p{Greek} or
// \p{White_Space}. The name is tried as a binary property, then as a
// general category value, then as a script name.
func Binary(name string) Query {
	return Query{kind: queryBinary, property: name}
}

// ByValue queries a property name/value pair, such as \p{sc=Latin}.
// Supported property names are General_Category (gc) and Script (sc).
func ByValue(property, value string) Query {
	return Query{kind: queryByValue, property: property, value: value}
}

// Class resolves the query to a character class.
func Class(q Query) (*hir.ClassUnicode, error) {
	switch q.kind {
	case queryOneLetter:
		name := string(q.letter)
		cls, ok := lookupGenCat(name)
		if !ok {
			return nil, &Error{Kind: ErrKindPropertyValueNotFound, Name: name}
		}
		return cls, nil
	case queryBinary:
		if cls, ok := lookupBinary(q.property); ok {
			return cls, nil
		}
		if cls, ok := lookupGenCat(q.property); ok {
			return cls, nil
		}
		if cls, ok := lookupScript(q.property); ok {
			return cls, nil
		}
		return nil, &Error{Kind: ErrKindPropertyNotFound, Name: q.property}
	case queryByValue:
		switch normalize(q.property) {
		case "generalcategory", "gc":
			cls, ok := lookupGenCat(q.value)
			if !ok {
				return nil, &Error{Kind: ErrKindPropertyValueNotFound, Name: q.value}
			}
			return cls, nil
		case "script", "sc":
			cls, ok := lookupScript(q.value)
			if !ok {
				return nil, &Error{Kind: ErrKindPropertyValueNotFound, Name: q.value}
			}
			return cls, nil
		}
		return nil, &Error{Kind: ErrKindPropertyNotFound, Name: q.property}
	}
	return nil, &Error{Kind: ErrKindPropertyNotFound, Name: q.property}
}

// PerlDigit returns the class for \d: the Decimal_Number category.
func PerlDigit() *hir.ClassUnicode {
	return classFromTable(unicode.Nd)
}

// PerlSpace returns the class for \s: the White_Space property.
func PerlSpace() *hir.ClassUnicode {
	return classFromTable(unicode.White_Space)
}

// PerlWord returns the class for \w: alphabetics, marks, decimal numbers,
// connector punctuation and join controls.
func PerlWord() *hir.ClassUnicode {
	return classFromTable(perlWordTable())
}

// SimpleFold returns the simple case fold orbit of r, excluding r itself,
// in no particular order beyond ascending scalar value.
func SimpleFold(r rune) []rune {
	return casefold.Orbit(r)
}

// ContainsSimpleCaseMapping reports whether any scalar value in the closed
// range [start, end] has a non-trivial simple case mapping.
func ContainsSimpleCaseMapping(start, end rune) bool {
	return casefold.HasFoldable(start, end)
}

// normalize implements the loose matching rules of UAX44-LM3.
func normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case ' ', '\t', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

var perlWordTable = sync.OnceValue(func() *unicode.RangeTable {
	return rangetable.Merge(
		unicode.L,
		unicode.Nl,
		unicode.Other_Alphabetic,
		unicode.M,
		unicode.Nd,
		unicode.Pc,
		unicode.Join_Control,
	)
})

// genCatTables maps loosely matched general category names and their
// spelled-out aliases to range tables. Unassigned (Cn) is absent from the
// standard tables and is handled by complementing the assigned set.
var genCatTables = sync.OnceValue(func() map[string]*unicode.RangeTable {
	m := make(map[string]*unicode.RangeTable, 64)
	for name, tbl := range unicode.Categories {
		m[normalize(name)] = tbl
	}
	aliases := map[string]*unicode.RangeTable{
		"letter":               unicode.L,
		"casedletter":          rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt),
		"lc":                   rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt),
		"lowercaseletter":      unicode.Ll,
		"uppercaseletter":      unicode.Lu,
		"titlecaseletter":      unicode.Lt,
		"modifierletter":       unicode.Lm,
		"otherletter":          unicode.Lo,
		"mark":                 unicode.M,
		"combiningmark":        unicode.M,
		"nonspacingmark":       unicode.Mn,
		"spacingmark":          unicode.Mc,
		"enclosingmark":        unicode.Me,
		"number":               unicode.N,
		"decimalnumber":        unicode.Nd,
		"digit":                unicode.Nd,
		"letternumber":         unicode.Nl,
		"othernumber":          unicode.No,
		"punctuation":          unicode.P,
		"punct":                unicode.P,
		"connectorpunctuation": unicode.Pc,
		"dashpunctuation":      unicode.Pd,
		"openpunctuation":      unicode.Ps,
		"closepunctuation":     unicode.Pe,
		"initialpunctuation":   unicode.Pi,
		"finalpunctuation":     unicode.Pf,
		"otherpunctuation":     unicode.Po,
		"symbol":               unicode.S,
		"mathsymbol":           unicode.Sm,
		"currencysymbol":       unicode.Sc,
		"modifiersymbol":       unicode.Sk,
		"othersymbol":          unicode.So,
		"separator":            unicode.Z,
		"spaceseparator":       unicode.Zs,
		"lineseparator":        unicode.Zl,
		"paragraphseparator":   unicode.Zp,
		"other":                unicode.C,
		"control":              unicode.Cc,
		"cntrl":                unicode.Cc,
		"format":               unicode.Cf,
		"privateuse":           unicode.Co,
	}
	for name, tbl := range aliases {
		m[name] = tbl
	}
	return m
})

var scriptTables = sync.OnceValue(func() map[string]*unicode.RangeTable {
	m := make(map[string]*unicode.RangeTable, len(unicode.Scripts))
	for name, tbl := range unicode.Scripts {
		m[normalize(name)] = tbl
	}
	return m
})

// binaryTables maps loosely matched binary property names to range tables.
// Alongside the standard property tables it carries the derived properties
// the concrete tables do not ship directly, such as Alphabetic.
var binaryTables = sync.OnceValue(func() map[string]*unicode.RangeTable {
	m := make(map[string]*unicode.RangeTable, len(unicode.Properties)+8)
	for name, tbl := range unicode.Properties {
		m[normalize(name)] = tbl
	}
	m["alphabetic"] = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_Alphabetic)
	m["alpha"] = m["alphabetic"]
	m["uppercase"] = rangetable.Merge(unicode.Lu, unicode.Other_Uppercase)
	m["upper"] = m["uppercase"]
	m["lowercase"] = rangetable.Merge(unicode.Ll, unicode.Other_Lowercase)
	m["lower"] = m["lowercase"]
	m["cased"] = rangetable.Merge(
		unicode.Lu, unicode.Ll, unicode.Lt,
		unicode.Other_Uppercase, unicode.Other_Lowercase,
	)
	m["space"] = unicode.White_Space
	return m
})

var assignedClass = sync.OnceValue(func() *hir.ClassUnicode {
	tables := make([]*unicode.RangeTable, 0, len(unicode.Categories))
	for _, tbl := range unicode.Categories {
		tables = append(tables, tbl)
	}
	return classFromTable(rangetable.Merge(tables...))
})

func lookupGenCat(name string) (*hir.ClassUnicode, bool) {
	key := normalize(name)
	switch key {
	case "any":
		return hir.NewClassUnicode(hir.ClassUnicodeRange{Start: 0, End: unicode.MaxRune}), true
	case "assigned":
		return assignedClass().Clone(), true
	case "ascii":
		return hir.NewClassUnicode(hir.ClassUnicodeRange{Start: 0, End: 0x7F}), true
	case "cn", "unassigned":
		cls := assignedClass().Clone()
		cls.Negate()
		return cls, true
	}
	tbl, ok := genCatTables()[key]
	if !ok {
		return nil, false
	}
	return classFromTable(tbl), true
}

func lookupScript(name string) (*hir.ClassUnicode, bool) {
	tbl, ok := scriptTables()[normalize(name)]
	if !ok {
		return nil, false
	}
	return classFromTable(tbl), true
}

func lookupBinary(name string) (*hir.ClassUnicode, bool) {
	tbl, ok := binaryTables()[normalize(name)]
	if !ok {
		return nil, false
	}
	return classFromTable(tbl), true
}

// classFromTable converts a range table to a class. Tables with a stride
// above one are expanded to their individual scalar values.
func classFromTable(tbl *unicode.RangeTable) *hir.ClassUnicode {
	cls := hir.NewClassUnicode()
	for _, r := range tbl.R16 {
		pushStride(cls, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range tbl.R32 {
		pushStride(cls, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return cls
}

func pushStride(cls *hir.ClassUnicode, lo, hi, stride rune) {
	if stride == 1 {
		cls.Push(hir.ClassUnicodeRange{Start: lo, End: hi})
		return
	}
	for r := lo; r <= hi; r += stride {
		cls.Push(hir.ClassUnicodeRange{Start: r, End: r})
	}
}
