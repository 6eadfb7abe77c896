package translate

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/regexkit/rehir/pkg/ast"
)

// ErrorKind classifies translation failures so callers can branch on
// intent rather than text.
type ErrorKind int

const (
	// ErrorKindUnicodeNotAllowed reports use of a Unicode feature while
	// Unicode mode is disabled, e.g. (?-u:\pL).
	ErrorKindUnicodeNotAllowed ErrorKind = iota
	// ErrorKindInvalidUTF8 reports a pattern that could match a byte
	// sequence that is not valid UTF-8 while that is not allowed.
	ErrorKindInvalidUTF8
	// ErrorKindUnicodePropertyNotFound reports an unrecognized Unicode
	// property name.
	ErrorKindUnicodePropertyNotFound
	// ErrorKindUnicodePropertyValueNotFound reports an unrecognized
	// Unicode property value.
	ErrorKindUnicodePropertyValueNotFound
	// ErrorKindUnicodePerlClassNotFound reports that the data for a
	// Unicode-aware perl class (\d, \s, \w) is unavailable.
	ErrorKindUnicodePerlClassNotFound
	// ErrorKindUnicodeCaseUnavailable reports that the simple case
	// mapping data needed for Unicode-aware case insensitivity is
	// unavailable.
	ErrorKindUnicodeCaseUnavailable
	// ErrorKindEmptyClassNotAllowed reports a character class that
	// matches nothing.
	ErrorKindEmptyClassNotAllowed
)

// String returns a human readable description of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnicodeNotAllowed:
		return "Unicode not allowed here"
	case ErrorKindInvalidUTF8:
		return "pattern can match invalid UTF-8"
	case ErrorKindUnicodePropertyNotFound:
		return "Unicode property not found"
	case ErrorKindUnicodePropertyValueNotFound:
		return "Unicode property value not found"
	case ErrorKindUnicodePerlClassNotFound:
		return "Unicode-aware Perl class not found"
	case ErrorKindUnicodeCaseUnavailable:
		return "Unicode-aware case insensitivity matching is not available"
	case ErrorKindEmptyClassNotAllowed:
		return "empty character classes are not allowed"
	}
	return "unknown translation error"
}

// Error is a translation failure tied to a location in the pattern.
type Error struct {
	kind    ErrorKind
	pattern string
	span    ast.Span
}

// Kind returns the type of this error.
func (e *Error) Kind() ErrorKind { return e.kind }

// Pattern returns the original pattern string in which this error
// occurred. Every span reported by this error points into this string.
func (e *Error) Pattern() string { return e.pattern }

// Span returns the span at which this error occurred.
func (e *Error) Span() ast.Span { return e.span }

func (e *Error) Error() string {
	return fmt.Sprintf(
		"translation error at position %d: %s",
		e.span.Start.Offset, e.kind,
	)
}

// Diagnostic renders the error with the pattern and a caret line pointing
// at the offending span, for terminal display:
//
//	regex translation error:
//	    (?-u)☃
//	         ^
//	error: Unicode not allowed here
//
// Column alignment accounts for the display width of wide characters in
// the pattern. Multi-line patterns fall back to naming the span instead
// of drawing carets.
func (e *Error) Diagnostic() string {
	var b strings.Builder
	b.WriteString("regex translation error:\n")
	if strings.ContainsRune(e.pattern, '\n') {
		fmt.Fprintf(&b, "    in pattern spanning offsets %d to %d\n",
			e.span.Start.Offset, e.span.End.Offset)
		fmt.Fprintf(&b, "error: %s", e.kind)
		return b.String()
	}
	b.WriteString("    ")
	b.WriteString(e.pattern)
	b.WriteString("\n    ")
	start, end := e.span.Start.Offset, e.span.End.Offset
	if start > len(e.pattern) {
		start = len(e.pattern)
	}
	if end > len(e.pattern) {
		end = len(e.pattern)
	}
	pad := runewidth.StringWidth(e.pattern[:start])
	b.WriteString(strings.Repeat(" ", pad))
	marks := runewidth.StringWidth(e.pattern[start:end])
	if marks < 1 {
		marks = 1
	}
	b.WriteString(strings.Repeat("^", marks))
	fmt.Fprintf(&b, "\nerror: %s", e.kind)
	return b.String()
}
