package translate

import "github.com/regexkit/rehir/pkg/ast"

// optBool is a tri-state boolean: unset, false or true. Flags need the
// third state so that an inner group can tell which flags it actually set
// and which it inherited.
type optBool uint8

const (
	optUnset optBool = iota
	optFalse
	optTrue
)

func optOf(yes bool) optBool {
	if yes {
		return optTrue
	}
	return optFalse
}

func (o optBool) or(def bool) bool {
	switch o {
	case optTrue:
		return true
	case optFalse:
		return false
	}
	return def
}

// flags is the translator's view of the active flags at a point in the
// pattern. Each flag is tri-state; accessors apply the defaults, of which
// only unicode defaults to on.
type flags struct {
	caseInsensitive   optBool
	multiLine         optBool
	dotMatchesNewLine optBool
	swapGreed         optBool
	unicode           optBool
}

// flagsFromAst reads a flag group like ims-U into a flags value. Flags
// following the negation operator are set to false. The x flag only
// affects parsing and is ignored here.
func flagsFromAst(astFlags *ast.Flags) flags {
	var f flags
	enable := optTrue
	for _, item := range astFlags.Items {
		switch k := item.Kind.(type) {
		case ast.Negation:
			enable = optFalse
		case ast.Flag:
			switch k {
			case ast.FlagCaseInsensitive:
				f.caseInsensitive = enable
			case ast.FlagMultiLine:
				f.multiLine = enable
			case ast.FlagDotMatchesNewLine:
				f.dotMatchesNewLine = enable
			case ast.FlagSwapGreed:
				f.swapGreed = enable
			case ast.FlagUnicode:
				f.unicode = enable
			}
		}
	}
	return f
}

// merge fills every unset flag from previous, in place.
func (f *flags) merge(previous flags) {
	if f.caseInsensitive == optUnset {
		f.caseInsensitive = previous.caseInsensitive
	}
	if f.multiLine == optUnset {
		f.multiLine = previous.multiLine
	}
	if f.dotMatchesNewLine == optUnset {
		f.dotMatchesNewLine = previous.dotMatchesNewLine
	}
	if f.swapGreed == optUnset {
		f.swapGreed = previous.swapGreed
	}
	if f.unicode == optUnset {
		f.unicode = previous.unicode
	}
}

func (f flags) isCaseInsensitive() bool   { return f.caseInsensitive.or(false) }
func (f flags) isMultiLine() bool         { return f.multiLine.or(false) }
func (f flags) isDotMatchesNewLine() bool { return f.dotMatchesNewLine.or(false) }
func (f flags) isSwapGreed() bool         { return f.swapGreed.or(false) }
func (f flags) isUnicode() bool           { return f.unicode.or(true) }
