package translate

import (
	"github.com/regexkit/rehir/pkg/ast"
	"github.com/regexkit/rehir/pkg/hir"
)

// asciiRanges returns the character ranges of a POSIX ASCII class.
func asciiRanges(kind ast.ClassAsciiKind) [][2]rune {
	switch kind {
	case ast.AsciiAlnum:
		return [][2]rune{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}}
	case ast.AsciiAlpha:
		return [][2]rune{{'A', 'Z'}, {'a', 'z'}}
	case ast.AsciiAscii:
		return [][2]rune{{0x00, 0x7F}}
	case ast.AsciiBlank:
		return [][2]rune{{'\t', '\t'}, {' ', ' '}}
	case ast.AsciiCntrl:
		return [][2]rune{{0x00, 0x1F}, {0x7F, 0x7F}}
	case ast.AsciiDigit:
		return [][2]rune{{'0', '9'}}
	case ast.AsciiGraph:
		return [][2]rune{{'!', '~'}}
	case ast.AsciiLower:
		return [][2]rune{{'a', 'z'}}
	case ast.AsciiPrint:
		return [][2]rune{{' ', '~'}}
	case ast.AsciiPunct:
		return [][2]rune{{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}}
	case ast.AsciiSpace:
		return [][2]rune{
			{'\t', '\t'}, {'\n', '\n'}, {0x0B, 0x0B},
			{0x0C, 0x0C}, {'\r', '\r'}, {' ', ' '},
		}
	case ast.AsciiUpper:
		return [][2]rune{{'A', 'Z'}}
	case ast.AsciiWord:
		return [][2]rune{{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'}}
	case ast.AsciiXdigit:
		return [][2]rune{{'0', '9'}, {'A', 'F'}, {'a', 'f'}}
	}
	return nil
}

// asciiClassBytes builds a byte class from a POSIX ASCII class.
func asciiClassBytes(kind ast.ClassAsciiKind) *hir.ClassBytes {
	cls := hir.NewClassBytes()
	for _, r := range asciiRanges(kind) {
		cls.Push(hir.ClassBytesRange{Start: uint8(r[0]), End: uint8(r[1])})
	}
	return cls
}
