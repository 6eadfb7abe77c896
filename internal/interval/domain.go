package interval

const (
	surrogateMin rune = 0xD800
	surrogateMax rune = 0xDFFF
	runeMax      rune = 0x10FFFF
)

// Domain describes the full span of a bound type and how to step across it.
// Inc is never called on Max and Dec is never called on Min.
//
// Implementations must be stateless values so that two sets over the same
// domain compare equal under reflection-based equality.
type Domain[B Bound] interface {
	Min() B
	Max() B
	Inc(B) B
	Dec(B) B
}

type runeDomain struct{}

func (runeDomain) Min() rune { return 0 }
func (runeDomain) Max() rune { return runeMax }

func (runeDomain) Inc(r rune) rune {
	if r == surrogateMin-1 {
		return surrogateMax + 1
	}
	return r + 1
}

func (runeDomain) Dec(r rune) rune {
	if r == surrogateMax+1 {
		return surrogateMin - 1
	}
	return r - 1
}

type byteDomain struct{}

func (byteDomain) Min() uint8        { return 0 }
func (byteDomain) Max() uint8        { return 0xFF }
func (byteDomain) Inc(b uint8) uint8 { return b + 1 }
func (byteDomain) Dec(b uint8) uint8 { return b - 1 }

// Runes is the Unicode scalar value domain, U+0000 through U+10FFFF.
// Stepping skips the surrogate gap so that negation and difference never
// produce ranges starting or ending inside it.
func Runes() Domain[rune] { return runeDomain{} }

// Bytes is the raw byte domain, 0x00 through 0xFF.
func Bytes() Domain[uint8] { return byteDomain{} }
