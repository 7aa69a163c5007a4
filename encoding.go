package rbsparse

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Encoding answers the four multibyte-scan probes the lexer needs:
// how wide is the character under the cursor, is it alphabetic, is
// it alphanumeric, is it uppercase. Grounded on
// include/rbs/util/rbs_encoding.h's char_width/alpha_char/alnum_char/
// isupper_char callback table — one Encoding value replaces one of
// the five encoding structs the original links against.
type Encoding interface {
	Name() string
	Multibyte() bool
	// CharWidth returns the byte width of the character starting at
	// b, or 0 if b does not begin with a valid character in this
	// encoding.
	CharWidth(b []byte) int
	AlphaWidth(b []byte) int
	AlnumWidth(b []byte) int
	IsUpper(b []byte) bool
}

// Supported encodings, per §6.
var (
	UTF8        Encoding = utf8Encoding{}
	USASCII     Encoding = asciiEncoding{name: "US-ASCII", strict: true}
	ASCII8BIT   Encoding = asciiEncoding{name: "ASCII-8BIT", strict: false}
	EUCJP       Encoding = eastAsianEncoding{name: "EUC-JP", dec: japanese.EUCJP}
	Windows31J  Encoding = eastAsianEncoding{name: "Windows-31J", dec: japanese.ShiftJIS}
)

// LookupEncoding resolves an encoding by its RBS/Ruby-style name.
func LookupEncoding(name string) (Encoding, bool) {
	switch name {
	case "UTF-8", "":
		return UTF8, true
	case "US-ASCII", "ASCII":
		return USASCII, true
	case "ASCII-8BIT", "BINARY":
		return ASCII8BIT, true
	case "EUC-JP":
		return EUCJP, true
	case "Windows-31J", "CP932", "SJIS":
		return Windows31J, true
	default:
		return nil, false
	}
}

type utf8Encoding struct{}

func (utf8Encoding) Name() string      { return "UTF-8" }
func (utf8Encoding) Multibyte() bool   { return true }

func (utf8Encoding) CharWidth(b []byte) int {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0
	}
	return size
}

func (e utf8Encoding) AlphaWidth(b []byte) int {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0
	}
	if !unicode.IsLetter(r) {
		return 0
	}
	return size
}

func (e utf8Encoding) AlnumWidth(b []byte) int {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	return size
}

func (utf8Encoding) IsUpper(b []byte) bool {
	r, _ := utf8.DecodeRune(b)
	return unicode.IsUpper(r)
}

// asciiEncoding covers both US-ASCII (strict: bytes >= 0x80 are
// invalid) and ASCII-8BIT (every byte is a valid, width-1
// character, but only the ASCII range is alphabetic/alnum/upper).
type asciiEncoding struct {
	name   string
	strict bool
}

func (e asciiEncoding) Name() string    { return e.name }
func (e asciiEncoding) Multibyte() bool { return false }

func (e asciiEncoding) CharWidth(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if e.strict && b[0] >= 0x80 {
		return 0
	}
	return 1
}

func (e asciiEncoding) AlphaWidth(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	c := b[0]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return 1
	}
	return 0
}

func (e asciiEncoding) AlnumWidth(b []byte) int {
	if e.AlphaWidth(b) == 1 {
		return 1
	}
	if len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		return 1
	}
	return 0
}

func (e asciiEncoding) IsUpper(b []byte) bool {
	return len(b) > 0 && b[0] >= 'A' && b[0] <= 'Z'
}

// eastAsianEncoding covers EUC-JP and Windows-31J by delegating
// width/decode probes to golang.org/x/text/encoding/japanese rather
// than hand-rolling the lead/trail byte tables: we try progressively
// longer byte prefixes through the stdlib-compatible decoder and
// take the shortest prefix that decodes cleanly.
type eastAsianEncoding struct {
	name string
	dec  encoding.Encoding
}

func (e eastAsianEncoding) Name() string    { return e.name }
func (e eastAsianEncoding) Multibyte() bool { return true }

const maxEastAsianCharWidth = 3

func (e eastAsianEncoding) decodeRune(b []byte) (rune, int) {
	max := maxEastAsianCharWidth
	if len(b) < max {
		max = len(b)
	}
	for n := 1; n <= max; n++ {
		out, err := e.dec.NewDecoder().Bytes(b[:n])
		if err == nil && len(out) > 0 {
			r, _ := utf8.DecodeRune(out)
			if r != utf8.RuneError {
				return r, n
			}
		}
	}
	return utf8.RuneError, 0
}

func (e eastAsianEncoding) CharWidth(b []byte) int {
	_, n := e.decodeRune(b)
	return n
}

func (e eastAsianEncoding) AlphaWidth(b []byte) int {
	r, n := e.decodeRune(b)
	if n == 0 || !unicode.IsLetter(r) {
		return 0
	}
	return n
}

func (e eastAsianEncoding) AlnumWidth(b []byte) int {
	r, n := e.decodeRune(b)
	if n == 0 || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
		return 0
	}
	return n
}

func (e eastAsianEncoding) IsUpper(b []byte) bool {
	r, n := e.decodeRune(b)
	return n > 0 && unicode.IsUpper(r)
}
