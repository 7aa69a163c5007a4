package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescapeStringSimpleTable(t *testing.T) {
	assert.Equal(t, "\n\t\\\"", unescapeString(`\n\t\\\"`, true, true))
}

func TestUnescapeStringOctal(t *testing.T) {
	assert.Equal(t, "A", unescapeString(`\101`, true, true))
}

func TestUnescapeStringHex(t *testing.T) {
	assert.Equal(t, "A", unescapeString(`\x41`, true, true))
	assert.Equal(t, "\np", unescapeString(`\xap`, true, true), "stops at one hex digit when the next byte isn't hex")
}

func TestUnescapeStringUnicodeExpandsOnlyForUTF8(t *testing.T) {
	assert.Equal(t, "A", unescapeString("\\u0041", true, true))
	assert.Equal(t, "\\u0041", unescapeString("\\u0041", true, false), "non-unicode encodings keep \\u escapes verbatim")
}

func TestUnescapeStringSingleQuoteOnlyEscapesBackslashAndQuote(t *testing.T) {
	assert.Equal(t, `a\nb`, unescapeString(`a\nb`, false, true), "single-quote grammar doesn't interpret \\n")
	assert.Equal(t, `a'b\c`, unescapeString(`a\'b\c`, false, true))
}

func TestUnescapeStringNoBackslashIsIdempotent(t *testing.T) {
	plain := "just plain text with no escapes at all"
	assert.Equal(t, plain, unescapeString(plain, true, true))
}

func TestUnquoteStripsSurroundingQuotes(t *testing.T) {
	assert.Equal(t, "hello\n", Unquote(`"hello\n"`, UTF8))
	assert.Equal(t, `hello\n`, Unquote(`'hello\n'`, UTF8))
}

func TestUnquoteSymbolDropsLeadingColonAndQuotes(t *testing.T) {
	assert.Equal(t, "foo", UnquoteSymbol(":foo", UTF8))
	assert.Equal(t, "bar baz", UnquoteSymbol(`:"bar baz"`, UTF8))
	assert.Equal(t, `bar\n`, UnquoteSymbol(`:'bar\n'`, UTF8), "single-quoted symbol escapes don't interpret \\n")
	assert.Equal(t, "bar\n", UnquoteSymbol(`:"bar\n"`, UTF8))
}
