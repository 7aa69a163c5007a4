package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"UTF-8", "", "US-ASCII", "ASCII", "ASCII-8BIT", "BINARY", "EUC-JP", "Windows-31J", "CP932", "SJIS"} {
		_, ok := LookupEncoding(name)
		assert.Truef(t, ok, "expected %q to resolve", name)
	}
	_, ok := LookupEncoding("latin1")
	assert.False(t, ok)
}

func TestUTF8CharWidth(t *testing.T) {
	assert.Equal(t, 1, UTF8.CharWidth([]byte("a")))
	assert.Equal(t, 2, UTF8.CharWidth([]byte("é"))) // é
	assert.Equal(t, 3, UTF8.CharWidth([]byte("あ"))) // あ
}

func TestASCIIStrictRejectsHighBytes(t *testing.T) {
	require.Equal(t, 0, USASCII.CharWidth([]byte{0x80}))
	require.Equal(t, 1, ASCII8BIT.CharWidth([]byte{0x80}))
}

func TestASCII8BitAlphaOnlyInASCIIRange(t *testing.T) {
	assert.Equal(t, 1, ASCII8BIT.AlphaWidth([]byte("Z")))
	assert.Equal(t, 0, ASCII8BIT.AlphaWidth([]byte{0x80}))
}

func TestEUCJPDecodesMultibyte(t *testing.T) {
	// 0xA4 0xA2 is the two-byte EUC-JP encoding of hiragana "あ".
	width := EUCJP.CharWidth([]byte{0xa4, 0xa2}) // EUC-JP hiragana "あ"
	assert.Equal(t, 2, width)
}
