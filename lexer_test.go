package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(toks []Token) []TokenType {
	var out []TokenType
	for _, tok := range toks {
		out = append(out, tok.Type)
	}
	return out
}

func TestLexSimpleClassInstanceType(t *testing.T) {
	toks := Lex([]byte("String"), len("String"), UTF8)
	require.Len(t, toks, 2)
	assert.Equal(t, UIDENT, toks[0].Type)
	assert.Equal(t, "String", toks[0].Text)
	assert.Equal(t, EOF, toks[1].Type)
}

func TestLexArrayWithArgsRange(t *testing.T) {
	src := "Array[Integer]"
	toks := Lex([]byte(src), len(src), UTF8)
	assert.Equal(t, []TokenType{UIDENT, LBRACKET, UIDENT, RBRACKET, EOF}, tokenTypes(toks))
	assert.Equal(t, 0, toks[0].Range.Start.BytePos)
	assert.Equal(t, 14, toks[3].Range.End.BytePos)
}

func TestLexMethodTypeArrow(t *testing.T) {
	toks := Lex([]byte("() -> void"), len("() -> void"), UTF8)
	assert.Equal(t, []TokenType{LPAREN, RPAREN, TRIVIA, ARROW, TRIVIA, KEYWORD_VOID, EOF}, tokenTypes(toks))
}

func TestLexKeywordVsIdentifier(t *testing.T) {
	toks := Lex([]byte("void voidish"), len("void voidish"), UTF8)
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, KEYWORD_VOID, toks[0].Type)
	assert.Equal(t, LIDENT, toks[2].Type)
}

func TestLexLineCommentVsTrailingComment(t *testing.T) {
	toks := Lex([]byte("# leading\nfoo # trailing"), len("# leading\nfoo # trailing"), UTF8)
	assert.Equal(t, LINECOMMENT, toks[0].Type)
	var sawTrailing bool
	for _, tok := range toks {
		if tok.Type == COMMENT {
			sawTrailing = true
		}
	}
	assert.True(t, sawTrailing)
}

func TestLexSymbolForms(t *testing.T) {
	toks := Lex([]byte(`:foo :"bar" :'baz'`), len(`:foo :"bar" :'baz'`), UTF8)
	var kinds []TokenType
	for _, tok := range toks {
		if tok.Type != TRIVIA {
			kinds = append(kinds, tok.Type)
		}
	}
	assert.Equal(t, []TokenType{SYMBOL, DQSYMBOL, SQSYMBOL, EOF}, kinds)
}

func TestLexInstanceAndClassVariables(t *testing.T) {
	toks := Lex([]byte("@foo @@bar $baz"), len("@foo @@bar $baz"), UTF8)
	var kinds []TokenType
	for _, tok := range toks {
		if tok.Type != TRIVIA {
			kinds = append(kinds, tok.Type)
		}
	}
	assert.Equal(t, []TokenType{AIDENT, A2IDENT, GIDENT, EOF}, kinds)
}

func TestLexOperatorMethodName(t *testing.T) {
	toks := Lex([]byte("+"), 1, UTF8)
	assert.Equal(t, OPERATOR, toks[0].Type)
	assert.Equal(t, "+", toks[0].Text)
}

func TestLexAnnotation(t *testing.T) {
	src := "%a{some text}"
	toks := Lex([]byte(src), len(src), UTF8)
	assert.Equal(t, ANNOTATION, toks[0].Type)
	assert.Equal(t, src, toks[0].Text)
}

func TestLexWholeStreamEndsInEOF(t *testing.T) {
	src := "class Foo[A] < Bar[A]\nend"
	toks := Lex([]byte(src), len(src), UTF8)
	assert.Equal(t, EOF, toks[len(toks)-1].Type)
	assert.Equal(t, len(src), toks[len(toks)-1].Range.Start.BytePos)
}
