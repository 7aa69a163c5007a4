package rbsparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rangeShape strips a Token down to the two fields the round-trip
// property cares about, so cmp.Diff reports a readable mismatch
// instead of dumping the full Token (which also carries lexeme text
// the property doesn't constrain).
type rangeShape struct {
	Type  TokenType
	Range Range
}

func shapes(toks []Token) []rangeShape {
	out := make([]rangeShape, len(toks))
	for i, tok := range toks {
		out[i] = rangeShape{Type: tok.Type, Range: tok.Range}
	}
	return out
}

// TestLexThenParseRoundTrip checks the §8 universal property that
// re-lexing the exact source a successful parse consumed produces the
// same token types and ranges the parser itself walked over, modulo
// the trivia the parser's advance() filters out.
func TestLexThenParseRoundTrip(t *testing.T) {
	src := "Array[Integer]"
	typ, err := ParseType([]byte(src), 0, len(src), nil, true, defaultOptions())
	require.NoError(t, err)

	toks := Lex([]byte(src), len(src), UTF8)
	var significant []Token
	for _, tok := range toks {
		if tok.Type != TRIVIA && tok.Type != COMMENT && tok.Type != LINECOMMENT {
			significant = append(significant, tok)
		}
	}

	want := []rangeShape{
		{UIDENT, Range{Start: Position{BytePos: 0, Line: 0, Column: 0}, End: Position{BytePos: 5, Line: 0, Column: 5}}},
		{LBRACKET, Range{Start: Position{BytePos: 5, Line: 0, Column: 5}, End: Position{BytePos: 6, Line: 0, Column: 6}}},
		{UIDENT, Range{Start: Position{BytePos: 6, Line: 0, Column: 6}, End: Position{BytePos: 13, Line: 0, Column: 13}}},
		{RBRACKET, Range{Start: Position{BytePos: 13, Line: 0, Column: 13}, End: Position{BytePos: 14, Line: 0, Column: 14}}},
		{EOF, Range{Start: Position{BytePos: 14, Line: 0, Column: 14}, End: Position{BytePos: 14, Line: 0, Column: 14}}},
	}
	// CharPos tracks BytePos exactly for pure-ASCII input; fill it in
	// rather than hand-duplicating every literal above.
	for i := range want {
		want[i].Range.Start.CharPos = want[i].Range.Start.BytePos
		want[i].Range.End.CharPos = want[i].Range.End.BytePos
	}

	if diff := cmp.Diff(want, shapes(significant)); diff != "" {
		t.Fatalf("lex(%q) token stream diverged from what the parser walked over (-want +got):\n%s", src, diff)
	}

	last := significant[len(significant)-1]
	require.Equal(t, typ.Loc().Range.Start.BytePos, significant[0].Range.Start.BytePos)
	require.Equal(t, typ.Loc().Range.End.BytePos, last.Range.Start.BytePos)
}

// TestRangeContainmentHoldsForNestedArgs checks that a composite
// type's range always contains each of its argument ranges.
func TestRangeContainmentHoldsForNestedArgs(t *testing.T) {
	src := "Hash[Symbol, Array[Integer]]"
	typ, err := ParseType([]byte(src), 0, len(src), nil, true, defaultOptions())
	require.NoError(t, err)

	ci := typ.(*ClassInstanceType)
	for _, arg := range ci.Args {
		assert.True(t, typ.Loc().Range.Contains(arg.Loc().Range))
	}
}

// TestDuplicateKeywordParamRejected covers a keyword name repeated
// within the required-keyword phase; the cross-phase case is
// TestDuplicateKeywordAcrossPhasesRejected below.
func TestDuplicateKeywordParamRejected(t *testing.T) {
	_, err := ParseMethodType([]byte("(foo: Integer, foo: String) -> void"), 0,
		len("(foo: Integer, foo: String) -> void"), nil, true, defaultOptions())
	assert.Error(t, err)
}

func TestDuplicateKeywordAcrossPhasesRejected(t *testing.T) {
	src := "(foo: Integer, ?foo: String) -> void"
	_, err := ParseMethodType([]byte(src), 0, len(src), nil, true, defaultOptions())
	assert.Error(t, err, "foo reused across required-kw and optional-kw phases must still collide")
}

// TestTypeParamDefaultMonotonicity is the property-level twin of
// TestParseTypeParamsDefaultMonotonicityViolation in api_test.go,
// checked directly against the parser entry point used by class/module
// declarations.
func TestTypeParamDefaultMonotonicity(t *testing.T) {
	ok := "[T = Integer, U = String]"
	_, err := ParseTypeParams([]byte(ok), 0, len(ok), true, defaultOptions())
	assert.NoError(t, err)

	bad := "[T = Integer, U]"
	_, err = ParseTypeParams([]byte(bad), 0, len(bad), true, defaultOptions())
	assert.Error(t, err)
}

// TestUnescapeIdempotentOnPlainText is the parser-level instance of
// the unescape-idempotence property: text with no backslashes passes
// through a string literal unchanged.
func TestUnescapeIdempotentOnPlainText(t *testing.T) {
	src := `"just plain text"`
	typ, err := ParseType([]byte(src), 0, len(src), nil, true, defaultOptions())
	require.NoError(t, err)
	lit := typ.(*LiteralType)
	assert.Equal(t, "just plain text", lit.Text)
}

func TestConstantPoolStabilityAcrossParse(t *testing.T) {
	src := "Foo | Foo"
	typ, err := ParseType([]byte(src), 0, len(src), nil, true, defaultOptions())
	require.NoError(t, err)
	union := typ.(*UnionType)
	a := union.Members[0].(*ClassInstanceType)
	b := union.Members[1].(*ClassInstanceType)
	assert.Equal(t, a.Name.Name, b.Name.Name, "two occurrences of the same identifier must share one constant id")
}

func TestMalformedInputProducesSyntaxError(t *testing.T) {
	_, err := ParseType([]byte("["), 0, 1, nil, true, defaultOptions())
	require.Error(t, err)
	_, ok := err.(*SyntaxError)
	assert.True(t, ok)
}

func TestCommentAttachedToFollowingClassDecl(t *testing.T) {
	src := "# a doc comment\nclass Foo\nend\n"
	sig, err := ParseSignature([]byte(src), 0, len(src), defaultOptions())
	require.NoError(t, err)
	require.Len(t, sig.Decls, 1)
	cd := sig.Decls[0].(*ClassDecl)
	require.NotNil(t, cd.Comment)
	assert.Equal(t, "# a doc comment", cd.Comment.Comment.Lines[0].Text)
}

// TestRecordWithMultipleKeywordKeysParses guards against collapsing
// every keyword-style record key to the same identity: a SymbolNode's
// String() is always "<symbol>", so dedup must compare the interned
// name, not the debug string.
func TestRecordWithMultipleKeywordKeysParses(t *testing.T) {
	src := "{ name: String, age: Integer }"
	typ, err := ParseType([]byte(src), 0, len(src), nil, true, defaultOptions())
	require.NoError(t, err)
	rec := typ.(*RecordType)
	require.Len(t, rec.Fields, 2)
}

func TestRecordWithGenuineDuplicateKeywordKeyRejected(t *testing.T) {
	src := "{ name: String, name: Integer }"
	_, err := ParseType([]byte(src), 0, len(src), nil, true, defaultOptions())
	assert.Error(t, err)
}

func TestRecordWithGenuineDuplicateSymbolKeyRejected(t *testing.T) {
	src := `{ :foo => String, :foo => Integer }`
	_, err := ParseType([]byte(src), 0, len(src), nil, true, defaultOptions())
	assert.Error(t, err)
}

// TestOptionalKeywordParamParses covers a leading `?` keyword param,
// which must not be captured by the optional-positional branch before
// it gets a chance to see the `ident :` lookahead.
func TestOptionalKeywordParamParses(t *testing.T) {
	src := "(?x: Integer) -> void"
	mt, err := ParseMethodType([]byte(src), 0, len(src), nil, true, defaultOptions())
	require.NoError(t, err)
	require.Empty(t, mt.Fn.Optional)
	require.Len(t, mt.Fn.OptionalKw, 1)
}

// TestSymbolLiteralTextDropsColonAndQuotes covers all three symbol
// forms: the `:` marker and, for the quoted forms, the surrounding
// quotes must not survive into LiteralType.Text.
func TestSymbolLiteralTextDropsColonAndQuotes(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{":foo", "foo"},
		{`:"bar baz"`, "bar baz"},
		{`:'baz'`, "baz"},
	} {
		typ, err := ParseType([]byte(tc.src), 0, len(tc.src), nil, true, defaultOptions())
		require.NoError(t, err)
		lit := typ.(*LiteralType)
		assert.Equal(t, LiteralSymbol, lit.Kind)
		assert.Equal(t, tc.want, lit.Text)
	}
}

// TestArrayArgsChildRange is end-to-end scenario §8.2: the
// class-instance node's "args" Location child must cover exactly the
// `[Integer]` span. It drives the Parser directly (rather than the
// ParseType wrapper) so the test can resolve the "args" child name
// against the same constant pool the parser interned it into.
func TestArrayArgsChildRange(t *testing.T) {
	src := "Array[Integer]"
	p := NewParser([]byte(src), 0, len(src), defaultOptions(), nil)
	typ := p.parseType()
	require.True(t, p.ok())

	ci := typ.(*ClassInstanceType)
	argsID := p.pool.Find([]byte("args"))
	require.NotEqual(t, ConstantIDUnset, argsID)

	rg, ok := ci.Loc().Child(argsID)
	require.True(t, ok)
	assert.Equal(t, 5, rg.Start.BytePos)
	assert.Equal(t, 14, rg.End.BytePos)
}
