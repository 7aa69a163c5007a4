package rbsparse

// TokenType is the closed set of lexical token kinds the lexer can
// produce, matching §6 of the specification (and rbs_extension's
// RBSTokenType enum it was distilled from) one-to-one.
type TokenType int

const (
	EOF TokenType = iota
	ErrorToken

	// Punctuation
	LPAREN   // (
	RPAREN   // )
	COLON    // :
	COLON2   // ::
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }
	HAT      // ^
	ARROW    // ->
	FATARROW // =>
	COMMA    // ,
	BAR      // |
	AMP      // &
	STAR     // *
	STAR2    // **
	DOT      // .
	DOT3     // ...
	BANG     // !
	QUESTION // ?
	LT       // <
	EQ       // =
	AREF_OPR // []

	// Keywords
	KEYWORD_ALIAS
	KEYWORD_ATTRACCESSOR
	KEYWORD_ATTRREADER
	KEYWORD_ATTRWRITER
	KEYWORD_BOOL
	KEYWORD_BOT
	KEYWORD_CLASS
	KEYWORD_DEF
	KEYWORD_END
	KEYWORD_EXTEND
	KEYWORD_FALSE
	KEYWORD_IN
	KEYWORD_INCLUDE
	KEYWORD_INSTANCE
	KEYWORD_INTERFACE
	KEYWORD_MODULE
	KEYWORD_NIL
	KEYWORD_OUT
	KEYWORD_PREPEND
	KEYWORD_PRIVATE
	KEYWORD_PUBLIC
	KEYWORD_SELF
	KEYWORD_SINGLETON
	KEYWORD_TOP
	KEYWORD_TRUE
	KEYWORD_TYPE
	KEYWORD_UNCHECKED
	KEYWORD_UNTYPED
	KEYWORD_VOID
	KEYWORD_USE
	KEYWORD_AS
	KEYWORD_TODO

	// Identifiers
	LIDENT    // lower_case
	UIDENT    // UpperCase
	ULIDENT   // _UpperCase
	ULLIDENT  // _lower_case
	GIDENT    // $global
	AIDENT    // @ivar
	A2IDENT   // @@cvar
	BANGIDENT // trailing !
	EQIDENT   // trailing =
	QIDENT    // `quoted`
	OPERATOR  // operator method name, e.g. `+`, `[]=`

	// Literals
	INTEGER
	DQSTRING
	SQSTRING
	SYMBOL
	DQSYMBOL
	SQSYMBOL

	// Trivia
	COMMENT
	LINECOMMENT
	TRIVIA

	// Misc
	ANNOTATION
)

var tokenTypeNames = map[TokenType]string{
	EOF: "EOF", ErrorToken: "ErrorToken",

	LPAREN: "(", RPAREN: ")", COLON: ":", COLON2: "::", LBRACKET: "[", RBRACKET: "]",
	LBRACE: "{", RBRACE: "}", HAT: "^", ARROW: "->", FATARROW: "=>", COMMA: ",",
	BAR: "|", AMP: "&", STAR: "*", STAR2: "**", DOT: ".", DOT3: "...", BANG: "!",
	QUESTION: "?", LT: "<", EQ: "=", AREF_OPR: "[]",

	KEYWORD_ALIAS: "alias", KEYWORD_ATTRACCESSOR: "attr_accessor", KEYWORD_ATTRREADER: "attr_reader",
	KEYWORD_ATTRWRITER: "attr_writer", KEYWORD_BOOL: "bool", KEYWORD_BOT: "bot",
	KEYWORD_CLASS: "class", KEYWORD_DEF: "def", KEYWORD_END: "end", KEYWORD_EXTEND: "extend",
	KEYWORD_FALSE: "false", KEYWORD_IN: "in", KEYWORD_INCLUDE: "include", KEYWORD_INSTANCE: "instance",
	KEYWORD_INTERFACE: "interface", KEYWORD_MODULE: "module", KEYWORD_NIL: "nil", KEYWORD_OUT: "out",
	KEYWORD_PREPEND: "prepend", KEYWORD_PRIVATE: "private", KEYWORD_PUBLIC: "public", KEYWORD_SELF: "self",
	KEYWORD_SINGLETON: "singleton", KEYWORD_TOP: "top", KEYWORD_TRUE: "true", KEYWORD_TYPE: "type",
	KEYWORD_UNCHECKED: "unchecked", KEYWORD_UNTYPED: "untyped", KEYWORD_VOID: "void",
	KEYWORD_USE: "use", KEYWORD_AS: "as", KEYWORD_TODO: "__todo__",

	LIDENT: "LIDENT", UIDENT: "UIDENT", ULIDENT: "ULIDENT", ULLIDENT: "ULLIDENT",
	GIDENT: "GIDENT", AIDENT: "AIDENT", A2IDENT: "A2IDENT", BANGIDENT: "BANGIDENT",
	EQIDENT: "EQIDENT", QIDENT: "QIDENT", OPERATOR: "OPERATOR",

	INTEGER: "INTEGER", DQSTRING: "DQSTRING", SQSTRING: "SQSTRING", SYMBOL: "SYMBOL",
	DQSYMBOL: "DQSYMBOL", SQSYMBOL: "SQSYMBOL",

	COMMENT: "COMMENT", LINECOMMENT: "LINECOMMENT", TRIVIA: "TRIVIA",

	ANNOTATION: "ANNOTATION",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// keywords maps a lower-case identifier lexeme to its keyword token
// type. Only lower-case-shaped text (LIDENT-shaped, or `_`-prefixed
// lower-case for `__todo__`) is ever looked up here — a keyword never
// matches an UIDENT, GIDENT, etc.
var keywords = map[string]TokenType{
	"alias": KEYWORD_ALIAS, "attr_accessor": KEYWORD_ATTRACCESSOR, "attr_reader": KEYWORD_ATTRREADER,
	"attr_writer": KEYWORD_ATTRWRITER, "bool": KEYWORD_BOOL, "bot": KEYWORD_BOT, "class": KEYWORD_CLASS,
	"def": KEYWORD_DEF, "end": KEYWORD_END, "extend": KEYWORD_EXTEND, "false": KEYWORD_FALSE,
	"in": KEYWORD_IN, "include": KEYWORD_INCLUDE, "instance": KEYWORD_INSTANCE, "interface": KEYWORD_INTERFACE,
	"module": KEYWORD_MODULE, "nil": KEYWORD_NIL, "out": KEYWORD_OUT, "prepend": KEYWORD_PREPEND,
	"private": KEYWORD_PRIVATE, "public": KEYWORD_PUBLIC, "self": KEYWORD_SELF, "singleton": KEYWORD_SINGLETON,
	"top": KEYWORD_TOP, "true": KEYWORD_TRUE, "type": KEYWORD_TYPE, "unchecked": KEYWORD_UNCHECKED,
	"untyped": KEYWORD_UNTYPED, "void": KEYWORD_VOID, "use": KEYWORD_USE, "as": KEYWORD_AS,
	"__todo__": KEYWORD_TODO,
}

// Token is one lexical unit with its source range.
type Token struct {
	Type  TokenType
	Range Range
	// Text is the raw lexeme, sliced from the source buffer (or, for
	// a small number of synthetic tokens, absent).
	Text string
}
