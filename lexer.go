package rbsparse

// annotationDelims are the five accepted paired delimiters for a
// `%a{...}`-style annotation.
var annotationDelims = map[byte]byte{
	'{': '}', '(': ')', '[': ']', '<': '>', '|': '|',
}

// Lexer tokenizes RBS source text. It tracks byte/char/line/column
// position incrementally, one character at a time, using an ASCII
// fast path and falling back to the active Encoding's char-width
// probe for anything above 0x7F.
type Lexer struct {
	source []byte
	end    int
	enc    Encoding

	current Position
	start   Position

	currentByte  byte
	currentWidth int

	firstTokenOfLine bool
}

// NewLexer creates a lexer over source[start:end] using enc for
// multibyte scanning. Position tracking begins at byte_pos == start,
// char_pos/line/column == 0 relative to that offset.
func NewLexer(source []byte, start, end int, enc Encoding) *Lexer {
	if enc == nil {
		enc = UTF8
	}
	lx := &Lexer{source: source, end: end, enc: enc, firstTokenOfLine: true}
	lx.current.BytePos = start
	lx.start.BytePos = start
	lx.loadCurrent()
	return lx
}

func (lx *Lexer) loadCurrent() {
	if lx.current.BytePos >= lx.end {
		lx.currentWidth = 0
		return
	}
	b := lx.source[lx.current.BytePos]
	if b < 128 {
		lx.currentByte = b
		lx.currentWidth = 1
		return
	}
	w := lx.enc.CharWidth(lx.source[lx.current.BytePos:lx.end])
	if w == 0 {
		w = 1
	}
	lx.currentByte = b
	lx.currentWidth = w
}

func (lx *Lexer) atEOF() bool { return lx.current.BytePos >= lx.end }

// peek returns the current byte without advancing, or 0 at EOF.
func (lx *Lexer) peek() byte {
	if lx.atEOF() {
		return 0
	}
	return lx.currentByte
}

// peekAt returns the byte offset bytes ahead of the current position
// without advancing, or 0 past the end. It is only used for
// single-byte ASCII lookahead (e.g. telling a negative integer such
// as "-1" from a bare "-").
func (lx *Lexer) peekAt(offset int) byte {
	p := lx.current.BytePos + offset
	if p < 0 || p >= lx.end {
		return 0
	}
	return lx.source[p]
}

// advance consumes the current character, updating byte/char/line/
// column position exactly like rbs_skip: a newline resets column and
// sets firstTokenOfLine; anything else just advances the column.
func (lx *Lexer) advance() {
	if lx.atEOF() {
		return
	}
	width := lx.currentWidth
	wasNewline := lx.currentByte == '\n' && width == 1

	lx.current.BytePos += width
	lx.current.CharPos++
	if wasNewline {
		lx.current.Line++
		lx.current.Column = 0
		lx.firstTokenOfLine = true
	} else {
		lx.current.Column++
	}
	lx.loadCurrent()
}

func (lx *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		lx.advance()
	}
}

// emit closes out the token started at lx.start, advancing start to
// the current position. Every token except whitespace TRIVIA clears
// firstTokenOfLine (comment tokens included), matching rbs_next_token.
func (lx *Lexer) emit(t TokenType) Token {
	rg := Range{Start: lx.start, End: lx.current}
	tok := Token{Type: t, Range: rg, Text: string(lx.source[rg.Start.BytePos:rg.End.BytePos])}
	lx.start = lx.current
	if t != TRIVIA {
		lx.firstTokenOfLine = false
	}
	return tok
}

func isWhitespaceByte(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// Next scans and returns the next token, including TRIVIA/COMMENT
// tokens; callers that want the filtered stream should route through
// Parser.advance instead.
func (lx *Lexer) Next() Token {
	if lx.atEOF() {
		return lx.emit(EOF)
	}

	c := lx.peek()

	switch {
	case isWhitespaceByte(c):
		for !lx.atEOF() && isWhitespaceByte(lx.peek()) {
			lx.advance()
		}
		return lx.emit(TRIVIA)

	case c == '#':
		isLine := lx.firstTokenOfLine
		for !lx.atEOF() && lx.peek() != '\n' {
			lx.advance()
		}
		if isLine {
			return lx.emit(LINECOMMENT)
		}
		return lx.emit(COMMENT)

	case c == '%' && lx.peekAt(1) == 'a':
		return lx.scanAnnotation()

	case c == '"':
		return lx.scanQuoted('"', DQSTRING)

	case c == '\'':
		return lx.scanQuoted('\'', SQSTRING)

	case c == '`':
		return lx.scanQuoted('`', QIDENT)

	case c == ':':
		return lx.scanColonOrSymbol()

	case c == '$':
		lx.advance()
		lx.scanIdentTail()
		return lx.emit(GIDENT)

	case c == '@':
		lx.advance()
		if lx.peek() == '@' {
			lx.advance()
			lx.scanIdentTail()
			return lx.emit(A2IDENT)
		}
		lx.scanIdentTail()
		return lx.emit(AIDENT)

	case c >= '0' && c <= '9':
		return lx.scanInteger()

	case c == '-' && lx.peekAt(1) >= '0' && lx.peekAt(1) <= '9':
		lx.advance()
		return lx.scanInteger()

	case isIdentStart(c):
		return lx.scanIdent()

	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) scanIdentTail() {
	for !lx.atEOF() && isIdentCont(lx.peek()) {
		lx.advance()
	}
}

// scanIdent classifies an identifier by its leading characters
// (lower/upper/`_`+upper/`_`+lower) and trailing `!`/`=`, and
// recognizes keywords among lower-case-shaped identifiers (including
// the `_`-prefixed `__todo__`).
func (lx *Lexer) scanIdent() Token {
	first := lx.peek()
	lx.advance()

	if first == '_' {
		if !lx.atEOF() && lx.peek() >= 'A' && lx.peek() <= 'Z' {
			lx.scanIdentTail()
			return lx.finishIdent(ULIDENT)
		}
		lx.scanIdentTail()
		if kw, ok := keywords[string(lx.source[lx.start.BytePos:lx.current.BytePos])]; ok {
			return lx.emit(kw)
		}
		return lx.finishIdent(ULLIDENT)
	}

	lx.scanIdentTail()

	if first >= 'A' && first <= 'Z' {
		return lx.finishIdent(UIDENT)
	}

	// Lower-case identifier: trailing `!`/`=` override the base
	// classification, then check the keyword table.
	if !lx.atEOF() && (lx.peek() == '!' || lx.peek() == '=') {
		bang := lx.peek() == '!'
		lx.advance()
		if bang {
			return lx.finishIdent(BANGIDENT)
		}
		return lx.finishIdent(EQIDENT)
	}

	rg := Range{Start: lx.start, End: lx.current}
	text := string(lx.source[rg.Start.BytePos:rg.End.BytePos])
	if kw, ok := keywords[text]; ok {
		lx.start = lx.current
		lx.firstTokenOfLine = false
		return Token{Type: kw, Range: rg, Text: text}
	}
	return lx.finishIdent(LIDENT)
}

func (lx *Lexer) finishIdent(t TokenType) Token { return lx.emit(t) }

func (lx *Lexer) scanInteger() Token {
	for !lx.atEOF() && (lx.peek() >= '0' && lx.peek() <= '9' || lx.peek() == '_') {
		lx.advance()
	}
	return lx.emit(INTEGER)
}

// scanQuoted consumes a quote-delimited literal, honoring
// backslash-escaped quotes without interpreting the escape (that's
// unescapeString's job, applied later by the parser on the raw
// lexeme).
func (lx *Lexer) scanQuoted(quote byte, t TokenType) Token {
	lx.advance() // opening quote
	for !lx.atEOF() {
		c := lx.peek()
		if c == '\\' {
			lx.advance()
			if !lx.atEOF() {
				lx.advance()
			}
			continue
		}
		if c == quote {
			lx.advance()
			break
		}
		lx.advance()
	}
	return lx.emit(t)
}

// scanColonOrSymbol disambiguates `:`, `::`, and the three symbol
// forms `:foo`, `:"foo"`, `:'foo'`.
func (lx *Lexer) scanColonOrSymbol() Token {
	lx.advance()
	if lx.peek() == ':' {
		lx.advance()
		return lx.emit(COLON2)
	}
	switch lx.peek() {
	case '"':
		start := lx.start
		lx.scanQuoted('"', 0)
		lx.start = start
		return lx.emit(DQSYMBOL)
	case '\'':
		start := lx.start
		lx.scanQuoted('\'', 0)
		lx.start = start
		return lx.emit(SQSYMBOL)
	default:
		if isIdentStart(lx.peek()) {
			lx.scanIdentTail()
			if lx.peek() == '!' || lx.peek() == '=' || lx.peek() == '?' {
				lx.advance()
			}
			return lx.emit(SYMBOL)
		}
		return lx.emit(COLON)
	}
}

func (lx *Lexer) scanAnnotation() Token {
	lx.advanceN(2) // "%a"
	open := lx.peek()
	closeb, ok := annotationDelims[open]
	if !ok {
		return lx.emit(ErrorToken)
	}
	lx.advance()
	depth := 1
	for !lx.atEOF() && depth > 0 {
		switch lx.peek() {
		case open:
			if open != closeb {
				depth++
			} else {
				depth--
			}
			lx.advance()
		case closeb:
			depth--
			lx.advance()
		default:
			lx.advance()
		}
	}
	return lx.emit(ANNOTATION)
}

// operator2 and operator3 are the multi-character punctuation/
// operator lexemes tried before falling back to a single-character
// token.
var operator3 = []string{"...", "<=>", "===", "[]="}
var operator2 = []string{"::", "->", "=>", "**", "<=", ">=", "==", "!=", "<<", ">>", "[]"}

var singleCharPunct = map[byte]TokenType{
	'(': LPAREN, ')': RPAREN, ':': COLON, '[': LBRACKET, ']': RBRACKET,
	'{': LBRACE, '}': RBRACE, '^': HAT, ',': COMMA, '|': BAR, '&': AMP,
	'*': STAR, '.': DOT, '!': BANG, '?': QUESTION, '<': LT, '=': EQ,
}

func (lx *Lexer) scanOperatorOrPunct() Token {
	rest := lx.source[lx.current.BytePos:lx.end]

	for _, op := range operator3 {
		if hasPrefixBytes(rest, op) {
			lx.advanceN(len(op))
			return lx.emit(operatorTokenType(op))
		}
	}
	for _, op := range operator2 {
		if hasPrefixBytes(rest, op) {
			lx.advanceN(len(op))
			return lx.emit(operatorTokenType(op))
		}
	}

	c := lx.peek()
	lx.advance()
	if t, ok := singleCharPunct[c]; ok {
		return lx.emit(t)
	}
	// Any other punctuation run (+, -, /, %, ~, >, @-free combos)
	// lexes as a free-standing OPERATOR token naming a method, e.g.
	// `def +: (Integer) -> Integer`.
	for !lx.atEOF() && isOperatorByte(lx.peek()) {
		lx.advance()
	}
	return lx.emit(OPERATOR)
}

func isOperatorByte(b byte) bool {
	switch b {
	case '+', '-', '/', '%', '~', '>', '@':
		return true
	default:
		return false
	}
}

func hasPrefixBytes(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}

func operatorTokenType(op string) TokenType {
	switch op {
	case "::":
		return COLON2
	case "->":
		return ARROW
	case "=>":
		return FATARROW
	case "**":
		return STAR2
	case "...":
		return DOT3
	case "[]":
		return AREF_OPR
	default:
		return OPERATOR
	}
}

// Lex produces the raw token stream for source[:end], including EOF
// as the final token — the §6 `lex` public operation.
func Lex(source []byte, end int, enc Encoding) []Token {
	lx := NewLexer(source, 0, end, enc)
	var tokens []Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}
