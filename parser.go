package rbsparse

// ParserOptions configures a Parser. It plays the role langlang's
// Config key-value store plays for its parsers, simplified to the
// handful of knobs this grammar actually needs.
type ParserOptions struct {
	Encoding Encoding
}

func defaultOptions() ParserOptions { return ParserOptions{Encoding: UTF8} }

// Parser is an LL(3) recursive-descent driver over one source
// buffer. It owns its lexer, its constant pool (which in turn owns
// the arena backing interned strings), and its type-variable stack,
// per §5 of the design. Every Parser creates its own pool; no pool,
// global or otherwise, is shared across Parser instances.
type Parser struct {
	source []byte
	enc    Encoding
	lexer  *Lexer

	pool     *ConstantPool
	typeVars *TypeVarTable
	comments *CommentTable

	cur, nxt, nxt2, nxt3 Token

	err *SyntaxError
}

// NewParser creates a parser over source[start:end]. typeVarNames
// pre-declares an outer scope of visible type-variable names (for
// parse_type/parse_method_type callers invoked from inside an
// already-open class/method body).
func NewParser(source []byte, start, end int, opts ParserOptions, typeVarNames []string) *Parser {
	if opts.Encoding == nil {
		opts.Encoding = UTF8
	}
	p := &Parser{
		source:   source,
		enc:      opts.Encoding,
		lexer:    NewLexer(source, start, end, opts.Encoding),
		pool:     NewConstantPool(64, NewArena()),
		typeVars: NewTypeVarTable(),
		comments: NewCommentTable(),
	}
	p.typeVars.Push(false)
	for _, name := range typeVarNames {
		p.typeVars.Insert(p.pool.InternString(name))
	}
	p.fill()
	return p
}

// fill populates all four lookahead slots from scratch; called once
// at construction.
func (p *Parser) fill() {
	p.cur = p.fetch()
	p.nxt = p.fetch()
	p.nxt2 = p.fetch()
	p.nxt3 = p.fetch()
}

// fetch pulls the next semantically significant token from the
// lexer, routing LINECOMMENT tokens into the comment table and
// silently dropping COMMENT/TRIVIA — the filtering §4.4 assigns to
// `advance`.
func (p *Parser) fetch() Token {
	for {
		tok := p.lexer.Next()
		switch tok.Type {
		case LINECOMMENT:
			p.comments.Push(tok)
			continue
		case COMMENT, TRIVIA:
			continue
		default:
			return tok
		}
	}
}

// advance rotates the four-token lookahead window forward by one.
func (p *Parser) advance() Token {
	tok := p.cur
	p.cur, p.nxt, p.nxt2, p.nxt3 = p.nxt, p.nxt2, p.nxt3, p.fetch()
	return tok
}

func (p *Parser) ok() bool { return p.err == nil }

// setError records the first error encountered; every call after the
// first is a no-op, matching the "first error is terminal" policy.
func (p *Parser) setError(message string, tok Token) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{Message: message, TokenType: tok.Type, Token: tok.Text, Range: tok.Range}
}

// expect consumes cur if it matches tt, else records a syntax error
// naming what was expected.
func (p *Parser) expect(tt TokenType) (Token, bool) {
	if !p.ok() {
		return Token{}, false
	}
	if p.cur.Type != tt {
		p.setError("expected "+tt.String(), p.cur)
		return Token{}, false
	}
	return p.advance(), true
}

// at reports whether cur matches tt without consuming it.
func (p *Parser) at(tt TokenType) bool { return p.ok() && p.cur.Type == tt }

func (p *Parser) atAny(tts ...TokenType) bool {
	if !p.ok() {
		return false
	}
	for _, tt := range tts {
		if p.cur.Type == tt {
			return true
		}
	}
	return false
}

// intern interns tok's raw text into the parser's constant pool.
func (p *Parser) intern(tok Token) ConstantID {
	return p.pool.InternString(tok.Text)
}

func (p *Parser) loc(start Position) *Location {
	return NewLocation(Range{Start: start, End: p.cur.Range.Start})
}

// commentBefore returns the comment, if any, whose last line
// immediately precedes the line subject starts on.
func (p *Parser) commentBefore(subject Position) *CommentNode {
	c, ok := p.comments.LookupBefore(subject.Line)
	if !ok {
		return nil
	}
	return NewCommentNode(c, NewLocation(Range{Start: c.Start, End: c.End}))
}
