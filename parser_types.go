package rbsparse

// adjacent reports whether b starts exactly where a ends — the "no
// whitespace" requirement between a namespace segment, its `::`, and
// the next segment.
func adjacent(a, b Token) bool { return a.Range.End.BytePos == b.Range.Start.BytePos }

// parseNamespace consumes an optional leading `::` followed by zero
// or more strictly-adjacent `UIDENT ::` segments.
func (p *Parser) parseNamespace() *Namespace {
	start := p.cur.Range.Start
	absolute := false
	if p.at(COLON2) {
		absolute = true
		p.advance()
	}
	var path []ConstantID
	for p.at(UIDENT) && p.nxt.Type == COLON2 && adjacent(p.cur, p.nxt) {
		seg := p.intern(p.cur)
		p.advance()
		p.advance()
		path = append(path, seg)
	}
	return NewNamespace(path, absolute, p.loc(start))
}

// parseTypeName consumes a namespace plus a final identifier and
// reports which token kind the final identifier had, so the caller
// can decide whether it names a class/interface/alias/type-variable.
func (p *Parser) parseTypeName() (*TypeName, TokenType) {
	start := p.cur.Range.Start
	ns := p.parseNamespace()
	if !p.atAny(UIDENT, ULIDENT, LIDENT) {
		p.setError("expected a type name", p.cur)
		return nil, ErrorToken
	}
	kind := p.cur.Type
	nameTok := p.advance()
	return NewTypeName(ns, p.intern(nameTok), p.loc(start)), kind
}

// parseTypeArgs consumes `[ type ("," type)* ]`, returning the
// parsed args plus the range of the whole `[...]` span so callers can
// record it as a named "args" child on their own Location.
func (p *Parser) parseTypeArgs() ([]TypeNode, Range) {
	start := p.cur.Range.Start
	if _, ok := p.expect(LBRACKET); !ok {
		return nil, NullRange()
	}
	var args []TypeNode
	if !p.at(RBRACKET) {
		args = append(args, p.parseType())
		for p.ok() && p.at(COMMA) {
			p.advance()
			args = append(args, p.parseType())
		}
	}
	closeTok, _ := p.expect(RBRACKET)
	return args, Range{Start: start, End: closeTok.Range.End}
}

// childName interns a Location child-map key name. Child names are
// fixed strings known at compile time (spec §9's "global constant
// pool" role), so they are interned as constant (forever-lived)
// entries rather than copied per occurrence.
func (p *Parser) childName(s string) ConstantID {
	return p.pool.InsertConstant(s)
}

// withArgsChild pre-declares a one-slot child map on loc and records
// argsRange under the name "args", matching the original's
// `rbs_loc_add_optional_child(loc, INTERN("args"), ...)` call for
// class-instance/interface/alias type-name references: the child is
// optional because a bare type name with no `[...]` never parsed one.
func (p *Parser) withArgsChild(loc *Location, argsRange Range) *Location {
	loc.AllocChildren(1)
	loc.AddOptionalChild(p.childName("args"), argsRange)
	return loc
}

var baseTypeKeywords = map[TokenType]BaseKind{
	KEYWORD_BOOL: BaseBool, KEYWORD_VOID: BaseVoid, KEYWORD_NIL: BaseNil,
	KEYWORD_SELF: BaseSelf, KEYWORD_CLASS: BaseClass, KEYWORD_INSTANCE: BaseInstance,
	KEYWORD_TOP: BaseTop, KEYWORD_BOT: BaseBot, KEYWORD_UNTYPED: BaseUntyped,
	KEYWORD_TODO: BaseTodo,
}

// parseSimple parses a `simple` production: parenthesized type, base
// type, literal, type-name (with optional args), `singleton(Name)`,
// tuple, record, or proc.
func (p *Parser) parseSimple() TypeNode {
	start := p.cur.Range.Start

	if kind, ok := baseTypeKeywords[p.cur.Type]; ok {
		p.advance()
		return NewBaseType(kind, p.loc(start))
	}

	switch p.cur.Type {
	case LPAREN:
		p.advance()
		t := p.parseType()
		p.expect(RPAREN)
		return t

	case INTEGER:
		tok := p.advance()
		return NewLiteralType(LiteralInteger, tok.Text, p.loc(start))
	case DQSTRING:
		tok := p.advance()
		return NewLiteralType(LiteralString, Unquote(tok.Text, p.enc), p.loc(start))
	case SQSTRING:
		tok := p.advance()
		return NewLiteralType(LiteralString, Unquote(tok.Text, p.enc), p.loc(start))
	case SYMBOL, DQSYMBOL, SQSYMBOL:
		tok := p.advance()
		return NewLiteralType(LiteralSymbol, UnquoteSymbol(tok.Text, p.enc), p.loc(start))
	case KEYWORD_TRUE:
		p.advance()
		return NewLiteralType(LiteralTrue, "true", p.loc(start))
	case KEYWORD_FALSE:
		p.advance()
		return NewLiteralType(LiteralFalse, "false", p.loc(start))

	case KEYWORD_SINGLETON:
		p.advance()
		p.expect(LPAREN)
		name, _ := p.parseTypeName()
		p.expect(RPAREN)
		return NewClassInstanceType(name, nil, true, p.loc(start))

	case LBRACKET:
		return p.parseTuple()

	case LBRACE:
		return p.parseRecord()

	case HAT:
		return p.parseProc()

	case UIDENT:
		if p.nxt.Type != COLON2 {
			id := p.intern(p.cur)
			if p.typeVars.Member(id) {
				p.advance()
				return NewVariableType(id, p.loc(start))
			}
		}
		return p.parseTypeNameType(start)

	case ULIDENT, LIDENT:
		return p.parseTypeNameType(start)

	default:
		p.setError("expected a type", p.cur)
		return nil
	}
}

// parseTypeNameType parses the shared `type_name args?` tail for
// class-instance, interface, and alias references, disambiguated by
// the final identifier's token kind.
func (p *Parser) parseTypeNameType(start Position) TypeNode {
	name, kind := p.parseTypeName()
	if name == nil {
		return nil
	}
	var args []TypeNode
	argsRange := NullRange()
	if p.at(LBRACKET) {
		args, argsRange = p.parseTypeArgs()
	}
	switch kind {
	case ULIDENT:
		return NewInterfaceType(name, args, p.withArgsChild(p.loc(start), argsRange))
	case LIDENT:
		return NewAliasType(name, args, p.withArgsChild(p.loc(start), argsRange))
	default:
		return NewClassInstanceType(name, args, false, p.withArgsChild(p.loc(start), argsRange))
	}
}

func (p *Parser) parseTuple() TypeNode {
	start := p.cur.Range.Start
	p.expect(LBRACKET)
	var elems []TypeNode
	if !p.at(RBRACKET) {
		elems = append(elems, p.parseType())
		for p.ok() && p.at(COMMA) {
			p.advance()
			elems = append(elems, p.parseType())
		}
	}
	p.expect(RBRACKET)
	return NewTupleType(elems, p.loc(start))
}

// parseRecordKey parses a record field key: a keyword-style symbol
// (`key:`), a quoted/integer literal (`"key" =>`), or a bare
// identifier used as its own symbol name.
func (p *Parser) parseRecordKey() Node {
	start := p.cur.Range.Start
	switch p.cur.Type {
	case SYMBOL, DQSYMBOL, SQSYMBOL:
		tok := p.advance()
		return NewSymbolNode(p.pool.InternString(UnquoteSymbol(tok.Text, p.enc)), p.loc(start))
	case DQSTRING, SQSTRING:
		tok := p.advance()
		return NewLiteralType(LiteralString, Unquote(tok.Text, p.enc), p.loc(start))
	case INTEGER:
		tok := p.advance()
		return NewLiteralType(LiteralInteger, tok.Text, p.loc(start))
	default:
		tok := p.advance()
		return NewSymbolNode(p.intern(tok), p.loc(start))
	}
}

// recordKeyIdent returns a comparable identity for a record key,
// used to detect duplicates. Every key node's String() collapses to
// a fixed placeholder ("<symbol>" for every SymbolNode, regardless of
// name), so duplicate detection must compare the interned
// ConstantID / literal value the key actually carries instead.
type recordKeyIdent struct {
	symbol bool
	id     ConstantID
	kind   LiteralKind
	text   string
}

func recordKeyIdentOf(key Node) recordKeyIdent {
	switch k := key.(type) {
	case *SymbolNode:
		return recordKeyIdent{symbol: true, id: k.Name}
	case *LiteralType:
		return recordKeyIdent{kind: k.Kind, text: k.Text}
	default:
		return recordKeyIdent{text: key.String()}
	}
}

func (p *Parser) parseRecord() TypeNode {
	start := p.cur.Range.Start
	p.expect(LBRACE)
	var fields []*RecordField
	seen := map[recordKeyIdent]bool{}
	for p.ok() && !p.at(RBRACE) {
		fstart := p.cur.Range.Start
		key := p.parseRecordKey()
		ident := recordKeyIdentOf(key)
		if !seen[ident] {
			seen[ident] = true
		} else {
			p.setError("duplicate record key", p.cur)
		}
		optional := false
		if p.at(QUESTION) {
			optional = true
			p.advance()
		}
		if p.at(FATARROW) {
			p.advance()
		} else {
			p.expect(COLON)
		}
		val := p.parseType()
		fields = append(fields, NewRecordField(key, optional, val, p.loc(fstart)))
		if p.at(COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(RBRACE)
	return NewRecordType(fields, p.loc(start))
}

func (p *Parser) parseSelfBinding() *SelfBinding {
	if !p.at(LBRACKET) {
		return nil
	}
	start := p.cur.Range.Start
	p.advance()
	p.expect(KEYWORD_SELF)
	p.expect(COLON)
	self := p.parseType()
	p.expect(RBRACKET)
	return NewSelfBinding(self, p.loc(start))
}

func (p *Parser) parseProc() TypeNode {
	start := p.cur.Range.Start
	p.expect(HAT)
	fn := p.parseFunctionBody()
	return NewProcType(fn, p.loc(start))
}

func (p *Parser) parseOptional() TypeNode {
	start := p.cur.Range.Start
	t := p.parseSimple()
	if p.at(QUESTION) {
		p.advance()
		return NewOptionalType(t, p.loc(start))
	}
	return t
}

func (p *Parser) parseIntersection() TypeNode {
	start := p.cur.Range.Start
	first := p.parseOptional()
	if !p.at(AMP) {
		return first
	}
	members := []TypeNode{first}
	for p.ok() && p.at(AMP) {
		p.advance()
		members = append(members, p.parseOptional())
	}
	return NewIntersectionType(members, p.loc(start))
}

// parseType is the union-level entry point and the grammar's top
// `type` production.
func (p *Parser) parseType() TypeNode {
	start := p.cur.Range.Start
	first := p.parseIntersection()
	if !p.at(BAR) {
		return first
	}
	members := []TypeNode{first}
	for p.ok() && p.at(BAR) {
		p.advance()
		members = append(members, p.parseIntersection())
	}
	return NewUnionType(members, p.loc(start))
}
