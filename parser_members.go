package rbsparse

// methodNameTokens are the token kinds `parseMethodName` accepts: a
// method-definition or alias-member name can be a lower- or
// upper-case identifier, a `!`/`=`-suffixed identifier, a backquoted
// identifier, or an operator-method form. `_`-prefixed identifiers
// and keywords are not accepted.
var methodNameTokens = []TokenType{LIDENT, UIDENT, OPERATOR, AREF_OPR, BANGIDENT, EQIDENT, QIDENT}

func (p *Parser) parseMethodName() string {
	if !p.atAny(methodNameTokens...) {
		p.setError("expected a method name", p.cur)
		return ""
	}
	return p.advance().Text
}

// parseMethodTypeInner parses `type_params? function`, pushing a
// regular (non-reset) type-variable frame for the duration so the
// params are visible inside the function body.
func (p *Parser) parseMethodTypeInner() *MethodType {
	start := p.cur.Range.Start
	params := p.parseTypeParamList(false)

	p.typeVars.Push(false)
	for _, tp := range params {
		p.typeVars.Insert(tp.Name)
	}
	fn := p.parseFunctionBody()
	p.typeVars.Pop(false)

	return NewMethodType(params, fn, p.loc(start))
}

func (p *Parser) parseMethodDefinition(comment *CommentNode, annotations []*Annotation) MemberNode {
	start := p.cur.Range.Start
	p.expect(KEYWORD_DEF)

	kind := MethodInstance
	if p.at(KEYWORD_SELF) {
		switch {
		case p.nxt.Type == QUESTION && p.nxt2.Type == DOT:
			p.advance()
			p.advance()
			p.advance()
			kind = MethodSingletonInstance
		case p.nxt.Type == DOT:
			p.advance()
			p.advance()
			kind = MethodSingleton
		}
	}

	nameText := p.parseMethodName()
	name := p.pool.InternString(nameText)
	p.expect(COLON)

	overloads := []*MethodType{p.parseMethodTypeInner()}
	overloading := false
	for p.ok() && p.at(BAR) {
		p.advance()
		if p.at(DOT3) {
			p.advance()
			overloading = true
			break
		}
		overloads = append(overloads, p.parseMethodTypeInner())
	}

	def := NewMethodDefinition(name, kind, overloads, overloading, p.loc(start))
	def.Annotations = annotations
	def.Comment = comment
	return def
}

func (p *Parser) parseMixinMember() MemberNode {
	start := p.cur.Range.Start
	var kind MixinKind
	switch p.cur.Type {
	case KEYWORD_EXTEND:
		kind = MixinExtend
	case KEYWORD_PREPEND:
		kind = MixinPrepend
	default:
		kind = MixinInclude
	}
	p.advance()
	name, _ := p.parseTypeName()
	var args []TypeNode
	argsRange := NullRange()
	if p.at(LBRACKET) {
		args, argsRange = p.parseTypeArgs()
	}
	return NewMixinMember(kind, name, args, p.withArgsChild(p.loc(start), argsRange))
}

func (p *Parser) parseAliasMember() MemberNode {
	start := p.cur.Range.Start
	p.expect(KEYWORD_ALIAS)

	kind := MethodInstance
	if p.at(KEYWORD_SELF) && p.nxt.Type == DOT {
		p.advance()
		p.advance()
		kind = MethodSingleton
	}

	newName := p.parseMethodName()
	if kind == MethodSingleton {
		p.expect(KEYWORD_SELF)
		p.expect(DOT)
	}
	oldName := p.parseMethodName()

	return NewAliasMember(p.pool.InternString(newName), p.pool.InternString(oldName), kind, p.loc(start))
}

func (p *Parser) parseVarMember() MemberNode {
	start := p.cur.Range.Start
	var kind VarKind
	var nameTok Token
	if p.at(A2IDENT) {
		kind = VarClass
		nameTok = p.advance()
	} else {
		kind = VarInstance
		nameTok = p.advance()
	}
	name := p.intern(nameTok)
	p.expect(COLON)
	typ := p.parseType()
	return NewVarMember(kind, name, typ, p.loc(start))
}

func (p *Parser) parseClassInstanceVarMember() MemberNode {
	start := p.cur.Range.Start
	p.expect(KEYWORD_SELF)
	p.expect(DOT)
	nameTok, _ := p.expect(AIDENT)
	name := p.intern(nameTok)
	p.expect(COLON)
	typ := p.parseType()
	return NewVarMember(VarClassInstance, name, typ, p.loc(start))
}

func (p *Parser) parseAttrMember() MemberNode {
	start := p.cur.Range.Start
	var kind AttrKind
	switch p.cur.Type {
	case KEYWORD_ATTRWRITER:
		kind = AttrWriter
	case KEYWORD_ATTRACCESSOR:
		kind = AttrAccessor
	default:
		kind = AttrReader
	}
	p.advance()

	methodKind := MethodInstance
	if p.at(KEYWORD_SELF) && p.nxt.Type == DOT {
		p.advance()
		p.advance()
		methodKind = MethodSingleton
	}

	nameTok := p.advance()
	name := p.intern(nameTok)

	var ivarName ConstantID
	if p.at(LPAREN) {
		p.advance()
		if ivarTok, ok := p.expect(AIDENT); ok {
			ivarName = p.intern(ivarTok)
		}
		p.expect(RPAREN)
	}
	p.expect(COLON)
	typ := p.parseType()

	am := NewAttrMember(kind, name, ivarName, typ, p.loc(start))
	am.Kind2 = methodKind
	return am
}

func (p *Parser) parseVisibilityMember() MemberNode {
	start := p.cur.Range.Start
	kind := VisibilityPrivate
	if p.at(KEYWORD_PUBLIC) {
		kind = VisibilityPublic
	}
	p.advance()
	return NewVisibilityMember(kind, p.loc(start))
}

// parseMembers parses a class/module/interface body up to (but not
// consuming) the closing `end`.
func (p *Parser) parseMembers() []MemberNode {
	var members []MemberNode
	for p.ok() {
		var annotations []*Annotation
		for p.at(ANNOTATION) {
			annotations = append(annotations, p.parseAnnotation())
		}
		if p.at(KEYWORD_END) || p.at(EOF) {
			return members
		}

		start := p.cur.Range.Start
		comment := p.commentBefore(start)

		var m MemberNode
		switch {
		case p.at(KEYWORD_DEF):
			m = p.parseMethodDefinition(comment, annotations)
		case p.atAny(KEYWORD_INCLUDE, KEYWORD_EXTEND, KEYWORD_PREPEND):
			m = p.parseMixinMember()
		case p.at(KEYWORD_ALIAS):
			m = p.parseAliasMember()
		case p.at(KEYWORD_SELF) && p.nxt.Type == DOT && p.nxt2.Type == AIDENT:
			m = p.parseClassInstanceVarMember()
		case p.atAny(AIDENT, A2IDENT):
			m = p.parseVarMember()
		case p.atAny(KEYWORD_ATTRREADER, KEYWORD_ATTRWRITER, KEYWORD_ATTRACCESSOR):
			m = p.parseAttrMember()
		case p.atAny(KEYWORD_PUBLIC, KEYWORD_PRIVATE):
			m = p.parseVisibilityMember()
		default:
			p.setError("expected a class/module/interface member", p.cur)
			return members
		}
		if m == nil {
			return members
		}
		members = append(members, m)
	}
	return members
}
