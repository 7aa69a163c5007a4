package rbsparse

// parseAnnotation wraps one already-lexed ANNOTATION token, stripping
// the `%a` marker and the pair of delimiter bytes around its body.
func (p *Parser) parseAnnotation() *Annotation {
	start := p.cur.Range.Start
	tok := p.advance()
	body := ""
	if len(tok.Text) >= 4 {
		body = tok.Text[3 : len(tok.Text)-1]
	}
	return NewAnnotation(body, p.loc(start))
}

// parseTypeParamList parses `[T, U < V, W = X]`. moduleMode gates the
// extended syntax (unchecked/variance/bound/default) that only
// class/module/interface/alias type-param lists accept; method-type
// params are plain names.
func (p *Parser) parseTypeParamList(moduleMode bool) []*TypeParam {
	if !p.at(LBRACKET) {
		return nil
	}
	p.advance()

	var params []*TypeParam
	seenDefault := false
	for p.ok() && !p.at(RBRACKET) {
		start := p.cur.Range.Start
		unchecked := false
		variance := VarianceInvariant

		if moduleMode {
			if p.at(KEYWORD_UNCHECKED) {
				unchecked = true
				p.advance()
			}
			switch {
			case p.at(KEYWORD_IN):
				variance = VarianceContravariant
				p.advance()
			case p.at(KEYWORD_OUT):
				variance = VarianceCovariant
				p.advance()
			}
		}

		nameTok, ok := p.expect(UIDENT)
		if !ok {
			break
		}
		name := p.intern(nameTok)

		var upper, def TypeNode
		if moduleMode && p.at(LT) {
			p.advance()
			upper = p.parseType()
		}
		if moduleMode && p.at(EQ) {
			p.advance()
			def = p.parseType()
			seenDefault = true
		} else if seenDefault {
			p.setError("type parameter without a default follows one that has one", p.cur)
		}

		params = append(params, NewTypeParam(name, variance, unchecked, upper, def, p.loc(start)))
		if p.at(COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(RBRACKET)
	return params
}

func (p *Parser) parseUseClause() *UseClause {
	start := p.cur.Range.Start
	ns := p.parseNamespace()

	if p.at(STAR) {
		p.advance()
		return NewUseClause(ns, ConstantIDUnset, true, ConstantIDUnset, p.loc(start))
	}

	if !p.atAny(UIDENT, LIDENT) {
		p.setError("expected an identifier or * in a use clause", p.cur)
		return nil
	}
	nameTok := p.advance()
	name := p.intern(nameTok)

	var as ConstantID
	if p.at(KEYWORD_AS) {
		p.advance()
		if asTok, ok := p.expect(nameTok.Type); ok {
			as = p.intern(asTok)
		}
	}
	return NewUseClause(ns, name, false, as, p.loc(start))
}

func (p *Parser) parseUseDirective() *UseDirective {
	start := p.cur.Range.Start
	p.expect(KEYWORD_USE)

	var clauses []*UseClause
	clauses = append(clauses, p.parseUseClause())
	for p.ok() && p.at(COMMA) {
		p.advance()
		clauses = append(clauses, p.parseUseClause())
	}
	return NewUseDirective(clauses, p.loc(start))
}

func (p *Parser) parseModuleSelfTypes() []*ModuleSelfType {
	if !p.at(COLON) {
		return nil
	}
	p.advance()

	var selves []*ModuleSelfType
	for p.ok() {
		start := p.cur.Range.Start
		name, _ := p.parseTypeName()
		var args []TypeNode
		argsRange := NullRange()
		if p.at(LBRACKET) {
			args, argsRange = p.parseTypeArgs()
		}
		selves = append(selves, NewModuleSelfType(name, args, p.withArgsChild(p.loc(start), argsRange)))
		if p.at(COMMA) {
			p.advance()
			continue
		}
		break
	}
	return selves
}

func (p *Parser) parseClassSuper() *ClassSuper {
	if !p.at(LT) {
		return nil
	}
	start := p.cur.Range.Start
	p.advance()
	name, _ := p.parseTypeName()
	var args []TypeNode
	argsRange := NullRange()
	if p.at(LBRACKET) {
		args, argsRange = p.parseTypeArgs()
	}
	return NewClassSuper(name, args, p.withArgsChild(p.loc(start), argsRange))
}

func (p *Parser) parseConstDecl() DeclNode {
	start := p.cur.Range.Start
	name, _ := p.parseTypeName()
	p.expect(COLON)
	typ := p.parseType()
	return NewConstDecl(name, typ, p.loc(start))
}

func (p *Parser) parseGlobalDecl() DeclNode {
	start := p.cur.Range.Start
	tok, _ := p.expect(GIDENT)
	name := p.intern(tok)
	p.expect(COLON)
	typ := p.parseType()
	return NewGlobalDecl(name, typ, p.loc(start))
}

// parseTypeParamListWithRange wraps parseTypeParamList and also
// reports the `[...]` span it consumed (a null range when no list
// was present), so callers can record it as a "type_params" child.
func (p *Parser) parseTypeParamListWithRange(moduleMode bool) ([]*TypeParam, Range) {
	start := p.cur.Range.Start
	present := p.at(LBRACKET)
	params := p.parseTypeParamList(moduleMode)
	if !present {
		return params, NullRange()
	}
	return params, Range{Start: start, End: p.cur.Range.Start}
}

func (p *Parser) parseTypeAliasDecl(comment *CommentNode, annotations []*Annotation) DeclNode {
	start := p.cur.Range.Start
	kwTok, _ := p.expect(KEYWORD_TYPE)
	name, _ := p.parseTypeName()

	params, paramsRange := p.parseTypeParamListWithRange(true)
	p.typeVars.Push(true)
	for _, tp := range params {
		p.typeVars.Insert(tp.Name)
	}
	eqTok, _ := p.expect(EQ)
	typ := p.parseType()
	p.typeVars.Pop(true)

	nameRange := NullRange()
	if name != nil {
		nameRange = name.Loc().Range
	}
	loc := p.loc(start)
	loc.AllocChildren(4)
	loc.AddRequiredChild(p.childName("keyword"), kwTok.Range)
	loc.AddOptionalChild(p.childName("name"), nameRange)
	loc.AddOptionalChild(p.childName("type_params"), paramsRange)
	loc.AddOptionalChild(p.childName("eq"), eqTok.Range)

	decl := NewTypeAliasDecl(name, params, typ, loc)
	decl.Annotations = annotations
	decl.Comment = comment
	return decl
}

func (p *Parser) parseInterfaceDecl(comment *CommentNode, annotations []*Annotation) DeclNode {
	start := p.cur.Range.Start
	p.expect(KEYWORD_INTERFACE)
	name, _ := p.parseTypeName()

	params := p.parseTypeParamList(true)
	p.typeVars.Push(true)
	for _, tp := range params {
		p.typeVars.Insert(tp.Name)
	}
	members := p.parseMembers()
	p.expect(KEYWORD_END)
	p.typeVars.Pop(true)

	decl := NewInterfaceDecl(name, params, members, p.loc(start))
	decl.Annotations = annotations
	decl.Comment = comment
	return decl
}

func (p *Parser) parseModuleDecl(comment *CommentNode, annotations []*Annotation) DeclNode {
	start := p.cur.Range.Start
	p.expect(KEYWORD_MODULE)
	name, _ := p.parseTypeName()

	if p.at(EQ) {
		p.advance()
		old, _ := p.parseTypeName()
		return NewModuleAliasDecl(name, old, p.loc(start))
	}

	params := p.parseTypeParamList(true)
	p.typeVars.Push(true)
	for _, tp := range params {
		p.typeVars.Insert(tp.Name)
	}
	selves := p.parseModuleSelfTypes()
	members := p.parseMembers()
	p.expect(KEYWORD_END)
	p.typeVars.Pop(true)

	decl := NewModuleDecl(name, params, selves, members, p.loc(start))
	decl.Annotations = annotations
	decl.Comment = comment
	return decl
}

func (p *Parser) parseClassDecl(comment *CommentNode, annotations []*Annotation) DeclNode {
	start := p.cur.Range.Start
	kwTok, _ := p.expect(KEYWORD_CLASS)
	name, _ := p.parseTypeName()

	if p.at(EQ) {
		p.advance()
		old, _ := p.parseTypeName()
		return NewClassAliasDecl(name, old, p.loc(start))
	}

	params, paramsRange := p.parseTypeParamListWithRange(true)
	p.typeVars.Push(true)
	for _, tp := range params {
		p.typeVars.Insert(tp.Name)
	}
	superStart := p.cur.Range.Start
	super := p.parseClassSuper()
	superRange := NullRange()
	if super != nil {
		superRange = Range{Start: superStart, End: p.cur.Range.Start}
	}
	members := p.parseMembers()
	p.expect(KEYWORD_END)
	p.typeVars.Pop(true)

	nameRange := NullRange()
	if name != nil {
		nameRange = name.Loc().Range
	}
	loc := p.loc(start)
	loc.AllocChildren(4)
	loc.AddRequiredChild(p.childName("keyword"), kwTok.Range)
	loc.AddOptionalChild(p.childName("name"), nameRange)
	loc.AddOptionalChild(p.childName("type_params"), paramsRange)
	loc.AddOptionalChild(p.childName("super"), superRange)

	decl := NewClassDecl(name, params, super, members, loc)
	decl.Annotations = annotations
	decl.Comment = comment
	return decl
}

// parseDecl dispatches one top-level declaration.
func (p *Parser) parseDecl() DeclNode {
	var annotations []*Annotation
	for p.at(ANNOTATION) {
		annotations = append(annotations, p.parseAnnotation())
	}
	if !p.ok() {
		return nil
	}
	comment := p.commentBefore(p.cur.Range.Start)

	switch p.cur.Type {
	case GIDENT:
		return p.parseGlobalDecl()
	case KEYWORD_TYPE:
		return p.parseTypeAliasDecl(comment, annotations)
	case KEYWORD_INTERFACE:
		return p.parseInterfaceDecl(comment, annotations)
	case KEYWORD_MODULE:
		return p.parseModuleDecl(comment, annotations)
	case KEYWORD_CLASS:
		return p.parseClassDecl(comment, annotations)
	case UIDENT, COLON2:
		return p.parseConstDecl()
	default:
		p.setError("expected a declaration", p.cur)
		return nil
	}
}

// parseSignatureBody parses the full top level: leading use
// directives, then declarations, through EOF.
func (p *Parser) parseSignatureBody() *Signature {
	start := p.cur.Range.Start

	var uses []*UseDirective
	for p.ok() && p.at(KEYWORD_USE) {
		uses = append(uses, p.parseUseDirective())
	}

	var decls []DeclNode
	for p.ok() && !p.at(EOF) {
		d := p.parseDecl()
		if d == nil {
			break
		}
		decls = append(decls, d)
	}
	return NewSignature(uses, decls, p.loc(start))
}
