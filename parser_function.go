package rbsparse

// paramPhase names the six labelled targets of the parameter-list
// state machine: once the walk advances past a phase it never
// returns to it, matching src/parser.c's goto-based parse_params.
type paramPhase int

const (
	phaseRequired paramPhase = iota
	phaseOptional
	phaseRest
	phaseTrailing
	phaseKeywords
	phaseEOP
)

// parseFunctionBody parses the `function` production: an optional
// parenthesized parameter list (or the `(?)` untyped marker), an
// optional self-binding, an optional block, then `-> optional`.
func (p *Parser) parseFunctionBody() *FunctionType {
	start := p.cur.Range.Start
	fn := NewFunctionType(nil)

	if p.at(LPAREN) {
		if p.nxt.Type == QUESTION && p.nxt2.Type == RPAREN {
			p.advance()
			p.advance()
			p.advance()
			fn.Untyped = true
		} else {
			p.advance()
			p.parseParams(fn)
			p.expect(RPAREN)
		}
	}

	fn.Self = p.parseSelfBinding()
	fn.Block = p.parseBlockOpt()
	p.expect(ARROW)
	fn.Return = p.parseOptional()
	fn.loc = p.loc(start)
	return fn
}

func (p *Parser) parseBlockOpt() *Block {
	optional := false
	if p.at(QUESTION) && p.nxt.Type == LBRACE {
		optional = true
		p.advance()
	}
	if !p.at(LBRACE) {
		return nil
	}
	start := p.cur.Range.Start
	p.advance()
	p.typeVars.Push(false)
	inner := NewFunctionType(nil)
	if p.at(LPAREN) {
		p.advance()
		p.parseParams(inner)
		p.expect(RPAREN)
	}
	inner.Self = p.parseSelfBinding()
	p.expect(ARROW)
	inner.Return = p.parseOptional()
	inner.loc = p.loc(start)
	p.typeVars.Pop(false)
	p.expect(RBRACE)
	return NewBlock(inner, optional, p.loc(start))
}

// parseOneParam parses a single positional parameter: a type,
// optionally followed by a parameter name.
func (p *Parser) parseOneParam() *FunctionParam {
	start := p.cur.Range.Start
	typ := p.parseType()
	var name ConstantID
	if p.atAny(LIDENT, ULLIDENT, BANGIDENT, EQIDENT) {
		name = p.intern(p.advance())
	}
	return NewFunctionParam(typ, name, p.loc(start))
}

// parseOneKwParam parses `name: type`, interning the keyword name
// into memo (shared across all three keyword phases) so a duplicate
// key in any phase is caught.
func (p *Parser) parseOneKwParam(memo map[ConstantID]bool) *FunctionParam {
	start := p.cur.Range.Start
	if !p.atAny(LIDENT, ULLIDENT) {
		p.setError("expected a keyword parameter name", p.cur)
		return nil
	}
	nameTok := p.advance()
	name := p.intern(nameTok)
	if memo[name] {
		p.setError("duplicate keyword parameter", nameTok)
	}
	memo[name] = true
	p.expect(COLON)
	typ := p.parseType()
	return NewFunctionParam(typ, name, p.loc(start))
}

// parseParams walks the six-phase parameter grammar: required
// positionals, optional positionals (`?T`), a single rest (`*T`),
// trailing positionals (after rest), then required/optional/rest
// keyword parameters, sharing one duplicate-name memo across all
// three keyword sub-phases.
func (p *Parser) parseParams(fn *FunctionType) {
	phase := phaseRequired
	memo := map[ConstantID]bool{}
	seenRest := false

	for p.ok() {
		switch {
		case p.at(RPAREN):
			return

		case phase == phaseEOP:
			p.setError("unexpected parameter after a ** keyword rest parameter", p.cur)
			return

		case p.at(STAR2):
			p.advance()
			fn.RestKw = p.parseOneKwParam(memo)
			phase = phaseEOP

		case p.at(QUESTION) && (p.nxt.Type == LIDENT || p.nxt.Type == ULLIDENT) && p.nxt2.Type == COLON:
			p.advance()
			fn.OptionalKw = append(fn.OptionalKw, p.parseOneKwParam(memo))
			phase = phaseKeywords

		case p.at(QUESTION) && phase <= phaseOptional:
			p.advance()
			fn.Optional = append(fn.Optional, p.parseOneParam())
			phase = phaseOptional

		case p.at(QUESTION):
			p.advance()
			fn.OptionalKw = append(fn.OptionalKw, p.parseOneKwParam(memo))
			phase = phaseKeywords

		case p.at(STAR) && phase <= phaseRest && !seenRest:
			p.advance()
			fn.Rest = p.parseOneParam()
			seenRest = true
			phase = phaseRest

		case p.atAny(LIDENT, ULLIDENT) && p.nxt.Type == COLON:
			fn.RequiredKw = append(fn.RequiredKw, p.parseOneKwParam(memo))
			phase = phaseKeywords

		case phase <= phaseRequired:
			fn.Required = append(fn.Required, p.parseOneParam())

		case phase == phaseOptional, phase == phaseRest:
			fn.Trailing = append(fn.Trailing, p.parseOneParam())
			phase = phaseTrailing

		case phase == phaseTrailing:
			fn.Trailing = append(fn.Trailing, p.parseOneParam())

		default:
			p.setError("positional parameter after keyword parameters", p.cur)
			return
		}

		if p.at(COMMA) {
			p.advance()
			continue
		}
		return
	}
}
