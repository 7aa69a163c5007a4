package rbsparse

// finalize checks require_eof (when set) and converts a parser's
// terminal error, if any, into the package-level error return. Every
// public operation below funnels through this single exit path.
func finalize(p *Parser, requireEOF bool) error {
	if requireEOF && p.ok() && p.cur.Type != EOF {
		p.setError("expected end of input", p.cur)
	}
	if p.err != nil {
		return p.err
	}
	return nil
}

// ParseType is the `parse_type` public operation: parses a single
// type expression from source[start:end]. typeVars pre-declares an
// outer scope of visible type-variable names.
func ParseType(source []byte, start, end int, typeVars []string, requireEOF bool, opts ParserOptions) (TypeNode, error) {
	p := NewParser(source, start, end, opts, typeVars)
	t := p.parseType()
	if err := finalize(p, requireEOF); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseMethodType is the `parse_method_type` public operation.
func ParseMethodType(source []byte, start, end int, typeVars []string, requireEOF bool, opts ParserOptions) (*MethodType, error) {
	p := NewParser(source, start, end, opts, typeVars)
	mt := p.parseMethodTypeInner()
	if err := finalize(p, requireEOF); err != nil {
		return nil, err
	}
	return mt, nil
}

// ParseSignature is the `parse_signature` public operation: parses a
// full top-level signature (use directives plus declarations) and
// always requires the whole buffer to be consumed.
func ParseSignature(source []byte, start, end int, opts ParserOptions) (*Signature, error) {
	p := NewParser(source, start, end, opts, nil)
	sig := p.parseSignatureBody()
	if err := finalize(p, true); err != nil {
		return nil, err
	}
	return sig, nil
}

// ParseTypeParams is the `parse_type_params` public operation.
// moduleTypeParams selects the extended class/module/interface/alias
// syntax (unchecked/variance/bound/default) over the plain
// method-type name list.
func ParseTypeParams(source []byte, start, end int, moduleTypeParams bool, opts ParserOptions) ([]*TypeParam, error) {
	p := NewParser(source, start, end, opts, nil)
	params := p.parseTypeParamList(moduleTypeParams)
	if err := finalize(p, true); err != nil {
		return nil, err
	}
	return params, nil
}
