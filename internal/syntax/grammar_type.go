package syntax

// typ parses: TypeRef | ArrayType | TupleType
func typ(p *parser) {
	switch p.current() {
	case Ident:
		typeRef(p)
	case LBrack:
		arrayType(p)
	case LParen:
		delimited(p, TupleType, LParen, RParen, typeFirst, typ, ErrTypeRequired, TokenSet{})
	default:
		p.errorRecover(ErrTypeRequired, typeRecovery)
	}
}

// typeRef parses: Ident GenericArgList?
func typeRef(p *parser) {
	m := p.start()
	p.assert(Ident)
	if p.at(Lt) {
		delimited(p, GenericArgList, Lt, Gt, typeFirst, genericArg, ErrTypeRequired, typeRecovery)
	}
	m.complete(p, TypeRef)
}

func genericArg(p *parser) {
	m := p.start()
	typ(p)
	m.complete(p, GenericArg)
}

// arrayType parses: '[' Type (';' Int)? ']'
func arrayType(p *parser) {
	m := p.start()
	p.assert(LBrack)
	p.setSkipper(SkipBlock)
	typ(p)
	if p.eat(Semi) {
		p.expect(Int)
	}
	p.restoreSkipper()
	p.expect(RBrack)
	m.complete(p, ArrayType)
}
