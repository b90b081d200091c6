package syntax

// ----------------------------------------------------------------------------
// Source file and items

// sourceFile parses: Item* EOF
func sourceFile(p *parser) completedMarker {
	m := p.start()
	p.setSkipper(SkipBlock)

	for !p.atEOF() {
		if p.eat(Semi) {
			continue
		}
		item(p)
	}

	p.restoreSkipper()
	p.expect(EOF)
	return m.complete(p, SourceFile)
}

// item parses one top-level declaration. Anything else is gathered into
// a single error node up to the next declaration keyword.
func item(p *parser) {
	switch p.current() {
	case KwFn:
		fnDecl(p)
	case KwStruct:
		structDecl(p)
	case KwEnum:
		enumDecl(p)
	case KwType:
		typeAliasDecl(p)
	case KwConst:
		constDecl(p)
	default:
		m := p.start()
		p.error(ErrItemRequired)
		for !p.atEOF() && !p.atSet(itemRecovery) {
			p.eatAny()
		}
		m.complete(p, ErrorNode)
	}
}

// name parses an identifier into a Name node.
func name(p *parser, recovery TokenSet) {
	if !p.at(Ident) {
		p.errorRecover(ErrNameRequired, recovery)
		return
	}
	m := p.start()
	p.bump()
	m.complete(p, Name)
}

var fnNameRecovery = itemFirst.With(LParen, Lt, Arrow, Semi)

// fnDecl parses: 'fn' Name GenericParamList? ParamList ReturnType? Block
func fnDecl(p *parser) completedMarker {
	m := p.start()
	p.assert(KwFn)
	name(p, fnNameRecovery)
	if p.at(Lt) {
		genericParamList(p)
	}
	if p.at(LParen) {
		paramList(p)
	} else {
		p.error(ErrFunctionArgumentsExpected)
	}
	if p.at(Arrow) {
		returnType(p)
	}
	if p.at(LBrace) {
		block(p)
	} else {
		p.errorWant(ErrTokenRequired, LBrace)
	}
	return m.complete(p, FnDecl)
}

func paramList(p *parser) {
	delimited(p, ParamList, LParen, RParen, NewTokenSet(Ident), param, ErrNameRequired,
		itemFirst.With(Arrow, Semi))
}

// param parses: Name ':' Type
func param(p *parser) {
	m := p.start()
	name(p, NewTokenSet(Colon))
	if p.expect(Colon) {
		typ(p)
	}
	m.complete(p, Param)
}

// returnType parses: '->' Type
func returnType(p *parser) {
	m := p.start()
	p.assert(Arrow)
	typ(p)
	m.complete(p, ReturnType)
}

func genericParamList(p *parser) {
	delimited(p, GenericParamList, Lt, Gt, NewTokenSet(Ident), genericParam, ErrNameRequired,
		itemFirst.With(LParen, Eq, Semi))
}

func genericParam(p *parser) {
	m := p.start()
	name(p, TokenSet{})
	m.complete(p, GenericParam)
}

var typeNameRecovery = itemRecovery.With(Lt, Eq)

// structDecl parses: 'struct' Name GenericParamList? StructBody
func structDecl(p *parser) completedMarker {
	m := p.start()
	p.assert(KwStruct)
	name(p, typeNameRecovery)
	if p.at(Lt) {
		genericParamList(p)
	}
	structBody(p)
	return m.complete(p, StructDecl)
}

// structBody parses: '{' ((StructField | FnDecl) (','|';')?)* '}'
func structBody(p *parser) {
	m := p.start()
	if p.expect(LBrace) {
		p.setSkipper(SkipBlock)
	members:
		for !p.at(RBrace) && !p.atEOF() {
			switch {
			case p.at(Ident):
				structField(p)
			case p.at(KwFn):
				fnDecl(p)
			case p.atSet(itemFirst):
				break members // missing '}', let the next item start
			default:
				if _, ok := p.errorRecover(ErrNameRequired, TokenSet{}); !ok {
					p.bumpError()
				}
			}
			if !p.eat(Comma) {
				p.eat(Semi)
			}
		}
		p.restoreSkipper()
		p.expect(RBrace)
	}
	m.complete(p, StructBody)
}

// structField parses: Name ':' Type ('=' Expr)?
func structField(p *parser) {
	m := p.start()
	name(p, NewTokenSet(Colon))
	if p.expect(Colon) {
		typ(p)
	}
	if p.eat(Eq) {
		expr(p)
	}
	m.complete(p, StructField)
}

// enumDecl parses: 'enum' Name GenericParamList? EnumBody
func enumDecl(p *parser) completedMarker {
	m := p.start()
	p.assert(KwEnum)
	name(p, typeNameRecovery)
	if p.at(Lt) {
		genericParamList(p)
	}
	enumBody(p)
	return m.complete(p, EnumDecl)
}

// enumBody parses: '{' (EnumVariant ','?)* '}'
func enumBody(p *parser) {
	m := p.start()
	if p.expect(LBrace) {
		p.setSkipper(SkipBlock)
		for !p.at(RBrace) && !p.atEOF() && !p.atSet(itemFirst) {
			if p.at(Ident) {
				enumVariant(p)
			} else if _, ok := p.errorRecover(ErrNameRequired, TokenSet{}); !ok {
				p.bumpError()
			}
			p.eat(Comma)
		}
		p.restoreSkipper()
		p.expect(RBrace)
	}
	m.complete(p, EnumBody)
}

// enumVariant parses: Name (TupleFields | RecordFields)?
func enumVariant(p *parser) {
	m := p.start()
	name(p, TokenSet{})
	switch p.current() {
	case LParen:
		delimited(p, TupleFields, LParen, RParen, typeFirst, tupleField, ErrTypeRequired, TokenSet{})
	case LBrace:
		delimited(p, RecordFields, LBrace, RBrace, NewTokenSet(Ident), recordField, ErrNameRequired, TokenSet{})
	}
	m.complete(p, EnumVariant)
}

func tupleField(p *parser) {
	m := p.start()
	typ(p)
	m.complete(p, TupleField)
}

// recordField parses: Name ':' Type
func recordField(p *parser) {
	m := p.start()
	name(p, NewTokenSet(Colon))
	if p.expect(Colon) {
		typ(p)
	}
	m.complete(p, RecordField)
}

// typeAliasDecl parses: 'type' Name GenericParamList? '=' Type
func typeAliasDecl(p *parser) completedMarker {
	m := p.start()
	p.assert(KwType)
	name(p, typeNameRecovery)
	if p.at(Lt) {
		genericParamList(p)
	}
	if p.expect(Eq) {
		typ(p)
	}
	return m.complete(p, TypeAliasDecl)
}

// constDecl parses: 'const' Name (':' Type)? '=' Expr
// The value ends at the end of the line.
func constDecl(p *parser) completedMarker {
	m := p.start()
	p.assert(KwConst)
	name(p, itemRecovery.With(Colon, Eq))
	if p.eat(Colon) {
		typ(p)
	}
	if p.expect(Eq) {
		p.setSkipper(SkipInline)
		expr(p)
		p.restoreSkipper()
	}
	return m.complete(p, ConstDecl)
}

// ----------------------------------------------------------------------------
// Lists

// delimited parses left (elem (',' elem)* ','?)? right as a node of the
// given kind. Line breaks inside the delimiters are trivia. Elements
// start with a token in first; anything else is reported as kind and
// skipped unless it is in recovery, which ends the list.
func delimited(p *parser, node SyntaxKind, left, right TokenKind, first TokenSet,
	elem func(*parser), kind ErrorKind, recovery TokenSet) {
	m := p.start()
	p.assert(left)
	p.setSkipper(SkipBlock)

	recovery = recovery.With(right)
	for !p.at(right) && !p.atEOF() {
		if !p.atSet(first) {
			if _, ok := p.errorRecover(kind, recovery); !ok {
				break
			}
			p.eat(Comma)
			continue
		}
		elem(p)
		if p.at(right) {
			break
		}
		if !p.eat(Comma) {
			if !p.atSet(first) {
				break
			}
			p.errorWant(ErrTokenRequired, Comma)
		}
	}

	p.restoreSkipper()
	p.expect(right)
	m.complete(p, node)
}
