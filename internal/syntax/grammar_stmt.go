package syntax

// block parses: '{' (Stmt ';'?)* '}'
//
// Statements are separated by line breaks, so each one is parsed with the
// inline skipper while the block itself skips line breaks between them.
func block(p *parser) completedMarker {
	m := p.start()
	if !p.expect(LBrace) {
		return m.complete(p, Block)
	}
	p.setSkipper(SkipBlock)

	for !p.at(RBrace) && !p.atEOF() {
		if p.atSet(itemFirst) {
			break // missing '}', let the enclosing item list resume
		}
		before := p.pos

		p.setSkipper(SkipInline)
		stmt(p)
		if p.pos != before && !p.atSet(stmtEnd) {
			p.errorWant(ErrTokenRequired, EOL)
		}
		p.restoreSkipper()

		p.eat(Semi)
		if p.pos == before {
			p.bumpError()
		}
	}

	p.restoreSkipper()
	p.expect(RBrace)
	return m.complete(p, Block)
}

// stmt parses one statement.
func stmt(p *parser) {
	switch p.current() {
	case KwLet:
		letStmt(p)
	case KwIf:
		ifStmt(p)
	case KwWhile:
		whileStmt(p)
	case KwFor:
		forStmt(p)
	case KwReturn:
		returnStmt(p)
	case LBrace:
		block(p)
	default:
		if p.atSet(exprFirst) {
			exprStmt(p)
			return
		}
		p.errorRecover(ErrExprRequired, TokenSet{})
	}
}

// letStmt parses: 'let' Name (':' Type)? ('=' Expr)?
func letStmt(p *parser) {
	m := p.start()
	p.assert(KwLet)
	name(p, NewTokenSet(Colon, Eq, EOL, Semi))
	if p.eat(Colon) {
		typ(p)
	}
	if p.eat(Eq) {
		expr(p)
	}
	m.complete(p, LetStmt)
}

// ifStmt parses: 'if' Expr Block ElseClause?
func ifStmt(p *parser) {
	m := p.start()
	p.assert(KwIf)
	expr(p)
	block(p)
	if p.at(KwElse) {
		em := p.start()
		p.assert(KwElse)
		if p.at(KwIf) {
			ifStmt(p)
		} else {
			block(p)
		}
		em.complete(p, ElseClause)
	}
	m.complete(p, IfStmt)
}

// whileStmt parses: 'while' Expr Block
func whileStmt(p *parser) {
	m := p.start()
	p.assert(KwWhile)
	expr(p)
	block(p)
	m.complete(p, WhileStmt)
}

// forStmt parses: 'for' Name 'in' Expr Block
func forStmt(p *parser) {
	m := p.start()
	p.assert(KwFor)
	name(p, NewTokenSet(KwIn))
	if p.expect(KwIn) {
		expr(p)
	}
	block(p)
	m.complete(p, ForStmt)
}

// returnStmt parses: 'return' Expr?
func returnStmt(p *parser) {
	m := p.start()
	p.assert(KwReturn)
	if p.atSet(exprFirst) {
		expr(p)
	}
	m.complete(p, ReturnStmt)
}

// exprStmt parses an expression and then decides whether it is the target
// of an assignment or a statement on its own.
func exprStmt(p *parser) {
	lhs, ok := expr(p)
	if !ok {
		return
	}
	m := lhs.precede(p)
	if p.atSet(AssignOps) {
		p.bump()
		expr(p)
		m.complete(p, AssignStmt)
		return
	}
	m.complete(p, ExprStmt)
}
