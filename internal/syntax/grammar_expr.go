package syntax

// expr parses an expression. It reports false when no operand could be
// parsed; the error has been recorded by then.
func expr(p *parser) (completedMarker, bool) {
	return binaryExpr(p, 0)
}

// infixBindingPower returns the left and right binding powers of a binary
// operator. Right is one above left, which makes every level
// left-associative.
func infixBindingPower(k TokenKind) (left, right int, ok bool) {
	switch k {
	case PipePipe:
		return 1, 2, true
	case AmpAmp:
		return 3, 4, true
	case EqEq, BangEq:
		return 5, 6, true
	case Lt, LtEq, Gt, GtEq:
		return 7, 8, true
	case Plus, Minus:
		return 9, 10, true
	case Star, Slash, Percent:
		return 11, 12, true
	}
	return 0, 0, false
}

// binaryExpr implements precedence climbing: each operator retroactively
// becomes the parent of the operand parsed before it.
func binaryExpr(p *parser, minBP int) (completedMarker, bool) {
	lhs, ok := unaryExpr(p)
	if !ok {
		return lhs, false
	}

	for {
		l, r, ok := infixBindingPower(p.current())
		if !ok || l < minBP {
			break
		}
		m := lhs.precede(p)
		p.bump()
		binaryExpr(p, r)
		lhs = m.complete(p, BinaryExpr)
	}
	return lhs, true
}

// unaryExpr parses: ('-' | '+' | '!') unaryExpr | postfixExpr
func unaryExpr(p *parser) (completedMarker, bool) {
	if !p.atSet(UnaryOps) {
		return postfixExpr(p)
	}
	m := p.start()
	p.bump()
	unaryExpr(p)
	return m.complete(p, UnaryExpr), true
}

// postfixExpr parses a primary expression followed by any number of
// field accesses, method calls, calls and index operations.
func postfixExpr(p *parser) (completedMarker, bool) {
	lhs, ok := primaryExpr(p)
	if !ok {
		return lhs, false
	}

	for {
		switch p.current() {
		case Dot:
			m := lhs.precede(p)
			p.bump()
			p.expect(Ident)
			if p.at(LParen) {
				argList(p)
				lhs = m.complete(p, MethodCallExpr)
			} else {
				lhs = m.complete(p, FieldExpr)
			}

		case LParen:
			m := lhs.precede(p)
			argList(p)
			lhs = m.complete(p, CallExpr)

		case LBrack:
			m := lhs.precede(p)
			p.bump()
			p.setSkipper(SkipBlock)
			expr(p)
			p.restoreSkipper()
			p.expect(RBrack)
			lhs = m.complete(p, IndexExpr)

		default:
			return lhs, true
		}
	}
}

// primaryExpr parses a literal, a variable, a parenthesized expression or
// a string. A token that cannot start an expression is wrapped in an error
// node and used as the operand, unless it is a recovery point.
func primaryExpr(p *parser) (completedMarker, bool) {
	switch p.current() {
	case Int, Float:
		m := p.start()
		p.bump()
		return m.complete(p, NumberLit), true

	case Ident:
		m := p.start()
		p.bump()
		return m.complete(p, VarRef), true

	case LParen:
		m := p.start()
		p.bump()
		p.setSkipper(SkipBlock)
		expr(p)
		p.restoreSkipper()
		p.expect(RParen)
		return m.complete(p, ParenExpr), true

	case Quote:
		return stringLit(p), true
	}

	return p.errorRecover(ErrExprRequired, exprRecovery)
}

func argList(p *parser) {
	delimited(p, ArgList, LParen, RParen, exprFirst, arg, ErrExprRequired, itemRecovery)
}

func arg(p *parser) {
	m := p.start()
	expr(p)
	m.complete(p, Arg)
}

// stringLit parses: '"' (StringPart | StringInterp)* '"'
//
// Nothing inside a string is trivia. A string left open at the end of the
// line is closed by the missing-quote error.
func stringLit(p *parser) completedMarker {
	m := p.start()
	p.setSkipper(SkipNone)
	p.assert(Quote)

loop:
	for {
		switch p.current() {
		case StringFragment:
			part := p.start()
			p.bump()
			part.complete(p, StringPart)
		case DollarLBrace:
			stringInterp(p)
		default:
			break loop
		}
	}

	p.expect(Quote)
	p.restoreSkipper()
	return m.complete(p, StringLit)
}

// stringInterp parses: '${' Expr '}'
func stringInterp(p *parser) {
	m := p.start()
	p.setSkipper(SkipInline)
	p.assert(DollarLBrace)
	expr(p)
	p.expect(RBrace)
	p.restoreSkipper()
	m.complete(p, StringInterp)
}
