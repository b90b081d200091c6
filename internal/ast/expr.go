package ast

import (
	"strconv"

	"github.com/you-not-fish/teya/internal/syntax"
)

// ----------------------------------------------------------------------------
// Operators

// BinaryExpr is: LHS Op RHS
type BinaryExpr struct{ node }

func (*BinaryExpr) aExpr() {}

// Op returns the operator token.
func (e *BinaryExpr) Op() syntax.Token {
	t, _ := e.syn.FindTokenIn(syntax.BinaryOps)
	return t
}

// OpText returns the spelling of the operator.
func (e *BinaryExpr) OpText() string { return e.syn.TokenText(e.Op()) }

func (e *BinaryExpr) LHS() Expr { return before[Expr](e.syn, e.Op().Start) }
func (e *BinaryExpr) RHS() Expr { return after[Expr](e.syn, e.Op().End) }

// UnaryExpr is: Op Operand
type UnaryExpr struct{ node }

func (*UnaryExpr) aExpr() {}

func (e *UnaryExpr) Op() syntax.Token {
	t, _ := e.syn.FindTokenIn(syntax.UnaryOps)
	return t
}

func (e *UnaryExpr) OpText() string { return e.syn.TokenText(e.Op()) }
func (e *UnaryExpr) Operand() Expr  { return first[Expr](e.syn) }

// ParenExpr is: ( X )
type ParenExpr struct{ node }

func (*ParenExpr) aExpr() {}

func (e *ParenExpr) X() Expr { return first[Expr](e.syn) }

// ----------------------------------------------------------------------------
// Operands

// NumberLit is an integer or floating-point literal.
type NumberLit struct{ node }

func (*NumberLit) aExpr() {}

// Value returns the literal text.
func (l *NumberLit) Value() string {
	if t, ok := l.syn.FindTokenIn(syntax.NewTokenSet(syntax.Int, syntax.Float)); ok {
		return l.syn.TokenText(t)
	}
	return ""
}

// IsFloat reports whether the literal has a fractional part.
func (l *NumberLit) IsFloat() bool {
	_, ok := l.syn.FindToken(syntax.Float)
	return ok
}

// Int returns the value of an integer literal.
func (l *NumberLit) Int() (int64, error) {
	return strconv.ParseInt(tokenText(l.syn, syntax.Int), 10, 64)
}

// Float returns the value of the literal as a float.
func (l *NumberLit) Float() (float64, error) {
	return strconv.ParseFloat(l.Value(), 64)
}

// VarRef is a reference to a named value.
type VarRef struct{ node }

func (*VarRef) aExpr() {}

func (r *VarRef) Name() string { return tokenText(r.syn, syntax.Ident) }

// ----------------------------------------------------------------------------
// Postfix expressions

// CallExpr is: Fun(Args)
type CallExpr struct{ node }

func (*CallExpr) aExpr() {}

func (e *CallExpr) Fun() Expr      { return first[Expr](e.syn) }
func (e *CallExpr) Args() *ArgList { return first[*ArgList](e.syn) }

// FieldExpr is: X.Field
type FieldExpr struct{ node }

func (*FieldExpr) aExpr() {}

func (e *FieldExpr) X() Expr       { return first[Expr](e.syn) }
func (e *FieldExpr) Field() string { return tokenText(e.syn, syntax.Ident) }

// MethodCallExpr is: X.Method(Args)
type MethodCallExpr struct{ node }

func (*MethodCallExpr) aExpr() {}

func (e *MethodCallExpr) X() Expr        { return first[Expr](e.syn) }
func (e *MethodCallExpr) Method() string { return tokenText(e.syn, syntax.Ident) }
func (e *MethodCallExpr) Args() *ArgList { return first[*ArgList](e.syn) }

// IndexExpr is: X[Index]
type IndexExpr struct{ node }

func (*IndexExpr) aExpr() {}

func (e *IndexExpr) lbrack() syntax.Token {
	t, _ := e.syn.FindToken(syntax.LBrack)
	return t
}

func (e *IndexExpr) X() Expr     { return before[Expr](e.syn, e.lbrack().Start) }
func (e *IndexExpr) Index() Expr { return after[Expr](e.syn, e.lbrack().End) }

type ArgList struct{ node }

func (l *ArgList) Args() []*Arg { return all[*Arg](l.syn) }

type Arg struct{ node }

func (a *Arg) Value() Expr { return first[Expr](a.syn) }

// ----------------------------------------------------------------------------
// Strings

// StringLit is a string literal, possibly with interpolations.
type StringLit struct{ node }

func (*StringLit) aExpr() {}

// Segments returns the literal parts and interpolations in order.
func (s *StringLit) Segments() []StringSegment { return all[StringSegment](s.syn) }

// Terminated reports whether the literal has its closing quote.
func (s *StringLit) Terminated() bool {
	var quotes int
	for _, c := range s.syn.Children() {
		if c.IsToken() && c.Token.Kind == syntax.Quote {
			quotes++
		}
	}
	return quotes == 2
}

// StringPart is raw text inside a string literal.
type StringPart struct{ node }

func (*StringPart) aSegment() {}

func (p *StringPart) Value() string { return tokenText(p.syn, syntax.StringFragment) }

// StringInterp is: ${ X }
type StringInterp struct{ node }

func (*StringInterp) aSegment() {}

func (i *StringInterp) X() Expr { return first[Expr](i.syn) }
