package ast

import "github.com/you-not-fish/teya/internal/syntax"

// ----------------------------------------------------------------------------
// Statements

// Block is a braced statement list. It is also a statement itself.
type Block struct{ node }

func (*Block) aStmt() {}

func (b *Block) Stmts() []Stmt { return all[Stmt](b.syn) }

// LetStmt is: let Name: Type = Value
type LetStmt struct{ node }

func (*LetStmt) aStmt() {}

func (s *LetStmt) Name() *Name { return first[*Name](s.syn) }
func (s *LetStmt) Type() Type  { return first[Type](s.syn) }

func (s *LetStmt) Value() Expr {
	if eq, ok := s.syn.FindToken(syntax.Eq); ok {
		return after[Expr](s.syn, eq.End)
	}
	return nil
}

// IfStmt is: if Cond { Then } else ...
type IfStmt struct{ node }

func (*IfStmt) aStmt() {}

func (s *IfStmt) Cond() Expr        { return first[Expr](s.syn) }
func (s *IfStmt) Then() *Block      { return first[*Block](s.syn) }
func (s *IfStmt) Else() *ElseClause { return first[*ElseClause](s.syn) }

// ElseClause holds either a chained if statement or a block.
type ElseClause struct{ node }

func (c *ElseClause) If() *IfStmt   { return first[*IfStmt](c.syn) }
func (c *ElseClause) Block() *Block { return first[*Block](c.syn) }

// WhileStmt is: while Cond { Body }
type WhileStmt struct{ node }

func (*WhileStmt) aStmt() {}

func (s *WhileStmt) Cond() Expr   { return first[Expr](s.syn) }
func (s *WhileStmt) Body() *Block { return first[*Block](s.syn) }

// ForStmt is: for Var in Iter { Body }
type ForStmt struct{ node }

func (*ForStmt) aStmt() {}

func (s *ForStmt) Var() *Name   { return first[*Name](s.syn) }
func (s *ForStmt) Iter() Expr   { return first[Expr](s.syn) }
func (s *ForStmt) Body() *Block { return first[*Block](s.syn) }

// ReturnStmt is: return Value
type ReturnStmt struct{ node }

func (*ReturnStmt) aStmt() {}

// Value returns the returned expression, or nil for a bare return.
func (s *ReturnStmt) Value() Expr { return first[Expr](s.syn) }

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct{ node }

func (*ExprStmt) aStmt() {}

func (s *ExprStmt) Expr() Expr { return first[Expr](s.syn) }

// AssignStmt is: Target op Value, where op is = or a compound assignment.
type AssignStmt struct{ node }

func (*AssignStmt) aStmt() {}

// Op returns the assignment operator.
func (s *AssignStmt) Op() syntax.Token {
	t, _ := s.syn.FindTokenIn(syntax.AssignOps)
	return t
}

func (s *AssignStmt) Target() Expr { return before[Expr](s.syn, s.Op().Start) }
func (s *AssignStmt) Value() Expr  { return after[Expr](s.syn, s.Op().End) }
