// Package ast provides typed views over the concrete syntax tree.
//
// Every syntax kind has a view type wrapping its *syntax.Node. Views add
// no data of their own; they answer structural questions such as "the
// right operand of this binary expression" by looking at the node's
// children. A child that is missing from malformed input is reported as
// nil.
package ast

import (
	"github.com/you-not-fish/teya/internal/syntax"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// Node is implemented by every view. The union interfaces group the views
// that may appear in the same grammatical position.

// Node is the interface implemented by all views.
type Node interface {
	Kind() syntax.SyntaxKind // kind of the underlying node
	Syntax() *syntax.Node    // the underlying node
	aNode()
}

// Item is a top-level declaration.
type Item interface {
	Node
	aItem()
}

// StructMember is a field or method of a struct.
type StructMember interface {
	Node
	aMember()
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	aStmt()
}

// Expr is an expression.
type Expr interface {
	Node
	aExpr()
}

// Type is a type expression.
type Type interface {
	Node
	aType()
}

// StringSegment is a literal part or an interpolation of a string.
type StringSegment interface {
	Node
	aSegment()
}

// node is embedded in every view.
type node struct {
	syn *syntax.Node
}

func (n node) Kind() syntax.SyntaxKind { return n.syn.Kind() }
func (n node) Syntax() *syntax.Node    { return n.syn }
func (n node) aNode()                  {}

// Text returns the source text covered by the node, trivia included.
func (n node) Text() string { return n.syn.Text() }

// ----------------------------------------------------------------------------
// Construction

// New returns the view for n, or nil if n is nil.
func New(n *syntax.Node) Node {
	if n == nil {
		return nil
	}
	return wrap(n.Kind(), n)
}

// CanCast reports whether a node of the given kind has a view of type T.
// T may be a view type such as *FnDecl or a union such as Expr.
func CanCast[T Node](kind syntax.SyntaxKind) bool {
	_, ok := wrap(kind, nil).(T)
	return ok
}

// Cast returns the view of n as a T.
func Cast[T Node](n *syntax.Node) (T, bool) {
	v, ok := New(n).(T)
	return v, ok
}

// Walk calls fn for root and every descendant of root that can be viewed
// as a T, in depth-first pre-order.
func Walk[T Node](root Node, fn func(T)) {
	syntax.Walk(root.Syntax(), func(n *syntax.Node) bool {
		if v, ok := Cast[T](n); ok {
			fn(v)
		}
		return true
	})
}

func wrap(kind syntax.SyntaxKind, n *syntax.Node) Node {
	b := node{n}
	switch kind {
	case syntax.ErrorNode:
		return &ErrorNode{b}
	case syntax.Root:
		return &Root{b}
	case syntax.SourceFile:
		return &SourceFile{b}
	case syntax.Name:
		return &Name{b}

	case syntax.FnDecl:
		return &FnDecl{b}
	case syntax.StructDecl:
		return &StructDecl{b}
	case syntax.EnumDecl:
		return &EnumDecl{b}
	case syntax.TypeAliasDecl:
		return &TypeAliasDecl{b}
	case syntax.ConstDecl:
		return &ConstDecl{b}
	case syntax.GenericParamList:
		return &GenericParamList{b}
	case syntax.GenericParam:
		return &GenericParam{b}
	case syntax.GenericArgList:
		return &GenericArgList{b}
	case syntax.GenericArg:
		return &GenericArg{b}
	case syntax.ParamList:
		return &ParamList{b}
	case syntax.Param:
		return &Param{b}
	case syntax.ReturnType:
		return &ReturnType{b}
	case syntax.StructBody:
		return &StructBody{b}
	case syntax.StructField:
		return &StructField{b}
	case syntax.EnumBody:
		return &EnumBody{b}
	case syntax.EnumVariant:
		return &EnumVariant{b}
	case syntax.TupleFields:
		return &TupleFields{b}
	case syntax.TupleField:
		return &TupleField{b}
	case syntax.RecordFields:
		return &RecordFields{b}
	case syntax.RecordField:
		return &RecordField{b}

	case syntax.TypeRef:
		return &TypeRef{b}
	case syntax.ArrayType:
		return &ArrayType{b}
	case syntax.TupleType:
		return &TupleType{b}

	case syntax.Block:
		return &Block{b}
	case syntax.LetStmt:
		return &LetStmt{b}
	case syntax.IfStmt:
		return &IfStmt{b}
	case syntax.ElseClause:
		return &ElseClause{b}
	case syntax.WhileStmt:
		return &WhileStmt{b}
	case syntax.ForStmt:
		return &ForStmt{b}
	case syntax.ReturnStmt:
		return &ReturnStmt{b}
	case syntax.ExprStmt:
		return &ExprStmt{b}
	case syntax.AssignStmt:
		return &AssignStmt{b}

	case syntax.BinaryExpr:
		return &BinaryExpr{b}
	case syntax.UnaryExpr:
		return &UnaryExpr{b}
	case syntax.ParenExpr:
		return &ParenExpr{b}
	case syntax.NumberLit:
		return &NumberLit{b}
	case syntax.VarRef:
		return &VarRef{b}
	case syntax.CallExpr:
		return &CallExpr{b}
	case syntax.FieldExpr:
		return &FieldExpr{b}
	case syntax.MethodCallExpr:
		return &MethodCallExpr{b}
	case syntax.IndexExpr:
		return &IndexExpr{b}
	case syntax.ArgList:
		return &ArgList{b}
	case syntax.Arg:
		return &Arg{b}
	case syntax.StringLit:
		return &StringLit{b}
	case syntax.StringPart:
		return &StringPart{b}
	case syntax.StringInterp:
		return &StringInterp{b}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Child lookup

// first returns the first child node of n viewable as a T.
func first[T Node](n *syntax.Node) T {
	for _, c := range n.ChildNodes() {
		if v, ok := Cast[T](c); ok {
			return v
		}
	}
	var zero T
	return zero
}

// all returns the child nodes of n viewable as a T.
func all[T Node](n *syntax.Node) []T {
	var vs []T
	for _, c := range n.ChildNodes() {
		if v, ok := Cast[T](c); ok {
			vs = append(vs, v)
		}
	}
	return vs
}

// before returns the last child node of n ending at or before offset,
// if it is a T.
func before[T Node](n *syntax.Node, offset int) T {
	var last *syntax.Node
	for _, c := range n.ChildNodes() {
		if c.End() > offset {
			break
		}
		last = c
	}
	v, _ := Cast[T](last)
	return v
}

// after returns the first child node of n starting at or after offset,
// if it is a T.
func after[T Node](n *syntax.Node, offset int) T {
	for _, c := range n.ChildNodes() {
		if c.Start() >= offset {
			v, _ := Cast[T](c)
			return v
		}
	}
	var zero T
	return zero
}

// tokenText returns the text of the first direct child token of kind.
func tokenText(n *syntax.Node, kind syntax.TokenKind) string {
	if t, ok := n.FindToken(kind); ok {
		return n.TokenText(t)
	}
	return ""
}

// ----------------------------------------------------------------------------
// Common views

// ErrorNode wraps input the parser could not place.
type ErrorNode struct{ node }

// Root holds the result of parsing a single expression, type or block.
type Root struct{ node }

// Node returns the parsed construct, or nil if nothing was parsed.
func (r *Root) Node() Node {
	for _, c := range r.syn.ChildNodes() {
		if c.Kind() != syntax.ErrorNode {
			return New(c)
		}
	}
	return nil
}

// SourceFile is a whole file.
type SourceFile struct{ node }

// Items returns the well-formed declarations of the file.
func (f *SourceFile) Items() []Item { return all[Item](f.syn) }

// Name is a declared identifier.
type Name struct{ node }

// Value returns the identifier.
func (n *Name) Value() string { return tokenText(n.syn, syntax.Ident) }

// Token returns the identifier token.
func (n *Name) Token() syntax.Token {
	t, _ := n.syn.FindToken(syntax.Ident)
	return t
}
