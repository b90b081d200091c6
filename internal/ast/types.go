package ast

import "github.com/you-not-fish/teya/internal/syntax"

// TypeRef is a named type with optional arguments: Name<Args>
type TypeRef struct{ node }

func (*TypeRef) aType() {}

// Name returns the referenced type name.
func (t *TypeRef) Name() string                 { return tokenText(t.syn, syntax.Ident) }
func (t *TypeRef) GenericArgs() *GenericArgList { return first[*GenericArgList](t.syn) }

// ArrayType is [Elem] or [Elem; Len].
type ArrayType struct{ node }

func (*ArrayType) aType() {}

func (t *ArrayType) Elem() Type { return first[Type](t.syn) }

// Len returns the length literal, or "" for an unsized array.
func (t *ArrayType) Len() string { return tokenText(t.syn, syntax.Int) }

// TupleType is (T, U, ...). The empty tuple is the unit type.
type TupleType struct{ node }

func (*TupleType) aType() {}

func (t *TupleType) Elems() []Type { return all[Type](t.syn) }
