package types

import "github.com/you-not-fish/teya/internal/syntax"

// Object represents a declared entity: a type, function, constant,
// parameter or field.
type Object interface {
	Name() string    // object name
	Type() Type      // object type; nil if not known
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope)
	aObject()
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a parameter, struct field or variant field.
type Var struct {
	object
	isField bool
}

// NewVar creates a new parameter object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}}
}

// NewField creates a new field object. Tuple variant fields have no name.
func NewField(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, isField: true}
}

// IsField reports whether this variable is a field.
func (v *Var) IsField() bool {
	return v.isField
}

// TypeName represents a declared type name: a struct, enum, alias,
// generic parameter or predeclared type.
type TypeName struct {
	object
	alias bool
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// NewAlias creates a type name for a type alias. Its type is set once
// the aliased type is resolved.
func NewAlias(pos syntax.Pos, name string) *TypeName {
	return &TypeName{object: object{name: name, pos: pos}, alias: true}
}

// IsAlias reports whether t was declared with type Name = ...
func (t *TypeName) IsAlias() bool {
	return t.alias
}

// SetType sets the type associated with the type name.
func (t *TypeName) SetType(typ Type) {
	t.typ = typ
}

// Func represents a declared function or method.
type Func struct {
	object
	sig *Signature
}

// NewFunc creates a new function object.
// The signature should be set later using SetSignature.
func NewFunc(pos syntax.Pos, name string) *Func {
	return &Func{object: object{name: name, pos: pos}}
}

// Signature returns the function signature.
func (f *Func) Signature() *Signature {
	return f.sig
}

// SetSignature sets the function signature.
func (f *Func) SetSignature(sig *Signature) {
	f.sig = sig
	f.typ = sig
}

// Const represents a declared constant or a predeclared boolean.
type Const struct {
	object
}

// NewConst creates a new constant object. A nil type means the type is
// determined by an initializer the collector does not evaluate.
func NewConst(pos syntax.Pos, name string, typ Type) *Const {
	return &Const{object: object{name: name, typ: typ, pos: pos}}
}

// SetType sets the constant's type.
func (c *Const) SetType(typ Type) {
	c.typ = typ
}
