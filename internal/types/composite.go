package types

import (
	"fmt"
	"strings"
)

// Array represents an array type [Elem; N] or, when unsized, [Elem].
type Array struct {
	typ
	len  int64 // -1 if unsized
	elem Type
}

// NewArray creates a new array type. A negative length makes the array
// unsized.
func NewArray(len int64, elem Type) *Array {
	if len < 0 {
		len = -1
	}
	return &Array{len: len, elem: elem}
}

// Len returns the array length, or -1 for an unsized array.
func (a *Array) Len() int64 {
	return a.len
}

// Sized reports whether the array has a fixed length.
func (a *Array) Sized() bool {
	return a.len >= 0
}

// Elem returns the array element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Underlying implements Type.
func (a *Array) Underlying() Type {
	return a
}

// String implements Type.
func (a *Array) String() string {
	if a.len < 0 {
		return "[" + a.elem.String() + "]"
	}
	return fmt.Sprintf("[%s; %d]", a.elem, a.len)
}

// Tuple represents a tuple type (T, U, ...). The empty tuple is the unit
// type.
type Tuple struct {
	typ
	elems []Type
}

// NewTuple creates a new tuple type.
func NewTuple(elems ...Type) *Tuple {
	return &Tuple{elems: elems}
}

func (t *Tuple) Len() int         { return len(t.elems) }
func (t *Tuple) At(i int) Type    { return t.elems[i] }
func (t *Tuple) Elems() []Type    { return t.elems }
func (t *Tuple) Underlying() Type { return t }

// String implements Type.
func (t *Tuple) String() string {
	var buf strings.Builder
	buf.WriteString("(")
	for i, e := range t.elems {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(e.String())
	}
	buf.WriteString(")")
	return buf.String()
}

// Struct represents the fields of a struct declaration.
type Struct struct {
	typ
	fields []*Var
}

// NewStruct creates a new struct type with the given fields.
func NewStruct(fields []*Var) *Struct {
	return &Struct{fields: fields}
}

// NumFields returns the number of fields.
func (s *Struct) NumFields() int {
	return len(s.fields)
}

// Field returns the field at the given index.
func (s *Struct) Field(i int) *Var {
	return s.fields[i]
}

// Fields returns all fields.
func (s *Struct) Fields() []*Var {
	return s.fields
}

// LookupField returns the field with the given name, or nil.
func (s *Struct) LookupField(name string) *Var {
	for _, f := range s.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Underlying implements Type.
func (s *Struct) Underlying() Type {
	return s
}

// String implements Type.
func (s *Struct) String() string {
	return "struct {" + joinVars(s.fields, "; ", true) + "}"
}

// VariantKind describes the shape of an enum variant.
type VariantKind uint8

const (
	UnitVariant   VariantKind = iota // Name
	TupleVariant                     // Name(T, U)
	RecordVariant                    // Name { x: T }
)

// Variant is one alternative of an enum. Tuple variants have unnamed
// fields.
type Variant struct {
	name   string
	kind   VariantKind
	fields []*Var
}

// NewVariant creates a new enum variant.
func NewVariant(name string, kind VariantKind, fields []*Var) *Variant {
	return &Variant{name: name, kind: kind, fields: fields}
}

func (v *Variant) Name() string      { return v.name }
func (v *Variant) Kind() VariantKind { return v.kind }
func (v *Variant) Fields() []*Var    { return v.fields }

func (v *Variant) String() string {
	switch v.kind {
	case TupleVariant:
		return v.name + "(" + joinVars(v.fields, ", ", false) + ")"
	case RecordVariant:
		return v.name + " {" + joinVars(v.fields, ", ", true) + "}"
	}
	return v.name
}

// Enum represents the variants of an enum declaration.
type Enum struct {
	typ
	variants []*Variant
}

// NewEnum creates a new enum type with the given variants.
func NewEnum(variants []*Variant) *Enum {
	return &Enum{variants: variants}
}

// Variants returns all variants.
func (e *Enum) Variants() []*Variant {
	return e.variants
}

// LookupVariant returns the variant with the given name, or nil.
func (e *Enum) LookupVariant(name string) *Variant {
	for _, v := range e.variants {
		if v.name == name {
			return v
		}
	}
	return nil
}

// Underlying implements Type.
func (e *Enum) Underlying() Type {
	return e
}

// String implements Type.
func (e *Enum) String() string {
	var buf strings.Builder
	buf.WriteString("enum {")
	for i, v := range e.variants {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(v.String())
	}
	buf.WriteString("}")
	return buf.String()
}

// Signature represents the type of a function or method.
type Signature struct {
	typ
	tparams []*TypeParam // generic parameters
	recv    *Var         // receiver (nil for non-method functions)
	params  []*Var       // parameters
	result  Type         // return type (nil if the function returns nothing)
}

// NewSignature creates a new function type.
func NewSignature(tparams []*TypeParam, recv *Var, params []*Var, result Type) *Signature {
	return &Signature{tparams: tparams, recv: recv, params: params, result: result}
}

// TypeParams returns the generic parameters of the function.
func (s *Signature) TypeParams() []*TypeParam {
	return s.tparams
}

// Recv returns the receiver, or nil if this is not a method.
func (s *Signature) Recv() *Var {
	return s.recv
}

// Params returns the parameter list.
func (s *Signature) Params() []*Var {
	return s.params
}

// NumParams returns the number of parameters.
func (s *Signature) NumParams() int {
	return len(s.params)
}

// Param returns the parameter at index i.
func (s *Signature) Param(i int) *Var {
	return s.params[i]
}

// Result returns the result type, or nil.
func (s *Signature) Result() Type {
	return s.result
}

// Underlying implements Type.
func (s *Signature) Underlying() Type {
	return s
}

// String implements Type.
func (s *Signature) String() string {
	var buf strings.Builder
	buf.WriteString("fn")
	writeTypeParams(&buf, s.tparams)
	buf.WriteString("(")
	buf.WriteString(joinVars(s.params, ", ", true))
	buf.WriteString(")")
	if s.result != nil {
		buf.WriteString(" -> ")
		buf.WriteString(s.result.String())
	}
	return buf.String()
}

// TypeParam is a generic parameter of a declaration. It is its own
// underlying type.
type TypeParam struct {
	typ
	obj   *TypeName
	index int
}

// NewTypeParam creates a type parameter and binds obj to it.
func NewTypeParam(obj *TypeName, index int) *TypeParam {
	t := &TypeParam{obj: obj, index: index}
	if obj != nil {
		obj.typ = t
	}
	return t
}

func (t *TypeParam) Obj() *TypeName   { return t.obj }
func (t *TypeParam) Index() int       { return t.index }
func (t *TypeParam) Underlying() Type { return t }
func (t *TypeParam) String() string   { return t.obj.Name() }

func joinVars(vars []*Var, sep string, named bool) string {
	var buf strings.Builder
	for i, v := range vars {
		if i > 0 {
			buf.WriteString(sep)
		}
		if named {
			buf.WriteString(v.Name())
			buf.WriteString(": ")
		}
		buf.WriteString(typeString(v.Type()))
	}
	return buf.String()
}

func writeTypeParams(buf *strings.Builder, tparams []*TypeParam) {
	if len(tparams) == 0 {
		return
	}
	buf.WriteString("<")
	for i, t := range tparams {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(t.String())
	}
	buf.WriteString(">")
}

// typeString is like t.String but accepts a nil type.
func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
