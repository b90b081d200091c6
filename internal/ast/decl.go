package ast

import "github.com/you-not-fish/teya/internal/syntax"

// ----------------------------------------------------------------------------
// Declarations

// FnDecl is a function declaration, at top level or inside a struct.
// fn Name<T>(Params) -> Result { Body }
type FnDecl struct{ node }

func (*FnDecl) aItem()   {}
func (*FnDecl) aMember() {}

func (d *FnDecl) Name() *Name                      { return first[*Name](d.syn) }
func (d *FnDecl) GenericParams() *GenericParamList { return first[*GenericParamList](d.syn) }
func (d *FnDecl) Params() *ParamList               { return first[*ParamList](d.syn) }
func (d *FnDecl) ReturnType() *ReturnType          { return first[*ReturnType](d.syn) }
func (d *FnDecl) Body() *Block                     { return first[*Block](d.syn) }

// Result returns the declared result type, or nil.
func (d *FnDecl) Result() Type {
	if r := d.ReturnType(); r != nil {
		return r.Type()
	}
	return nil
}

// StructDecl is: struct Name<T> { Members }
type StructDecl struct{ node }

func (*StructDecl) aItem() {}

func (d *StructDecl) Name() *Name                      { return first[*Name](d.syn) }
func (d *StructDecl) GenericParams() *GenericParamList { return first[*GenericParamList](d.syn) }
func (d *StructDecl) Body() *StructBody                { return first[*StructBody](d.syn) }

// EnumDecl is: enum Name<T> { Variants }
type EnumDecl struct{ node }

func (*EnumDecl) aItem() {}

func (d *EnumDecl) Name() *Name                      { return first[*Name](d.syn) }
func (d *EnumDecl) GenericParams() *GenericParamList { return first[*GenericParamList](d.syn) }
func (d *EnumDecl) Body() *EnumBody                  { return first[*EnumBody](d.syn) }

// TypeAliasDecl is: type Name<T> = Type
type TypeAliasDecl struct{ node }

func (*TypeAliasDecl) aItem() {}

func (d *TypeAliasDecl) Name() *Name                      { return first[*Name](d.syn) }
func (d *TypeAliasDecl) GenericParams() *GenericParamList { return first[*GenericParamList](d.syn) }
func (d *TypeAliasDecl) Type() Type                       { return first[Type](d.syn) }

// ConstDecl is: const Name: Type = Value
type ConstDecl struct{ node }

func (*ConstDecl) aItem() {}

func (d *ConstDecl) Name() *Name { return first[*Name](d.syn) }

// Type returns the declared type, or nil if it is inferred.
func (d *ConstDecl) Type() Type { return first[Type](d.syn) }

// Value returns the initializer.
func (d *ConstDecl) Value() Expr {
	if eq, ok := d.syn.FindToken(syntax.Eq); ok {
		return after[Expr](d.syn, eq.End)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Generics and parameters

type GenericParamList struct{ node }

func (l *GenericParamList) Params() []*GenericParam { return all[*GenericParam](l.syn) }

type GenericParam struct{ node }

func (p *GenericParam) Name() *Name { return first[*Name](p.syn) }

type GenericArgList struct{ node }

func (l *GenericArgList) Args() []*GenericArg { return all[*GenericArg](l.syn) }

type GenericArg struct{ node }

func (a *GenericArg) Type() Type { return first[Type](a.syn) }

type ParamList struct{ node }

func (l *ParamList) Params() []*Param { return all[*Param](l.syn) }

// Param is: Name: Type
type Param struct{ node }

func (p *Param) Name() *Name { return first[*Name](p.syn) }
func (p *Param) Type() Type  { return first[Type](p.syn) }

// ReturnType is: -> Type
type ReturnType struct{ node }

func (r *ReturnType) Type() Type { return first[Type](r.syn) }

// ----------------------------------------------------------------------------
// Struct and enum bodies

type StructBody struct{ node }

// Members returns the fields and methods in declaration order.
func (b *StructBody) Members() []StructMember { return all[StructMember](b.syn) }
func (b *StructBody) Fields() []*StructField  { return all[*StructField](b.syn) }
func (b *StructBody) Methods() []*FnDecl      { return all[*FnDecl](b.syn) }

// StructField is: Name: Type = Default
type StructField struct{ node }

func (*StructField) aMember() {}

func (f *StructField) Name() *Name { return first[*Name](f.syn) }
func (f *StructField) Type() Type  { return first[Type](f.syn) }

// Default returns the default value, or nil.
func (f *StructField) Default() Expr {
	if eq, ok := f.syn.FindToken(syntax.Eq); ok {
		return after[Expr](f.syn, eq.End)
	}
	return nil
}

type EnumBody struct{ node }

func (b *EnumBody) Variants() []*EnumVariant { return all[*EnumVariant](b.syn) }

// EnumVariant is a unit variant (Name), a tuple variant (Name(T, U)) or
// a record variant (Name { x: T }).
type EnumVariant struct{ node }

func (v *EnumVariant) Name() *Name                 { return first[*Name](v.syn) }
func (v *EnumVariant) TupleFields() *TupleFields   { return first[*TupleFields](v.syn) }
func (v *EnumVariant) RecordFields() *RecordFields { return first[*RecordFields](v.syn) }

type TupleFields struct{ node }

func (f *TupleFields) Fields() []*TupleField { return all[*TupleField](f.syn) }

type TupleField struct{ node }

func (f *TupleField) Type() Type { return first[Type](f.syn) }

type RecordFields struct{ node }

func (f *RecordFields) Fields() []*RecordField { return all[*RecordField](f.syn) }

type RecordField struct{ node }

func (f *RecordField) Name() *Name { return first[*Name](f.syn) }
func (f *RecordField) Type() Type  { return first[Type](f.syn) }
