package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // type of an unresolved type expression

	Bool
	Int
	Float
	String
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsBoolean BasicInfo = 1 << iota
	IsInteger
	IsFloat
	IsString
	IsNumeric = IsInteger | IsFloat
)

// Basic represents a predeclared type: Bool, Int, Float or String.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

func (b *Basic) Kind() BasicKind  { return b.kind }
func (b *Basic) Info() BasicInfo  { return b.info }
func (b *Basic) Name() string     { return b.name }
func (b *Basic) Underlying() Type { return b }
func (b *Basic) String() string   { return b.name }

// Typ holds the basic types, indexed by BasicKind.
// Typ[Invalid] stands in for types that could not be resolved, so that
// a declaration with an error still has a complete type.
var Typ = []*Basic{
	Invalid: {kind: Invalid, name: "invalid type"},
	Bool:    {kind: Bool, info: IsBoolean, name: "Bool"},
	Int:     {kind: Int, info: IsInteger, name: "Int"},
	Float:   {kind: Float, info: IsFloat, name: "Float"},
	String:  {kind: String, info: IsString, name: "String"},
}
