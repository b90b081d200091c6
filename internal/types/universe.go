package types

import "github.com/you-not-fish/teya/internal/syntax"

// NoPos is the zero position value, used for predeclared objects.
var NoPos syntax.Pos

// Universe is the root scope containing all predeclared objects.
var Universe *Scope

var (
	universeInt    *TypeName
	universeFloat  *TypeName
	universeBool   *TypeName
	universeString *TypeName

	universeTrue  *Const
	universeFalse *Const
)

func init() {
	Universe = NewScope(nil, NoPos, NoPos, "universe")
	defPredeclaredTypes()
	defPredeclaredConsts()
}

// defPredeclaredTypes defines Int, Float, Bool and String in Universe.
func defPredeclaredTypes() {
	for _, kind := range []BasicKind{Bool, Int, Float, String} {
		typ := Typ[kind]
		obj := NewTypeName(NoPos, typ.name, typ)
		Universe.Insert(obj)

		switch kind {
		case Bool:
			universeBool = obj
		case Int:
			universeInt = obj
		case Float:
			universeFloat = obj
		case String:
			universeString = obj
		}
	}
}

// defPredeclaredConsts defines true and false in Universe.
func defPredeclaredConsts() {
	universeTrue = NewConst(NoPos, "true", Typ[Bool])
	Universe.Insert(universeTrue)

	universeFalse = NewConst(NoPos, "false", Typ[Bool])
	Universe.Insert(universeFalse)
}

func UniverseInt() *TypeName    { return universeInt }
func UniverseFloat() *TypeName  { return universeFloat }
func UniverseBool() *TypeName   { return universeBool }
func UniverseString() *TypeName { return universeString }

func UniverseTrue() *Const  { return universeTrue }
func UniverseFalse() *Const { return universeFalse }
