package types

import "strings"

// Named represents a struct or enum declaration, or an instance of one
// with type arguments (Point<Int>).
type Named struct {
	typ
	obj        *TypeName    // type name object
	tparams    []*TypeParam // generic parameters of the declaration
	underlying Type         // *Struct or *Enum; nil until resolved
	methods    []*Func      // methods declared in a struct body

	orig  *Named // declaration this is an instance of, or nil
	targs []Type // type arguments of an instance
}

// NewNamed creates a new named type and binds obj to it.
// The underlying type may be set later using SetUnderlying.
func NewNamed(obj *TypeName, underlying Type) *Named {
	n := &Named{obj: obj, underlying: underlying}
	if obj != nil {
		obj.typ = n
	}
	return n
}

// Obj returns the type name object.
func (n *Named) Obj() *TypeName {
	return n.obj
}

// Origin returns the declared type an instance was created from, or n
// itself.
func (n *Named) Origin() *Named {
	if n.orig != nil {
		return n.orig
	}
	return n
}

// TypeParams returns the generic parameters of the declaration.
func (n *Named) TypeParams() []*TypeParam {
	return n.Origin().tparams
}

// SetTypeParams sets the generic parameters.
func (n *Named) SetTypeParams(tparams []*TypeParam) {
	n.tparams = tparams
}

// TypeArgs returns the type arguments of an instance.
func (n *Named) TypeArgs() []Type {
	return n.targs
}

// Instantiate returns n applied to targs. Type arguments are recorded,
// not substituted into the underlying type.
func (n *Named) Instantiate(targs []Type) *Named {
	orig := n.Origin()
	return &Named{obj: orig.obj, orig: orig, targs: targs}
}

// SetUnderlying sets the underlying type.
func (n *Named) SetUnderlying(underlying Type) {
	n.underlying = underlying
}

// Underlying implements Type.
// For named types, returns the underlying type of the declaration.
func (n *Named) Underlying() Type {
	if n.orig != nil {
		return n.orig.Underlying()
	}
	return n.underlying
}

// String implements Type.
func (n *Named) String() string {
	name := "unnamed"
	if n.obj != nil {
		name = n.obj.Name()
	}
	if len(n.targs) == 0 {
		return name
	}
	var buf strings.Builder
	buf.WriteString(name)
	buf.WriteString("<")
	for i, t := range n.targs {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(t.String())
	}
	buf.WriteString(">")
	return buf.String()
}

// Methods returns all methods.
func (n *Named) Methods() []*Func {
	return n.Origin().methods
}

// AddMethod adds a method to this named type.
func (n *Named) AddMethod(m *Func) {
	n.methods = append(n.methods, m)
}

// LookupMethod looks up a method by name.
// Returns nil if not found.
func (n *Named) LookupMethod(name string) *Func {
	for _, m := range n.Methods() {
		if m.Name() == name {
			return m
		}
	}
	return nil
}
