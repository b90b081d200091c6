package types

// Identical reports whether x and y are identical types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return identical(x, y)
}

func identical(x, y Type) bool {
	// Two named types are identical if they come from the same
	// declaration with identical type arguments.
	xn, xNamed := x.(*Named)
	yn, yNamed := y.(*Named)
	if xNamed && yNamed {
		return xn.Origin() == yn.Origin() && identicalTypes(xn.targs, yn.targs)
	}
	if xNamed != yNamed {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind && x.kind != Invalid
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return x.len == y.len && Identical(x.elem, y.elem)
		}
	case *Tuple:
		if y, ok := y.(*Tuple); ok {
			return identicalTypes(x.elems, y.elems)
		}
	case *Struct:
		if y, ok := y.(*Struct); ok {
			return identicalVars(x.fields, y.fields, true)
		}
	case *Enum:
		if y, ok := y.(*Enum); ok {
			return identicalEnums(x, y)
		}
	case *Signature:
		if y, ok := y.(*Signature); ok {
			return identicalSignatures(x, y)
		}
	}
	// Type parameters are only identical to themselves.
	return false
}

func identicalTypes(x, y []Type) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Identical(x[i], y[i]) {
			return false
		}
	}
	return true
}

func identicalVars(x, y []*Var, names bool) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if names && x[i].Name() != y[i].Name() {
			return false
		}
		if !Identical(x[i].Type(), y[i].Type()) {
			return false
		}
	}
	return true
}

func identicalEnums(x, y *Enum) bool {
	if len(x.variants) != len(y.variants) {
		return false
	}
	for i, xv := range x.variants {
		yv := y.variants[i]
		if xv.name != yv.name || xv.kind != yv.kind {
			return false
		}
		if !identicalVars(xv.fields, yv.fields, xv.kind == RecordVariant) {
			return false
		}
	}
	return true
}

// identicalSignatures compares parameter and result types. Parameter
// names and receivers do not matter.
func identicalSignatures(x, y *Signature) bool {
	if len(x.tparams) != len(y.tparams) {
		return false
	}
	if !identicalVars(x.params, y.params, false) {
		return false
	}
	if (x.result == nil) != (y.result == nil) {
		return false
	}
	return x.result == nil || Identical(x.result, y.result)
}

// IsUnit reports whether t is the empty tuple.
func IsUnit(t Type) bool {
	tup, ok := t.(*Tuple)
	return ok && len(tup.elems) == 0
}

// IsGeneric reports whether t is a declaration with type parameters
// that has not been instantiated.
func IsGeneric(t Type) bool {
	n, ok := t.(*Named)
	return ok && n.orig == nil && len(n.tparams) > 0
}
