// Package types describes the declarations of a Teya source file: the
// types they denote and the scopes they are declared in.
//
// The package does not check expressions. Collect walks the items of a
// parsed file, declares them in a package scope and resolves every type
// expression that appears in a declaration.
package types

// Type is the interface implemented by all types.
type Type interface {
	// Underlying returns the underlying type.
	// For Named types, returns the type it names.
	// For all other types, returns the receiver.
	Underlying() Type

	// String returns a human-readable representation of the type.
	String() string

	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
