// Package registry describes the host application's runtime type registry as
// seen by the documentation builder.
//
// The host exposes a catalog of types; each type declares properties and
// functions. Implementations are read-only from the builder's point of view.
package registry

// Registry is the read-only capability the documentation builder consumes.
type Registry interface {
	Types() ([]Type, error)
	Properties(t Type) ([]Property, error)
	Functions(t Type) ([]Function, error)
}

// Type is one registered runtime type.
type Type struct {
	Identifier  string
	Description string
}

// Property is a declared property or a function parameter.
//
// FixedType is set for pointers, InnerType for collections that declare their
// element type, ArrayLength for scalar kinds and EnumItems for enums.
type Property struct {
	Identifier  string
	Description string
	Kind        Kind
	ReadOnly    bool
	FixedType   string
	InnerType   string
	ArrayLength int
	EnumItems   []string
}

// Parameter is a function parameter. Output parameters are returned by the
// function rather than passed to it.
type Parameter struct {
	Property
	IsOutput bool
}

// Function is a declared function with its parameters in declaration order.
type Function struct {
	Identifier  string
	Description string
	Parameters  []Parameter
}
