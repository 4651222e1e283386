package docs

import "strings"

// TypeDoc documents one registered runtime type.
type TypeDoc struct {
	Name        string
	Description string
}

func (t TypeDoc) String() string { return t.Name }

// PropertyDoc documents a property declared on Owner, or a parameter of the
// function named by Owner.
//
// Type is the resolved type-tag; an empty Type means the kind could not be
// resolved. EnumItems is non-nil exactly when Type is EnumTag.
type PropertyDoc struct {
	Name        string
	Description string
	Type        string
	Owner       string
	ReadOnly    bool
	EnumItems   []string
}

func (p PropertyDoc) String() string { return p.Owner + "." + p.Name }

// FunctionDoc documents a function declared on Owner.
type FunctionDoc struct {
	Name        string
	Description string
	Owner       string
	Inputs      []PropertyDoc
	Outputs     []PropertyDoc
}

// InputNames returns the input parameter names in declaration order.
func (f FunctionDoc) InputNames() []string { return propertyNames(f.Inputs) }

// OutputNames returns the output parameter names in declaration order.
func (f FunctionDoc) OutputNames() []string { return propertyNames(f.Outputs) }

// String renders the signature, e.g. "ray_cast(origin, direction) -> result, location".
func (f FunctionDoc) String() string {
	s := f.Name + "(" + strings.Join(f.InputNames(), ", ") + ")"
	if outs := f.OutputNames(); len(outs) > 0 {
		s += " -> " + strings.Join(outs, ", ")
	}
	return s
}

// Stats summarises a built index.
type Stats struct {
	Types      int
	Properties int
	Functions  int
	Owners     int
}

func propertyNames(props []PropertyDoc) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Name)
	}
	return out
}
