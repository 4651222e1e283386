package docs

import "sort"

// TypeDescription returns the description of the named type, or "" when the
// type is unknown.
func (d *Documentation) TypeDescription(name string) string {
	return d.current().types[name].Description
}

// Type returns the named type.
func (d *Documentation) Type(name string) (TypeDoc, bool) {
	t, ok := d.current().types[name]
	return t, ok
}

// TypeNames returns every documented type name, sorted.
func (d *Documentation) TypeNames() []string {
	s := d.current()
	out := make([]string, 0, len(s.types))
	for name := range s.types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// PropertiesOfType returns the properties owned by typeName in insertion order.
func (d *Documentation) PropertiesOfType(typeName string) []PropertyDoc {
	return cloneProperties(d.current().propertiesByOwner[typeName])
}

// PropertyNamesOfType returns the names of the properties owned by typeName.
func (d *Documentation) PropertyNamesOfType(typeName string) []string {
	return propertyNames(d.current().propertiesByOwner[typeName])
}

// FunctionsOfType returns the functions owned by typeName in insertion order.
func (d *Documentation) FunctionsOfType(typeName string) []FunctionDoc {
	return cloneFunctions(d.current().functionsByOwner[typeName])
}

// FunctionNamesOfType returns the names of the functions owned by typeName.
func (d *Documentation) FunctionNamesOfType(typeName string) []string {
	fns := d.current().functionsByOwner[typeName]
	out := make([]string, 0, len(fns))
	for _, f := range fns {
		out = append(out, f.Name)
	}
	return out
}

// FunctionsNamed returns every function called name, across all owners.
func (d *Documentation) FunctionsNamed(name string) []FunctionDoc {
	return cloneFunctions(d.current().functionsByName[name])
}

// TypesWithProperty returns the owners declaring a property called
// propertyName.
func (d *Documentation) TypesWithProperty(propertyName string) []string {
	props := d.current().propertiesByName[propertyName]
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Owner)
	}
	return out
}

// PossibleProperties returns every property called propertyName, whatever
// its owner.
func (d *Documentation) PossibleProperties(propertyName string) []PropertyDoc {
	return cloneProperties(d.current().propertiesByName[propertyName])
}

// PossiblePropertyTypes returns the distinct resolved type-tags of all
// properties called propertyName, sorted. Unresolved tags are left out; use
// PossibleProperties to see entries whose Type is "".
func (d *Documentation) PossiblePropertyTypes(propertyName string) []string {
	return d.current().possibleTypes(propertyName)
}

func (s *snapshot) possibleTypes(propertyName string) []string {
	props := s.propertiesByName[propertyName]
	set := make(map[string]struct{}, len(props))
	for _, p := range props {
		if p.Type == "" {
			continue
		}
		set[p.Type] = struct{}{}
	}
	return sortedKeys(set)
}

// PossiblePropertyDescriptions returns the distinct descriptions of all
// properties called propertyName, sorted.
func (d *Documentation) PossiblePropertyDescriptions(propertyName string) []string {
	props := d.current().propertiesByName[propertyName]
	set := make(map[string]struct{}, len(props))
	for _, p := range props {
		set[p.Description] = struct{}{}
	}
	return sortedKeys(set)
}

// SubpropertiesOfProperty returns the properties of every type that a
// property called propertyName may hold.
func (d *Documentation) SubpropertiesOfProperty(propertyName string) []PropertyDoc {
	s := d.current()
	out := []PropertyDoc{}
	for _, t := range s.possibleTypes(propertyName) {
		out = append(out, cloneProperties(s.propertiesByOwner[t])...)
	}
	return out
}

// SubpropertyNamesOfProperty returns the distinct names of
// SubpropertiesOfProperty, sorted.
func (d *Documentation) SubpropertyNamesOfProperty(propertyName string) []string {
	set := map[string]struct{}{}
	for _, p := range d.SubpropertiesOfProperty(propertyName) {
		set[p.Name] = struct{}{}
	}
	return sortedKeys(set)
}

// Stats returns counts over the current index.
func (d *Documentation) Stats() Stats {
	s := d.current()
	owners := map[string]struct{}{}
	for o := range s.propertiesByOwner {
		owners[o] = struct{}{}
	}
	for o := range s.functionsByOwner {
		owners[o] = struct{}{}
	}
	return Stats{
		Types:      len(s.types),
		Properties: len(s.properties),
		Functions:  len(s.functions),
		Owners:     len(owners),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// cloneProperties copies in deeply enough that callers cannot reach the
// snapshot's enum item arrays.
func cloneProperties(in []PropertyDoc) []PropertyDoc {
	out := make([]PropertyDoc, len(in))
	for i, p := range in {
		if p.EnumItems != nil {
			p.EnumItems = append(make([]string, 0, len(p.EnumItems)), p.EnumItems...)
		}
		out[i] = p
	}
	return out
}

func cloneFunctions(in []FunctionDoc) []FunctionDoc {
	out := make([]FunctionDoc, len(in))
	for i, f := range in {
		f.Inputs = cloneProperties(f.Inputs)
		f.Outputs = cloneProperties(f.Outputs)
		out[i] = f
	}
	return out
}
