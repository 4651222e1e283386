package registry

import "fmt"

// MemoryType is a fully described type held by a Memory registry.
type MemoryType struct {
	Type
	Properties []Property
	Functions  []Function
}

// Memory is a Registry backed by plain values. It serves fixtures in tests and
// registries decoded from a dump file.
type Memory struct {
	types []MemoryType
	byID  map[string]int
}

// NewMemory returns a registry over types, preserving their order.
//
// A later entry with an already seen identifier replaces the earlier one's
// members but keeps its position.
func NewMemory(types ...MemoryType) *Memory {
	m := &Memory{byID: make(map[string]int, len(types))}
	for _, t := range types {
		if i, ok := m.byID[t.Identifier]; ok {
			m.types[i] = t
			continue
		}
		m.byID[t.Identifier] = len(m.types)
		m.types = append(m.types, t)
	}
	return m
}

// Types returns every registered type in registration order.
func (m *Memory) Types() ([]Type, error) {
	out := make([]Type, 0, len(m.types))
	for _, t := range m.types {
		out = append(out, t.Type)
	}
	return out, nil
}

// Properties returns the properties declared on t.
func (m *Memory) Properties(t Type) ([]Property, error) {
	mt, err := m.lookup(t)
	if err != nil {
		return nil, err
	}
	out := make([]Property, len(mt.Properties))
	copy(out, mt.Properties)
	return out, nil
}

// Functions returns the functions declared on t.
func (m *Memory) Functions(t Type) ([]Function, error) {
	mt, err := m.lookup(t)
	if err != nil {
		return nil, err
	}
	out := make([]Function, len(mt.Functions))
	copy(out, mt.Functions)
	return out, nil
}

func (m *Memory) lookup(t Type) (MemoryType, error) {
	i, ok := m.byID[t.Identifier]
	if !ok {
		return MemoryType{}, fmt.Errorf("type %q is not registered", t.Identifier)
	}
	return m.types[i], nil
}
