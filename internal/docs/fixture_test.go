package docs

import (
	"errors"

	"github.com/kamusis/rnadoc/internal/registry"
)

func fixtureRegistry() *registry.Memory {
	return registry.NewMemory(
		registry.MemoryType{
			Type: registry.Type{Identifier: "Object", Description: "Object data-block defining an object in a scene"},
			Properties: []registry.Property{
				{Identifier: "name", Description: "Unique data-block name", Kind: registry.KindString},
				{Identifier: "location", Description: "Location of the object", Kind: registry.KindFloat, ArrayLength: 3},
				{Identifier: "data", Description: "Object data", Kind: registry.KindPointer, FixedType: "ID"},
				{Identifier: "mode", Description: "Object interaction mode", Kind: registry.KindEnum, ReadOnly: true,
					EnumItems: []string{"OBJECT", "EDIT", "POSE"}},
				{Identifier: "modifiers", Kind: registry.KindCollection, InnerType: "ObjectModifiers"},
			},
			Functions: []registry.Function{
				{
					Identifier:  "ray_cast",
					Description: "Cast a ray onto evaluated geometry",
					Parameters: []registry.Parameter{
						{Property: registry.Property{Identifier: "result", Kind: registry.KindBool}, IsOutput: true},
						{Property: registry.Property{Identifier: "origin", Kind: registry.KindFloat, ArrayLength: 3}},
						{Property: registry.Property{Identifier: "location", Kind: registry.KindFloat, ArrayLength: 3}, IsOutput: true},
						{Property: registry.Property{Identifier: "direction", Kind: registry.KindFloat, ArrayLength: 3}},
					},
				},
				{Identifier: "select_get", Description: "Test if the object is selected"},
			},
		},
		registry.MemoryType{
			Type: registry.Type{Identifier: "ID", Description: "Base type for data-blocks"},
			Properties: []registry.Property{
				{Identifier: "name", Description: "Unique data-block ID name", Kind: registry.KindString},
				{Identifier: "users", Description: "Number of times this data-block is referenced", Kind: registry.KindInt, ReadOnly: true},
			},
		},
		registry.MemoryType{
			Type: registry.Type{Identifier: "Scene", Description: "Scene data-block"},
			Properties: []registry.Property{
				{Identifier: "name", Description: "Unique data-block name", Kind: registry.KindInt},
				{Identifier: "camera", Kind: registry.KindPointer, FixedType: "Object"},
				{Identifier: "objects", Kind: registry.KindCollection},
				{Identifier: "matrix", Kind: registry.KindFloat, ArrayLength: 16},
				{Identifier: "cursor", Kind: registry.KindUnknown},
			},
		},
	)
}

// failingRegistry reports an error for one type's properties.
type failingRegistry struct {
	*registry.Memory
	failOn string
}

var errEnumerate = errors.New("host not initialised")

func (f failingRegistry) Properties(t registry.Type) ([]registry.Property, error) {
	if t.Identifier == f.failOn {
		return nil, errEnumerate
	}
	return f.Memory.Properties(t)
}
