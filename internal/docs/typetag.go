package docs

import (
	"strconv"

	"github.com/kamusis/rnadoc/internal/registry"
)

const (
	// EnumTag is the type-tag of enum properties.
	EnumTag = "Enum"
	// CollectionTag is used for collections that do not declare an element type.
	CollectionTag = "bpy_prop_collection"
)

// PropertyType resolves the type-tag of p. It returns "" when the kind has no
// tag.
func PropertyType(p registry.Property) string {
	switch p.Kind {
	case registry.KindPointer:
		return p.FixedType
	case registry.KindCollection:
		if p.InnerType == "" {
			return CollectionTag
		}
		return p.InnerType
	case registry.KindFloat, registry.KindInt, registry.KindBool, registry.KindString:
		name := niceName(p.Kind)
		switch n := p.ArrayLength; {
		case n <= 1:
			return name
		case n <= 3:
			return name + " Vector " + strconv.Itoa(n)
		default:
			return name + " Array " + strconv.Itoa(n)
		}
	case registry.KindEnum:
		return EnumTag
	default:
		return ""
	}
}

func niceName(k registry.Kind) string {
	switch k {
	case registry.KindInt:
		return "Integer"
	case registry.KindFloat:
		return "Float"
	case registry.KindBool:
		return "Boolean"
	case registry.KindString:
		return "String"
	default:
		return ""
	}
}
