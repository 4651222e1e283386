package registry

import "strings"

// Kind is the value kind the host reports for a property.
type Kind int

const (
	KindUnknown Kind = iota
	KindPointer
	KindCollection
	KindFloat
	KindInt
	KindBool
	KindString
	KindEnum
)

var kindNames = map[Kind]string{
	KindUnknown:    "UNKNOWN",
	KindPointer:    "POINTER",
	KindCollection: "COLLECTION",
	KindFloat:      "FLOAT",
	KindInt:        "INT",
	KindBool:       "BOOLEAN",
	KindString:     "STRING",
	KindEnum:       "ENUM",
}

// String returns the host's upper-case name for k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// ParseKind maps a host kind name to a Kind. Names are case-insensitive;
// anything unrecognised is KindUnknown.
func ParseKind(s string) Kind {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return KindUnknown
}
