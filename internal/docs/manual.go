package docs

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ManualProperty is a property the registry does not report uniformly and
// that is therefore added by hand after reflection.
type ManualProperty struct {
	Owner    string
	Name     string
	Type     string
	ReadOnly bool
}

type manualEntry struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	ReadOnly bool   `yaml:"readonly"`
}

//go:embed manual_properties.yaml
var defaultManualYAML []byte

var defaultManual = sync.OnceValues(func() ([]ManualProperty, error) {
	return ParseManualProperties(defaultManualYAML)
})

// DefaultManualProperties returns the built-in table of Context members.
func DefaultManualProperties() ([]ManualProperty, error) {
	props, err := defaultManual()
	if err != nil {
		return nil, fmt.Errorf("built-in manual properties: %w", err)
	}
	out := make([]ManualProperty, len(props))
	copy(out, props)
	return out, nil
}

// ParseManualProperties parses a table mapping owner type to a list of
// {name, type, readonly} entries. Owners keep their document order.
func ParseManualProperties(b []byte) ([]ManualProperty, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("invalid manual properties YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return []ManualProperty{}, nil
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manual properties must map owner type to a list of properties (line %d)", m.Line)
	}

	out := []ManualProperty{}
	for i := 0; i+1 < len(m.Content); i += 2 {
		owner := m.Content[i].Value
		var entries []manualEntry
		if err := m.Content[i+1].Decode(&entries); err != nil {
			return nil, fmt.Errorf("invalid manual properties for %s: %w", owner, err)
		}
		for _, e := range entries {
			if e.Name == "" {
				return nil, fmt.Errorf("manual property of %s has no name (line %d)", owner, m.Content[i+1].Line)
			}
			out = append(out, ManualProperty{Owner: owner, Name: e.Name, Type: e.Type, ReadOnly: e.ReadOnly})
		}
	}
	return out, nil
}

// LoadManualProperties reads a manual property table from path.
func LoadManualProperties(path string) ([]ManualProperty, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manual properties %s: %w", path, err)
	}
	return ParseManualProperties(b)
}

func (m ManualProperty) doc() PropertyDoc {
	p := PropertyDoc{
		Name:     m.Name,
		Type:     m.Type,
		Owner:    m.Owner,
		ReadOnly: m.ReadOnly,
	}
	if p.Type == EnumTag {
		p.EnumItems = []string{}
	}
	return p
}
