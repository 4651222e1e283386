// Package docs builds a cross-reference index of the host's runtime types,
// their properties and their functions, and answers lookups against it.
package docs

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/kamusis/rnadoc/internal/ctxlog"
	"github.com/kamusis/rnadoc/internal/registry"
)

// Documentation holds the most recently built index. The zero value is an
// empty, queryable index.
type Documentation struct {
	snap   atomic.Pointer[snapshot]
	manual []ManualProperty
}

// Option configures a Documentation.
type Option func(*Documentation)

// WithManualProperties appends props after the built-in manual properties on
// every build.
func WithManualProperties(props ...ManualProperty) Option {
	return func(d *Documentation) {
		d.manual = append(d.manual, props...)
	}
}

// New returns an empty Documentation.
func New(opts ...Option) *Documentation {
	d := &Documentation{}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Build documents every type in reg and replaces the current index.
//
// On error the previous index stays in place.
func (d *Documentation) Build(ctx context.Context, reg registry.Registry) error {
	if reg == nil {
		return ErrNoRegistry
	}
	log := ctxlog.FromContext(ctx)

	types, err := reg.Types()
	if err != nil {
		return fmt.Errorf("cannot list registry types: %w", err)
	}

	s := newSnapshot()
	s.buildTypeDocumentation(types)
	log.Debug("documented types", "count", len(s.types))

	if err := s.buildAttributeDocumentation(ctx, reg, types); err != nil {
		return err
	}
	log.Debug("documented attributes", "properties", len(s.properties), "functions", len(s.functions))

	manual, err := DefaultManualProperties()
	if err != nil {
		return err
	}
	manual = append(manual, d.manual...)
	s.addManualProperties(manual)
	log.Debug("added manual properties", "count", len(manual))

	s.categorize()
	d.snap.Store(s)
	return nil
}

func (s *snapshot) buildTypeDocumentation(types []registry.Type) {
	for _, t := range types {
		s.types[t.Identifier] = TypeDoc{Name: t.Identifier, Description: t.Description}
	}
}

func (s *snapshot) buildAttributeDocumentation(ctx context.Context, reg registry.Registry, types []registry.Type) error {
	for _, t := range types {
		if err := ctx.Err(); err != nil {
			return err
		}
		fns, err := reg.Functions(t)
		if err != nil {
			return fmt.Errorf("cannot list functions of %s: %w", t.Identifier, err)
		}
		for _, fn := range fns {
			s.functions = append(s.functions, functionDoc(fn, t.Identifier))
		}

		props, err := reg.Properties(t)
		if err != nil {
			return fmt.Errorf("cannot list properties of %s: %w", t.Identifier, err)
		}
		for _, p := range props {
			s.properties = append(s.properties, propertyDoc(p, t.Identifier))
		}
	}
	return nil
}

func (s *snapshot) addManualProperties(manual []ManualProperty) {
	for _, m := range manual {
		s.properties = append(s.properties, m.doc())
	}
}

func functionDoc(fn registry.Function, owner string) FunctionDoc {
	f := FunctionDoc{
		Name:        fn.Identifier,
		Description: fn.Description,
		Owner:       owner,
		Inputs:      []PropertyDoc{},
		Outputs:     []PropertyDoc{},
	}
	// Parameters are owned by the function itself.
	for _, p := range fn.Parameters {
		pd := propertyDoc(p.Property, fn.Identifier)
		if p.IsOutput {
			f.Outputs = append(f.Outputs, pd)
		} else {
			f.Inputs = append(f.Inputs, pd)
		}
	}
	return f
}

func propertyDoc(p registry.Property, owner string) PropertyDoc {
	pd := PropertyDoc{
		Name:        p.Identifier,
		Description: p.Description,
		Type:        PropertyType(p),
		Owner:       owner,
		ReadOnly:    p.ReadOnly,
	}
	if pd.Type == EnumTag {
		pd.EnumItems = make([]string, len(p.EnumItems))
		copy(pd.EnumItems, p.EnumItems)
	}
	return pd
}
