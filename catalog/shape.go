package catalog

import (
	"fmt"

	sm "github.com/reoring/shapematch"
	"github.com/reoring/shapematch/dsl"
)

// ShapeOf returns a declared shape equivalent to the named type as recorded in
// c. Matching it against another catalog's descriptor detects schema drift.
// Cycles in c are closed with dsl.Lazy, so matching a cyclic shape ends at the
// MatchOpt.MaxDepth guard.
func (c *Catalog) ShapeOf(name string) (sm.Acceptor, error) {
	d, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("catalog: %w %q", ErrUnknownReference, name)
	}
	b := &shapeBuilder{
		memo:     map[*sm.Descriptor]sm.Acceptor{},
		building: map[*sm.Descriptor]bool{},
	}
	return b.shape(d), nil
}

type shapeBuilder struct {
	memo     map[*sm.Descriptor]sm.Acceptor
	building map[*sm.Descriptor]bool
}

func (b *shapeBuilder) shape(d *sm.Descriptor) sm.Acceptor {
	if a, ok := b.memo[d]; ok {
		return a
	}
	if b.building[d] {
		return dsl.Lazy(func() sm.Acceptor { return b.memo[d] })
	}
	b.building[d] = true
	var a sm.Acceptor
	switch k := d.Kind.(type) {
	case sm.DomainKind:
		a = dsl.Domain(d.Name, b.shape(k.Inner))
	case sm.EnumKind:
		a = dsl.Enum(d.Name, k.Variants...)
	case sm.CompositeKind:
		fields := make([]sm.Field, 0, len(k.Fields))
		for _, f := range k.Fields {
			fields = append(fields, sm.Field{Name: f.Name, Type: b.shape(f.Type)})
		}
		a = sm.NewCompositeShape(d.Name, fields...)
	default:
		a = dsl.Base(d.Name)
	}
	delete(b.building, d)
	b.memo[d] = a
	return a
}
