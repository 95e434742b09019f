package catalog

import (
	"errors"
	"fmt"
	"sort"

	sm "github.com/reoring/shapematch"
	"github.com/reoring/shapematch/internal/ir"
)

// BuiltinBaseTypes are registered in every catalog as OtherKind{Label: "base"}.
// A document may redefine any of them.
var BuiltinBaseTypes = []string{
	"bool", "int2", "int4", "int8", "float4", "float8", "numeric",
	"text", "varchar", "bpchar", "name", "citext", "unknown",
	"bytea", "json", "jsonb", "uuid", "date", "timestamp", "timestamptz", "oid",
}

var (
	ErrEmptyName        = errors.New("empty name")
	ErrDuplicate        = errors.New("duplicate name")
	ErrUnknownKind      = errors.New("unknown kind")
	ErrUnknownReference = errors.New("unknown type reference")
	ErrMissingInner     = errors.New("domain without inner type")
	ErrEmptyDocument    = errors.New("empty document")
)

// LoadError reports a problem with one type definition.
type LoadError struct {
	Type string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "catalog: load error"
	}
	return fmt.Sprintf("catalog: type %q: %v", e.Type, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Catalog is an immutable set of named descriptors. References between types
// are resolved to pointers, so cyclic definitions yield a cyclic graph.
// A Catalog is safe for concurrent reads.
type Catalog struct {
	types   map[string]*sm.Descriptor
	defined []string
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (*sm.Descriptor, bool) {
	d, ok := c.types[name]
	return d, ok
}

// Names returns every registered type name in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.types))
	for n := range c.types {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Len() int { return len(c.types) }

// Defined returns the names declared by the document itself, excluding
// builtins it did not redefine, in sorted order.
func (c *Catalog) Defined() []string { return append([]string(nil), c.defined...) }

// Label describes the kind of d for listings: the tag for structured kinds and
// the label for OtherKind.
func Label(d *sm.Descriptor) string {
	if d == nil {
		return ""
	}
	switch k := d.Kind.(type) {
	case sm.OtherKind:
		if k.Label != "" {
			return k.Label
		}
	case *sm.OtherKind:
		if k != nil && k.Label != "" {
			return k.Label
		}
	}
	return d.Tag().String()
}

func fromDocument(doc ir.Document) (*Catalog, error) {
	types := make(map[string]*sm.Descriptor, len(BuiltinBaseTypes)+len(doc.Types))
	for _, n := range BuiltinBaseTypes {
		types[n] = sm.Base(n)
	}

	// Pass 1: allocate every declared name so references can point forward.
	declared := make(map[string]struct{}, len(doc.Types))
	for i, def := range doc.Types {
		if def.Name == "" {
			return nil, &LoadError{Type: fmt.Sprintf("#%d", i), Err: ErrEmptyName}
		}
		if _, dup := declared[def.Name]; dup {
			return nil, &LoadError{Type: def.Name, Err: ErrDuplicate}
		}
		declared[def.Name] = struct{}{}
		types[def.Name] = &sm.Descriptor{Name: def.Name}
	}

	// Pass 2: fill kinds.
	ref := func(owner, name string) (*sm.Descriptor, error) {
		d, ok := types[name]
		if !ok {
			return nil, &LoadError{Type: owner, Err: fmt.Errorf("%w %q", ErrUnknownReference, name)}
		}
		return d, nil
	}
	for _, def := range doc.Types {
		d := types[def.Name]
		switch def.Kind {
		case ir.KindEnum:
			d.Kind = sm.EnumKind{Variants: append([]string(nil), def.Variants...)}
		case ir.KindComposite:
			fields := make([]sm.DescriptorField, 0, len(def.Fields))
			seen := make(map[string]struct{}, len(def.Fields))
			for _, f := range def.Fields {
				if f.Name == "" {
					return nil, &LoadError{Type: def.Name, Err: fmt.Errorf("field: %w", ErrEmptyName)}
				}
				if _, dup := seen[f.Name]; dup {
					return nil, &LoadError{Type: def.Name, Err: fmt.Errorf("field %q: %w", f.Name, ErrDuplicate)}
				}
				seen[f.Name] = struct{}{}
				ft, err := ref(def.Name, f.Type)
				if err != nil {
					return nil, err
				}
				fields = append(fields, sm.DescriptorField{Name: f.Name, Type: ft})
			}
			d.Kind = sm.CompositeKind{Fields: fields}
		case ir.KindDomain:
			if def.Inner == "" {
				return nil, &LoadError{Type: def.Name, Err: ErrMissingInner}
			}
			inner, err := ref(def.Name, def.Inner)
			if err != nil {
				return nil, err
			}
			d.Kind = sm.DomainKind{Inner: inner}
		case ir.KindBase, ir.KindArray, ir.KindRange, ir.KindPseudo:
			d.Kind = sm.OtherKind{Label: def.Kind}
		default:
			return nil, &LoadError{Type: def.Name, Err: fmt.Errorf("%w %q", ErrUnknownKind, def.Kind)}
		}
	}
	defined := make([]string, 0, len(declared))
	for n := range declared {
		defined = append(defined, n)
	}
	sort.Strings(defined)
	return &Catalog{types: types, defined: defined}, nil
}
