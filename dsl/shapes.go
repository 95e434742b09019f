package dsl

import (
	sm "github.com/reoring/shapematch"
)

// Domain declares a domain named name wrapping inner.
func Domain(name string, inner sm.Acceptor) sm.DomainShape {
	return sm.NewDomainShape(name, inner)
}

// Enum declares an enum named name with the given variant labels.
func Enum(name string, variants ...string) sm.EnumShape {
	return sm.NewEnumShape(name, variants...)
}

type compositeBuilder struct {
	name   string
	fields []sm.Field
	seen   map[string]struct{}
	issues sm.Issues
}

// Composite starts a composite builder for a record type named name.
func Composite(name string) *compositeBuilder {
	b := &compositeBuilder{name: name, seen: map[string]struct{}{}}
	if name == "" {
		b.issues = sm.AppendIssues(b.issues, sm.IssueAt(sm.RootPath(), sm.CodeEmptyName, nil))
	}
	return b
}

// Field appends a field. Names must be non-empty and unique within the shape;
// violations are reported by Build.
func (b *compositeBuilder) Field(name string, a sm.Acceptor) *compositeBuilder {
	p := sm.RootPath().Field(name)
	if name == "" {
		b.issues = sm.AppendIssues(b.issues, sm.IssueAt(p, sm.CodeEmptyName, nil))
		return b
	}
	if _, dup := b.seen[name]; dup {
		b.issues = sm.AppendIssues(b.issues, sm.IssueAt(p, sm.CodeDuplicateField, map[string]string{"field": name}))
		return b
	}
	b.seen[name] = struct{}{}
	b.fields = append(b.fields, sm.Field{Name: name, Type: a})
	return b
}

// Build returns the composite shape, or Issues describing invalid fields.
func (b *compositeBuilder) Build() (sm.CompositeShape, error) {
	if len(b.issues) > 0 {
		return sm.CompositeShape{}, b.issues
	}
	return sm.NewCompositeShape(b.name, b.fields...), nil
}

// MustBuild is like Build but panics on error.
func (b *compositeBuilder) MustBuild() sm.CompositeShape {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Nullable accepts whatever inner accepts. A null value never reaches type
// matching, so only the inner type matters.
func Nullable(inner sm.Acceptor) sm.Acceptor {
	return sm.AcceptorFunc(func(m *sm.Matcher, d *sm.Descriptor) bool {
		return m.Accept(inner, d)
	})
}

// Lazy defers building an acceptor until it is first matched, allowing
// self-referential shapes. resolve is called on every match.
func Lazy(resolve func() sm.Acceptor) sm.Acceptor {
	return sm.AcceptorFunc(func(m *sm.Matcher, d *sm.Descriptor) bool {
		return m.Accept(resolve(), d)
	})
}
