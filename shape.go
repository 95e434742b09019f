package shapematch

// Acceptor decides whether a descriptor can carry values of a declared type.
// Implementations must not mutate d and must recurse through m.Accept so the
// recursion guard and the direction reach nested acceptors.
type Acceptor interface {
	Accept(m *Matcher, d *Descriptor) bool
}

// AcceptorFunc adapts a plain function to Acceptor.
type AcceptorFunc func(m *Matcher, d *Descriptor) bool

func (f AcceptorFunc) Accept(m *Matcher, d *Descriptor) bool { return f(m, d) }

// DomainShape is a named alias around one inner declared type.
type DomainShape struct {
	name  string
	inner Acceptor
}

// NewDomainShape declares a domain named name wrapping inner.
func NewDomainShape(name string, inner Acceptor) DomainShape {
	return DomainShape{name: name, inner: inner}
}

func (s DomainShape) Name() string    { return s.name }
func (s DomainShape) Inner() Acceptor { return s.inner }
func (s DomainShape) Accept(m *Matcher, d *Descriptor) bool {
	return m.matchDomain(s.name, s.inner, d)
}

// EnumShape is a named, closed set of variant labels. Order is irrelevant to
// matching.
type EnumShape struct {
	name     string
	variants []string
}

// NewEnumShape declares an enum named name with the given variants.
func NewEnumShape(name string, variants ...string) EnumShape {
	return EnumShape{name: name, variants: append([]string(nil), variants...)}
}

func (s EnumShape) Name() string { return s.name }

// Variants returns a copy of the declared variant labels.
func (s EnumShape) Variants() []string { return append([]string(nil), s.variants...) }

func (s EnumShape) Accept(m *Matcher, d *Descriptor) bool {
	return m.matchEnum(s.name, s.variants, d)
}

// Field is one named, typed member of a CompositeShape.
type Field struct {
	Name string
	Type Acceptor
}

// CompositeShape is a named record of uniquely named fields. Order is
// irrelevant to matching.
type CompositeShape struct {
	name   string
	fields []Field
}

// NewCompositeShape declares a composite named name. Field names are expected
// to be unique; dsl.Composite enforces it.
func NewCompositeShape(name string, fields ...Field) CompositeShape {
	return CompositeShape{name: name, fields: append([]Field(nil), fields...)}
}

func (s CompositeShape) Name() string { return s.name }

// Fields returns a copy of the declared fields.
func (s CompositeShape) Fields() []Field { return append([]Field(nil), s.fields...) }

func (s CompositeShape) Accept(m *Matcher, d *Descriptor) bool {
	return m.matchComposite(s.name, s.fields, d)
}

var (
	_ Acceptor = DomainShape{}
	_ Acceptor = EnumShape{}
	_ Acceptor = CompositeShape{}
	_ Acceptor = AcceptorFunc(nil)
)
