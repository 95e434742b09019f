package shapematch

// KindTag identifies the variant of a descriptor Kind.
type KindTag int

const (
	KindOther KindTag = iota
	KindDomain
	KindEnum
	KindComposite
)

func (k KindTag) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindEnum:
		return "enum"
	case KindComposite:
		return "composite"
	}
	return "other"
}

// Descriptor is a runtime-observed schema type.
type Descriptor struct {
	Name string
	Kind Kind
}

// Tag returns the kind tag of d. A nil descriptor or nil Kind reports KindOther.
func (d *Descriptor) Tag() KindTag {
	if d == nil || d.Kind == nil {
		return KindOther
	}
	return d.Kind.Tag()
}

// Kind is the closed set of descriptor kinds: DomainKind, EnumKind,
// CompositeKind and OtherKind.
type Kind interface {
	Tag() KindTag
	sealed()
}

// DomainKind wraps exactly one inner type.
type DomainKind struct {
	Inner *Descriptor
}

// EnumKind lists the variant labels reported by the live schema.
type EnumKind struct {
	Variants []string
}

// CompositeKind lists the fields of a live record type in schema order.
type CompositeKind struct {
	Fields []DescriptorField
}

// DescriptorField is one named, typed member of a CompositeKind.
type DescriptorField struct {
	Name string
	Type *Descriptor
}

// OtherKind covers every kind the matchers do not structurally compare
// (base, array, range, pseudo, ...). Label is informational.
type OtherKind struct {
	Label string
}

func (DomainKind) Tag() KindTag    { return KindDomain }
func (EnumKind) Tag() KindTag      { return KindEnum }
func (CompositeKind) Tag() KindTag { return KindComposite }
func (OtherKind) Tag() KindTag     { return KindOther }

func (DomainKind) sealed()    {}
func (EnumKind) sealed()      {}
func (CompositeKind) sealed() {}
func (OtherKind) sealed()     {}

// Base returns a descriptor for a base (non-structured) type.
func Base(name string) *Descriptor {
	return &Descriptor{Name: name, Kind: OtherKind{Label: "base"}}
}
