package ir

// Package ir defines the raw form of a type catalog document, shared by the
// JSON and YAML loaders before names are resolved. This package is internal
// and not part of the public API.

// Kind names accepted in a TypeDef.
const (
	KindEnum      = "enum"
	KindComposite = "composite"
	KindDomain    = "domain"
	KindBase      = "base"
	KindArray     = "array"
	KindRange     = "range"
	KindPseudo    = "pseudo"
)

// Document is a whole catalog file.
type Document struct {
	Types []TypeDef `json:"types" yaml:"types"`
}

// TypeDef describes one named type. Which of Variants, Fields and Inner are
// meaningful depends on Kind.
type TypeDef struct {
	Name     string     `json:"name" yaml:"name"`
	Kind     string     `json:"kind" yaml:"kind"`
	Variants []string   `json:"variants,omitempty" yaml:"variants,omitempty"`
	Fields   []FieldDef `json:"fields,omitempty" yaml:"fields,omitempty"`
	Inner    string     `json:"inner,omitempty" yaml:"inner,omitempty"`
}

// FieldDef is a composite member referring to another type by name.
type FieldDef struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}
