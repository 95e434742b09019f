package shapematch

import "strings"

// PathRef builds JSON Pointer paths in a chain-safe way.
type PathRef interface {
	Field(name string) PathRef
	Pointer() string
}

// RootPath returns the PathRef for the top-level descriptor.
func RootPath() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}
