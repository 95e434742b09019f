package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/shapematch/internal/ir"
)

// ParseJSON decodes a catalog document from JSON. Unknown keys are rejected.
func ParseJSON(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: %w", ErrEmptyDocument)
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc ir.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}
	return fromDocument(doc)
}

// ParseYAML decodes a catalog document from YAML. Only the first document of
// a multi-document stream is read. Unknown keys are rejected.
func ParseYAML(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc ir.Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog: %w", ErrEmptyDocument)
		}
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	return fromDocument(doc)
}

// Load reads a catalog file, choosing the decoder by extension (.json, .yaml,
// .yml).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return nil, fmt.Errorf("catalog: unsupported file extension %q", filepath.Ext(path))
}
