// Package loader reads declarative microformat documents from YAML (or JSON,
// a YAML subset) sources: a root type, an attribute list, and optionally an
// inline model, container options, and a default template.
package loader

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-microformat/pkg/spec"
)

// Document is a declarative render request loaded from configuration.
type Document struct {
	// Type is the root type identifier, e.g. "h-card".
	Type string `yaml:"type"`

	// Attributes is the ordered spec list; entries may be shorthand strings
	// or mappings.
	Attributes []spec.Attribute `yaml:"attributes"`

	// Model optionally inlines the data model.
	Model map[string]any `yaml:"model"`

	// Options carries container-level auxiliary attributes.
	Options map[string]string `yaml:"options"`

	// Template optionally overrides the engine default template.
	Template string `yaml:"template"`
}

// Parse decodes a document and validates its required fields.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("loader: decode document: %w", err)
	}
	if doc.Type == "" {
		return Document{}, fmt.Errorf("loader: %w: document is missing a root type", spec.ErrConfig)
	}
	if len(doc.Attributes) == 0 {
		return Document{}, fmt.Errorf("loader: %w: document has no attributes", spec.ErrConfig)
	}
	return doc, nil
}

// LoadFile reads a document from a path on disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads a document from an fs.FS.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", name, err)
	}
	return Parse(data)
}
