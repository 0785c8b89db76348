package model

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaLabeler resolves labels from an OpenAPI schema: a property's title
// (or, failing that, nothing, so callers fall back to Humanize). Dotted
// attribute paths descend through nested object properties.
type SchemaLabeler struct {
	schema *openapi3.Schema
}

// NewSchemaLabeler wraps an openapi3 schema as a Labeler.
func NewSchemaLabeler(schema *openapi3.Schema) *SchemaLabeler {
	return &SchemaLabeler{schema: schema}
}

// SchemaLabelerFor looks up a named component schema in an OpenAPI document.
func SchemaLabelerFor(doc *openapi3.T, component string) (*SchemaLabeler, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("openapi labeler: document has no components")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi labeler: schema %q not found", component)
	}
	return NewSchemaLabeler(ref.Value), nil
}

// Label implements Labeler.
func (l *SchemaLabeler) Label(attribute string) (string, bool) {
	if l == nil || l.schema == nil {
		return "", false
	}

	schema := l.schema
	segments := strings.Split(attribute, ".")
	for i, segment := range segments {
		if schema == nil || schema.Properties == nil {
			return "", false
		}
		ref, ok := schema.Properties[segment]
		if !ok || ref == nil || ref.Value == nil {
			return "", false
		}
		if i == len(segments)-1 {
			title := strings.TrimSpace(ref.Value.Title)
			return title, title != ""
		}
		schema = ref.Value
	}
	return "", false
}
