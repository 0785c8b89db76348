// Package microformat renders declarative attribute specifications against a
// data model into semantic markup fragments. It re-exports the engine, spec,
// and loader building blocks so most callers need a single import.
package microformat

import (
	"github.com/goliatone/go-microformat/pkg/engine"
	"github.com/goliatone/go-microformat/pkg/loader"
	"github.com/goliatone/go-microformat/pkg/spec"
)

// Attribute is one entry in the ordered attribute list.
type Attribute = spec.Attribute

// Template is the tagged string-or-function template variant.
type Template = spec.Template

// RenderFunc renders one normalized entry.
type RenderFunc = spec.RenderFunc

// RenderContext exposes the enclosing engine to function templates.
type RenderContext = spec.RenderContext

// Engine performs render passes.
type Engine = engine.Engine

// Request describes one render pass.
type Request = engine.Request

// Option customises engine construction.
type Option = engine.Option

// Document is a declarative render request loaded from configuration.
type Document = loader.Document

// ErrConfig marks configuration failures; discriminate with errors.Is.
var ErrConfig = spec.ErrConfig

// TemplateString wraps a token template.
func TemplateString(text string) Template { return spec.TemplateString(text) }

// TemplateFunc wraps a render function.
func TemplateFunc(fn RenderFunc) Template { return spec.TemplateFunc(fn) }

// Parse converts the shorthand form of one attribute entry.
func Parse(shorthand string) (Attribute, error) { return spec.Parse(shorthand) }

// New constructs an engine applying any provided options.
func New(options ...Option) *Engine { return engine.New(options...) }

// Render is the one-call entry point: entries may mix shorthand strings and
// structured attributes.
func Render(rootType string, model any, entries []any, options ...Option) (string, error) {
	attrs, err := spec.Build(entries...)
	if err != nil {
		return "", err
	}
	return engine.New(options...).Render(engine.Request{
		Type:       rootType,
		Model:      model,
		Attributes: attrs,
	})
}

// RenderDocument renders a declarative document loaded via pkg/loader.
func RenderDocument(doc Document, options ...Option) (string, error) {
	req := engine.Request{
		Type:       doc.Type,
		Model:      doc.Model,
		Attributes: doc.Attributes,
		Options:    doc.Options,
	}
	if doc.Template != "" {
		req.Template = spec.TemplateString(doc.Template)
	}
	return engine.New(options...).Render(req)
}
