// Package pongo compiles pongo2 templates into function-style entry
// templates, for configurations that outgrow the builtin token substitution.
package pongo

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-microformat/pkg/engine"
	"github.com/goliatone/go-microformat/pkg/formats"
	"github.com/goliatone/go-microformat/pkg/spec"
)

// New compiles text as a pongo2 template and wraps it as an entry template.
// The template context carries:
//
//	property  the semantic property name
//	label     the resolved label (empty for embedded entries)
//	value     the formatted value
//	rawValue  the unformatted value as plain text
//	options   the auxiliary attribute map
//	attrs     the options rendered as a tag-attribute fragment; pongo2
//	          autoescapes, so emit it with the safe filter
//	index     the zero-based entry position
func New(text string) (spec.Template, error) {
	tmpl, err := pongo2.FromString(text)
	if err != nil {
		return spec.Template{}, fmt.Errorf("pongo template: parse: %w", err)
	}

	fn := func(entry spec.Attribute, index int, ctx spec.RenderContext) (string, error) {
		formatted, err := ctx.Format(entry.Value, entry.Format)
		if err != nil {
			return "", err
		}
		out, err := tmpl.Execute(pongo2.Context{
			"property": entry.Property,
			"label":    entry.Label,
			"value":    formatted,
			"rawValue": formats.Stringify(entry.Value),
			"options":  entry.Options,
			"attrs":    engine.AttributeFragment(entry.Options),
			"index":    index,
		})
		if err != nil {
			return "", fmt.Errorf("pongo template: execute: %w", err)
		}
		return out, nil
	}
	return spec.TemplateFunc(fn), nil
}

// Must is New panicking on parse failure. Useful for static templates.
func Must(text string) spec.Template {
	template, err := New(text)
	if err != nil {
		panic(err)
	}
	return template
}
