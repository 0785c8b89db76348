// Package spec defines the attribute specification record consumed by the
// rendering engine: the structured form, the colon-delimited shorthand
// grammar, and the template variant attached to each entry.
package spec

import (
	"errors"
	"fmt"
)

// ErrConfig marks configuration failures: malformed shorthand strings,
// forbidden fields, unresolvable values, invalid root types. Callers
// discriminate with errors.Is.
var ErrConfig = errors.New("invalid microformat configuration")

// RenderContext exposes the enclosing engine to function-style templates.
type RenderContext interface {
	// Format runs a value through the named formatter. An empty name falls
	// back to the "text" formatter.
	Format(value any, format string) (string, error)

	// DefaultTemplate reports the template in effect when an entry carries
	// none of its own.
	DefaultTemplate() Template
}

// RenderFunc renders one normalized entry at its zero-based position. The
// returned string is used verbatim; no token substitution is applied.
type RenderFunc func(entry Attribute, index int, ctx RenderContext) (string, error)

// Template is a tagged variant: either a token string template or a render
// function. The zero value means "use the engine default".
type Template struct {
	text string
	fn   RenderFunc
}

// TemplateString wraps a token template. Supported tokens are {label},
// {options}, {rawValue} and {value}, substituted in that order.
func TemplateString(text string) Template {
	return Template{text: text}
}

// TemplateFunc wraps a render function.
func TemplateFunc(fn RenderFunc) Template {
	return Template{fn: fn}
}

// IsZero reports whether no template was configured.
func (t Template) IsZero() bool {
	return t.text == "" && t.fn == nil
}

// Text returns the token template when this is a string template.
func (t Template) Text() (string, bool) {
	return t.text, t.fn == nil && t.text != ""
}

// Func returns the render function when this is a function template.
func (t Template) Func() (RenderFunc, bool) {
	return t.fn, t.fn != nil
}

// Attribute is one entry in the ordered attribute list. Plain entries resolve
// a value from the model (or carry one explicitly); embedded entries nest a
// whole microformat render pass whose output becomes the value.
type Attribute struct {
	// Property is the semantic property name, e.g. "p-given-name". Optional;
	// when present it must be two or more lowercase hyphen-joined segments.
	Property string

	// Path is the dotted lookup path into the model. Derived from Property
	// when absent.
	Path string

	// Label is the display label. Resolved from the model's label metadata
	// (or humanized from Path) when absent.
	Label string

	// Value is the resolved or explicitly supplied value. nil means unset;
	// an explicit empty string is a valid value and is never overwritten.
	Value any

	// Format names the formatter applied to Value for the {value} token.
	// Defaults to "text".
	Format string

	// Options carries auxiliary tag attributes rendered by the {options}
	// token. Normalization copies this map before touching it.
	Options map[string]string

	// Template overrides the engine default for this entry.
	Template Template

	// Visible drops the entry before any evaluation when explicitly false.
	Visible *bool

	// Microformat marks an embedded entry and names the nested root type,
	// e.g. "h-adr".
	Microformat string

	// Model overrides the enclosing model for an embedded entry.
	Model any

	// Class selects the nested engine implementation for an embedded entry.
	// Forbidden on plain entries.
	Class string

	// Attributes is the nested ordered list of an embedded entry.
	Attributes []Attribute
}

// IsEmbedded reports whether the entry nests another microformat.
func (a Attribute) IsEmbedded() bool {
	return a.Microformat != ""
}

// IsVisible reports whether the entry takes part in rendering. Only an
// explicit false hides an entry.
func (a Attribute) IsVisible() bool {
	return a.Visible == nil || *a.Visible
}

// HasValue reports whether a value was resolved or explicitly supplied. An
// explicit empty string counts.
func (a Attribute) HasValue() bool {
	return a.Value != nil
}

// Clone returns a deep copy: option maps, the visibility flag, and nested
// attribute lists are duplicated so normalization never mutates caller state.
func (a Attribute) Clone() Attribute {
	out := a
	if a.Options != nil {
		options := make(map[string]string, len(a.Options))
		for key, value := range a.Options {
			options[key] = value
		}
		out.Options = options
	}
	if a.Visible != nil {
		visible := *a.Visible
		out.Visible = &visible
	}
	if a.Attributes != nil {
		nested := make([]Attribute, len(a.Attributes))
		for i := range a.Attributes {
			nested[i] = a.Attributes[i].Clone()
		}
		out.Attributes = nested
	}
	return out
}

// Build converts a mixed entry list into structured attributes. Strings go
// through Parse; Attribute values pass through untouched.
func Build(entries ...any) ([]Attribute, error) {
	out := make([]Attribute, 0, len(entries))
	for i, entry := range entries {
		switch v := entry.(type) {
		case string:
			attr, err := Parse(v)
			if err != nil {
				return nil, err
			}
			out = append(out, attr)
		case Attribute:
			out = append(out, v)
		case *Attribute:
			if v == nil {
				return nil, fmt.Errorf("%w: entry %d is a nil attribute", ErrConfig, i)
			}
			out = append(out, *v)
		default:
			return nil, fmt.Errorf("%w: entry %d has unsupported type %T", ErrConfig, i, entry)
		}
	}
	return out, nil
}
