// Package engine orchestrates a microformat render pass: it validates the
// root type, normalizes the ordered attribute list against the model
// (recursing into embedded microformats), renders each resolved entry, and
// concatenates the fragments.
package engine

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-microformat/pkg/formats"
	"github.com/goliatone/go-microformat/pkg/model"
	"github.com/goliatone/go-microformat/pkg/spec"
)

const (
	// DefaultType identifies the builtin engine implementation.
	DefaultType = "microformat"

	// DefaultRootPrefix is the prefix every root type must carry.
	DefaultRootPrefix = "h-"

	// DefaultMaxDepth bounds embedding recursion. Self-referential
	// configurations fail instead of recursing unboundedly.
	DefaultMaxDepth = 16

	// DefaultTemplate renders an entry as a span carrying its property class.
	DefaultTemplate = `<span{options}>{value}</span>`
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithType names the engine implementation; embedded entries select
// implementations by this name through the registry.
func WithType(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.typeName = name
		}
	}
}

// WithRootPrefix overrides the required root-type prefix.
func WithRootPrefix(prefix string) Option {
	return func(e *Engine) {
		if prefix != "" {
			e.rootPrefix = prefix
		}
	}
}

// WithDefaultTemplate overrides the template used by entries that carry none.
func WithDefaultTemplate(template spec.Template) Option {
	return func(e *Engine) {
		if !template.IsZero() {
			e.defaultTemplate = template
		}
	}
}

// WithFormats injects a custom format registry.
func WithFormats(registry *formats.Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.formats = registry
		}
	}
}

// WithLabeler installs label metadata consulted when the model itself carries
// none, before the humanized fallback.
func WithLabeler(labeler model.Labeler) Option {
	return func(e *Engine) {
		e.labeler = labeler
	}
}

// WithMaxDepth bounds embedding recursion.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithImplementations injects the registry resolving embedded "class"
// selectors to engine factories.
func WithImplementations(registry *Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.impls = registry
		}
	}
}

// Engine renders microformat fragments. The zero configuration carries the
// builtin formats, the humanized labeler, and the default span template.
type Engine struct {
	typeName        string
	rootPrefix      string
	defaultTemplate spec.Template
	formats         *formats.Registry
	labeler         model.Labeler
	maxDepth        int
	impls           *Registry
}

// New constructs an Engine applying any provided options. Missing
// dependencies fall back to the builtin implementations.
func New(options ...Option) *Engine {
	e := &Engine{
		typeName:        DefaultType,
		rootPrefix:      DefaultRootPrefix,
		defaultTemplate: spec.TemplateString(DefaultTemplate),
		maxDepth:        DefaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.formats == nil {
		e.formats = formats.NewDefaultRegistry()
	}
	if e.impls == nil {
		e.impls = NewRegistry()
	}
	return e
}

// Request describes one render pass.
type Request struct {
	// Type is the root type identifier; it must carry the engine's root
	// prefix, e.g. "h-card".
	Type string

	// Model is the value attributes resolve against.
	Model any

	// Attributes is the ordered spec list. Use spec.Build to mix shorthand
	// strings with structured entries.
	Attributes []spec.Attribute

	// Options carries container-level auxiliary attributes. The engine
	// forwards them unrendered; container wrapping belongs to the caller.
	Options map[string]string

	// Template overrides the engine default template for this pass.
	Template spec.Template
}

// Render normalizes and renders the request, returning the concatenation of
// every non-empty entry fragment in input order. Any configuration failure
// aborts the pass with no partial output.
func (e *Engine) Render(req Request) (string, error) {
	return e.render(req, 0)
}

func (e *Engine) render(req Request, depth int) (string, error) {
	if depth > e.maxDepth {
		return "", fmt.Errorf("%w: embedding depth exceeds %d, check for self-referential microformats", spec.ErrConfig, e.maxDepth)
	}
	if err := e.validateRootType(req.Type); err != nil {
		return "", err
	}

	normalized, err := e.normalizeList(req.Attributes, req.Model, depth)
	if err != nil {
		return "", err
	}

	defaultTemplate := req.Template
	if defaultTemplate.IsZero() {
		defaultTemplate = e.defaultTemplate
	}

	var out strings.Builder
	for i, entry := range normalized {
		fragment, err := e.renderEntry(entry, i, defaultTemplate)
		if err != nil {
			return "", err
		}
		out.WriteString(fragment)
	}
	return out.String(), nil
}

// Normalize runs the normalization stage alone, returning the resolved entry
// list with hidden entries removed and every value resolved.
func (e *Engine) Normalize(req Request) ([]spec.Attribute, error) {
	if err := e.validateRootType(req.Type); err != nil {
		return nil, err
	}
	return e.normalizeList(req.Attributes, req.Model, 0)
}

// Type reports the engine implementation name.
func (e *Engine) Type() string {
	return e.typeName
}

// Format implements spec.RenderContext against the engine's registry.
func (e *Engine) Format(value any, format string) (string, error) {
	return e.formats.Format(value, format)
}

// DefaultTemplate implements spec.RenderContext.
func (e *Engine) DefaultTemplate() spec.Template {
	return e.defaultTemplate
}

func (e *Engine) validateRootType(rootType string) error {
	if rootType == "" {
		return fmt.Errorf("%w: root type is required", spec.ErrConfig)
	}
	if !strings.HasPrefix(rootType, e.rootPrefix) {
		return fmt.Errorf("%w: root type %q must start with %q", spec.ErrConfig, rootType, e.rootPrefix)
	}
	return nil
}

func (e *Engine) labelFor(source any, attribute string) string {
	if labeler, ok := source.(model.Labeler); ok {
		if label, found := labeler.Label(attribute); found {
			return label
		}
	}
	if e.labeler != nil {
		if label, found := e.labeler.Label(attribute); found {
			return label
		}
	}
	return model.Humanize(attribute)
}
