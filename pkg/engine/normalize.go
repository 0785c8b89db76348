package engine

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-microformat/pkg/model"
	"github.com/goliatone/go-microformat/pkg/spec"
)

// normalizeList produces a fresh resolved list. Hidden entries drop out
// before any of their fields are evaluated, so an entry that would otherwise
// fail or recurse contributes nothing when visible is false.
func (e *Engine) normalizeList(attrs []spec.Attribute, source any, depth int) ([]spec.Attribute, error) {
	out := make([]spec.Attribute, 0, len(attrs))
	for i, attr := range attrs {
		if !attr.IsVisible() {
			continue
		}
		entry := copyEntry(attr)

		var err error
		if entry.IsEmbedded() {
			entry, err = e.normalizeEmbedded(entry, source, depth)
		} else {
			entry, err = e.normalizePlain(entry, source)
		}
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

func (e *Engine) normalizePlain(entry spec.Attribute, source any) (spec.Attribute, error) {
	if entry.Class != "" {
		return entry, fmt.Errorf("%w: class %q is only valid on embedded entries", spec.ErrConfig, entry.Class)
	}
	if entry.Property != "" && !spec.ValidProperty(entry.Property) {
		return entry, fmt.Errorf("%w: property %q must be two or more lowercase hyphenated segments", spec.ErrConfig, entry.Property)
	}

	if entry.Format == "" {
		entry.Format = spec.DefaultFormat
	}
	if entry.Property != "" {
		if entry.Path == "" {
			entry.Path = spec.PropertyToAttribute(entry.Property)
		}
		entry.Options = appendClass(entry.Options, entry.Property)
	}

	if entry.Path != "" {
		if entry.Label == "" {
			entry.Label = e.labelFor(source, entry.Path)
		}
		if !entry.HasValue() {
			value, ok := model.Lookup(source, entry.Path)
			if !ok {
				return entry, fmt.Errorf("%w: cannot resolve attribute %q on model", spec.ErrConfig, entry.Path)
			}
			entry.Value = value
		}
	} else if !entry.HasValue() {
		return entry, fmt.Errorf("%w: cannot determine value to display", spec.ErrConfig)
	}

	return entry, nil
}

func (e *Engine) normalizeEmbedded(entry spec.Attribute, source any, depth int) (spec.Attribute, error) {
	// Embedded entries never carry a display label; the nested fragment is
	// self-describing.
	entry.Label = ""

	if entry.Path != "" {
		return entry, fmt.Errorf("%w: attribute is not valid on embedded entry %q", spec.ErrConfig, entry.Microformat)
	}
	if entry.Property != "" {
		if !spec.ValidProperty(entry.Property) {
			return entry, fmt.Errorf("%w: property %q must be two or more lowercase hyphenated segments", spec.ErrConfig, entry.Property)
		}
		entry.Options = appendClass(entry.Options, entry.Property)
		entry.Property = ""
	}

	// An already resolved value means this entry went through normalization
	// before; re-running it must be a no-op.
	if entry.HasValue() {
		entry.Class = ""
		return entry, nil
	}

	nestedModel := entry.Model
	if isEmptyModel(nestedModel) {
		nestedModel = source
	}
	entry.Model = nestedModel

	nested, err := e.engineFor(entry.Class)
	if err != nil {
		return entry, err
	}
	entry.Class = ""

	value, err := nested.render(Request{
		Type:       entry.Microformat,
		Model:      nestedModel,
		Attributes: entry.Attributes,
		Options:    entry.Options,
	}, depth+1)
	if err != nil {
		return entry, err
	}
	entry.Value = value

	return entry, nil
}

// engineFor resolves the implementation for an embedded class selector. The
// empty selector and the engine's own type render through this engine.
func (e *Engine) engineFor(class string) (*Engine, error) {
	if class == "" || class == e.typeName {
		return e, nil
	}
	factory, err := e.impls.Get(class)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", spec.ErrConfig, err)
	}
	nested := factory()
	if nested == nil {
		return nil, fmt.Errorf("%w: implementation %q produced a nil engine", spec.ErrConfig, class)
	}
	return nested, nil
}

// copyEntry copies one entry, duplicating its option map and visibility flag.
// The nested attribute list stays shared: it is never mutated in place, and
// each recursion level copies the entries it touches. A deep clone here would
// never terminate on self-referential lists, which the depth guard must
// reject instead.
func copyEntry(attr spec.Attribute) spec.Attribute {
	out := attr
	if attr.Options != nil {
		options := make(map[string]string, len(attr.Options))
		for key, value := range attr.Options {
			options[key] = value
		}
		out.Options = options
	}
	if attr.Visible != nil {
		visible := *attr.Visible
		out.Visible = &visible
	}
	return out
}

// appendClass adds a class token to a copy-safe options map, skipping
// duplicates so repeated normalization stays idempotent.
func appendClass(options map[string]string, class string) map[string]string {
	if options == nil {
		options = make(map[string]string, 1)
	}
	existing := strings.Fields(options["class"])
	for _, token := range existing {
		if token == class {
			return options
		}
	}
	options["class"] = strings.TrimSpace(strings.Join(append(existing, class), " "))
	return options
}

func isEmptyModel(source any) bool {
	switch v := source.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case map[string]string:
		return len(v) == 0
	default:
		return false
	}
}
