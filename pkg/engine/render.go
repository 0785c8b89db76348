package engine

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-microformat/pkg/formats"
	"github.com/goliatone/go-microformat/pkg/spec"
)

// renderEntry turns one normalized entry into its fragment. An empty resolved
// value renders as the empty string whatever the template; this is the single
// omission mechanism besides visible=false.
func (e *Engine) renderEntry(entry spec.Attribute, index int, defaultTemplate spec.Template) (string, error) {
	raw := formats.Stringify(entry.Value)
	if raw == "" {
		return "", nil
	}

	template := entry.Template
	if template.IsZero() {
		template = defaultTemplate
	}

	if fn, ok := template.Func(); ok {
		return fn(entry, index, e)
	}

	text, ok := template.Text()
	if !ok {
		text = DefaultTemplate
	}

	// Substitution order is fixed: label, options, rawValue, value. A
	// missing label leaves its token untouched; label-less templates simply
	// omit the token.
	if entry.Label != "" {
		text = strings.ReplaceAll(text, "{label}", entry.Label)
	}
	text = strings.ReplaceAll(text, "{options}", AttributeFragment(entry.Options))
	text = strings.ReplaceAll(text, "{rawValue}", raw)

	formatted, err := e.formats.Format(entry.Value, entry.Format)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(text, "{value}", formatted), nil
}

// AttributeFragment renders an options map as a tag-attribute fragment with
// sorted keys and escaped values: ` class="fn" id="x"`. An empty map yields
// the empty string. The leading space keeps templates like `<span{options}>`
// well formed either way.
func AttributeFragment(options map[string]string) string {
	if len(options) == 0 {
		return ""
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out strings.Builder
	for _, key := range keys {
		out.WriteByte(' ')
		out.WriteString(key)
		out.WriteString(`="`)
		out.WriteString(html.EscapeString(options[key]))
		out.WriteByte('"')
	}
	return out.String()
}
