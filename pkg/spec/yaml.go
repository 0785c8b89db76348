package spec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// attributeDoc mirrors the mapping form of an entry in a declarative
// document. Template is limited to the string variant; function templates are
// attached in code.
type attributeDoc struct {
	Property    string            `yaml:"property"`
	Attribute   string            `yaml:"attribute"`
	Label       string            `yaml:"label"`
	Value       any               `yaml:"value"`
	Format      string            `yaml:"format"`
	Options     map[string]string `yaml:"options"`
	Template    string            `yaml:"template"`
	Visible     *bool             `yaml:"visible"`
	Microformat string            `yaml:"microformat"`
	Model       map[string]any    `yaml:"model"`
	Class       string            `yaml:"class"`
	Attributes  []Attribute       `yaml:"attributes"`
}

// UnmarshalYAML accepts either the shorthand string form or a mapping. This
// lets declarative documents mix both styles in one attribute list.
func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var shorthand string
		if err := node.Decode(&shorthand); err != nil {
			return err
		}
		parsed, err := Parse(shorthand)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case yaml.MappingNode:
		var doc attributeDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		out := Attribute{
			Property:    doc.Property,
			Path:        doc.Attribute,
			Label:       doc.Label,
			Value:       doc.Value,
			Format:      doc.Format,
			Options:     doc.Options,
			Visible:     doc.Visible,
			Microformat: doc.Microformat,
			Class:       doc.Class,
			Attributes:  doc.Attributes,
		}
		if doc.Model != nil {
			out.Model = doc.Model
		}
		if doc.Template != "" {
			out.Template = TemplateString(doc.Template)
		}
		*a = out
		return nil
	default:
		return fmt.Errorf("%w: attribute entry must be a string or a mapping, got yaml kind %d", ErrConfig, node.Kind)
	}
}
