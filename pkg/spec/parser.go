package spec

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultFormat names the formatter applied when an entry does not pick one.
const DefaultFormat = "text"

// propertyPattern accepts two or more lowercase hyphen-joined segments.
var propertyPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)+$`)

// ValidProperty reports whether name is a well-formed semantic property.
func ValidProperty(name string) bool {
	return propertyPattern.MatchString(name)
}

// Parse converts the shorthand form `property[:attribute[:format[:label]]]`
// into a structured attribute. The attribute segment may carry dots for
// nested lookups; format and label are free-form trailing segments. The label
// stays empty here and is resolved against the model during normalization.
func Parse(shorthand string) (Attribute, error) {
	parts := strings.SplitN(shorthand, ":", 4)
	property := parts[0]
	if !ValidProperty(property) {
		return Attribute{}, fmt.Errorf("%w: shorthand %q: property must be two or more lowercase hyphenated segments", ErrConfig, shorthand)
	}

	attr := Attribute{
		Property: property,
		Path:     PropertyToAttribute(property),
		Format:   DefaultFormat,
	}
	if len(parts) > 1 && parts[1] != "" {
		attr.Path = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		attr.Format = parts[2]
	}
	if len(parts) > 3 && parts[3] != "" {
		attr.Label = parts[3]
	}
	return attr, nil
}

// PropertyToAttribute derives a model attribute name from a semantic property
// by dropping the first hyphen segment and joining the rest with underscores:
// "p-given-name" becomes "given_name".
func PropertyToAttribute(property string) string {
	_, rest, found := strings.Cut(property, "-")
	if !found {
		return property
	}
	return strings.ReplaceAll(rest, "-", "_")
}
