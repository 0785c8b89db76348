// Package model resolves values and display labels from the data model a
// microformat renders. Models are plain maps, structs, or anything
// implementing Labeler for custom label metadata.
package model

import (
	"reflect"
	"strings"
)

// Labeler supplies display labels for attribute names. Models that carry
// label metadata implement this; everything else falls back to Humanize.
type Labeler interface {
	Label(attribute string) (string, bool)
}

// Labels is a map-backed Labeler for inline label metadata.
type Labels map[string]string

// Label implements Labeler.
func (l Labels) Label(attribute string) (string, bool) {
	label, ok := l[attribute]
	return label, ok && label != ""
}

// Lookup walks a dotted path through maps and exported struct fields and
// returns the value at the end. The second return reports whether every
// segment resolved.
func Lookup(source any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}

	current := source
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, false
		}
		next, ok := lookupSegment(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func lookupSegment(source any, segment string) (any, bool) {
	if source == nil {
		return nil, false
	}

	value := reflect.ValueOf(source)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, false
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entry := value.MapIndex(reflect.ValueOf(segment).Convert(value.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	case reflect.Struct:
		return lookupStructField(value, segment)
	default:
		return nil, false
	}
}

func lookupStructField(value reflect.Value, segment string) (any, bool) {
	t := value.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if fieldMatches(field, segment) {
			return value.Field(i).Interface(), true
		}
	}
	return nil, false
}

func fieldMatches(field reflect.StructField, segment string) bool {
	if strings.EqualFold(field.Name, normalizeFieldName(segment)) {
		return true
	}
	for _, key := range []string{"yaml", "json"} {
		tag, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if tag != "" && tag == segment {
			return true
		}
	}
	return false
}

// normalizeFieldName lets snake_case segments match CamelCase struct fields.
func normalizeFieldName(segment string) string {
	return strings.ReplaceAll(segment, "_", "")
}
