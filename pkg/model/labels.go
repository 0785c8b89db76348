package model

import "strings"

// Humanize converts an attribute name into a display label. Underscores,
// dashes, dots, and camelCase boundaries become word breaks and every word is
// title-cased: "street_address" -> "Street Address".
func Humanize(attribute string) string {
	words := strings.FieldsFunc(attribute, func(r rune) bool {
		switch r {
		case '_', '-', '.', ' ':
			return true
		}
		return false
	})

	out := make([]string, 0, len(words))
	for _, word := range words {
		for _, part := range splitCamelWord(word) {
			out = append(out, titleWord(part))
		}
	}
	return strings.Join(out, " ")
}

// LabelFor resolves the display label for an attribute: the model's own label
// metadata when it implements Labeler, otherwise a humanized fallback.
func LabelFor(source any, attribute string) string {
	if labeler, ok := source.(Labeler); ok {
		if label, found := labeler.Label(attribute); found {
			return label
		}
	}
	return Humanize(attribute)
}

func splitCamelWord(word string) []string {
	if word == "" {
		return nil
	}
	var parts []string
	start := 0
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		if camelBoundary(runes[i-1], runes[i]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

func camelBoundary(prev, next rune) bool {
	switch {
	case isLowerRune(prev) && isUpperRune(next):
		return true
	case isLetterRune(prev) && isDigitRune(next):
		return true
	case isDigitRune(prev) && isLetterRune(next):
		return true
	}
	return false
}

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func isUpperRune(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLowerRune(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigitRune(r rune) bool  { return r >= '0' && r <= '9' }
func isLetterRune(r rune) bool { return isUpperRune(r) || isLowerRune(r) }
