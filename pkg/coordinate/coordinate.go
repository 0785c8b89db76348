// Package coordinate renders signed decimal-degree values as
// degrees/minutes/seconds strings under a compact format grammar.
//
// A format is a space-separated sequence of up to three printf-style numeric
// directives (degrees, minutes, seconds) optionally followed by the literal
// token "h", which switches from signed output to an unsigned value with a
// hemisphere-letter suffix:
//
//	AsLatitude(45.5, "%02.6f")        // "45.500000°"
//	AsLatitude(45.5, "%02d %02.6f h") // "45 30.000000′ N"
package coordinate

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrValue marks inputs that are not numeric or exceed the axis range.
	ErrValue = errors.New("coordinate value out of range")

	// ErrFormat marks DMS format strings with invalid numeric directives.
	ErrFormat = errors.New("invalid coordinate format")
)

// DefaultFormat renders unsigned decimal degrees with a hemisphere suffix.
const DefaultFormat = "%02.6f h"

// unitSymbols indexes degree, prime, and double-prime marks by component.
var unitSymbols = [3]string{"°", "′", "″"}

// directivePattern accepts a single printf-style numeric directive: flags,
// optional width and precision, and a numeric verb.
var directivePattern = regexp.MustCompile(`^%[-+ 0#]*(?:\d+)?(?:\.\d+)?[bdeEfgGvxX]$`)

// AsLatitude formats a latitude. The value must be numeric with an absolute
// value of at most 90 degrees. Hemisphere mode renders N or S.
func AsLatitude(value any, format ...string) (string, error) {
	v, err := toFloat(value)
	if err != nil {
		return "", err
	}
	if math.Abs(v) > 90 {
		return "", fmt.Errorf("%w: latitude %v exceeds 90 degrees", ErrValue, v)
	}
	return Format(v, pickFormat(format), true)
}

// AsLongitude formats a longitude. The value must be numeric with an absolute
// value of at most 180 degrees. Hemisphere mode renders E or W.
func AsLongitude(value any, format ...string) (string, error) {
	v, err := toFloat(value)
	if err != nil {
		return "", err
	}
	if math.Abs(v) > 180 {
		return "", fmt.Errorf("%w: longitude %v exceeds 180 degrees", ErrValue, v)
	}
	return Format(v, pickFormat(format), false)
}

// Format renders value under the DMS grammar. The latitude flag only selects
// the hemisphere letters (N/S vs E/W); range checks belong to the AsLatitude
// and AsLongitude entry points.
func Format(value float64, format string, latitude bool) (string, error) {
	tokens := strings.Fields(format)
	hemisphere := false
	if n := len(tokens); n > 0 && tokens[n-1] == "h" {
		hemisphere = true
		tokens = tokens[:n-1]
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: %q has no numeric directives", ErrFormat, format)
	}
	if len(tokens) > 3 {
		return "", fmt.Errorf("%w: %q has more than three numeric directives", ErrFormat, format)
	}

	abs := math.Abs(value)
	degrees := math.Floor(abs)
	minutes := (abs - degrees) * 60
	// Seconds derive from the original absolute value, not from the truncated
	// minutes remainder. Kept as-is; see DESIGN.md.
	seconds := (abs-degrees)*3600 - math.Floor(minutes)*60

	// The first component carries the full absolute value so a lone float
	// directive shows decimal degrees while an integer directive truncates.
	components := [3]float64{abs, minutes, seconds}

	parts := make([]string, len(tokens))
	for i, token := range tokens {
		rendered, err := renderDirective(token, components[i])
		if err != nil {
			return "", err
		}
		parts[i] = rendered
	}
	// The finest rendered component carries its unit symbol; coarser ones
	// stay bare.
	parts[len(parts)-1] += unitSymbols[len(parts)-1]

	out := strings.Join(parts, " ")
	switch {
	case hemisphere:
		out += " " + hemisphereLetter(value, latitude)
	case value < 0:
		out = "-" + out
	}
	return out, nil
}

func renderDirective(token string, value float64) (string, error) {
	if !directivePattern.MatchString(token) {
		return "", fmt.Errorf("%w: %q is not a printf numeric directive", ErrFormat, token)
	}
	switch token[len(token)-1] {
	case 'b', 'd', 'x', 'X':
		return fmt.Sprintf(token, int64(value)), nil
	default:
		return fmt.Sprintf(token, value), nil
	}
}

func hemisphereLetter(value float64, latitude bool) string {
	if latitude {
		if value < 0 {
			return "S"
		}
		return "N"
	}
	if value < 0 {
		return "W"
	}
	return "E"
}

func pickFormat(format []string) string {
	if len(format) > 0 && strings.TrimSpace(format[0]) != "" {
		return format[0]
	}
	return DefaultFormat
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return checkFinite(v)
	case float32:
		return checkFinite(float64(v))
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrValue, v)
		}
		return checkFinite(parsed)
	default:
		return 0, fmt.Errorf("%w: %T is not numeric", ErrValue, value)
	}
}

func checkFinite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: value is not finite", ErrValue)
	}
	return v, nil
}
