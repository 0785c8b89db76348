package formats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-microformat/pkg/coordinate"
)

// Builtin format names.
const (
	FormatText      = "text"
	FormatHTML      = "html"
	FormatDate      = "date"
	FormatDateTime  = "datetime"
	FormatNumber    = "number"
	FormatUpper     = "upper"
	FormatLower     = "lower"
	FormatLatitude  = "latitude"
	FormatLongitude = "longitude"
)

var htmlPolicy = bluemonday.UGCPolicy()

// dateLayouts are tried in order when a date value arrives as a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(FormatText, func(value any) (string, error) {
		return Stringify(value), nil
	})
	r.MustRegister(FormatHTML, func(value any) (string, error) {
		return htmlPolicy.Sanitize(Stringify(value)), nil
	})
	r.MustRegister(FormatDate, formatTime("Jan 2, 2006"))
	r.MustRegister(FormatDateTime, formatTime("Jan 2, 2006 15:04"))
	r.MustRegister(FormatNumber, formatNumber)
	r.MustRegister(FormatUpper, func(value any) (string, error) {
		return strings.ToUpper(Stringify(value)), nil
	})
	r.MustRegister(FormatLower, func(value any) (string, error) {
		return strings.ToLower(Stringify(value)), nil
	})
	r.MustRegister(FormatLatitude, func(value any) (string, error) {
		return coordinate.AsLatitude(value)
	})
	r.MustRegister(FormatLongitude, func(value any) (string, error) {
		return coordinate.AsLongitude(value)
	})
}

// Stringify converts a raw value into its plain text form. nil becomes the
// empty string so absent values render as nothing.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatTime(layout string) Func {
	return func(value any) (string, error) {
		switch v := value.(type) {
		case time.Time:
			return v.Format(layout), nil
		case string:
			if strings.TrimSpace(v) == "" {
				return "", nil
			}
			for _, parse := range dateLayouts {
				if t, err := time.Parse(parse, v); err == nil {
					return t.Format(layout), nil
				}
			}
			return "", fmt.Errorf("formats: cannot parse %q as a date", v)
		default:
			return "", fmt.Errorf("formats: cannot format %T as a date", value)
		}
	}
}

func formatNumber(value any) (string, error) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case string:
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return "", fmt.Errorf("formats: %q is not a number", v)
		}
		return strings.TrimSpace(v), nil
	default:
		return "", fmt.Errorf("formats: cannot format %T as a number", value)
	}
}
