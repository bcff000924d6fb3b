package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

// Normalize canonicalizes a field value for change detection:
// nil and "" collapse to nil, date/time values collapse to a date-only
// string, booleans to "0"/"1", everything else to its string form.
// The point is that representation-only differences (nil vs "", a time.Time
// vs its formatted string, false vs 0) never register as changes, so the
// audit trail carries no noise entries.
func Normalize(v any) *string {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if d, ok := parseDateish(s); ok {
			s = d
		}
		return &s
	case *string:
		if t == nil {
			return nil
		}
		return Normalize(*t)
	case time.Time:
		if t.IsZero() {
			return nil
		}
		s := t.Format(dateOnly)
		return &s
	case *time.Time:
		if t == nil {
			return nil
		}
		return Normalize(*t)
	case bool:
		s := "0"
		if t {
			s = "1"
		}
		return &s
	case float32:
		s := strconv.FormatFloat(float64(t), 'f', -1, 32)
		return &s
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	default:
		s := fmt.Sprint(v)
		if s == "" {
			return nil
		}
		return &s
	}
}

// Same reports loose equality of two values under Normalize: "1" equals 1
// equals true, "" equals nil, and a timestamp equals its date string.
func Same(a, b any) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}
	return *na == *nb
}

// parseDateish recognizes the date and timestamp layouts our persisted
// values show up in and reduces them to date-only.
func parseDateish(s string) (string, bool) {
	for _, layout := range []string{dateOnly, time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateOnly), true
		}
	}
	return "", false
}
