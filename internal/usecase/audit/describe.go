package audit

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// FormatDisplay renders a raw value for human-readable descriptions only;
// stored old/new maps keep the original typed values.
func FormatDisplay(v any) string {
	if v == nil {
		return "(empty)"
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return "(empty)"
		}
		return t
	case *string:
		if t == nil {
			return "(empty)"
		}
		return FormatDisplay(*t)
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, FormatDisplay(rv.Index(i).Interface()))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

// HumanizeField turns a snake_case column name into a label: "staff_grade_id"
// becomes "Staff Grade Id".
func HumanizeField(field string) string {
	parts := strings.Split(field, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// DescribeChanges renders a changed-field set as
// "Field: old > new; Field2: old > new", fields in stable order.
func DescribeChanges(oldValues, newValues map[string]any) string {
	fields := make([]string, 0, len(newValues))
	for f := range newValues {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s > %s",
			HumanizeField(f), FormatDisplay(oldValues[f]), FormatDisplay(newValues[f])))
	}
	return strings.Join(parts, "; ")
}

// DiffFields filters a before/after snapshot down to fields whose normalized
// values actually differ. Both returned maps carry the raw (unnormalized)
// values. Empty maps mean the update was representation-only and no audit
// entry should be written.
func DiffFields(before, after map[string]any) (oldValues, newValues map[string]any) {
	oldValues = map[string]any{}
	newValues = map[string]any{}
	for f, newV := range after {
		oldV := before[f]
		if Same(oldV, newV) {
			continue
		}
		oldValues[f] = oldV
		newValues[f] = newV
	}
	return oldValues, newValues
}
