package domain

import (
	"encoding/json"
	"strings"
)

// Flatten reduces an arbitrary decoded JSON value to a primitive, an
// array of primitives, or nil. Model output sometimes mimics the
// external service's property wrappers (rich-text arrays, select
// objects, date objects); Flatten unwraps all of those so downstream
// code only ever sees plain values. It never panics: unrecognised
// objects are serialised to a JSON string rather than dropped.
func Flatten(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string, bool, float64, int, int64:
		return v
	case []string:
		return v
	case []any:
		return flattenSlice(v)
	case map[string]any:
		return flattenObject(v)
	default:
		// Unusual scalar (json.Number etc); keep it as-is.
		return v
	}
}

// flattenSlice flattens each element and drops empty results. A slice
// that already holds only strings is returned unchanged.
func flattenSlice(values []any) any {
	if len(values) == 0 {
		return values
	}
	allStrings := true
	for _, v := range values {
		if _, ok := v.(string); !ok {
			allStrings = false
			break
		}
	}
	if allStrings {
		return values
	}

	out := make([]any, 0, len(values))
	for _, v := range values {
		flat := Flatten(v)
		if isEmptyValue(flat) {
			continue
		}
		out = append(out, flat)
	}
	return out
}

// flattenObject unwraps the known property-wrapper shapes in priority
// order, falling back to a JSON dump so no data is lost silently.
func flattenObject(obj map[string]any) any {
	if len(obj) == 0 {
		return nil
	}

	// Rich-text / title wrappers: array of text segments.
	for _, key := range []string{"rich_text", "richText", "title"} {
		if segments, ok := obj[key].([]any); ok {
			return joinTextSegments(segments)
		}
	}

	// Select wrapper: single named option.
	if sel, ok := obj["select"].(map[string]any); ok {
		if name, ok := sel["name"].(string); ok {
			return name
		}
	}

	// Multi-select wrapper: array of named options.
	for _, key := range []string{"multi_select", "multiSelect"} {
		if opts, ok := obj[key].([]any); ok {
			names := make([]any, 0, len(opts))
			for _, o := range opts {
				if m, ok := o.(map[string]any); ok {
					if name, ok := m["name"].(string); ok && name != "" {
						names = append(names, name)
					}
				} else if s, ok := o.(string); ok && s != "" {
					names = append(names, s)
				}
			}
			return names
		}
	}

	// Generic string-ish fields, first found wins.
	for _, key := range []string{"name", "content", "text", "title", "label", "value"} {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		if flat := Flatten(v); !isEmptyValue(flat) {
			return flat
		}
	}

	// Known scalar wrappers, returned directly if defined.
	for _, key := range []string{"number", "checkbox", "url", "email", "phone_number", "phoneNumber"} {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}

	// Date wrapper: start date string or empty.
	if date, ok := obj["date"].(map[string]any); ok {
		if start, ok := date["start"].(string); ok {
			return start
		}
		return ""
	}

	// Last resort: keep the data as a JSON string.
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil
	}
	return string(raw)
}

// joinTextSegments concatenates the text content of rich-text segments.
func joinTextSegments(segments []any) string {
	var b strings.Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case string:
			b.WriteString(s)
		case map[string]any:
			if plain, ok := s["plain_text"].(string); ok {
				b.WriteString(plain)
				continue
			}
			if text, ok := s["text"].(map[string]any); ok {
				if content, ok := text["content"].(string); ok {
					b.WriteString(content)
					continue
				}
			}
			if content, ok := s["content"].(string); ok {
				b.WriteString(content)
			}
		}
	}
	return b.String()
}

// isEmptyValue reports whether a flattened value carries no data.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
