package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// maxOptionLength is the external service's option name length cap.
const maxOptionLength = 100

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dateLayouts are accepted input formats, normalised to YYYY-MM-DD.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"2006.01.02",
}

// MapToPayload builds a type-correct write payload from a sanitised
// extraction against a live schema snapshot. Properties that resolve no
// value are omitted entirely so an update preserves their remote
// values. A coercion failure on one property never aborts the mapping:
// the property is nulled or dropped and a diagnostic recorded.
func MapToPayload(schema *domain.Schema, result *domain.ExtractionResult, recordURL string, rules domain.SanitizeRules) (domain.WritePayload, []domain.Diagnostic) {
	payload := make(domain.WritePayload)
	var diags []domain.Diagnostic

	props := map[string]any{}
	if result != nil && result.Properties != nil {
		props = result.Properties
	}

	for _, p := range schema.Properties {
		if p.Type.IsReadOnly() {
			continue
		}

		// The record's own permalink is always the captured job URL,
		// never whatever the model put in the result.
		if p.Type == domain.PropertyTypeURL && isSelfLinkName(p.Name) {
			payload[p.Name] = domain.URLValue(nonEmptyPtr(recordURL))
			continue
		}

		value, found := resolveValue(p.Name, props)
		if !found {
			if def, ok := defaultFor(p); ok {
				payload[p.Name] = def
			}
			continue
		}

		coerced, ok, propDiags := coerceValue(p, value, rules)
		diags = append(diags, propDiags...)
		if ok {
			payload[p.Name] = coerced
		}
	}

	diags = append(diags, ensureTitle(schema, props, payload)...)
	return payload, diags
}

// resolveValue finds the result value for a schema property: exact key
// first, then the alias table, then a case-insensitive scan. Result
// keys are scanned in sorted order so resolution is deterministic.
func resolveValue(name string, props map[string]any) (any, bool) {
	if v, ok := props[name]; ok && v != nil {
		return v, true
	}
	for _, alias := range aliasesFor(name) {
		if v, ok := props[alias]; ok && v != nil {
			return v, true
		}
	}

	lower := strings.ToLower(name)
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.ToLower(k) == lower && props[k] != nil {
			return props[k], true
		}
	}
	return nil, false
}

// defaultFor supplies values written when the result resolves nothing:
// a workflow status for select properties and today's date for action
// date properties.
func defaultFor(p domain.SchemaProperty) (domain.PropertyValue, bool) {
	lower := strings.ToLower(p.Name)
	if p.Type == domain.PropertyTypeSelect {
		if def, ok := defaultSelectValues[lower]; ok {
			return domain.SelectValue(def), true
		}
	}
	if p.Type == domain.PropertyTypeDate && defaultTodayDateNames[lower] {
		return domain.DateValue(time.Now().Format("2006-01-02")), true
	}
	return domain.PropertyValue{}, false
}

// coerceValue converts a resolved value to the property's typed
// wrapper. The bool reports whether anything should be written.
func coerceValue(p domain.SchemaProperty, value any, rules domain.SanitizeRules) (domain.PropertyValue, bool, []domain.Diagnostic) {
	switch p.Type {
	case domain.PropertyTypeTitle:
		s := stringify(value)
		if s == "" {
			return domain.PropertyValue{}, false, nil
		}
		return domain.TitleValue(s), true, nil

	case domain.PropertyTypeRichText:
		return domain.RichTextValue(stringify(value)), true, nil

	case domain.PropertyTypeNumber:
		return coerceNumberValue(p, value, rules)

	case domain.PropertyTypeSelect:
		return coerceSelect(p, value)

	case domain.PropertyTypeMultiSelect:
		names := optionNames(value)
		if len(names) == 0 {
			return domain.PropertyValue{}, false, nil
		}
		return domain.MultiSelectValue(names), true, nil

	case domain.PropertyTypeCheckbox:
		return domain.CheckboxValue(coerceBool(value)), true, nil

	case domain.PropertyTypeURL:
		return coerceURL(p, value)

	case domain.PropertyTypeEmail:
		return coerceEmail(p, value)

	case domain.PropertyTypePhoneNumber:
		s := stringify(value)
		if s == "" {
			return domain.PropertyValue{}, false, nil
		}
		return domain.PhoneValue(&s), true, nil

	case domain.PropertyTypeDate:
		return coerceDate(p, value)

	default:
		return domain.PropertyValue{}, false, []domain.Diagnostic{{
			Property: p.Name,
			Message:  fmt.Sprintf("unsupported property type %q", p.Type),
		}}
	}
}

// coerceNumberValue parses and bounds-checks a numeric property.
// Implausible values are written as null rather than sent as-is.
func coerceNumberValue(p domain.SchemaProperty, value any, rules domain.SanitizeRules) (domain.PropertyValue, bool, []domain.Diagnostic) {
	n, ok := coerceNumber(value)
	if !ok {
		return domain.PropertyValue{}, false, []domain.Diagnostic{{
			Property: p.Name,
			Message:  fmt.Sprintf("not a number: %v", value),
		}}
	}

	if bounds, bounded := numericBoundsFor(p.Name, rules); bounded && !bounds.Contains(n) {
		return domain.NumberValue(nil), true, []domain.Diagnostic{{
			Property: p.Name,
			Message:  fmt.Sprintf("value %v outside plausible range [%v, %v], discarded", n, bounds.Min, bounds.Max),
		}}
	}
	return domain.NumberValue(&n), true, nil
}

// coerceSelect writes the value as-is. An option outside the schema's
// declared list is still written, since the remote service auto-creates
// new options, but a warning is recorded.
func coerceSelect(p domain.SchemaProperty, value any) (domain.PropertyValue, bool, []domain.Diagnostic) {
	s := strings.TrimSpace(stringify(value))
	if s == "" {
		return domain.PropertyValue{}, false, nil
	}
	s = domain.TruncateText(s, maxOptionLength)

	var diags []domain.Diagnostic
	if len(p.Options) > 0 && !containsFold(p.Options, s) {
		diags = append(diags, domain.Diagnostic{
			Property: p.Name,
			Message:  fmt.Sprintf("option %q not in schema options, writing anyway", s),
		})
	}
	return domain.SelectValue(s), true, diags
}

func coerceURL(p domain.SchemaProperty, value any) (domain.PropertyValue, bool, []domain.Diagnostic) {
	s := strings.TrimSpace(stringify(value))
	if s == "" {
		return domain.PropertyValue{}, false, nil
	}
	if !isValidURL(s) {
		return domain.URLValue(nil), true, []domain.Diagnostic{{
			Property: p.Name,
			Message:  fmt.Sprintf("invalid URL %q, discarded", s),
		}}
	}
	return domain.URLValue(&s), true, nil
}

func coerceEmail(p domain.SchemaProperty, value any) (domain.PropertyValue, bool, []domain.Diagnostic) {
	s := strings.TrimSpace(stringify(value))
	if s == "" {
		return domain.PropertyValue{}, false, nil
	}
	if !emailPattern.MatchString(s) {
		return domain.EmailValue(nil), true, []domain.Diagnostic{{
			Property: p.Name,
			Message:  fmt.Sprintf("invalid email %q, discarded", s),
		}}
	}
	return domain.EmailValue(&s), true, nil
}

// coerceDate validates and normalises to a calendar-date-only string.
func coerceDate(p domain.SchemaProperty, value any) (domain.PropertyValue, bool, []domain.Diagnostic) {
	s := strings.TrimSpace(stringify(value))
	if s == "" {
		return domain.PropertyValue{}, false, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateValue(t.Format("2006-01-02")), true, nil
		}
	}
	return domain.PropertyValue{}, false, []domain.Diagnostic{{
		Property: p.Name,
		Message:  fmt.Sprintf("unparseable date %q, omitted", s),
	}}
}

// ensureTitle guarantees the mandatory title property is populated,
// falling back to the organisation name, then the role title, then a
// literal placeholder. A write must never omit the title.
func ensureTitle(schema *domain.Schema, props map[string]any, payload domain.WritePayload) []domain.Diagnostic {
	titleProp, ok := schema.TitleProperty()
	if !ok {
		return nil
	}
	if existing, ok := payload[titleProp.Name]; ok && len(existing.Title) > 0 && existing.Title[0].Text.Content != "" {
		return nil
	}

	title := "Unknown Company"
	if org, ok := organisationValue(props); ok {
		title = org
	} else if role, ok := roleValue(props); ok {
		title = role
	}

	payload[titleProp.Name] = domain.TitleValue(title)
	return []domain.Diagnostic{{
		Property: titleProp.Name,
		Message:  fmt.Sprintf("title not resolved, defaulted to %q", title),
	}}
}

// coerceNumber parses numbers out of model output. Strings are cleaned
// of currency symbols, commas and units before parsing.
func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, v)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceBool interprets model output as a checkbox value.
func coerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1", "on":
			return true
		}
		return false
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

// optionNames converts an array value to de-duplicated, comma-stripped
// option names.
func optionNames(value any) []string {
	var raw []string
	switch v := value.(type) {
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			raw = append(raw, stringify(item))
		}
	case string:
		raw = []string{v}
	default:
		return nil
	}

	seen := make(map[string]bool)
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(strings.ReplaceAll(name, ",", ""))
		if name == "" {
			continue
		}
		name = domain.TruncateText(name, maxOptionLength)
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// stringify renders any flattened value as a display string.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

func isValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func containsFold(options []string, value string) bool {
	for _, o := range options {
		if strings.EqualFold(o, value) {
			return true
		}
	}
	return false
}

func nonEmptyPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
