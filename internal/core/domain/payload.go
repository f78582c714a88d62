package domain

import (
	"encoding/json"
	"fmt"
)

// maxTextLength is the external service's per-text-segment length cap.
const maxTextLength = 2000

// TextContent is the inner text of a text segment.
type TextContent struct {
	Content string `json:"content"`
}

// TextSpan is one segment of a title or rich-text property value.
type TextSpan struct {
	Text TextContent `json:"text"`
}

// OptionRef names a select or multi-select option.
type OptionRef struct {
	Name string `json:"name"`
}

// DateRef is a calendar-date property value.
type DateRef struct {
	Start string `json:"start"`
}

// PropertyValue is one typed property value in a write payload. The
// Kind field selects which wrapper is serialised; pointer fields left
// nil serialise as an explicit null where the type allows clearing a
// remote value (number, url, email, phone).
type PropertyValue struct {
	Kind PropertyType

	Title       []TextSpan
	RichText    []TextSpan
	Number      *float64
	Select      OptionRef
	MultiSelect []OptionRef
	Checkbox    bool
	URL         *string
	Email       *string
	PhoneNumber *string
	Date        *DateRef
}

// MarshalJSON serialises exactly the wrapper selected by Kind.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case PropertyTypeTitle:
		return json.Marshal(map[string]any{"title": v.Title})
	case PropertyTypeRichText:
		return json.Marshal(map[string]any{"rich_text": v.RichText})
	case PropertyTypeNumber:
		return json.Marshal(map[string]any{"number": v.Number})
	case PropertyTypeSelect:
		return json.Marshal(map[string]any{"select": v.Select})
	case PropertyTypeMultiSelect:
		return json.Marshal(map[string]any{"multi_select": v.MultiSelect})
	case PropertyTypeCheckbox:
		return json.Marshal(map[string]any{"checkbox": v.Checkbox})
	case PropertyTypeURL:
		return json.Marshal(map[string]any{"url": v.URL})
	case PropertyTypeEmail:
		return json.Marshal(map[string]any{"email": v.Email})
	case PropertyTypePhoneNumber:
		return json.Marshal(map[string]any{"phone_number": v.PhoneNumber})
	case PropertyTypeDate:
		return json.Marshal(map[string]any{"date": v.Date})
	default:
		return nil, fmt.Errorf("property value kind %q: %w", v.Kind, ErrInvalidInput)
	}
}

// WritePayload maps property names to typed values, ready to send as
// the properties body of a record create or update. Properties absent
// from the payload keep their existing remote value on update.
type WritePayload map[string]PropertyValue

// NewTextSpans wraps a string as a single text segment, truncated to
// the service's segment length cap.
func NewTextSpans(s string) []TextSpan {
	return []TextSpan{{Text: TextContent{Content: TruncateText(s, maxTextLength)}}}
}

// TitleValue builds a title property value.
func TitleValue(s string) PropertyValue {
	return PropertyValue{Kind: PropertyTypeTitle, Title: NewTextSpans(s)}
}

// RichTextValue builds a rich-text property value.
func RichTextValue(s string) PropertyValue {
	return PropertyValue{Kind: PropertyTypeRichText, RichText: NewTextSpans(s)}
}

// NumberValue builds a number property value; a nil pointer clears the
// remote value.
func NumberValue(n *float64) PropertyValue {
	return PropertyValue{Kind: PropertyTypeNumber, Number: n}
}

// SelectValue builds a select property value.
func SelectValue(name string) PropertyValue {
	return PropertyValue{Kind: PropertyTypeSelect, Select: OptionRef{Name: name}}
}

// MultiSelectValue builds a multi-select property value.
func MultiSelectValue(names []string) PropertyValue {
	opts := make([]OptionRef, 0, len(names))
	for _, n := range names {
		opts = append(opts, OptionRef{Name: n})
	}
	return PropertyValue{Kind: PropertyTypeMultiSelect, MultiSelect: opts}
}

// CheckboxValue builds a checkbox property value.
func CheckboxValue(b bool) PropertyValue {
	return PropertyValue{Kind: PropertyTypeCheckbox, Checkbox: b}
}

// URLValue builds a url property value; a nil pointer serialises as
// null, which the service requires instead of an empty string.
func URLValue(u *string) PropertyValue {
	return PropertyValue{Kind: PropertyTypeURL, URL: u}
}

// EmailValue builds an email property value.
func EmailValue(e *string) PropertyValue {
	return PropertyValue{Kind: PropertyTypeEmail, Email: e}
}

// PhoneValue builds a phone-number property value.
func PhoneValue(p *string) PropertyValue {
	return PropertyValue{Kind: PropertyTypePhoneNumber, PhoneNumber: p}
}

// DateValue builds a date property value from a YYYY-MM-DD string.
func DateValue(start string) PropertyValue {
	return PropertyValue{Kind: PropertyTypeDate, Date: &DateRef{Start: start}}
}

// TruncateText cuts a string to at most limit runes.
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// PageRef identifies a written record.
type PageRef struct {
	// ID is the record's identifier.
	ID string

	// URL is the record's permalink.
	URL string
}
