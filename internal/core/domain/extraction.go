package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractionResult is the parsed output of one model analysis.
// After sanitisation every value in Properties is a primitive, an array
// of primitives, or nil - never a nested object.
type ExtractionResult struct {
	// Properties maps result keys to extracted values.
	Properties map[string]any `json:"properties"`

	// MarkdownContent is the structured report for the page body.
	MarkdownContent string `json:"markdownContent"`
}

// extractionEnvelope tolerates both key spellings the model produces.
type extractionEnvelope struct {
	Properties      map[string]any `json:"properties"`
	MarkdownContent string         `json:"markdownContent"`
	MarkdownSnake   string         `json:"markdown_content"`
}

// ParseExtraction decodes a model completion into an ExtractionResult.
// Completions are frequently wrapped in markdown code fences even when
// JSON mode was requested; fences are stripped before decoding. A
// completion without a "properties" envelope is treated as a flat
// property bag.
func ParseExtraction(raw string) (*ExtractionResult, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty completion: %w", ErrInvalidInput)
	}

	var env extractionEnvelope
	if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}

	markdown := env.MarkdownContent
	if markdown == "" {
		markdown = env.MarkdownSnake
	}

	props := env.Properties
	if props == nil {
		// Flat completion: treat every top-level key except the
		// markdown body as a property.
		var flat map[string]any
		if err := json.Unmarshal([]byte(cleaned), &flat); err != nil {
			return nil, fmt.Errorf("decode completion: %w", err)
		}
		delete(flat, "markdownContent")
		delete(flat, "markdown_content")
		props = flat
	}

	return &ExtractionResult{
		Properties:      props,
		MarkdownContent: markdown,
	}, nil
}

// Clone returns a deep-enough copy for the sanitiser to rewrite values
// without touching the caller's result.
func (r *ExtractionResult) Clone() *ExtractionResult {
	props := make(map[string]any, len(r.Properties))
	for k, v := range r.Properties {
		props[k] = v
	}
	return &ExtractionResult{
		Properties:      props,
		MarkdownContent: r.MarkdownContent,
	}
}

// stripCodeFences removes a surrounding ```json ... ``` fence if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line ("json").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
