package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// GenerateSchemaPrompt renders the extraction instructions for a schema
// snapshot: a field list with type hints and option enumerations,
// followed by a JSON skeleton showing the exact envelope the model must
// return. The output changes whenever the schema or the instruction
// overrides change, so it is rebuilt per analysis rather than cached.
func GenerateSchemaPrompt(schema *domain.Schema, instructions map[string]string) string {
	props := orderedProperties(schema)

	var b strings.Builder
	b.WriteString("Extract the following fields:\n")
	for _, p := range props {
		b.WriteString("- ")
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(typeHint(p))
		if inst, ok := instructionFor(p.Name, instructions); ok {
			b.WriteString(". ")
			b.WriteString(inst)
		}
		if p.Type.IsEnumerated() && len(p.Options) > 0 {
			b.WriteString(". Options: [")
			b.WriteString(strings.Join(p.Options, ", "))
			b.WriteString("]")
		}
		b.WriteString("\n")
	}

	b.WriteString("\nOutput must be a single JSON object with this exact shape:\n")
	b.WriteString(promptSkeleton(props))
	return b.String()
}

// orderedProperties returns the writable properties with the canonical
// name/title style properties first, everything else in schema order.
func orderedProperties(schema *domain.Schema) []domain.SchemaProperty {
	var out []domain.SchemaProperty
	taken := make(map[string]bool)

	for _, priority := range promptPriorityNames {
		for _, p := range schema.Properties {
			if taken[p.Name] || p.Type.IsReadOnly() {
				continue
			}
			if strings.EqualFold(p.Name, priority) {
				out = append(out, p)
				taken[p.Name] = true
			}
		}
	}
	for _, p := range schema.Properties {
		if taken[p.Name] || p.Type.IsReadOnly() {
			continue
		}
		out = append(out, p)
		taken[p.Name] = true
	}
	return out
}

// typeHint describes a property type in short natural language.
func typeHint(p domain.SchemaProperty) string {
	switch p.Type {
	case domain.PropertyTypeTitle, domain.PropertyTypeRichText:
		return "String"
	case domain.PropertyTypeNumber:
		return "Number or null"
	case domain.PropertyTypeCheckbox:
		return "Boolean (true/false)"
	case domain.PropertyTypeURL:
		return "URL String"
	case domain.PropertyTypeEmail:
		return "Email String"
	case domain.PropertyTypePhoneNumber:
		return "Phone Number String"
	case domain.PropertyTypeDate:
		return "Date (YYYY-MM-DD)"
	case domain.PropertyTypeSelect:
		return "String (Exact match)"
	case domain.PropertyTypeMultiSelect:
		return "Array of Strings"
	default:
		return "String"
	}
}

// promptSkeleton renders the example JSON envelope for the given
// property order.
func promptSkeleton(props []domain.SchemaProperty) string {
	var b strings.Builder
	b.WriteString("{\n  \"properties\": {\n")
	for i, p := range props {
		fmt.Fprintf(&b, "    %q: %s", p.Name, exampleValue(p))
		if i < len(props)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  },\n  \"markdownContent\": \"...\"\n}")
	return b.String()
}

// exampleValue renders a representative JSON literal per type.
func exampleValue(p domain.SchemaProperty) string {
	switch p.Type {
	case domain.PropertyTypeNumber:
		return "123"
	case domain.PropertyTypeCheckbox:
		return "false"
	case domain.PropertyTypeURL:
		return `"https://example.com"`
	case domain.PropertyTypeEmail:
		return `"user@example.com"`
	case domain.PropertyTypePhoneNumber:
		return `"03-1234-5678"`
	case domain.PropertyTypeDate:
		return `"2024-01-15"`
	case domain.PropertyTypeSelect:
		if len(p.Options) > 0 {
			return fmt.Sprintf("%q", p.Options[0])
		}
		return `"..."`
	case domain.PropertyTypeMultiSelect:
		return `["..."]`
	default:
		return `"..."`
	}
}
