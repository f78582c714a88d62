package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// SanitizeResult cleans a freshly parsed extraction before mapping.
// It never fails: every pass is defensive against whatever shape the
// model produced. The input is not modified; a cleaned copy is
// returned along with diagnostics for every correction made.
//
// Flattening runs first since the later passes assume primitive values.
func SanitizeResult(result *domain.ExtractionResult, rules domain.SanitizeRules) (*domain.ExtractionResult, []domain.Diagnostic) {
	if result == nil {
		return &domain.ExtractionResult{Properties: map[string]any{}}, nil
	}

	out := result.Clone()
	if out.Properties == nil {
		out.Properties = map[string]any{}
	}
	var diags []domain.Diagnostic

	for key, value := range out.Properties {
		out.Properties[key] = domain.Flatten(value)
	}

	diags = append(diags, fixRangeInversion(out.Properties, rules)...)
	diags = append(diags, capSkills(out.Properties, rules)...)
	diags = append(diags, abbreviateLegalEntity(out.Properties, rules)...)

	return out, diags
}

// fixRangeInversion swaps the salary pair when min exceeds max.
func fixRangeInversion(props map[string]any, rules domain.SanitizeRules) []domain.Diagnostic {
	minVal, minOK := coerceNumber(props[rules.SalaryMinKey])
	maxVal, maxOK := coerceNumber(props[rules.SalaryMaxKey])
	if !minOK || !maxOK || minVal <= maxVal {
		return nil
	}

	props[rules.SalaryMinKey] = maxVal
	props[rules.SalaryMaxKey] = minVal
	return []domain.Diagnostic{{
		Property: rules.SalaryMinKey,
		Message:  fmt.Sprintf("swapped inverted range %v > %v", minVal, maxVal),
	}}
}

// capSkills truncates the skills list to the configured cap.
func capSkills(props map[string]any, rules domain.SanitizeRules) []domain.Diagnostic {
	if rules.SkillsCap <= 0 {
		return nil
	}

	switch skills := props[rules.SkillsKey].(type) {
	case []any:
		if len(skills) <= rules.SkillsCap {
			return nil
		}
		props[rules.SkillsKey] = skills[:rules.SkillsCap]
		return []domain.Diagnostic{{
			Property: rules.SkillsKey,
			Message:  fmt.Sprintf("truncated %d entries to %d", len(skills), rules.SkillsCap),
		}}
	case []string:
		if len(skills) <= rules.SkillsCap {
			return nil
		}
		props[rules.SkillsKey] = skills[:rules.SkillsCap]
		return []domain.Diagnostic{{
			Property: rules.SkillsKey,
			Message:  fmt.Sprintf("truncated %d entries to %d", len(skills), rules.SkillsCap),
		}}
	default:
		return nil
	}
}

// abbreviateLegalEntity collapses legal-entity prefix long forms in the
// company name to their abbreviated forms. Display normalisation only.
func abbreviateLegalEntity(props map[string]any, rules domain.SanitizeRules) []domain.Diagnostic {
	name, ok := props[rules.CompanyKey].(string)
	if !ok || name == "" {
		return nil
	}

	replaced := name
	for _, sub := range rules.LegalEntitySubstitutions {
		replaced = strings.ReplaceAll(replaced, sub.From, sub.To)
	}
	if replaced == name {
		return nil
	}

	props[rules.CompanyKey] = replaced
	return []domain.Diagnostic{{
		Property: rules.CompanyKey,
		Message:  fmt.Sprintf("abbreviated legal entity prefix: %q -> %q", name, replaced),
	}}
}
