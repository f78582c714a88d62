package services

import (
	"strings"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// This file is the single source of truth for property-name knowledge
// shared by the prompt generator and the property mapper. Keeping the
// alias and instruction tables in one place stops the two from
// drifting apart as properties are added.

// propertyAliases maps a lowercased schema property name to the result
// keys a model is likely to use instead, in resolution order.
var propertyAliases = map[string][]string{
	"name":         {"company", "company_name", "organization"},
	"company":      {"company", "company_name", "organization"},
	"job title":    {"title", "job_title", "role", "position"},
	"title":        {"title", "job_title", "role", "position"},
	"source":       {"source", "site"},
	"station":      {"station", "nearest_station"},
	"employees":    {"employees", "employee_count"},
	"avg age":      {"avg_age", "average_age"},
	"age_limit":    {"age_limit", "age_restriction"},
	"location":     {"location", "work_location", "address"},
	"employment":   {"employment", "employment_type"},
	"remote":       {"remote", "remote_work"},
	"category":     {"category", "job_category"},
	"side_job":     {"side_job", "sidejob"},
	"skills":       {"skills", "required_skills"},
	"match":        {"match", "skill_match"},
	"salary_min":   {"salary_min", "min_salary"},
	"salary_max":   {"salary_max", "max_salary"},
	"memo":         {"memo", "notes", "note"},
	"rating":       {"rating", "score"},
	"commute_time": {"commute_time", "commute"},
}

// defaultInstructions holds built-in extraction guidance per property,
// keyed by lowercased schema name. User overrides take precedence.
var defaultInstructions = map[string]string{
	"name":       "Company name only",
	"company":    "Company name only",
	"job title":  "Role or position only, exclude the company name",
	"title":      "Role or position only, exclude the company name",
	"source":     "Posting site deduced from the URL or content",
	"employment": "Employment type (e.g. 正社員, 契約社員, 業務委託)",
	"remote":     "Remote-work policy",
	"salary_min": "Annual salary lower bound in units of ten thousand yen (e.g. 5,000,000 yen -> 500), null if unknown",
	"salary_max": "Annual salary upper bound in units of ten thousand yen, null if unknown",
	"category":   "Job category (e.g. エンジニア, PM, デザイナー, 営業)",
	"location":   "Main work location (e.g. 東京都港区)",
	"side_job":   "Whether side jobs are allowed (可, 不可, 要相談)",
	"employees":  "Employee count as written (e.g. \"100名\", \"約500人\")",
	"avg age":    "Average employee age as written (e.g. \"30.5歳\")",
	"age_limit":  "Age limit wording if stated (e.g. \"35歳以下\")",
	"station":    "Nearest station and access (e.g. \"渋谷駅 徒歩5分\")",
	"skills":     "Relevant skills found in the posting",
	"match":      "Skill match against the user profile",
}

// promptPriorityNames lists properties emitted first in the prompt,
// ahead of schema order.
var promptPriorityNames = []string{"name", "title", "job title"}

// selfLinkNames are property names that mean "this record's own link".
// They are always forced to the captured job URL, never model output.
var selfLinkNames = map[string]bool{
	"url":         true,
	"link":        true,
	"job url":     true,
	"job_url":     true,
	"source url":  true,
	"source_url":  true,
	"posting url": true,
}

// companySiteNames are property names that mean "the company's own
// website". These resolve from the result but are never defaulted to
// the job URL.
var companySiteNames = map[string]bool{
	"site":         true,
	"company site": true,
	"company_site": true,
	"company url":  true,
	"company_url":  true,
	"website":      true,
	"homepage":     true,
	"hp":           true,
}

// sourceSiteHints maps URL substrings to posting-site names, spliced
// into the prompt so the model deduces the source consistently.
var sourceSiteHints = []struct {
	URLPart string
	Site    string
}{
	{"green-japan.com", "Green"},
	{"wantedly.com", "Wantedly"},
	{"doda.jp", "doda"},
	{"bizreach.jp", "BizReach"},
	{"linkedin.com", "LinkedIn"},
	{"youtrust.jp", "YOUTRUST"},
	{"findy-code.io", "Findy"},
}

// defaultSelectValues supplies select values written when the result
// resolves nothing for the property.
var defaultSelectValues = map[string]string{
	"status": "searching",
}

// defaultTodayDateNames lists date properties that default to today's
// date when the result resolves nothing.
var defaultTodayDateNames = map[string]bool{
	"action_date": true,
}

// aliasesFor returns the candidate result keys for a schema property
// name, excluding the exact name itself.
func aliasesFor(name string) []string {
	return propertyAliases[strings.ToLower(name)]
}

// instructionFor returns the extraction guidance for a property,
// preferring the user override map.
func instructionFor(name string, overrides map[string]string) (string, bool) {
	if inst, ok := overrides[name]; ok && inst != "" {
		return inst, true
	}
	lower := strings.ToLower(name)
	for key, inst := range overrides {
		if strings.ToLower(key) == lower && inst != "" {
			return inst, true
		}
	}
	if inst, ok := defaultInstructions[lower]; ok {
		return inst, true
	}
	return "", false
}

// isSelfLinkName reports whether the property holds the record's own
// permalink.
func isSelfLinkName(name string) bool {
	return selfLinkNames[strings.ToLower(name)]
}

// isCompanySiteName reports whether the property holds the company's
// own website.
func isCompanySiteName(name string) bool {
	return companySiteNames[strings.ToLower(name)]
}

// numericBoundsFor returns the plausibility range for a numeric
// property, keyed off naming conventions. The bool is false when no
// sanity bound applies.
func numericBoundsFor(name string, rules domain.SanitizeRules) (domain.Bounds, bool) {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "salary") || strings.Contains(lower, "年収"):
		return rules.SalaryBounds, true
	case strings.Contains(lower, "age") || strings.Contains(lower, "年齢"):
		return rules.AgeBounds, true
	default:
		return domain.Bounds{}, false
	}
}

// organisationValue pulls the organisation-name field out of a result.
func organisationValue(props map[string]any) (string, bool) {
	for _, key := range []string{"company", "company_name", "organization"} {
		if s, ok := props[key].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// roleValue pulls the role-title field out of a result.
func roleValue(props map[string]any) (string, bool) {
	for _, key := range []string{"title", "job_title", "role", "position"} {
		if s, ok := props[key].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}
