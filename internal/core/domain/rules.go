package domain

// Bounds is an inclusive plausibility range for a numeric field.
type Bounds struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the range.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Substitution rewrites one known string form to another.
type Substitution struct {
	From string
	To   string
}

// SanitizeRules configures the result-cleanup and coercion heuristics.
// The defaults encode market-specific conventions (salary unit, legal
// entity prefixes) carried over from the original product; callers that
// target another market inject their own table rather than editing the
// defaults.
type SanitizeRules struct {
	// SalaryMinKey/SalaryMaxKey name the paired range properties whose
	// ordering is corrected when inverted.
	SalaryMinKey string
	SalaryMaxKey string

	// SkillsKey names the multi-value property capped at SkillsCap.
	SkillsKey string
	SkillsCap int

	// CompanyKey names the organisation property whose legal-entity
	// prefix long forms are abbreviated.
	CompanyKey string

	// LegalEntitySubstitutions is applied in order to the company name.
	LegalEntitySubstitutions []Substitution

	// SalaryBounds is the plausible salary magnitude, in units of ten
	// thousand yen as extracted by the prompt.
	SalaryBounds Bounds

	// AgeBounds is the plausible human-age range.
	AgeBounds Bounds
}

// DefaultSanitizeRules returns the rules observed in production use.
func DefaultSanitizeRules() SanitizeRules {
	return SanitizeRules{
		SalaryMinKey: "salary_min",
		SalaryMaxKey: "salary_max",
		SkillsKey:    "skills",
		SkillsCap:    10,
		CompanyKey:   "company",
		LegalEntitySubstitutions: []Substitution{
			{From: "株式会社", To: "㈱"},
			{From: "有限会社", To: "㈲"},
			{From: "合同会社", To: "(同)"},
		},
		SalaryBounds: Bounds{Min: 10, Max: 10000},
		AgeBounds:    Bounds{Min: 15, Max: 100},
	}
}
