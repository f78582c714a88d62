package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
	"github.com/custodia-labs/jobscope-cli/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// maxPromptTextLength caps how much posting text is spliced into the
// prompt; anything beyond this adds cost without adding signal.
const maxPromptTextLength = 50000

// AnalysisService runs the extraction pipeline: fetch the live schema,
// prompt the model, parse and sanitise the completion.
type AnalysisService struct {
	notion      driven.NotionClient
	llm         driven.LLMService
	schemaStore driven.SchemaStore
	settings    driving.SettingsService
	rules       domain.SanitizeRules
}

// NewAnalysisService creates a new analysis service. llm may be nil
// when no completion provider is configured; Analyze then fails with
// domain.ErrLLMUnavailable.
func NewAnalysisService(
	notion driven.NotionClient,
	llm driven.LLMService,
	schemaStore driven.SchemaStore,
	settings driving.SettingsService,
	rules domain.SanitizeRules,
) *AnalysisService {
	return &AnalysisService{
		notion:      notion,
		llm:         llm,
		schemaStore: schemaStore,
		settings:    settings,
		rules:       rules,
	}
}

// Analyze extracts structured properties from a job posting.
func (s *AnalysisService) Analyze(ctx context.Context, text, jobURL string) (*driving.AnalysisOutcome, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("posting text is empty: %w", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !settings.Notion.IsConfigured() {
		return nil, fmt.Errorf("notion token and database: %w", domain.ErrNotConfigured)
	}

	logger.Section("Analyze")
	schema, err := s.notion.FetchSchema(ctx, settings.Notion.DatabaseID)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched schema with %d properties", len(schema.Properties))

	drift, err := s.detectDrift(ctx, schema)
	if err != nil {
		return nil, err
	}

	prompt, err := s.buildPrompt(schema, text, jobURL, settings.UserProfile)
	if err != nil {
		return nil, err
	}

	logger.Debug("prompting %s (%d chars)", s.llm.ModelName(), len(prompt))
	completion, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("generate completion: %w", err)
	}

	parsed, err := domain.ParseExtraction(completion)
	if err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}

	result, diags := SanitizeResult(parsed, s.rules)
	for _, d := range diags {
		logger.Warn("sanitize: %s", d)
	}

	return &driving.AnalysisOutcome{
		Result:      result,
		Schema:      schema,
		Drift:       drift,
		Diagnostics: diags,
	}, nil
}

// GeneratePrompt builds the extraction prompt without calling the
// model. A nil schema fetches the live one first.
func (s *AnalysisService) GeneratePrompt(ctx context.Context, schema *domain.Schema, text string) (string, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}

	if schema == nil {
		if !settings.Notion.IsConfigured() {
			return "", fmt.Errorf("notion token and database: %w", domain.ErrNotConfigured)
		}
		schema, err = s.notion.FetchSchema(ctx, settings.Notion.DatabaseID)
		if err != nil {
			return "", err
		}
	}

	return s.buildPrompt(schema, text, "", settings.UserProfile)
}

// detectDrift diffs the live schema against the accepted baseline.
// A missing baseline means first run; no drift is reported.
func (s *AnalysisService) detectDrift(ctx context.Context, schema *domain.Schema) (*domain.SchemaDiff, error) {
	accepted, err := s.schemaStore.LoadAccepted(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load accepted schema: %w", err)
	}

	diff := domain.DiffSchemas(accepted, schema)
	if diff.HasDiff() {
		logger.Warn("schema drift: %d added, %d removed, %d changed",
			len(diff.Added), len(diff.Removed), len(diff.Changed))
	}
	return &diff, nil
}

// buildPrompt assembles the full analysis prompt: persona, input data,
// the schema-derived field list and a markdown report template.
func (s *AnalysisService) buildPrompt(schema *domain.Schema, text, jobURL, userProfile string) (string, error) {
	instructions, err := s.settings.Instructions()
	if err != nil {
		return "", fmt.Errorf("load instruction overrides: %w", err)
	}

	if profile := strings.TrimSpace(userProfile); profile != "" {
		userProfile = profile
	} else {
		userProfile = "No specific user profile provided."
	}

	var b strings.Builder
	b.WriteString("You are a career assistant \"Jobscope\".\n")
	b.WriteString("Process the following job description and user profile (if provided).\n")
	b.WriteString("Extract key information to save into a tracking database.\n")
	b.WriteString("Also generate a structured Markdown report for the page content.\n\n")

	b.WriteString("Input Data:\n")
	fmt.Fprintf(&b, "Job URL: %s\n", jobURL)
	b.WriteString("Job Description:\n")
	b.WriteString(domain.TruncateText(text, maxPromptTextLength))
	b.WriteString("\n\nUser Profile:\n")
	b.WriteString(userProfile)
	b.WriteString("\n\n---\nRequirements:\n1. ")
	b.WriteString(GenerateSchemaPrompt(schema, instructions))

	b.WriteString("\n\nSource deduction rules (for a source/site property, if present):\n")
	for _, hint := range sourceSiteHints {
		fmt.Fprintf(&b, "   - URL matches %q -> %q\n", hint.URLPart, hint.Site)
	}
	b.WriteString("   - If no URL, infer from the text. Default to \"Other\" or \"Direct\" if unknown.\n")

	b.WriteString("\n2. Generate the markdown report with this structure:\n")
	b.WriteString("   # 【Company Name】Job Title\n")
	b.WriteString("   ## 📋 Job Overview\n")
	b.WriteString("   ## 🏢 Company Info\n")
	b.WriteString("   ## 💰 Benefits & Salary\n")
	b.WriteString("   ## 📊 Selection Process\n")
	b.WriteString("   ## 🔍 Research\n")
	b.WriteString("   ## ✅ Motivation & Skills\n")
	b.WriteString("   ## 📝 Interview Prep\n")

	return b.String(), nil
}
