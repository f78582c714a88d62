package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jobscope-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

func analysisFixture(t *testing.T, notion *mockNotionClient, llm *mockLLM) (*AnalysisService, *memory.SchemaStore) {
	t.Helper()
	schemaStore := memory.NewSchemaStore()
	service := NewAnalysisService(notion, llm, schemaStore, configuredSettings(t), domain.DefaultSanitizeRules())
	return service, schemaStore
}

func TestAnalysisService_Analyze(t *testing.T) {
	notion := &mockNotionClient{schema: mappingSchema()}
	llm := &mockLLM{response: `{
		"properties": {"company": "Acme株式会社", "salary_min": 800, "salary_max": 500},
		"markdownContent": "# Report"
	}`}
	service, _ := analysisFixture(t, notion, llm)

	outcome, err := service.Analyze(context.Background(), "We are hiring engineers", "https://job.example/123")

	require.NoError(t, err)
	require.NotNil(t, outcome.Result)
	assert.Equal(t, "Acme㈱", outcome.Result.Properties["company"])
	assert.Equal(t, 500.0, outcome.Result.Properties["salary_min"])
	assert.Equal(t, 800.0, outcome.Result.Properties["salary_max"])
	assert.Equal(t, "# Report", outcome.Result.MarkdownContent)
	assert.Same(t, notion.schema, outcome.Schema)

	// No baseline yet; no drift reported.
	assert.Nil(t, outcome.Drift)
	assert.NotEmpty(t, outcome.Diagnostics)
}

func TestAnalysisService_Analyze_PromptContents(t *testing.T) {
	notion := &mockNotionClient{schema: mappingSchema()}
	llm := &mockLLM{response: `{"properties": {}, "markdownContent": ""}`}
	service, _ := analysisFixture(t, notion, llm)

	_, err := service.Analyze(context.Background(), "posting text here", "https://job.example/123")

	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "Job URL: https://job.example/123")
	assert.Contains(t, llm.prompt, "posting text here")
	assert.Contains(t, llm.prompt, "No specific user profile provided.")
	assert.Contains(t, llm.prompt, "Extract the following fields:")
	assert.Contains(t, llm.prompt, "## 📋 Job Overview")
}

func TestAnalysisService_Analyze_ReportsDrift(t *testing.T) {
	notion := &mockNotionClient{schema: mappingSchema()}
	llm := &mockLLM{response: `{"properties": {}, "markdownContent": ""}`}
	service, schemaStore := analysisFixture(t, notion, llm)

	baseline := &domain.Schema{
		SourceID: "db-1",
		Properties: []domain.SchemaProperty{
			{Name: "Name", Type: domain.PropertyTypeTitle},
		},
	}
	require.NoError(t, schemaStore.SaveAccepted(context.Background(), baseline))

	outcome, err := service.Analyze(context.Background(), "text", "")

	require.NoError(t, err)
	require.NotNil(t, outcome.Drift)
	assert.True(t, outcome.Drift.HasDiff())
}

func TestAnalysisService_Analyze_EmptyText(t *testing.T) {
	service, _ := analysisFixture(t, &mockNotionClient{}, &mockLLM{})

	_, err := service.Analyze(context.Background(), "   ", "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalysisService_Analyze_NoLLM(t *testing.T) {
	service := NewAnalysisService(&mockNotionClient{}, nil, memory.NewSchemaStore(), configuredSettings(t), domain.DefaultSanitizeRules())

	_, err := service.Analyze(context.Background(), "text", "")

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestAnalysisService_Analyze_NotConfigured(t *testing.T) {
	settings := NewSettingsService(memory.NewConfigStore(), nil)
	service := NewAnalysisService(&mockNotionClient{}, &mockLLM{}, memory.NewSchemaStore(), settings, domain.DefaultSanitizeRules())

	_, err := service.Analyze(context.Background(), "text", "")

	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestAnalysisService_Analyze_BadCompletion(t *testing.T) {
	notion := &mockNotionClient{schema: mappingSchema()}
	llm := &mockLLM{response: "sorry, I cannot help with that"}
	service, _ := analysisFixture(t, notion, llm)

	_, err := service.Analyze(context.Background(), "text", "")

	assert.Error(t, err)
}

func TestAnalysisService_GeneratePrompt_FetchesLiveSchema(t *testing.T) {
	notion := &mockNotionClient{schema: mappingSchema()}
	service, _ := analysisFixture(t, notion, &mockLLM{})

	prompt, err := service.GeneratePrompt(context.Background(), nil, "text")

	require.NoError(t, err)
	assert.Contains(t, prompt, "Extract the following fields:")
}

func TestAnalysisService_GeneratePrompt_WithProvidedSchema(t *testing.T) {
	service, _ := analysisFixture(t, &mockNotionClient{}, &mockLLM{})

	prompt, err := service.GeneratePrompt(context.Background(), mappingSchema(), "text")

	require.NoError(t, err)
	assert.Contains(t, prompt, "- Name: String")
}
