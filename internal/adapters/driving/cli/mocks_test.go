package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
)

// mockAnalysisService returns canned outcomes for command tests.
type mockAnalysisService struct {
	outcome *driving.AnalysisOutcome
	prompt  string
	err     error
}

func (m *mockAnalysisService) Analyze(_ context.Context, _, _ string) (*driving.AnalysisOutcome, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.outcome, nil
}

func (m *mockAnalysisService) GeneratePrompt(_ context.Context, _ *domain.Schema, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.prompt, nil
}

type mockCaptureService struct {
	saved   *driving.SaveOutcome
	match   domain.DuplicateMatch
	records []*domain.CaptureRecord
	err     error
}

func (m *mockCaptureService) Save(_ context.Context, _ *domain.Schema, _ *domain.ExtractionResult, _ string) (*driving.SaveOutcome, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.saved, nil
}

func (m *mockCaptureService) CheckDuplicate(_ context.Context, _ string) (domain.DuplicateMatch, error) {
	if m.err != nil {
		return domain.DuplicateMatch{}, m.err
	}
	return m.match, nil
}

func (m *mockCaptureService) History(_ context.Context, limit int) ([]*domain.CaptureRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

type mockSchemaSyncService struct {
	schema *domain.Schema
	drift  *domain.SchemaDiff
	err    error
}

func (m *mockSchemaSyncService) Sync(_ context.Context) (*domain.Schema, *domain.SchemaDiff, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.schema, m.drift, nil
}

func (m *mockSchemaSyncService) Accept(_ context.Context) (*domain.Schema, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schema, nil
}

func (m *mockSchemaSyncService) Accepted(_ context.Context) (*domain.Schema, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schema, nil
}

func testSchema() *domain.Schema {
	return &domain.Schema{
		SourceID: "db-123",
		Properties: []domain.SchemaProperty{
			{Name: "Name", Type: domain.PropertyTypeTitle},
			{Name: "status", Type: domain.PropertyTypeSelect, Options: []string{"searching", "applied"}},
		},
		FetchedAt: time.Now().UTC(),
	}
}

func testOutcome() *driving.AnalysisOutcome {
	return &driving.AnalysisOutcome{
		Result: &domain.ExtractionResult{
			Properties: map[string]any{
				"company": "Acme㈱",
				"title":   "Backend Engineer",
				"memo":    nil,
			},
			MarkdownContent: "## 📋 Job Overview\nBackend role at Acme.",
		},
		Schema: testSchema(),
	}
}

// setupTestServices wires mock services into the package-level vars and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	prevAnalysis := analysisService
	prevCapture := captureService
	prevSchema := schemaService
	prevSettings := settingsService

	analysisService = &mockAnalysisService{outcome: testOutcome(), prompt: "Extract the following fields:"}
	captureService = &mockCaptureService{
		saved: &driving.SaveOutcome{Page: domain.PageRef{ID: "page-1", URL: "https://notion.so/page-1"}},
		records: []*domain.CaptureRecord{
			{
				ID:        "rec-1",
				JobURL:    "https://jobs.example.com/1",
				PageURL:   "https://notion.so/page-1",
				Company:   "Acme",
				Title:     "Engineer",
				UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	schemaService = &mockSchemaSyncService{schema: testSchema()}

	return func() {
		analysisService = prevAnalysis
		captureService = prevCapture
		schemaService = prevSchema
		settingsService = prevSettings
	}
}
