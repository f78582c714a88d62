package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
)

// mockAnalysisService implements driving.AnalysisService for tests.
type mockAnalysisService struct {
	outcome *driving.AnalysisOutcome
	prompt  string
	err     error

	analyzedText string
	analyzedURL  string
}

func (m *mockAnalysisService) Analyze(_ context.Context, text, jobURL string) (*driving.AnalysisOutcome, error) {
	m.analyzedText = text
	m.analyzedURL = jobURL
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

// mockCaptureService implements driving.CaptureService for tests.
type mockCaptureService struct {
	saved   *driving.SaveOutcome
	match   domain.DuplicateMatch
	records []*domain.CaptureRecord
	err     error

	savedURL string
}

func (m *mockCaptureService) Save(_ context.Context, _ *domain.Schema, _ *domain.ExtractionResult, jobURL string) (*driving.SaveOutcome, error) {
	m.savedURL = jobURL
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

// mockSchemaService implements driving.SchemaSyncService for tests.
type mockSchemaService struct {
	schema *domain.Schema
	drift  *domain.SchemaDiff
	err    error
}

func (m *mockSchemaService) Sync(_ context.Context) (*domain.Schema, *domain.SchemaDiff, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.schema, m.drift, nil
}

func (m *mockSchemaService) Accept(_ context.Context) (*domain.Schema, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schema, nil
}

func (m *mockSchemaService) Accepted(_ context.Context) (*domain.Schema, error) {
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
		FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testOutcome() *driving.AnalysisOutcome {
	return &driving.AnalysisOutcome{
		Result: &domain.ExtractionResult{
			Properties: map[string]any{
				"company": "Acme㈱",
				"title":   "Backend Engineer",
			},
			MarkdownContent: "## 📋 Job Overview\nBackend role at Acme.",
		},
		Schema: testSchema(),
	}
}
