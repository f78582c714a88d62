package services

import (
	"context"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
)

// mockNotionClient is a mock implementation of driven.NotionClient.
type mockNotionClient struct {
	schema *domain.Schema
	page   *domain.PageRef
	match  domain.DuplicateMatch

	fetchErr error
	writeErr error
	queryErr error

	createdDatabaseID string
	createdPayload    domain.WritePayload
	createdBlocks     []domain.Block
	updatedPageID     string
	updatedPayload    domain.WritePayload
	queriedNames      []string
}

func (m *mockNotionClient) FetchSchema(_ context.Context, _ string) (*domain.Schema, error) {
	return m.schema, m.fetchErr
}

func (m *mockNotionClient) CreatePage(_ context.Context, databaseID string, properties domain.WritePayload, children []domain.Block) (*domain.PageRef, error) {
	m.createdDatabaseID = databaseID
	m.createdPayload = properties
	m.createdBlocks = children
	return m.page, m.writeErr
}

func (m *mockNotionClient) UpdatePage(_ context.Context, pageID string, properties domain.WritePayload) (*domain.PageRef, error) {
	m.updatedPageID = pageID
	m.updatedPayload = properties
	return m.page, m.writeErr
}

func (m *mockNotionClient) FindPageByURL(_ context.Context, _ string, _ string, propertyNames []string) (domain.DuplicateMatch, error) {
	m.queriedNames = propertyNames
	return m.match, m.queryErr
}

// mockLLM is a mock implementation of driven.LLMService.
type mockLLM struct {
	response string
	err      error
	prompt   string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompt = prompt
	return m.response, m.err
}

func (m *mockLLM) ModelName() string { return "mock" }

func (m *mockLLM) Ping(_ context.Context) error { return m.err }

func (m *mockLLM) Close() error { return nil }
