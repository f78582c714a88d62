package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
	"github.com/custodia-labs/jobscope-cli/internal/logger"
)

// Ensure SchemaSyncService implements the interface.
var _ driving.SchemaSyncService = (*SchemaSyncService)(nil)

// SchemaSyncService reconciles the accepted schema baseline with the
// remote database. The baseline only moves on an explicit Accept.
type SchemaSyncService struct {
	notion   driven.NotionClient
	store    driven.SchemaStore
	settings driving.SettingsService
}

// NewSchemaSyncService creates a new schema sync service.
func NewSchemaSyncService(notion driven.NotionClient, store driven.SchemaStore, settings driving.SettingsService) *SchemaSyncService {
	return &SchemaSyncService{
		notion:   notion,
		store:    store,
		settings: settings,
	}
}

// Sync fetches the live schema and diffs it against the baseline.
func (s *SchemaSyncService) Sync(ctx context.Context) (*domain.Schema, *domain.SchemaDiff, error) {
	schema, err := s.fetchLive(ctx)
	if err != nil {
		return nil, nil, err
	}

	accepted, err := s.store.LoadAccepted(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No baseline yet; nothing to diff against.
			return schema, nil, nil
		}
		return nil, nil, fmt.Errorf("load accepted schema: %w", err)
	}

	diff := domain.DiffSchemas(accepted, schema)
	logger.Debug("schema sync: %d added, %d removed, %d changed",
		len(diff.Added), len(diff.Removed), len(diff.Changed))
	return schema, &diff, nil
}

// Accept fetches the live schema and records it as the new baseline.
func (s *SchemaSyncService) Accept(ctx context.Context) (*domain.Schema, error) {
	schema, err := s.fetchLive(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveAccepted(ctx, schema); err != nil {
		return nil, fmt.Errorf("save accepted schema: %w", err)
	}
	logger.Info("accepted schema with %d properties", len(schema.Properties))
	return schema, nil
}

// Accepted returns the current baseline.
func (s *SchemaSyncService) Accepted(ctx context.Context) (*domain.Schema, error) {
	return s.store.LoadAccepted(ctx)
}

func (s *SchemaSyncService) fetchLive(ctx context.Context) (*domain.Schema, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !settings.Notion.IsConfigured() {
		return nil, fmt.Errorf("notion token and database: %w", domain.ErrNotConfigured)
	}
	return s.notion.FetchSchema(ctx, settings.Notion.DatabaseID)
}
