package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
	"github.com/custodia-labs/jobscope-cli/internal/logger"
)

// Ensure CaptureService implements the interface.
var _ driving.CaptureService = (*CaptureService)(nil)

// fallbackLinkNames are queried for duplicates when no schema snapshot
// is available to derive the actual link property names from.
var fallbackLinkNames = []string{"url", "URL", "link", "job_url"}

// CaptureService writes analysed postings to the remote database with
// upsert semantics keyed on the job URL.
type CaptureService struct {
	notion      driven.NotionClient
	captures    driven.CaptureStore
	schemaStore driven.SchemaStore
	settings    driving.SettingsService
	rules       domain.SanitizeRules
}

// NewCaptureService creates a new capture service.
func NewCaptureService(
	notion driven.NotionClient,
	captures driven.CaptureStore,
	schemaStore driven.SchemaStore,
	settings driving.SettingsService,
	rules domain.SanitizeRules,
) *CaptureService {
	return &CaptureService{
		notion:      notion,
		captures:    captures,
		schemaStore: schemaStore,
		settings:    settings,
		rules:       rules,
	}
}

// Save maps the extraction onto the schema and writes it remotely. An
// existing record for the same job URL is updated in place.
func (s *CaptureService) Save(ctx context.Context, schema *domain.Schema, result *domain.ExtractionResult, jobURL string) (*driving.SaveOutcome, error) {
	if schema == nil || result == nil {
		return nil, fmt.Errorf("schema and result are required: %w", domain.ErrInvalidInput)
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !settings.Notion.IsConfigured() {
		return nil, fmt.Errorf("notion token and database: %w", domain.ErrNotConfigured)
	}

	logger.Section("Save")
	payload, diags := MapToPayload(schema, result, jobURL, s.rules)
	for _, d := range diags {
		logger.Warn("map: %s", d)
	}
	existing := s.lookupExisting(ctx, settings.Notion.DatabaseID, schema, jobURL)

	var page *domain.PageRef
	updated := false
	if existing.IsDuplicate {
		// Updates patch properties only. The page body keeps whatever
		// the user has there; re-appending the report every save would
		// pile up one copy per capture.
		updated = true
		page, err = s.notion.UpdatePage(ctx, existing.ExistingID, payload)
		if err != nil {
			return nil, err
		}
		logger.Info("updated page %s", page.ID)
	} else {
		blocks := MarkdownToBlocks(result.MarkdownContent, true)
		page, err = s.notion.CreatePage(ctx, settings.Notion.DatabaseID, payload, blocks)
		if err != nil {
			return nil, err
		}
		logger.Info("created page %s", page.ID)
	}

	s.recordCapture(ctx, result, jobURL, page)

	return &driving.SaveOutcome{
		Page:        *page,
		Updated:     updated,
		Diagnostics: diags,
	}, nil
}

// CheckDuplicate reports whether the job URL was saved before. It
// fails open: lookup errors report no duplicate instead of propagating,
// since duplicate detection is an optimisation rather than a
// correctness requirement.
func (s *CaptureService) CheckDuplicate(ctx context.Context, jobURL string) (domain.DuplicateMatch, error) {
	if jobURL == "" {
		return domain.DuplicateMatch{}, nil
	}

	if rec, err := s.captures.FindByJobURL(ctx, jobURL); err == nil {
		return domain.DuplicateMatch{
			IsDuplicate: true,
			ExistingID:  rec.PageID,
			ExistingURL: rec.PageURL,
		}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("local duplicate lookup failed: %v", err)
	}

	settings, err := s.settings.Get()
	if err != nil || !settings.Notion.IsConfigured() {
		return domain.DuplicateMatch{}, nil
	}

	match, err := s.notion.FindPageByURL(ctx, settings.Notion.DatabaseID, jobURL, s.linkPropertyNames(ctx))
	if err != nil {
		logger.Warn("remote duplicate lookup failed: %v", err)
		return domain.DuplicateMatch{}, nil
	}
	return match, nil
}

// History lists past captures, most recent first.
func (s *CaptureService) History(ctx context.Context, limit int) ([]*domain.CaptureRecord, error) {
	return s.captures.List(ctx, limit)
}

// lookupExisting finds the page to update for an upsert, local store
// first, then the remote query. Failures fall through to "not found"
// so a save is never blocked by a lookup error.
func (s *CaptureService) lookupExisting(ctx context.Context, databaseID string, schema *domain.Schema, jobURL string) domain.DuplicateMatch {
	if jobURL == "" {
		return domain.DuplicateMatch{}
	}

	if rec, err := s.captures.FindByJobURL(ctx, jobURL); err == nil && rec.PageID != "" {
		return domain.DuplicateMatch{
			IsDuplicate: true,
			ExistingID:  rec.PageID,
			ExistingURL: rec.PageURL,
		}
	}

	match, err := s.notion.FindPageByURL(ctx, databaseID, jobURL, linkNamesFromSchema(schema))
	if err != nil {
		logger.Warn("remote duplicate lookup failed: %v", err)
		return domain.DuplicateMatch{}
	}
	return match
}

// linkPropertyNames derives the link property names to query from the
// accepted schema snapshot, falling back to the conventional names.
func (s *CaptureService) linkPropertyNames(ctx context.Context) []string {
	schema, err := s.schemaStore.LoadAccepted(ctx)
	if err != nil {
		return fallbackLinkNames
	}
	return linkNamesFromSchema(schema)
}

// linkNamesFromSchema picks the URL-type properties that hold the
// record's own link. Querying only names the schema declares avoids
// filter validation errors on unknown properties. Company-website
// properties never qualify: matching a job URL against a company
// homepage would flag unrelated postings from the same company.
func linkNamesFromSchema(schema *domain.Schema) []string {
	var names []string
	for _, p := range schema.Properties {
		if p.Type == domain.PropertyTypeURL && isSelfLinkName(p.Name) {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		for _, p := range schema.Properties {
			if p.Type == domain.PropertyTypeURL && !isCompanySiteName(p.Name) {
				names = append(names, p.Name)
			}
		}
	}
	if len(names) == 0 {
		return fallbackLinkNames
	}
	return names
}

// recordCapture tracks the save locally. Best effort: a store failure
// is logged, not surfaced, since the remote write already succeeded.
func (s *CaptureService) recordCapture(ctx context.Context, result *domain.ExtractionResult, jobURL string, page *domain.PageRef) {
	company, _ := organisationValue(result.Properties)
	role, _ := roleValue(result.Properties)

	now := time.Now()
	rec := &domain.CaptureRecord{
		ID:        uuid.NewString(),
		JobURL:    jobURL,
		PageID:    page.ID,
		PageURL:   page.URL,
		Company:   company,
		Title:     role,
		SavedAt:   now,
		UpdatedAt: now,
	}
	if err := s.captures.Record(ctx, rec); err != nil {
		logger.Warn("record capture: %v", err)
	}
}
