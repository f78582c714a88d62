package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
)

// Ensure CaptureStore implements the interface.
var _ driven.CaptureStore = (*CaptureStore)(nil)

// CaptureStore is an in-memory implementation of driven.CaptureStore for testing.
type CaptureStore struct {
	mu       sync.RWMutex
	byJobURL map[string]*domain.CaptureRecord
}

// NewCaptureStore creates a new in-memory capture store.
func NewCaptureStore() *CaptureStore {
	return &CaptureStore{
		byJobURL: make(map[string]*domain.CaptureRecord),
	}
}

// Record inserts or updates the capture keyed by job URL.
func (s *CaptureStore) Record(ctx context.Context, capture *domain.CaptureRecord) error {
	if capture == nil || capture.JobURL == "" {
		return fmt.Errorf("capture with job url is required: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byJobURL[capture.JobURL]; ok {
		updated := *capture
		updated.ID = existing.ID
		updated.SavedAt = existing.SavedAt
		s.byJobURL[capture.JobURL] = &updated
		return nil
	}

	stored := *capture
	s.byJobURL[capture.JobURL] = &stored
	return nil
}

// FindByJobURL returns the capture for a job URL.
func (s *CaptureStore) FindByJobURL(ctx context.Context, jobURL string) (*domain.CaptureRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byJobURL[jobURL]
	if !ok {
		return nil, fmt.Errorf("capture for %q: %w", jobURL, domain.ErrNotFound)
	}
	copied := *rec
	return &copied, nil
}

// List returns captures ordered by most recently saved.
func (s *CaptureStore) List(ctx context.Context, limit int) ([]*domain.CaptureRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.CaptureRecord, 0, len(s.byJobURL))
	for _, rec := range s.byJobURL {
		copied := *rec
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close releases the underlying storage (no-op for memory store).
func (s *CaptureStore) Close() error {
	return nil
}
