package driven

import (
	"context"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// CaptureStore records locally which job postings were saved where.
// It is the first line of duplicate detection before the remote query.
type CaptureStore interface {
	// Record inserts or updates the capture keyed by job URL.
	Record(ctx context.Context, capture *domain.CaptureRecord) error

	// FindByJobURL returns the capture for a job URL, or
	// domain.ErrNotFound when the URL was never saved.
	FindByJobURL(ctx context.Context, jobURL string) (*domain.CaptureRecord, error)

	// List returns captures ordered by most recently saved, capped at
	// limit. A non-positive limit returns all records.
	List(ctx context.Context, limit int) ([]*domain.CaptureRecord, error)

	// Close releases the underlying storage.
	Close() error
}
