package driving

import (
	"context"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// SaveOutcome reports where a capture ended up.
type SaveOutcome struct {
	// Page identifies the created or updated remote record.
	Page domain.PageRef

	// Updated is true when an existing record was patched instead of a
	// new one created.
	Updated bool

	// Diagnostics lists properties that could not be mapped onto the
	// schema and were omitted from the write.
	Diagnostics []domain.Diagnostic
}

// CaptureService persists analysed job postings to the remote
// database and tracks what was saved.
type CaptureService interface {
	// Save maps the extraction onto the schema and writes it. When the
	// job URL already has a record, its properties are updated in
	// place; the page body is written at create time only and never
	// touched on update.
	Save(ctx context.Context, schema *domain.Schema, result *domain.ExtractionResult, jobURL string) (*SaveOutcome, error)

	// CheckDuplicate reports whether the job URL was saved before.
	// Lookup failures are swallowed: an unreachable backend reports
	// no duplicate so a capture is never blocked by a transient error.
	CheckDuplicate(ctx context.Context, jobURL string) (domain.DuplicateMatch, error)

	// History lists past captures, most recent first.
	History(ctx context.Context, limit int) ([]*domain.CaptureRecord, error)
}
