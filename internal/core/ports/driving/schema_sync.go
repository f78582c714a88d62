package driving

import (
	"context"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// SchemaSyncService keeps the locally accepted schema snapshot in step
// with the remote database.
type SchemaSyncService interface {
	// Sync fetches the live schema and diffs it against the accepted
	// baseline. The baseline is not modified.
	Sync(ctx context.Context) (*domain.Schema, *domain.SchemaDiff, error)

	// Accept fetches the live schema and records it as the new
	// baseline.
	Accept(ctx context.Context) (*domain.Schema, error)

	// Accepted returns the current baseline, or domain.ErrNotFound
	// when none was accepted yet.
	Accepted(ctx context.Context) (*domain.Schema, error)
}
