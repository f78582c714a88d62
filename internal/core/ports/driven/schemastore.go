package driven

import (
	"context"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// SchemaStore persists the locally accepted schema snapshot used as
// the baseline for drift detection.
type SchemaStore interface {
	// LoadAccepted returns the last accepted snapshot, or
	// domain.ErrNotFound if none was ever accepted.
	LoadAccepted(ctx context.Context) (*domain.Schema, error)

	// SaveAccepted replaces the accepted snapshot.
	SaveAccepted(ctx context.Context, schema *domain.Schema) error
}
