package driven

import (
	"context"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// NotionClient is the boundary to the external database service.
// All methods are single HTTP round trips; failures surface as
// *domain.RemoteError wrapping the matching sentinel.
type NotionClient interface {
	// FetchSchema retrieves and normalises the database's current
	// property definitions. Pure read; repeated calls under unchanged
	// remote state yield structurally equal snapshots.
	FetchSchema(ctx context.Context, databaseID string) (*domain.Schema, error)

	// CreatePage writes a new record with the given properties and
	// optional page body.
	CreatePage(ctx context.Context, databaseID string, properties domain.WritePayload, children []domain.Block) (*domain.PageRef, error)

	// UpdatePage patches an existing record's properties. Properties
	// absent from the payload keep their remote values; the page body
	// is never touched on update.
	UpdatePage(ctx context.Context, pageID string, properties domain.WritePayload) (*domain.PageRef, error)

	// FindPageByURL queries for a record whose link-type property (any
	// of propertyNames) equals jobURL. Returns domain.ErrNotFound-free
	// semantics: a no-match is a zero DuplicateMatch, not an error.
	FindPageByURL(ctx context.Context, databaseID, jobURL string, propertyNames []string) (domain.DuplicateMatch, error)
}
