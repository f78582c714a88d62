package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// pageResponse is the subset of a page object consumed here.
type pageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type createPageRequest struct {
	Parent     parentRef           `json:"parent"`
	Properties domain.WritePayload `json:"properties"`
	Children   []domain.Block      `json:"children,omitempty"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

type updatePageRequest struct {
	Properties domain.WritePayload `json:"properties"`
}

// CreatePage writes a new record with the given properties and page body.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties domain.WritePayload, children []domain.Block) (*domain.PageRef, error) {
	if databaseID == "" {
		return nil, fmt.Errorf("database id is required: %w", domain.ErrInvalidInput)
	}

	req := createPageRequest{
		Parent:     parentRef{DatabaseID: databaseID},
		Properties: properties,
		Children:   children,
	}
	body, err := c.do(ctx, http.MethodPost, "/pages", req, domain.ErrRemoteWrite)
	if err != nil {
		return nil, err
	}
	return decodePageRef(body)
}

// UpdatePage patches an existing record's properties. Properties
// absent from the payload keep their remote values.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties domain.WritePayload) (*domain.PageRef, error) {
	if pageID == "" {
		return nil, fmt.Errorf("page id is required: %w", domain.ErrInvalidInput)
	}

	body, err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, updatePageRequest{Properties: properties}, domain.ErrRemoteWrite)
	if err != nil {
		return nil, err
	}
	return decodePageRef(body)
}

func decodePageRef(body []byte) (*domain.PageRef, error) {
	var resp pageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return &domain.PageRef{ID: resp.ID, URL: resp.URL}, nil
}
