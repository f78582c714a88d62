package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

type queryRequest struct {
	Filter   queryFilter `json:"filter"`
	PageSize int         `json:"page_size"`
}

type queryFilter struct {
	Or []propertyFilter `json:"or"`
}

type propertyFilter struct {
	Property string    `json:"property"`
	URL      urlEquals `json:"url"`
}

type urlEquals struct {
	Equals string `json:"equals"`
}

type queryResponse struct {
	Results []pageResponse `json:"results"`
}

// FindPageByURL queries for a record whose link property equals the
// job URL, OR-ing across the given property names. The names must
// exist in the database schema; the service rejects filters on unknown
// properties. A no-match returns a zero DuplicateMatch without error.
func (c *Client) FindPageByURL(ctx context.Context, databaseID, jobURL string, propertyNames []string) (domain.DuplicateMatch, error) {
	if databaseID == "" || jobURL == "" {
		return domain.DuplicateMatch{}, fmt.Errorf("database id and url are required: %w", domain.ErrInvalidInput)
	}
	if len(propertyNames) == 0 {
		return domain.DuplicateMatch{}, nil
	}

	filters := make([]propertyFilter, 0, len(propertyNames))
	for _, name := range propertyNames {
		filters = append(filters, propertyFilter{
			Property: name,
			URL:      urlEquals{Equals: jobURL},
		})
	}

	req := queryRequest{
		Filter:   queryFilter{Or: filters},
		PageSize: 1,
	}
	body, err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", req, domain.ErrRemoteQuery)
	if err != nil {
		return domain.DuplicateMatch{}, err
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.DuplicateMatch{}, fmt.Errorf("decode query response: %w", err)
	}
	if len(resp.Results) == 0 {
		return domain.DuplicateMatch{}, nil
	}

	return domain.DuplicateMatch{
		IsDuplicate: true,
		ExistingID:  resp.Results[0].ID,
		ExistingURL: resp.Results[0].URL,
	}, nil
}
