package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// databaseResponse is the subset of GET /databases/{id} consumed here.
// Property definitions come back keyed by display name.
type databaseResponse struct {
	Properties map[string]propertyDefinition `json:"properties"`
}

type propertyDefinition struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Select      *optionsBody `json:"select,omitempty"`
	MultiSelect *optionsBody `json:"multi_select,omitempty"`
}

type optionsBody struct {
	Options []struct {
		Name string `json:"name"`
	} `json:"options"`
}

// FetchSchema retrieves and normalises the database's property
// definitions. Properties are sorted by name so repeated fetches of an
// unchanged database yield structurally equal snapshots.
func (c *Client) FetchSchema(ctx context.Context, databaseID string) (*domain.Schema, error) {
	if databaseID == "" {
		return nil, fmt.Errorf("database id is required: %w", domain.ErrInvalidInput)
	}

	body, err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil, domain.ErrRemoteSchema)
	if err != nil {
		return nil, err
	}

	var resp databaseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode database: %w", err)
	}

	properties := make([]domain.SchemaProperty, 0, len(resp.Properties))
	for name, def := range resp.Properties {
		prop := domain.SchemaProperty{
			ID:   def.ID,
			Name: name,
			Type: domain.PropertyType(def.Type),
		}
		if def.Type == "select" && def.Select != nil {
			prop.Options = optionNames(def.Select)
		}
		if def.Type == "multi_select" && def.MultiSelect != nil {
			prop.Options = optionNames(def.MultiSelect)
		}
		properties = append(properties, prop)
	}
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].Name < properties[j].Name
	})

	return &domain.Schema{
		SourceID:   databaseID,
		Properties: properties,
		FetchedAt:  time.Now(),
	}, nil
}

func optionNames(body *optionsBody) []string {
	if len(body.Options) == 0 {
		return nil
	}
	names := make([]string, 0, len(body.Options))
	for _, o := range body.Options {
		names = append(names, o.Name)
	}
	return names
}
