package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Jobscope resources.
	uriScheme = "jobscope://"

	historyResourceLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the accepted schema baseline.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "schema",
		Name:        "schema",
		Description: "The accepted database schema baseline",
		MIMEType:    "application/json",
	}, s.handleSchemaResource)

	// Static resource for recent captures.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "captures",
		Name:        "captures",
		Description: "Recently captured job postings, most recent first",
		MIMEType:    "application/json",
	}, s.handleCapturesResource)
}

// handleSchemaResource returns the accepted schema baseline.
func (s *Server) handleSchemaResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Schema == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	schema, err := s.ports.Schema.Accepted(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("loading accepted schema: %w", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling schema: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCapturesResource returns recent capture records.
func (s *Server) handleCapturesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Capture.History(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing captures: %w", err)
	}

	// Build simplified record list.
	type captureInfo struct {
		JobURL  string `json:"job_url"`
		PageURL string `json:"page_url,omitempty"`
		Company string `json:"company,omitempty"`
		Title   string `json:"title,omitempty"`
		SavedAt string `json:"saved_at"`
	}

	infos := make([]captureInfo, len(records))
	for i, r := range records {
		infos[i] = captureInfo{
			JobURL:  r.JobURL,
			PageURL: r.PageURL,
			Company: r.Company,
			Title:   r.Title,
			SavedAt: r.SavedAt.Format("2006-01-02"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling captures: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
