package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

func TestServer_handleSchemaResource(t *testing.T) {
	ctx := context.Background()
	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "jobscope://schema"},
	}

	t.Run("returns accepted schema as JSON", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{},
			Schema:   &mockSchemaService{schema: testSchema()},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleSchemaResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "jobscope://schema", result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"source_id": "db-123"`)
		assert.Contains(t, result.Contents[0].Text, `"status"`)
	})

	t.Run("no baseline reports resource not found", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{},
			Schema:   &mockSchemaService{err: domain.ErrNotFound},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleSchemaResource(ctx, req)

		assert.Error(t, err)
	})

	t.Run("no schema service reports resource not found", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleSchemaResource(ctx, req)

		assert.Error(t, err)
	})
}

func TestServer_handleCapturesResource(t *testing.T) {
	ctx := context.Background()
	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "jobscope://captures"},
	}

	t.Run("returns simplified capture list", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture: &mockCaptureService{
				records: []*domain.CaptureRecord{
					{
						JobURL:  "https://jobs.example.com/1",
						PageURL: "https://notion.so/page-1",
						Company: "Acme",
						Title:   "Engineer",
						SavedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
					},
				},
			},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleCapturesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		text := result.Contents[0].Text
		assert.Contains(t, text, `"job_url": "https://jobs.example.com/1"`)
		assert.Contains(t, text, `"company": "Acme"`)
		assert.Contains(t, text, `"saved_at": "2025-06-01"`)
	})

	t.Run("empty history returns empty list", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleCapturesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("history failure propagates", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{err: errors.New("store offline")},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleCapturesResource(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "store offline")
	})
}
