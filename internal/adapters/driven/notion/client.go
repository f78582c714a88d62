// Package notion provides the database client adapter for the Notion
// API. All calls go through one rate-limited HTTP helper so the
// adapter stays within the service's request quota.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jobscope-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.NotionClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.notion.com/v1"
	DefaultTimeout = 30 * time.Second

	// apiVersion is the pinned API revision; payload shapes in this
	// package match it.
	apiVersion = "2022-06-28"

	// The service allows an average of three requests per second per
	// integration.
	requestsPerSecond = 3
	burstSize         = 3
)

// Config holds configuration for the Notion client.
type Config struct {
	// Token is the integration token (required).
	Token string

	// BaseURL is the API base URL (default: https://api.notion.com/v1).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client talks to the Notion REST API.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	limiter *rate.Limiter
}

// NewClient creates a new Notion client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notion: token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}, nil
}

// apiError is the service's error response body.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do performs one rate-limited API request. A non-success status is
// surfaced as a *domain.RemoteError wrapping kind, with the remote
// message carried verbatim.
func (c *Client) do(ctx context.Context, method, path string, body any, kind error) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("notion: %s %s", method, path)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var remote apiError
		if err := json.Unmarshal(respBody, &remote); err != nil || remote.Message == "" {
			remote.Message = http.StatusText(resp.StatusCode)
		}
		return nil, &domain.RemoteError{
			Kind:       kind,
			StatusCode: resp.StatusCode,
			Code:       remote.Code,
			Message:    remote.Message,
		}
	}

	return respBody, nil
}
