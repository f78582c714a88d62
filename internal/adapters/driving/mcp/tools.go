package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// AnalyzeInput is the input schema for the analyze_job tool.
type AnalyzeInput struct {
	Text   string `json:"text" jsonschema:"the raw job posting text to analyse"`
	JobURL string `json:"job_url,omitempty" jsonschema:"source URL of the job posting"`
}

// AnalyzeOutput is the output schema for the analyze_job tool.
type AnalyzeOutput struct {
	Properties      map[string]any `json:"properties"`
	MarkdownContent string         `json:"markdown_content,omitempty"`
	SchemaDrift     []string       `json:"schema_drift,omitempty"`
	Diagnostics     []string       `json:"diagnostics,omitempty"`
}

// CaptureInput is the input schema for the capture_job tool.
type CaptureInput struct {
	Text   string `json:"text" jsonschema:"the raw job posting text to analyse and save"`
	JobURL string `json:"job_url,omitempty" jsonschema:"source URL of the job posting, used to detect repeat captures"`
}

// CaptureOutput is the output schema for the capture_job tool.
type CaptureOutput struct {
	PageID      string   `json:"page_id"`
	PageURL     string   `json:"page_url"`
	Updated     bool     `json:"updated"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// DuplicateInput is the input schema for the check_duplicate tool.
type DuplicateInput struct {
	JobURL string `json:"job_url" jsonschema:"source URL of the job posting to look up"`
}

// DuplicateOutput is the output schema for the check_duplicate tool.
type DuplicateOutput struct {
	IsDuplicate bool   `json:"is_duplicate"`
	ExistingID  string `json:"existing_id,omitempty"`
	ExistingURL string `json:"existing_url,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_job",
		Description: "Extract structured properties from a job posting without saving it",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "capture_job",
		Description: "Analyse a job posting and save it to the user's database, updating the existing record when the URL was captured before",
	}, s.handleCapture)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_duplicate",
		Description: "Check whether a job posting URL was captured before",
	}, s.handleCheckDuplicate)
}

// handleAnalyze handles the analyze_job tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	outcome, err := s.ports.Analysis.Analyze(ctx, input.Text, input.JobURL)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	return nil, AnalyzeOutput{
		Properties:      outcome.Result.Properties,
		MarkdownContent: outcome.Result.MarkdownContent,
		SchemaDrift:     driftLines(outcome.Drift),
		Diagnostics:     diagnosticLines(outcome.Diagnostics),
	}, nil
}

// handleCapture handles the capture_job tool invocation.
func (s *Server) handleCapture(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CaptureInput,
) (*mcp.CallToolResult, CaptureOutput, error) {
	outcome, err := s.ports.Analysis.Analyze(ctx, input.Text, input.JobURL)
	if err != nil {
		return nil, CaptureOutput{}, err
	}

	saved, err := s.ports.Capture.Save(ctx, outcome.Schema, outcome.Result, input.JobURL)
	if err != nil {
		return nil, CaptureOutput{}, err
	}

	diags := append(outcome.Diagnostics, saved.Diagnostics...)
	return nil, CaptureOutput{
		PageID:      saved.Page.ID,
		PageURL:     saved.Page.URL,
		Updated:     saved.Updated,
		Diagnostics: diagnosticLines(diags),
	}, nil
}

// handleCheckDuplicate handles the check_duplicate tool invocation.
func (s *Server) handleCheckDuplicate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DuplicateInput,
) (*mcp.CallToolResult, DuplicateOutput, error) {
	match, err := s.ports.Capture.CheckDuplicate(ctx, input.JobURL)
	if err != nil {
		return nil, DuplicateOutput{}, err
	}

	return nil, DuplicateOutput{
		IsDuplicate: match.IsDuplicate,
		ExistingID:  match.ExistingID,
		ExistingURL: match.ExistingURL,
	}, nil
}

func driftLines(drift *domain.SchemaDiff) []string {
	if drift == nil || !drift.HasDiff() {
		return nil
	}
	var lines []string
	for _, p := range drift.Added {
		lines = append(lines, fmt.Sprintf("added: %s (%s)", p.Name, p.Type))
	}
	for _, p := range drift.Removed {
		lines = append(lines, fmt.Sprintf("removed: %s (%s)", p.Name, p.Type))
	}
	for _, c := range drift.Changed {
		lines = append(lines, fmt.Sprintf("changed: %s (%s -> %s)", c.Name, c.OldType, c.NewType))
	}
	return lines
}

func diagnosticLines(diags []domain.Diagnostic) []string {
	if len(diags) == 0 {
		return nil
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}
	return lines
}
