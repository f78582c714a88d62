package mcp

import (
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analysis turns posting text into structured properties.
	Analysis driving.AnalysisService

	// Capture saves analysed postings and tracks duplicates.
	Capture driving.CaptureService

	// Schema keeps the accepted schema baseline in step.
	Schema driving.SchemaSyncService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Capture == nil {
		return ErrMissingCaptureService
	}
	// Schema is optional; the schema resource degrades gracefully.
	return nil
}
