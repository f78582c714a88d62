// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Jobscope. It lets AI assistants analyse job postings and save them to the
// user's database.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// ErrMissingCaptureService is returned when the capture service is not provided.
var ErrMissingCaptureService = errors.New("mcp: capture service is required")
