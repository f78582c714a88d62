package driving

import (
	"context"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// AnalysisOutcome bundles everything produced by one analysis run.
type AnalysisOutcome struct {
	// Result holds the sanitised extraction.
	Result *domain.ExtractionResult

	// Schema is the live snapshot the extraction was prompted against.
	Schema *domain.Schema

	// Drift describes how the live schema differs from the accepted
	// baseline. Nil when no baseline exists yet.
	Drift *domain.SchemaDiff

	// Diagnostics lists non-fatal issues found while sanitising.
	Diagnostics []domain.Diagnostic
}

// AnalysisService turns raw job posting text into structured
// properties matching the remote database schema.
type AnalysisService interface {
	// Analyze fetches the live schema, prompts the language model with
	// the posting text, and sanitises the parsed result. jobURL may be
	// empty; when set it is carried into the result so downstream
	// mapping can distinguish the posting's own link.
	Analyze(ctx context.Context, text, jobURL string) (*AnalysisOutcome, error)

	// GeneratePrompt builds the extraction prompt for the given schema
	// and text without calling the model. Used for inspection and by
	// callers that run their own model.
	GeneratePrompt(ctx context.Context, schema *domain.Schema, text string) (string, error)
}
