package driven

import "context"

// GenerateOptions tunes a single generation call.
type GenerateOptions struct {
	// MaxTokens caps the completion length. Zero means the adapter's
	// default.
	MaxTokens int

	// Temperature controls sampling randomness. Extraction callers
	// keep this at 0 for reproducible output.
	Temperature float64

	// JSONMode asks the provider to constrain output to a single JSON
	// object, where the provider supports it.
	JSONMode bool
}

// LLMService generates text from prompts. Implementations wrap a
// specific provider API and are safe for concurrent use.
type LLMService interface {
	// Generate produces a completion for the prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the configured model identifier.
	ModelName() string

	// Ping verifies the provider is reachable and the credentials are
	// accepted.
	Ping(ctx context.Context) error

	// Close releases any held resources.
	Close() error
}
