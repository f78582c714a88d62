package driven

import "github.com/custodia-labs/jobscope-cli/internal/core/domain"

// AIConfigValidator validates provider configurations by constructing
// a client and pinging the provider.
type AIConfigValidator interface {
	// ValidateLLM checks that the LLM settings can reach the provider.
	ValidateLLM(settings *domain.LLMSettings) error
}
