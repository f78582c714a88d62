package driving

import "github.com/custodia-labs/jobscope-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetNotion configures the database connection.
	SetNotion(token, databaseID string) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// Instructions returns per-property prompt instruction overrides,
	// keyed by property name.
	Instructions() (map[string]string, error)

	// SetInstruction stores a prompt instruction override for a
	// property. An empty instruction removes the override.
	SetInstruction(property, instruction string) error

	// Validate checks if current settings are complete enough to
	// analyse and capture.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
	ValidateLLMConfig() error
}
