package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jobscope-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.LLM.Provider, settings.LLM.Provider)
	assert.Equal(t, defaults.LLM.Model, settings.LLM.Model)
	assert.Empty(t, settings.Notion.Token)
	assert.False(t, settings.Notion.IsConfigured())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("notion.token", "secret_token")
	_ = store.Set("notion.database_id", "db-123")
	_ = store.Set("llm.provider", "anthropic")
	_ = store.Set("llm.model", "claude-3-5-sonnet-latest")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "secret_token", settings.Notion.Token)
	assert.Equal(t, "db-123", settings.Notion.DatabaseID)
	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	assert.Equal(t, "claude-3-5-sonnet-latest", settings.LLM.Model)
	assert.True(t, settings.Notion.IsConfigured())
}

func TestSettingsService_Get_InvalidProviderReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.provider", "invalid_provider")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings().LLM.Provider, settings.LLM.Provider)
}

func TestSettingsService_SetNotion(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetNotion("secret_token", "db-123")

	require.NoError(t, err)
	settings, err := service.Get()
	require.NoError(t, err)
	assert.True(t, settings.Notion.IsConfigured())
}

func TestSettingsService_SetNotion_RequiresBothValues(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	assert.ErrorIs(t, service.SetNotion("", "db-123"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.SetNotion("token", ""), domain.ErrInvalidInput)
}

func TestSettingsService_SetLLMProvider(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetLLMProvider(domain.AIProviderAnthropic, "", "sk-key")

	require.NoError(t, err)
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	// Empty model falls back to the provider default.
	assert.Equal(t, domain.DefaultLLMModels()[domain.AIProviderAnthropic], settings.LLM.Model)
	assert.Equal(t, "sk-key", settings.LLM.APIKey)
}

func TestSettingsService_SetLLMProvider_RequiresAPIKeyForCloud(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetLLMProvider(domain.AIProviderOpenAI, "gpt-4o-mini", "")

	assert.Error(t, err)
}

func TestSettingsService_SetLLMProvider_OllamaGetsBaseURL(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetLLMProvider(domain.AIProviderOllama, "llama3.2", "")

	require.NoError(t, err)
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
}

func TestSettingsService_Instructions(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetInstruction("salary_min", "Monthly salary in yen"))
	require.NoError(t, service.SetInstruction("memo", "Short summary"))

	overrides, err := service.Instructions()

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"salary_min": "Monthly salary in yen",
		"memo":       "Short summary",
	}, overrides)
}

func TestSettingsService_SetInstruction_EmptyRemovesOverride(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetInstruction("memo", "Short summary"))
	require.NoError(t, service.SetInstruction("memo", ""))

	overrides, err := service.Instructions()

	require.NoError(t, err)
	assert.NotContains(t, overrides, "memo")
}

func TestSettingsService_SetInstruction_RequiresProperty(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	assert.ErrorIs(t, service.SetInstruction("", "text"), domain.ErrInvalidInput)
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	// Nothing configured.
	assert.Error(t, service.Validate())

	require.NoError(t, service.SetNotion("secret_token", "db-123"))
	require.NoError(t, service.SetLLMProvider(domain.AIProviderOpenAI, "gpt-4o-mini", "sk-key"))

	assert.NoError(t, service.Validate())
}
