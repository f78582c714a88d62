// Package main is the jobscope CLI entrypoint. It wires the driven
// adapters into the core services and hands them to the command tree.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/jobscope-cli/internal/adapters/driven/ai"
	fileconfig "github.com/custodia-labs/jobscope-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/jobscope-cli/internal/adapters/driven/notion"
	"github.com/custodia-labs/jobscope-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/jobscope-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jobscope-cli/internal/core/services"
	"github.com/custodia-labs/jobscope-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := fileconfig.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	schemaStore, err := fileconfig.NewSchemaStore("")
	if err != nil {
		return fmt.Errorf("opening schema store: %w", err)
	}

	captureStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening capture store: %w", err)
	}
	defer captureStore.Close() //nolint:errcheck

	settingsService := services.NewSettingsService(configStore, &ai.Validator{})

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// The Notion client and the LLM service stay nil until configured;
	// the services report ErrNotConfigured / ErrLLMUnavailable then.
	var notionClient driven.NotionClient
	if settings.Notion.Token != "" {
		notionClient, err = notion.NewClient(notion.Config{Token: settings.Notion.Token})
		if err != nil {
			return fmt.Errorf("creating notion client: %w", err)
		}
	}

	llmService, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("LLM provider unavailable: %v", err)
	}
	if llmService != nil {
		defer llmService.Close() //nolint:errcheck
	}

	rules := domain.DefaultSanitizeRules()

	cli.Configure(cli.Services{
		Settings: settingsService,
		Analysis: services.NewAnalysisService(notionClient, llmService, schemaStore, settingsService, rules),
		Capture:  services.NewCaptureService(notionClient, captureStore, schemaStore, settingsService, rules),
		Schema:   services.NewSchemaSyncService(notionClient, schemaStore, settingsService),
	}, version)

	return cli.Execute()
}
