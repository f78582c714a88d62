package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the database connection, the LLM provider, the
user profile and per-property prompt instructions.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsNotionCmd = &cobra.Command{
	Use:   "notion",
	Short: "Configure the database connection",
	Long:  `Set the integration token and the target database ID.`,
	RunE:  runSettingsNotion,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure the LLM provider",
	Long:  `Configure the LLM provider used for analysing job postings.`,
	RunE:  runSettingsLLM,
}

var settingsProfileCmd = &cobra.Command{
	Use:   "profile [text]",
	Short: "Set the user profile spliced into prompts",
	Long: `Stores a short free-text profile (background, preferences, target
roles) that grounds the match assessment. Pass an empty string to
clear it.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsProfile,
}

var settingsInstructionCmd = &cobra.Command{
	Use:   "instruction [property] [text]",
	Short: "Override the prompt instruction for a property",
	Long: `Stores a per-property extraction instruction that replaces the
built-in guidance in generated prompts. Pass an empty text to remove
the override; run without arguments to list overrides.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSettingsInstruction,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsNotionCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsProfileCmd)
	settingsCmd.AddCommand(settingsInstructionCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Notion]")
	if settings.Notion.Token != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.Notion.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	if settings.Notion.DatabaseID != "" {
		cmd.Printf("  Database: %s\n", settings.Notion.DatabaseID)
	} else {
		cmd.Printf("  Database: (not set)\n")
	}
	status := "configured"
	if !settings.Notion.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.Provider.IsLocal() {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status = "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Profile]")
	if settings.UserProfile != "" {
		cmd.Printf("  %s\n", settings.UserProfile)
	} else {
		cmd.Println("  (not set)")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'jobscope settings notion' and 'jobscope settings llm' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsNotion(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Print("Enter integration token: ")
	token := readPassword()
	cmd.Println()
	if token == "" {
		return errors.New("integration token is required")
	}

	cmd.Print("Enter database ID: ")
	databaseID := readLine(reader)
	if databaseID == "" {
		return errors.New("database ID is required")
	}

	if err := settingsService.SetNotion(token, databaseID); err != nil {
		return fmt.Errorf("failed to configure database connection: %w", err)
	}

	cmd.Println("Database connection configured.")
	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	defaults := domain.DefaultLLMModels()
	defaultModel := defaults[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateLLMConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("LLM configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("LLM provider configured: %s (%s)\n", selectedProvider.Description(), model)
	return nil
}

func runSettingsProfile(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	settings.UserProfile = strings.TrimSpace(args[0])
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if settings.UserProfile == "" {
		cmd.Println("Profile cleared.")
	} else {
		cmd.Println("Profile saved.")
	}
	return nil
}

func runSettingsInstruction(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 0 {
		overrides, err := settingsService.Instructions()
		if err != nil {
			return fmt.Errorf("failed to list instructions: %w", err)
		}
		if len(overrides) == 0 {
			cmd.Println("No instruction overrides set.")
			return nil
		}
		names := make([]string, 0, len(overrides))
		for name := range overrides {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cmd.Printf("  %s: %s\n", name, overrides[name])
		}
		return nil
	}

	property := args[0]
	instruction := ""
	if len(args) == 2 {
		instruction = args[1]
	}

	if err := settingsService.SetInstruction(property, instruction); err != nil {
		return fmt.Errorf("failed to set instruction: %w", err)
	}

	if instruction == "" {
		cmd.Printf("Removed instruction override for %q.\n", property)
	} else {
		cmd.Printf("Set instruction override for %q.\n", property)
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
