package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
)

var (
	analyzeURL        string
	analyzeJSON       bool
	analyzeShowPrompt bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a job posting without saving it",
	Long: `Extracts structured properties from a job posting using the configured
LLM and the live database schema. Reads the posting text from the given
file, or from stdin when no file is provided.

The result is printed but not saved; use 'jobscope capture' to analyze
and save in one step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "source URL of the job posting")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeShowPrompt, "show-prompt", false, "print the generated prompt instead of calling the model")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	text, err := readPostingText(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if analyzeShowPrompt {
		prompt, err := analysisService.GeneratePrompt(ctx, nil, text)
		if err != nil {
			return fmt.Errorf("failed to generate prompt: %w", err)
		}
		cmd.Println(prompt)
		return nil
	}

	outcome, err := analysisService.Analyze(ctx, text, analyzeURL)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printDrift(cmd, outcome.Drift)
	printDiagnostics(cmd, outcome.Diagnostics)

	if analyzeJSON {
		return outputAnalysisJSON(cmd, outcome)
	}
	return outputAnalysisText(cmd, outcome)
}

// readPostingText reads the posting from the file argument, or from
// stdin when no argument was given.
func readPostingText(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no posting text provided; pass a file or pipe text on stdin")
	}
	return text, nil
}

func outputAnalysisJSON(cmd *cobra.Command, outcome *driving.AnalysisOutcome) error {
	data, err := json.MarshalIndent(outcome.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnalysisText(cmd *cobra.Command, outcome *driving.AnalysisOutcome) error {
	cmd.Println("Extracted Properties")
	cmd.Println("====================")
	for _, key := range sortedKeys(outcome.Result.Properties) {
		value := outcome.Result.Properties[key]
		if value == nil {
			cmd.Printf("  %s: (none)\n", key)
			continue
		}
		cmd.Printf("  %s: %v\n", key, value)
	}

	if outcome.Result.MarkdownContent != "" {
		cmd.Println()
		cmd.Println("Report")
		cmd.Println("======")
		cmd.Println(outcome.Result.MarkdownContent)
	}
	return nil
}
