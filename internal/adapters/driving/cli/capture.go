package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	captureURL   string
	captureForce bool
)

var captureCmd = &cobra.Command{
	Use:   "capture [file]",
	Short: "Analyze a job posting and save it to the database",
	Long: `Runs the full pipeline: extracts structured properties from the
posting text, maps them onto the live database schema and writes a new
record. When the job URL was captured before, the existing record is
updated instead of duplicated.

Reads the posting text from the given file, or from stdin when no file
is provided.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVarP(&captureURL, "url", "u", "", "source URL of the job posting")
	captureCmd.Flags().BoolVarP(&captureForce, "force", "f", false, "save even when the URL was captured before")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}
	if captureService == nil {
		return errors.New("capture service not configured")
	}

	text, err := readPostingText(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if captureURL != "" && !captureForce {
		match, err := captureService.CheckDuplicate(ctx, captureURL)
		if err == nil && match.IsDuplicate {
			cmd.Printf("This URL was captured before (record %s).\n", match.ExistingID)
			cmd.Println("The existing record will be updated. Use --force to skip this notice.")
			cmd.Println()
		}
	}

	outcome, err := analysisService.Analyze(ctx, text, captureURL)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printDrift(cmd, outcome.Drift)
	printDiagnostics(cmd, outcome.Diagnostics)

	saved, err := captureService.Save(ctx, outcome.Schema, outcome.Result, captureURL)
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}

	printDiagnostics(cmd, saved.Diagnostics)

	if saved.Updated {
		cmd.Printf("Updated existing record: %s\n", saved.Page.URL)
	} else {
		cmd.Printf("Saved new record: %s\n", saved.Page.URL)
	}
	return nil
}
