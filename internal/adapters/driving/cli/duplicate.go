package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate [url]",
	Short: "Check whether a job URL was captured before",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	if captureService == nil {
		return errors.New("capture service not configured")
	}

	match, err := captureService.CheckDuplicate(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("duplicate check failed: %w", err)
	}

	if !match.IsDuplicate {
		cmd.Println("Not captured before.")
		return nil
	}

	cmd.Printf("Captured before (record %s).\n", match.ExistingID)
	if match.ExistingURL != "" {
		cmd.Printf("  %s\n", match.ExistingURL)
	}
	return nil
}
