package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past captures, most recent first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if captureService == nil {
		return errors.New("capture service not configured")
	}

	records, err := captureService.History(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list captures: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No captures yet.")
		return nil
	}

	for _, r := range records {
		label := r.Company
		if r.Title != "" {
			if label != "" {
				label += " / "
			}
			label += r.Title
		}
		if label == "" {
			label = r.JobURL
		}
		cmd.Printf("  %s  %s\n", r.UpdatedAt.Format("2006-01-02"), label)
		cmd.Printf("      %s\n", r.JobURL)
		if r.PageURL != "" {
			cmd.Printf("      %s\n", r.PageURL)
		}
	}
	return nil
}
