package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

// printDrift warns when the live schema no longer matches the accepted
// baseline. Drift never blocks a command.
func printDrift(cmd *cobra.Command, drift *domain.SchemaDiff) {
	if drift == nil || !drift.HasDiff() {
		return
	}

	cmd.Println("Warning: the database schema changed since it was last accepted:")
	for _, p := range drift.Added {
		cmd.Printf("  + %s (%s)\n", p.Name, p.Type)
	}
	for _, p := range drift.Removed {
		cmd.Printf("  - %s (%s)\n", p.Name, p.Type)
	}
	for _, c := range drift.Changed {
		cmd.Printf("  ~ %s (%s -> %s)\n", c.Name, c.OldType, c.NewType)
	}
	cmd.Println("Run 'jobscope schema accept' to accept the new schema.")
	cmd.Println()
}

func printDiagnostics(cmd *cobra.Command, diags []domain.Diagnostic) {
	for _, d := range diags {
		cmd.Printf("Note: %s\n", d)
	}
	if len(diags) > 0 {
		cmd.Println()
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
