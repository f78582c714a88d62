package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect and accept the database schema",
	Long: `Shows the live database schema and how it differs from the snapshot
accepted for prompting. Accepting a schema makes drift warnings go away
until the database changes again.`,
	RunE: runSchemaSync,
}

var schemaSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the live schema and show drift",
	RunE:  runSchemaSync,
}

var schemaAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept the live schema as the new baseline",
	RunE:  runSchemaAccept,
}

var schemaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the accepted schema baseline",
	RunE:  runSchemaShow,
}

func init() {
	schemaCmd.AddCommand(schemaSyncCmd)
	schemaCmd.AddCommand(schemaAcceptCmd)
	schemaCmd.AddCommand(schemaShowCmd)
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaSync(cmd *cobra.Command, _ []string) error {
	if schemaService == nil {
		return errors.New("schema service not configured")
	}

	schema, drift, err := schemaService.Sync(context.Background())
	if err != nil {
		return fmt.Errorf("schema sync failed: %w", err)
	}

	printSchema(cmd, schema, "Live Schema")

	switch {
	case drift == nil:
		cmd.Println("No schema was accepted yet. Run 'jobscope schema accept' to set the baseline.")
	case drift.HasDiff():
		printDrift(cmd, drift)
	default:
		cmd.Println("Schema matches the accepted baseline.")
	}
	return nil
}

func runSchemaAccept(cmd *cobra.Command, _ []string) error {
	if schemaService == nil {
		return errors.New("schema service not configured")
	}

	schema, err := schemaService.Accept(context.Background())
	if err != nil {
		return fmt.Errorf("schema accept failed: %w", err)
	}

	cmd.Printf("Accepted schema with %d properties.\n", len(schema.Properties))
	return nil
}

func runSchemaShow(cmd *cobra.Command, _ []string) error {
	if schemaService == nil {
		return errors.New("schema service not configured")
	}

	schema, err := schemaService.Accepted(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No schema was accepted yet. Run 'jobscope schema accept' first.")
			return nil
		}
		return fmt.Errorf("failed to load accepted schema: %w", err)
	}

	printSchema(cmd, schema, "Accepted Schema")
	return nil
}

func printSchema(cmd *cobra.Command, schema *domain.Schema, heading string) {
	cmd.Println(heading)
	cmd.Println("===========")
	for _, p := range schema.Properties {
		line := fmt.Sprintf("  %s: %s", p.Name, p.Type)
		if len(p.Options) > 0 {
			line += fmt.Sprintf(" (%d options)", len(p.Options))
		}
		cmd.Println(line)
	}
	cmd.Println()
}
