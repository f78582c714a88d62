// Package cli implements the command-line interface. Commands are
// thin: they parse flags, call the driving ports and print results.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
	"github.com/custodia-labs/jobscope-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands drive, injected by Configure before Execute.
var (
	settingsService driving.SettingsService
	analysisService driving.AnalysisService
	captureService  driving.CaptureService
	schemaService   driving.SchemaSyncService
)

var rootCmd = &cobra.Command{
	Use:   "jobscope",
	Short: "Capture job postings into a Notion database",
	Long: `Jobscope analyses job postings with an LLM and saves the extracted
properties into your own Notion database, adapting to whatever schema
the database currently has.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
}

// Services bundles everything the CLI needs wired in.
type Services struct {
	Settings driving.SettingsService
	Analysis driving.AnalysisService
	Capture  driving.CaptureService
	Schema   driving.SchemaSyncService
}

// Configure injects the core services and the build version.
func Configure(svcs Services, ver string) {
	settingsService = svcs.Settings
	analysisService = svcs.Analysis
	captureService = svcs.Capture
	schemaService = svcs.Schema
	if ver != "" {
		version = ver
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
