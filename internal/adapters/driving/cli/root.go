// Package cli implements the scopegen command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scopegen/internal/core/ports/driving"
	"github.com/custodia-labs/scopegen/internal/logger"
)

// version is set at build time via -ldflags or by SetVersion.
var version = "dev"

var verbose bool

// Services injected by main.
var (
	agreementService driving.AgreementService
	settingsService  driving.SettingsService
	outputDir        = "."
)

var rootCmd = &cobra.Command{
	Use:   "scopegen",
	Short: "Generate HVAC preventive-maintenance agreements",
	Long: `scopegen turns a completed Service Intake workbook (.xlsx) into a
preventive-maintenance agreement (.docx).

The equipment listed on the intake decides which general service clauses and
equipment scopes appear. Each agreement gets a versioned filename:

  <Property> - PM Agreement - <StartYear>-<EndYear> - V1.<n>.docx

where n counts up every time the same property and term is generated.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logging to stderr")
}

// SetServices injects the services the commands drive.
func SetServices(agreement driving.AgreementService, settings driving.SettingsService) {
	agreementService = agreement
	settingsService = settings
}

// SetOutputDir sets the default directory generated agreements are written to.
func SetOutputDir(dir string) {
	if dir == "" {
		dir = "."
	}
	outputDir = dir
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
