package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change scopegen settings.

Settings are stored in config.toml in the scopegen home directory
(~/.scopegen, or $SCOPEGEN_HOME when set). Changes apply on the next run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  storage.backend        file, sqlite or memory
  storage.data_dir       directory for the version tracker and database
  output.dir             directory generated agreements are written to
  intake.sheet           name of the intake sheet
  document.font_name     base font
  document.font_size     base font size in points
  document.alphabetize   true to order equipment sections by name
  property.default_name  property name used when none is given`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
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

	cmd.Println("[Storage]")
	cmd.Printf("  Backend:  %s (%s)\n", settings.Storage.Backend.Description(), settings.Storage.Backend)
	cmd.Printf("  Data dir: %s\n", settings.Storage.DataDir)
	cmd.Println()

	cmd.Println("[Document]")
	cmd.Printf("  Font:        %s %gpt\n", settings.Document.FontName, settings.Document.FontSize)
	order := "catalog"
	if settings.Document.Alphabetize {
		order = "alphabetical"
	}
	cmd.Printf("  Section order: %s\n", order)
	cmd.Println()

	cmd.Println("[Intake]")
	cmd.Printf("  Sheet:            %s\n", settings.IntakeSheet)
	cmd.Printf("  Default property: %s\n", settings.DefaultPropertyName)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Dir: %s\n", settings.OutputDir)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}

	cmd.Println(styled(cmd, successStyle, fmt.Sprintf("Set %s = %s", args[0], args[1])))
	return nil
}
