package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Show the version tracker",
	Long:  `List every agreement base name with the version its next generation will receive.`,
	Args:  cobra.NoArgs,
	RunE:  runVersions,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated agreements",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

// historyLimit is a flag for the history command.
var historyLimit = 20

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show (0 = all)")
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runVersions(cmd *cobra.Command, _ []string) error {
	if agreementService == nil {
		return errors.New("agreement service not configured")
	}

	versions, err := agreementService.Versions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read versions: %w", err)
	}

	if len(versions) == 0 {
		cmd.Println("No agreements generated yet.")
		return nil
	}

	bases := make([]string, 0, len(versions))
	for base := range versions {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	cmd.Println("Version Tracker")
	cmd.Println("===============")
	cmd.Println()
	for _, base := range bases {
		n := versions[base]
		cmd.Printf("  %s\n", base)
		cmd.Printf("    Generated: %d\n", n)
		cmd.Printf("    Next:      V1.%d\n", n)
	}
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if agreementService == nil {
		return errors.New("agreement service not configured")
	}

	records, err := agreementService.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No agreements generated yet.")
		return nil
	}

	for _, r := range records {
		cmd.Printf("%s  %s\n",
			styled(cmd, mutedStyle, r.CreatedAt.Local().Format("2006-01-02 15:04:05")), r.Filename)
		cmd.Printf("    ID: %s  Equipment rows: %d\n", r.ID, r.EquipmentCount)
	}
	cmd.Println()
	cmd.Printf("Total: %d\n", len(records))
	return nil
}
