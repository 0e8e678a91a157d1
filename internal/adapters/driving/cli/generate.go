package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/fsutil"
)

var generateCmd = &cobra.Command{
	Use:   "generate <intake.xlsx>",
	Short: "Generate a PM agreement from an intake workbook",
	Long: `Read the Service Intake sheet of the workbook, assemble the agreement and
write it to the output directory under the next versioned filename.

Examples:
  scopegen generate intake.xlsx --property "Harbor View"
  scopegen generate intake.xlsx --out ./agreements --order catalog`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

// Flags for the generate command.
var (
	generateProperty string
	generateOut      string
	generateOrder    string
)

func init() {
	generateCmd.Flags().StringVarP(&generateProperty, "property", "p", "", "Property name used in the filename")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output directory (default from settings)")
	generateCmd.Flags().StringVar(&generateOrder, "order", "", "Equipment section order: alpha or catalog (default from settings)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if agreementService == nil {
		return errors.New("agreement service not configured")
	}

	order, err := parseOrder(generateOrder)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read intake: %w", err)
	}

	result, err := agreementService.Generate(cmd.Context(), domain.GenerateRequest{
		Intake:       data,
		PropertyName: generateProperty,
		Alphabetize:  order,
	})
	if err != nil {
		return fmt.Errorf("failed to generate agreement: %w", err)
	}

	dir := generateOut
	if dir == "" {
		dir = outputDir
	}
	path, err := fsutil.Save(dir, result.Filename, result.Content)
	if err != nil {
		return fmt.Errorf("failed to save agreement: %w", err)
	}

	cmd.Println(styled(cmd, successStyle, "Generated "+path))
	cmd.Printf("  Version:   V1.%d\n", result.Version)
	cmd.Printf("  Equipment: %s\n", listOrNone(result.Scope.Present))
	cmd.Printf("  Sections:  %d general, %d equipment\n", len(result.Scope.General), len(result.Scope.Equipment))
	return nil
}

// parseOrder maps the --order flag to an alphabetize override.
// An empty value defers to settings.
func parseOrder(order string) (*bool, error) {
	var alpha bool
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "":
		return nil, nil
	case "alpha", "alphabetical":
		alpha = true
	case "catalog":
		alpha = false
	default:
		return nil, fmt.Errorf("invalid --order %q: must be alpha or catalog", order)
	}
	return &alpha, nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
