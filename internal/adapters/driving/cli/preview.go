package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

var previewCmd = &cobra.Command{
	Use:   "preview <intake.xlsx>",
	Short: "Show the scope an intake would produce",
	Long: `Parse the intake and select the service clauses without writing a document
or consuming a version number.

Use --format json or --format yaml for machine-readable output.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

// Flags for the preview command.
var (
	previewProperty string
	previewOrder    string
	previewFormat   = "text"
)

func init() {
	previewCmd.Flags().StringVarP(&previewProperty, "property", "p", "", "Property name used in the filename")
	previewCmd.Flags().StringVar(&previewOrder, "order", "", "Equipment section order: alpha or catalog (default from settings)")
	previewCmd.Flags().StringVarP(&previewFormat, "format", "f", "text", "Output format: text, json or yaml")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if agreementService == nil {
		return errors.New("agreement service not configured")
	}

	order, err := parseOrder(previewOrder)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read intake: %w", err)
	}

	preview, err := agreementService.Preview(cmd.Context(), domain.GenerateRequest{
		Intake:       data,
		PropertyName: previewProperty,
		Alphabetize:  order,
	})
	if err != nil {
		return fmt.Errorf("failed to preview intake: %w", err)
	}

	switch previewFormat {
	case "json":
		out, err := json.MarshalIndent(preview, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode preview: %w", err)
		}
		cmd.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(preview)
		if err != nil {
			return fmt.Errorf("failed to encode preview: %w", err)
		}
		cmd.Print(string(out))
	case "text", "":
		printPreview(cmd, preview)
	default:
		return fmt.Errorf("invalid --format %q: must be text, json or yaml", previewFormat)
	}
	return nil
}

func printPreview(cmd *cobra.Command, p *domain.Preview) {
	cmd.Println(styled(cmd, headingStyle, "Preview: "+p.BaseName))
	cmd.Println()

	cmd.Printf("  Frequency: %s (%s)\n", p.Frequency, p.Visits)
	cmd.Printf("  Billing:   %s\n", p.Billing)
	cmd.Println()

	cmd.Println("[Agreement]")
	if len(p.Intake.Agreement) == 0 {
		cmd.Println(styled(cmd, mutedStyle, "  (no agreement fields found)"))
	}
	keys := make([]string, 0, len(p.Intake.Agreement))
	for k := range p.Intake.Agreement {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %s: %s\n", k, p.Intake.Agreement[k])
	}
	cmd.Println()

	cmd.Println("[Equipment]")
	cmd.Printf("  Rows:    %d\n", len(p.Intake.Equipment))
	cmd.Printf("  Present: %s\n", listOrNone(p.Scope.Present))
	cmd.Println()

	cmd.Printf("[General Services] (%d)\n", len(p.Scope.General))
	for _, g := range p.Scope.General {
		cmd.Printf("  - %s\n", g)
	}
	cmd.Println()

	cmd.Printf("[Equipment Scopes] (%d)\n", len(p.Scope.Equipment))
	for _, sc := range p.Scope.Equipment {
		cmd.Printf("  - %s\n", sc.Name)
	}
}
