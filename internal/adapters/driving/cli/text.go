package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scopegen/internal/adapters/driven/render/docx"
)

var textCmd = &cobra.Command{
	Use:   "text <agreement.docx>",
	Short: "Print the text of a generated agreement",
	Args:  cobra.ExactArgs(1),
	RunE:  runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	content, err := docx.Extract(data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if content.Title != "" {
		cmd.Println(styled(cmd, headingStyle, content.Title))
		cmd.Println()
	}
	cmd.Println(content.Text)
	return nil
}
