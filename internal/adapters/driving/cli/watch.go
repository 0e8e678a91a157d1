package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scopegen/internal/adapters/driving/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Generate agreements for intakes dropped into a directory",
	Long: `Watch a directory and generate an agreement for every .xlsx intake that is
created or saved there. The property name is taken from the file name, so
"Harbor View.xlsx" produces "Harbor View - PM Agreement - ...".

Files are processed one at a time once they have stopped changing.
Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

// Flags for the watch command.
var (
	watchOut      string
	watchExisting bool
	watchDebounce = watch.DefaultDebounce
)

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output directory (default from settings)")
	watchCmd.Flags().BoolVar(&watchExisting, "existing", false, "Also process intakes already in the directory")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before a changed file is processed")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if agreementService == nil {
		return errors.New("agreement service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	out := watchOut
	if out == "" {
		out = outputDir
	}

	w := watch.New(dir,
		watch.AgreementHandler(agreementService, out, cmd.OutOrStdout()),
		watch.WithDebounce(watchDebounce),
	)

	if watchExisting {
		if err := w.Backfill(cmd.Context()); err != nil {
			return err
		}
	}

	cmd.Printf("Watching %s, writing to %s (Ctrl+C to stop)\n", dir, out)
	if err := w.Run(cmd.Context()); err != nil {
		return err
	}
	cmd.Println(styled(cmd, mutedStyle, fmt.Sprintf("Stopped at %s", time.Now().Format("15:04:05"))))
	return nil
}
