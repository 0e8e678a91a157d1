package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driving"
	"github.com/custodia-labs/scopegen/internal/fsutil"
)

// PropertyFromPath derives the property name from an intake filename:
// "Harbor View.xlsx" becomes "Harbor View".
func PropertyFromPath(path string) string {
	name := filepath.Base(path)
	return strings.TrimSpace(strings.TrimSuffix(name, filepath.Ext(name)))
}

// AgreementHandler returns a Handler that generates an agreement for each
// intake and saves it to outDir. A line per generated file is written to out.
func AgreementHandler(svc driving.AgreementService, outDir string, out io.Writer) Handler {
	return func(ctx context.Context, path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading intake: %w", err)
		}

		result, err := svc.Generate(ctx, domain.GenerateRequest{
			Intake:       data,
			PropertyName: PropertyFromPath(path),
		})
		if err != nil {
			return err
		}

		saved, err := fsutil.Save(outDir, result.Filename, result.Content)
		if err != nil {
			return fmt.Errorf("saving %s: %w", result.Filename, err)
		}
		if out != nil {
			fmt.Fprintf(out, "%s -> %s\n", filepath.Base(path), saved)
		}
		return nil
	}
}
