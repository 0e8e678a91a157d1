package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scopegen/internal/adapters/driven/intake/xlsx"
	"github.com/custodia-labs/scopegen/internal/adapters/driven/intake/xlsx/xlsxtest"
	"github.com/custodia-labs/scopegen/internal/adapters/driven/render/docx"
	"github.com/custodia-labs/scopegen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/scopegen/internal/core/services"
	"github.com/custodia-labs/scopegen/internal/logger"
)

// testEnv holds the services wired for a command test.
type testEnv struct {
	outDir   string
	config   *memory.ConfigStore
	versions *memory.VersionStore
	history  *memory.GenerationLog
}

// setupTestServices wires real services over memory stores and returns a
// cleanup func that restores package state.
func setupTestServices(t *testing.T) (*testEnv, func()) {
	t.Helper()

	env := &testEnv{
		outDir:   t.TempDir(),
		config:   memory.NewConfigStore(),
		versions: memory.NewVersionStore(),
		history:  memory.NewGenerationLog(),
	}

	writer := docx.NewWriter()
	alloc, err := services.NewVersionAllocator(context.Background(), env.versions, writer.Extension())
	require.NoError(t, err)

	agreement := services.NewAgreementService(xlsx.NewReader(""), writer, alloc, env.history,
		services.AgreementOptions{Alphabetize: true})
	settings := services.NewSettingsService(env.config)

	origAgreement, origSettings, origOut := agreementService, settingsService, outputDir
	SetServices(agreement, settings)
	SetOutputDir(env.outDir)

	return env, func() {
		agreementService, settingsService, outputDir = origAgreement, origSettings, origOut
		resetFlags()
	}
}

// resetFlags restores flag variables, which persist between Execute calls.
func resetFlags() {
	verbose = false
	logger.SetVerbose(false)
	generateProperty, generateOut, generateOrder = "", "", ""
	previewProperty, previewOrder, previewFormat = "", "", "text"
	historyLimit = 20
	watchOut, watchExisting = "", false
}

// runCommand executes args against rootCmd and returns the output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeIntake writes a standard annual boiler + AHU intake to dir.
func writeIntake(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "intake.xlsx")
	data := xlsxtest.Build(t, xlsxtest.Intake{
		Start:     xlsxtest.Date(2025, 1, 1),
		End:       xlsxtest.Date(2025, 12, 31),
		Frequency: "Annual",
		Equipment: []string{"Boiler", "AHU"},
	})
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
