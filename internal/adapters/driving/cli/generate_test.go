package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scopegen/internal/adapters/driven/render/docx"
)

func TestGenerateCmd_Use(t *testing.T) {
	assert.Equal(t, "generate <intake.xlsx>", generateCmd.Use)
}

func TestGenerateCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := runCommand(t, "generate")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestGenerateCmd_WritesVersionedFiles(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	intake := writeIntake(t, t.TempDir())

	out, err := runCommand(t, "generate", intake, "--property", "Harbor View")
	require.NoError(t, err)

	first := filepath.Join(env.outDir, "Harbor View - PM Agreement - 2025-2025 - V1.0.docx")
	assert.Contains(t, out, "Generated "+first)
	assert.Contains(t, out, "Version:   V1.0")
	assert.Contains(t, out, "Equipment: Air Handler, Boilers")
	assert.FileExists(t, first)

	out, err = runCommand(t, "generate", intake, "--property", "Harbor View")
	require.NoError(t, err)
	assert.Contains(t, out, "V1.1")
	assert.FileExists(t, filepath.Join(env.outDir, "Harbor View - PM Agreement - 2025-2025 - V1.1.docx"))

	records, err := env.history.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGenerateCmd_OutFlagAndDefaultProperty(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	intake := writeIntake(t, t.TempDir())
	out := t.TempDir()

	_, err := runCommand(t, "generate", intake, "--out", out)
	require.NoError(t, err)

	path := filepath.Join(out, "Property - PM Agreement - 2025-2025 - V1.0.docx")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content, err := docx.Extract(data)
	require.NoError(t, err)
	assert.Contains(t, content.Text, "Boilers:")
}

func TestGenerateCmd_CatalogOrder(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	intake := writeIntake(t, t.TempDir())

	_, err := runCommand(t, "generate", intake, "--order", "catalog")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.outDir, "Property - PM Agreement - 2025-2025 - V1.0.docx"))
	require.NoError(t, err)
	content, err := docx.Extract(data)
	require.NoError(t, err)

	boilers := strings.Index(content.Text, "Boilers:")
	ahu := strings.Index(content.Text, "Air Handlers:")
	require.True(t, boilers >= 0 && ahu >= 0)
	assert.Less(t, boilers, ahu)
}

func TestGenerateCmd_InvalidOrder(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := runCommand(t, "generate", "x.xlsx", "--order", "random")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --order")
}

func TestGenerateCmd_MissingFile(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := runCommand(t, "generate", filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read intake")
}

func TestGenerateCmd_NotAWorkbook(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := runCommand(t, "generate", path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse stage")
	assert.Equal(t, 0, env.versions.Saves())
}

func TestParseOrder(t *testing.T) {
	got, err := parseOrder("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOrder("Alpha")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, *got)

	got, err = parseOrder("catalog")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, *got)

	_, err = parseOrder("sideways")
	assert.Error(t, err)
}

func TestListOrNone(t *testing.T) {
	assert.Equal(t, "(none)", listOrNone(nil))
	assert.Equal(t, "a, b", listOrNone([]string{"a", "b"}))
}
