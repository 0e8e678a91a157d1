package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionsCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := runCommand(t, "versions")

	require.NoError(t, err)
	assert.Contains(t, out, "No agreements generated yet.")
}

func TestVersionsCmd_AfterGenerate(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	intake := writeIntake(t, t.TempDir())

	for i := 0; i < 2; i++ {
		_, err := runCommand(t, "generate", intake, "--property", "Harbor View")
		require.NoError(t, err)
	}

	out, err := runCommand(t, "versions")
	require.NoError(t, err)

	assert.Contains(t, out, "Harbor View - PM Agreement - 2025-2025")
	assert.Contains(t, out, "Generated: 2")
	assert.Contains(t, out, "Next:      V1.2")
}

func TestHistoryCmd(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	intake := writeIntake(t, t.TempDir())

	out, err := runCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No agreements generated yet.")

	for _, property := range []string{"Alpha", "Beta"} {
		_, err := runCommand(t, "generate", intake, "--property", property)
		require.NoError(t, err)
	}

	out, err = runCommand(t, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Beta - PM Agreement - 2025-2025 - V1.0.docx")
	assert.NotContains(t, out, "Alpha")
	assert.Contains(t, out, "Equipment rows: 2")
	assert.Contains(t, out, "Total: 1")
}

func TestHistoryCmd_RejectsArgs(t *testing.T) {
	_, err := runCommand(t, "history", "extra")
	assert.Error(t, err)
}
