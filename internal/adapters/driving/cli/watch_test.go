package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch <dir>", watchCmd.Use)
}

func TestWatchCmd_MissingDir(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := runCommand(t, "watch", filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestWatchCmd_NotADir(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := runCommand(t, "watch", path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}
