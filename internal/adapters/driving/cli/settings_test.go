package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "set")
}

func TestSettingsShow_Defaults(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := runCommand(t, "settings")
	require.NoError(t, err)

	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Backend:  JSON file (file)")
	assert.Contains(t, out, "Data dir: .data")
	assert.Contains(t, out, "Font:        Calibri 11pt")
	assert.Contains(t, out, "Section order: alphabetical")
	assert.Contains(t, out, "Sheet:            Service Intake")
	assert.Contains(t, out, "Default property: Property")
}

func TestSettingsSet(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := runCommand(t, "settings", "set", "storage.backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, out, "Set storage.backend = sqlite")
	assert.Equal(t, "sqlite", env.config.GetString("storage.backend"))

	_, err = runCommand(t, "settings", "set", "document.alphabetize", "false")
	require.NoError(t, err)

	out, err = runCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "SQLite database (sqlite)")
	assert.Contains(t, out, "Section order: catalog")
}

func TestSettingsSet_Invalid(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := runCommand(t, "settings", "set", "document.font_size", "big")
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)

	_, err = runCommand(t, "settings", "set", "nope", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	_, err := runCommand(t, "settings", "set", "storage.backend")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
