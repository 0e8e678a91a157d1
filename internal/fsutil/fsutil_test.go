package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic_CreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "tracker.json")

	require.NoError(t, WriteAtomic(path, []byte("one"), 0o600))
	require.NoError(t, WriteAtomic(path, []byte("two"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteAtomic_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteAtomic(path, []byte("x"), 0o600))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestJoinName(t *testing.T) {
	got, err := JoinName("out", "Acme - PM Agreement - 2025-2026 - V1.0.docx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "Acme - PM Agreement - 2025-2026 - V1.0.docx"), got)

	for _, bad := range []string{"", ".", "..", "../x.docx", "a/b.docx", `a\b.docx`} {
		_, err := JoinName("out", bad)
		assert.ErrorIs(t, err, ErrUnsafeName, bad)
	}
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "A-B Towers - PM Agreement", SafeName("A/B Towers - PM Agreement"))
	assert.Equal(t, "C-D", SafeName(`C\D`))
	assert.Equal(t, "plain.docx", SafeName("plain.docx"))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "A/B - PM Agreement - V1.0.docx", []byte("docx"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "A-B - PM Agreement - V1.0.docx"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "docx", string(got))

	_, err = Save(dir, "..", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsafeName)
}
