package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(target, []byte(`{"old":true}`), 0644))

	err := WriteFileAtomic(target, []byte(`{"new":true}`), 0600)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, `{"new":true}`, string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the target should remain")
}

func TestWriteFileAtomic_CreatesMissingFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "fresh.json")

	require.NoError(t, WriteFileAtomic(target, []byte("{}"), 0644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteFileAtomic_RenameFailureLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(target, []byte("before"), 0644))

	rename = func(oldpath, newpath string) error {
		return errors.New("device busy")
	}
	t.Cleanup(func() { rename = os.Rename })

	err := WriteFileAtomic(target, []byte("after"), 0644)
	require.Error(t, err)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.True(t, werr.Replacing())
	assert.Equal(t, target, werr.Path)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "before", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be cleaned up")
	assert.Equal(t, "settings.json", entries[0].Name())
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "settings.json")

	err := WriteFileAtomic(target, []byte("{}"), 0644)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, StageCreate, werr.Stage)
	assert.False(t, werr.Replacing())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
