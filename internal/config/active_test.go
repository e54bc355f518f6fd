package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveFile_EnsureCreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".claude")
	active := NewActiveFile(filepath.Join(dir, "settings.json"))

	created, err := active.Ensure()
	require.NoError(t, err)
	assert.True(t, created)

	got, err := active.Read()
	require.NoError(t, err)
	assert.Equal(t, Settings{APIKey: "", Model: "claude-3-sonnet-20240229", MaxTokens: 4096}, got)
}

func TestActiveFile_EnsureKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key":"x","model":"m","max_tokens":10}`), 0600))
	active := NewActiveFile(path)

	created, err := active.Ensure()
	require.NoError(t, err)
	assert.False(t, created)

	got, err := active.Read()
	require.NoError(t, err)
	assert.Equal(t, Settings{APIKey: "x", Model: "m", MaxTokens: 10}, got)
}

func TestActiveFile_ReadMissing(t *testing.T) {
	active := NewActiveFile(filepath.Join(t.TempDir(), "settings.json"))

	_, err := active.Read()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, active.Exists())
}

func TestActiveFile_EnsureFailsWhenDirIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
	active := NewActiveFile(filepath.Join(blocker, "settings.json"))

	_, err := active.Ensure()
	assert.Error(t, err)
}

func TestActiveFile_WriteRoundTrip(t *testing.T) {
	active := NewActiveFile(filepath.Join(t.TempDir(), "settings.json"))
	want := Settings{APIKey: "k2", Model: "m2", MaxTokens: 2048}

	require.NoError(t, active.Write(want))

	got, err := active.Read()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
