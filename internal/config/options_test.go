package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
settings_dir = "/tmp/claude"
store_path = "/tmp/profiles.json"
backup_limit = 3
journal_path = "off"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/claude", opts.SettingsDir)
	assert.Equal(t, "/tmp/profiles.json", opts.StorePath)
	assert.Equal(t, 3, opts.BackupLimit)
	assert.False(t, opts.JournalEnabled())
}

func TestLoadOptions_MissingExplicitFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadOptions_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backup_limit = = 3"), 0600))

	_, err := LoadOptions(path)
	assert.Error(t, err)
}

func TestOptions_Resolve(t *testing.T) {
	opts := &Options{
		SettingsDir: "/data/.claude",
		StorePath:   "/data/profiles.json",
	}

	require.NoError(t, opts.Resolve())
	assert.Equal(t, DefaultBackupLimit, opts.BackupLimit)
	assert.Equal(t, filepath.Join("/data", "claude_switch_history.db"), opts.JournalPath)
	assert.Equal(t, filepath.Join("/data/.claude", "settings.json"), opts.ActiveSettingsPath())
	assert.True(t, opts.JournalEnabled())
}
