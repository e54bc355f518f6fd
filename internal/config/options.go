package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"claude-switch/internal/utils"
)

// DefaultBackupLimit is the number of settings backups kept on disk.
const DefaultBackupLimit = 10

// Options is the optional TOML options file. Zero values fall back to the
// built-in locations; command-line flags take precedence over file values.
type Options struct {
	// SettingsDir holds settings.json and its backups. Default: ~/.claude
	SettingsDir string `toml:"settings_dir"`

	// StorePath is the profile store. Default: claude_profiles.json next to the executable.
	StorePath string `toml:"store_path"`

	// BackupLimit caps the number of retained backups. Default: 10
	BackupLimit int `toml:"backup_limit"`

	// JournalPath is the SQLite switch history. Default: next to the store.
	// Set to "off" to disable the journal.
	JournalPath string `toml:"journal_path"`

	// LogFile receives diagnostic log output. Default: stderr
	LogFile string `toml:"log_file"`
}

// JournalDisabled is the JournalPath value that turns the switch history off.
const JournalDisabled = "off"

// LoadOptions reads a TOML options file.
//
// With an empty path the default location is tried and a missing file yields
// empty Options. An explicit path must exist.
func LoadOptions(path string) (*Options, error) {
	opts := &Options{}

	if path == "" {
		defaultPath, err := utils.GetConfigPath()
		if err != nil {
			return opts, nil
		}
		if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
			return opts, nil
		}
		path = defaultPath
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return opts, nil
}

// Resolve fills unset fields with their defaults.
func (o *Options) Resolve() error {
	if o.SettingsDir == "" {
		dir, err := utils.GetSettingsDir()
		if err != nil {
			return err
		}
		o.SettingsDir = dir
	}
	if o.StorePath == "" {
		o.StorePath = utils.GetStorePath()
	}
	if o.JournalPath == "" {
		o.JournalPath = filepath.Join(filepath.Dir(o.StorePath), utils.JournalFileName)
	}
	if o.BackupLimit <= 0 {
		o.BackupLimit = DefaultBackupLimit
	}
	return nil
}

// ActiveSettingsPath is the live settings file inside SettingsDir.
func (o *Options) ActiveSettingsPath() string {
	return filepath.Join(o.SettingsDir, utils.SettingsFileName)
}

func (o *Options) JournalEnabled() bool {
	return o.JournalPath != JournalDisabled
}
