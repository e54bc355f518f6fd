package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppName          = "claude-switch"
	SettingsDirName  = ".claude"
	SettingsFileName = "settings.json"
	StoreFileName    = "claude_profiles.json"
	JournalFileName  = "claude_switch_history.db"
	ConfigFileName   = "config.toml"
)

// GetSettingsDir returns the directory holding the live settings file (~/.claude).
func GetSettingsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, SettingsDirName), nil
}

// GetProgramDir returns the directory of the running executable.
// The profile store lives next to the program rather than under the settings
// directory, so it falls back to the working directory when the executable
// path cannot be resolved.
func GetProgramDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// GetStorePath returns the default location of the profile store.
func GetStorePath() string {
	return filepath.Join(GetProgramDir(), StoreFileName)
}

// GetConfigPath returns the default options file: <user config dir>/claude-switch/config.toml.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, ConfigFileName), nil
}
