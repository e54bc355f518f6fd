package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"claude-switch/internal/utils"
)

// SettingsFileMode is used whenever the live settings file is (re)written.
const SettingsFileMode os.FileMode = 0600

// ActiveFile is the settings file read by the downstream application.
type ActiveFile struct {
	path string
}

func NewActiveFile(path string) *ActiveFile {
	return &ActiveFile{path: path}
}

func (a *ActiveFile) Path() string {
	return a.path
}

func (a *ActiveFile) Dir() string {
	return filepath.Dir(a.path)
}

func (a *ActiveFile) Exists() bool {
	_, err := os.Stat(a.path)
	return err == nil
}

// Read decodes the settings file. A missing file returns an error matching os.ErrNotExist.
func (a *ActiveFile) Read() (Settings, error) {
	var s Settings
	data, err := os.ReadFile(a.path)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", a.path, err)
	}
	return s, nil
}

// Write atomically replaces the settings file with s.
func (a *ActiveFile) Write(s Settings) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return utils.WriteFileAtomic(a.path, data, SettingsFileMode)
}

// Ensure creates the settings directory and, if the settings file is absent,
// writes DefaultSettings to it. It reports whether the file was created.
func (a *ActiveFile) Ensure() (bool, error) {
	if err := os.MkdirAll(a.Dir(), 0755); err != nil {
		return false, fmt.Errorf("failed to create settings directory %s: %w", a.Dir(), err)
	}
	if a.Exists() {
		return false, nil
	}
	if err := a.Write(DefaultSettings()); err != nil {
		return false, fmt.Errorf("failed to create default settings: %w", err)
	}
	return true, nil
}
