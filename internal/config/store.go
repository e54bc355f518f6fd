package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Profiles maps profile names to settings, keeping insertion order.
type Profiles = orderedmap.OrderedMap[string, Settings]

// NewProfiles returns an empty ordered profile map.
func NewProfiles() *Profiles {
	return orderedmap.New[string, Settings]()
}

// Store persists profiles in a single JSON object keyed by name.
// The file may be edited by other processes, so callers Refresh before
// every operation instead of trusting the in-memory snapshot.
type Store struct {
	path     string
	Profiles *Profiles
}

func NewStore(path string) *Store {
	return &Store{
		path:     path,
		Profiles: NewProfiles(),
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the profiles from disk. A missing or unreadable file yields an
// empty map; the failure is logged rather than returned.
func (s *Store) Load() *Profiles {
	profiles := NewProfiles()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return profiles
	}
	if err != nil {
		log.Printf("store: failed to read %s: %v", s.path, err)
		return profiles
	}

	if err := json.Unmarshal(data, profiles); err != nil {
		log.Printf("store: failed to parse %s, treating as empty: %v", s.path, err)
		return NewProfiles()
	}
	return profiles
}

// Refresh replaces the in-memory profiles with the current file contents.
func (s *Store) Refresh() {
	s.Profiles = s.Load()
}

// Save overwrites the store file with the in-memory profiles.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.Profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Len() int {
	return s.Profiles.Len()
}

func (s *Store) Get(name string) (Settings, bool) {
	return s.Profiles.Get(name)
}

// Set inserts or replaces a profile. Replacing keeps its position.
func (s *Store) Set(name string, settings Settings) {
	s.Profiles.Set(name, settings)
}

func (s *Store) Delete(name string) bool {
	_, present := s.Profiles.Delete(name)
	return present
}

// List returns the profiles in store order.
func (s *Store) List() []Profile {
	out := make([]Profile, 0, s.Profiles.Len())
	for pair := s.Profiles.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Profile{Name: pair.Key, Settings: pair.Value})
	}
	return out
}
