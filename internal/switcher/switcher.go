// Package switcher moves named profiles into the live settings file.
//
// Every public method re-reads the profile store first, because the store
// file may be edited by another process between operations. Switching takes a
// best-effort backup and then replaces the settings file atomically, so the
// file holds either the old or the new profile and never a mix.
package switcher

import (
	"errors"
	"fmt"
	"log"
	"os"

	"claude-switch/internal/config"
	"claude-switch/internal/journal"
	"claude-switch/internal/utils"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
	ErrLastProfile   = errors.New("cannot delete the last remaining profile")
	ErrCancelled     = errors.New("cancelled")
	ErrInvalidInput  = errors.New("invalid input")
)

// Backuper snapshots the live settings file before it is replaced.
type Backuper interface {
	Snapshot() (string, error)
}

// Recorder keeps a history of switch attempts.
type Recorder interface {
	Record(e journal.Entry) error
}

// ConfirmFunc asks the user to approve replacing the live settings with
// target. changes lists the fields that would differ.
type ConfirmFunc func(target config.Profile, changes []config.FieldChange) bool

// Confirmed approves every switch.
func Confirmed(config.Profile, []config.FieldChange) bool { return true }

type writeFunc func(path string, data []byte, perm os.FileMode) error

// Switcher manages the profile store and the live settings file.
type Switcher struct {
	store   *config.Store
	active  *config.ActiveFile
	backups Backuper
	journal Recorder
	write   writeFunc
	current string
}

type Option func(*Switcher)

// WithJournal records every Apply outcome to r.
func WithJournal(r Recorder) Option {
	return func(s *Switcher) { s.journal = r }
}

// New loads the store, seeds it from the live settings when it is empty and
// resolves the current profile.
func New(store *config.Store, active *config.ActiveFile, backups Backuper, opts ...Option) *Switcher {
	s := &Switcher{
		store:   store,
		active:  active,
		backups: backups,
		write:   utils.WriteFileAtomic,
	}
	for _, opt := range opts {
		opt(s)
	}

	store.Refresh()
	s.bootstrap()
	s.refreshCurrent()
	return s
}

func (s *Switcher) bootstrap() {
	if s.store.Len() > 0 {
		return
	}
	settings, err := s.active.Read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("switcher: cannot seed store: %v", err)
		}
		return
	}
	s.store.Set(config.DefaultProfileName, settings)
	s.save()
	log.Printf("switcher: seeded store with %q from %s", config.DefaultProfileName, s.active.Path())
}

// save persists the store. Failures are logged and the in-memory change is kept.
func (s *Switcher) save() {
	if err := s.store.Save(); err != nil {
		log.Printf("switcher: failed to save profiles: %v", err)
	}
}

// activeSettings reads the live file; nil means absent or unreadable.
func (s *Switcher) activeSettings() *config.Settings {
	settings, err := s.active.Read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("switcher: %v", err)
		}
		return nil
	}
	return &settings
}

func (s *Switcher) refreshCurrent() {
	s.current, _ = DetectCurrent(s.store.Profiles, s.activeSettings())
}

// DetectCurrent returns the first profile, in store order, whose settings
// equal active. Several profiles may share a payload; the earliest wins.
func DetectCurrent(profiles *config.Profiles, active *config.Settings) (string, bool) {
	if active == nil || profiles == nil {
		return "", false
	}
	for pair := profiles.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == *active {
			return pair.Key, true
		}
	}
	return "", false
}

// Current returns the profile believed to be live.
func (s *Switcher) Current() (string, bool) {
	return s.current, s.current != ""
}

// ActiveSettings returns the contents of the live settings file.
func (s *Switcher) ActiveSettings() (config.Settings, bool) {
	if a := s.activeSettings(); a != nil {
		return *a, true
	}
	return config.Settings{}, false
}

func (s *Switcher) List() []config.Profile {
	s.store.Refresh()
	return s.store.List()
}

func (s *Switcher) View(name string) (config.Profile, error) {
	s.store.Refresh()
	settings, ok := s.store.Get(name)
	if !ok {
		return config.Profile{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return config.Profile{Name: name, Settings: settings}, nil
}

// Diff lists the fields that would change if name were applied. A missing
// live file is compared as zero-valued settings.
func (s *Switcher) Diff(name string) ([]config.FieldChange, error) {
	p, err := s.View(name)
	if err != nil {
		return nil, err
	}
	before, _ := s.ActiveSettings()
	return config.Diff(before, p.Settings), nil
}

func (s *Switcher) Add(name string, settings config.Settings) error {
	if name == "" {
		return fmt.Errorf("%w: profile name must not be empty", ErrInvalidInput)
	}
	s.store.Refresh()
	if _, ok := s.store.Get(name); ok {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}
	s.store.Set(name, settings)
	s.save()
	s.refreshCurrent()
	return nil
}

// Edit overrides the fields set in patch and returns the stored result.
func (s *Switcher) Edit(name string, patch config.Patch) (config.Settings, error) {
	s.store.Refresh()
	settings, ok := s.store.Get(name)
	if !ok {
		return config.Settings{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	settings = patch.Apply(settings)
	s.store.Set(name, settings)
	s.save()
	s.refreshCurrent()
	return settings, nil
}

// Delete removes a profile. The store always keeps at least one.
func (s *Switcher) Delete(name string) error {
	s.store.Refresh()
	if s.store.Len() <= 1 {
		return ErrLastProfile
	}
	if !s.store.Delete(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s.save()
	s.refreshCurrent()
	return nil
}
