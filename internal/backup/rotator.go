// Package backup keeps a bounded history of copies of the live settings file.
package backup

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	filePrefix = "settings_backup_"
	fileSuffix = ".json"
	timeLayout = "20060102_150405"
)

// Backup is one retained snapshot.
type Backup struct {
	Path    string
	ModTime time.Time
	Size    int64
}

func (b Backup) Name() string {
	return filepath.Base(b.Path)
}

// Rotator copies the source file into its own directory before each switch
// and prunes the oldest copies beyond limit.
type Rotator struct {
	source string
	dir    string
	limit  int
	now    func() time.Time
}

func NewRotator(source string, limit int) *Rotator {
	return &Rotator{
		source: source,
		dir:    filepath.Dir(source),
		limit:  limit,
		now:    time.Now,
	}
}

func (r *Rotator) Limit() int {
	return r.limit
}

// Snapshot copies the source file to settings_backup_<timestamp>.json and
// prunes old backups. It returns an empty path when there is nothing to copy.
// Two snapshots within the same second share a name; the later one wins.
func (r *Rotator) Snapshot() (string, error) {
	data, err := os.ReadFile(r.source)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", r.source, err)
	}

	name := filePrefix + r.now().Format(timeLayout) + fileSuffix
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", path, err)
	}
	log.Printf("backup: saved %s", path)

	if err := r.Prune(); err != nil {
		return path, err
	}
	return path, nil
}

// List returns the retained backups, oldest first.
func (r *Rotator) List() ([]Backup, error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.dir, err)
	}

	var backups []Backup
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		backups = append(backups, Backup{
			Path:    filepath.Join(r.dir, name),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].ModTime.Equal(backups[j].ModTime) {
			return backups[i].Path < backups[j].Path
		}
		return backups[i].ModTime.Before(backups[j].ModTime)
	})
	return backups, nil
}

// Prune deletes the oldest backups by modification time until at most limit remain.
func (r *Rotator) Prune() error {
	backups, err := r.List()
	if err != nil {
		return err
	}
	if len(backups) <= r.limit {
		return nil
	}

	var errs []error
	for _, b := range backups[:len(backups)-r.limit] {
		if err := os.Remove(b.Path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", b.Path, err))
			continue
		}
		log.Printf("backup: pruned %s", b.Path)
	}
	return errors.Join(errs...)
}
