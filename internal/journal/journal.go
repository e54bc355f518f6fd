// Package journal records every settings switch attempt in a small SQLite database.
package journal

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Outcome is the final state of a switch attempt.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// Entry is one recorded switch attempt.
type Entry struct {
	ID         string
	Profile    string
	Outcome    Outcome
	BackupPath string
	Detail     string
	CreatedAt  time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS switches (
	id          TEXT PRIMARY KEY,
	profile     TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	backup_path TEXT NOT NULL DEFAULT '',
	detail      TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_switches_created_at ON switches(created_at);
`

// Store is the SQLite-backed journal.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends an entry, filling in ID and CreatedAt when unset.
func (s *Store) Record(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO switches (id, profile, outcome, backup_path, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		e.ID, e.Profile, string(e.Outcome), e.BackupPath, e.Detail, e.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	log.Printf("journal: %s %s", e.Outcome, e.Profile)
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, profile, outcome, backup_path, detail, created_at FROM switches ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			outcome string
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Profile, &outcome, &e.BackupPath, &e.Detail, &created); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Outcome = Outcome(outcome)
		e.CreatedAt = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
