package cmd

import (
	"fmt"
	"log"
	"os"

	"claude-switch/internal/backup"
	"claude-switch/internal/config"
	"claude-switch/internal/journal"
	"claude-switch/internal/switcher"
)

// app bundles the components every command works with.
type app struct {
	opts     *config.Options
	switcher *switcher.Switcher
	backups  *backup.Rotator
	journal  *journal.Store
	logFile  *os.File
}

func newApp() (*app, error) {
	opts, err := config.LoadOptions(configPath)
	if err != nil {
		return nil, err
	}
	if settingsDir != "" {
		opts.SettingsDir = settingsDir
	}
	if storePath != "" {
		opts.StorePath = storePath
	}
	if err := opts.Resolve(); err != nil {
		return nil, err
	}

	a := &app{opts: opts}
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		a.logFile = f
	}

	active := config.NewActiveFile(opts.ActiveSettingsPath())
	created, err := active.Ensure()
	if err != nil {
		// Nothing works without the settings directory.
		log.Printf("startup: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Printf("Created default settings at %s\n", active.Path())
	}

	a.backups = backup.NewRotator(active.Path(), opts.BackupLimit)

	var switcherOpts []switcher.Option
	if opts.JournalEnabled() {
		j, err := journal.Open(opts.JournalPath)
		if err != nil {
			log.Printf("journal: disabled: %v", err)
		} else {
			a.journal = j
			switcherOpts = append(switcherOpts, switcher.WithJournal(j))
		}
	}

	store := config.NewStore(opts.StorePath)
	a.switcher = switcher.New(store, active, a.backups, switcherOpts...)
	return a, nil
}

func (a *app) Close() {
	if a.journal != nil {
		a.journal.Close()
	}
	if a.logFile != nil {
		log.SetOutput(os.Stderr)
		a.logFile.Close()
	}
}
