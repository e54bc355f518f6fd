package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"claude-switch/internal/backup"
	"claude-switch/internal/config"
	"claude-switch/internal/journal"
	"claude-switch/internal/switcher"
)

func displayValue(field, value string) string {
	if field == "api_key" {
		return config.MaskKey(value)
	}
	if value == "" {
		return "(empty)"
	}
	return value
}

func printProfiles(w io.Writer, profiles []config.Profile, current string) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No profiles found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "#\tName\tModel\tMax Tokens\tAPI Key")
	for i, p := range profiles {
		marker := " "
		if p.Name == current {
			marker = "*"
		}
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%d\t%s\n", i+1, marker, p.Name,
			displayValue("model", p.Settings.Model), p.Settings.MaxTokens, config.MaskKey(p.Settings.APIKey))
	}
	tw.Flush()
}

func printProfile(w io.Writer, p config.Profile) {
	fmt.Fprintf(w, "Profile: %s\n", p.Name)
	for _, f := range p.Settings.Fields() {
		fmt.Fprintf(w, "  %-11s %s\n", f.Name+":", displayValue(f.Name, f.Value))
	}
}

func printChanges(w io.Writer, changes []config.FieldChange) {
	if len(changes) == 0 {
		fmt.Fprintln(w, "No changes: the live settings already match.")
		return
	}
	fmt.Fprintf(w, "Changes (%d):\n", len(changes))
	for _, c := range changes {
		fmt.Fprintf(w, "  ~ %s\n", c.Field)
		fmt.Fprintf(w, "    BEFORE: %s\n", displayValue(c.Field, c.Before))
		fmt.Fprintf(w, "    AFTER:  %s\n", displayValue(c.Field, c.After))
	}
}

func printCurrent(w io.Writer, a *app) {
	if name, ok := a.switcher.Current(); ok {
		fmt.Fprintf(w, "Current profile: %s\n", name)
		return
	}
	fmt.Fprintln(w, "Current profile: (none - live settings match no stored profile)")
}

// printBackups lists backups newest first.
func printBackups(w io.Writer, backups []backup.Backup, now time.Time) {
	if len(backups) == 0 {
		fmt.Fprintln(w, "No backups found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Backup\tAge\tSize")
	for i := len(backups) - 1; i >= 0; i-- {
		b := backups[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name(), humanize.RelTime(b.ModTime, now, "ago", "from now"), humanize.Bytes(uint64(b.Size)))
	}
	tw.Flush()
}

func printHistory(w io.Writer, entries []journal.Entry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No switches recorded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "When\tProfile\tOutcome\tDetail")
	for _, e := range entries {
		detail := e.Detail
		if detail == "" && e.BackupPath != "" {
			detail = "backup " + e.BackupPath
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", humanize.RelTime(e.CreatedAt, now, "ago", "from now"), e.Profile, e.Outcome, detail)
	}
	tw.Flush()
}

// parseMenuChoice validates an interactive menu entry (0-7).
func parseMenuChoice(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < menuExit || n > menuShowCurrent {
		return 0, fmt.Errorf("%w: choose a number between 0 and 7", switcher.ErrInvalidInput)
	}
	return n, nil
}

// parseIndex converts a 1-based list position into a slice index.
func parseIndex(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", switcher.ErrInvalidInput, input)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: no profile #%d", switcher.ErrNotFound, n)
	}
	return n - 1, nil
}

func parseMaxTokens(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: max tokens must be a non-negative integer", switcher.ErrInvalidInput)
	}
	return n, nil
}
