package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List retained settings backups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		backups, err := a.backups.List()
		if err != nil {
			return err
		}
		fmt.Printf("Backups in %s (keeping at most %d):\n", a.opts.SettingsDir, a.backups.Limit())
		printBackups(os.Stdout, backups, time.Now())
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent profile switches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.journal == nil {
			return fmt.Errorf("switch history is disabled")
		}
		entries, err := a.journal.Recent(historyLimit)
		if err != nil {
			return err
		}
		printHistory(os.Stdout, entries, time.Now())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
}
