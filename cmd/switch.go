package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"claude-switch/internal/config"
	"claude-switch/internal/switcher"
)

var assumeYes bool

var applyCmd = &cobra.Command{
	Use:   "apply [name]",
	Short: "Make a profile the live settings",
	Long: `Back up ~/.claude/settings.json and atomically replace it with the named profile.
Asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		approve := confirmSwitch
		if assumeYes {
			approve = switcher.Confirmed
		}
		return runApply(a, args[0], approve)
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show which profile is live",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		printCurrent(os.Stdout, a)
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff [name]",
	Short: "Compare the live settings with a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		changes, err := a.switcher.Diff(args[0])
		if err != nil {
			return err
		}
		printChanges(os.Stdout, changes)
		return nil
	},
}

// runApply switches to name and reports the outcome. A declined
// confirmation is reported, not returned.
func runApply(a *app, name string, approve switcher.ConfirmFunc) error {
	res, err := a.switcher.Apply(name, approve)
	if errors.Is(err, switcher.ErrCancelled) {
		fmt.Println("Switch cancelled.")
		return nil
	}
	if err != nil {
		if res.Phase == switcher.PhaseFailed {
			fmt.Printf("Switch failed while %s; %s was not changed.\n", res.FailedAt, a.opts.ActiveSettingsPath())
		}
		return err
	}

	if res.BackupErr != nil {
		fmt.Printf("Warning: backup failed: %v\n", res.BackupErr)
	} else if res.BackupPath != "" {
		fmt.Printf("Backed up previous settings to %s\n", res.BackupPath)
	}
	fmt.Printf("Switched to profile '%s'.\n", name)
	return nil
}

func confirmSwitch(target config.Profile, changes []config.FieldChange) bool {
	fmt.Printf("Switching to profile '%s'.\n", target.Name)
	printChanges(os.Stdout, changes)
	return confirm(fmt.Sprintf("Apply profile '%s'", target.Name))
}

func init() {
	applyCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}
