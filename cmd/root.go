package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	settingsDir string
	storePath   string
)

var rootCmd = &cobra.Command{
	Use:   "claude-switch",
	Short: "Claude settings profile switcher",
	Long: `Keep several named Claude settings profiles and switch which one is live
in ~/.claude/settings.json. Run without arguments for the interactive menu.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		runInteractiveMenu(a)
		return nil
	},
}

func Execute() {
	// Allow the menu to run when started by double-click on Windows.
	cobra.MousetrapHelpText = ""
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Options file (default: <user config dir>/claude-switch/config.toml)")
	rootCmd.PersistentFlags().StringVar(&settingsDir, "settings-dir", "", "Directory holding settings.json (default: ~/.claude)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Profile store file (default: next to the executable)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(historyCmd)
}
