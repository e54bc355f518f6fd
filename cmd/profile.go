package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"claude-switch/internal/config"
)

var (
	apiKey    string
	model     string
	maxTokens int

	newAPIKey    string
	newModel     string
	newMaxTokens int
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles",
	Long:  `Add, list, view, edit and remove stored settings profiles.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		current, _ := a.switcher.Current()
		printProfiles(os.Stdout, a.switcher.List(), current)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view [name]",
	Short: "Show a profile's settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.switcher.View(args[0])
		if err != nil {
			return err
		}
		printProfile(os.Stdout, p)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		settings := config.Settings{APIKey: apiKey, Model: model, MaxTokens: maxTokens}
		if err := a.switcher.Add(args[0], settings); err != nil {
			return err
		}
		fmt.Printf("Profile '%s' added successfully.\n", args[0])
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Change fields of a profile",
	Long:  `Change fields of a profile. Only the flags given are updated; other fields keep their values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch config.Patch
		if cmd.Flags().Changed("api-key") {
			patch.APIKey = &newAPIKey
		}
		if cmd.Flags().Changed("model") {
			patch.Model = &newModel
		}
		if cmd.Flags().Changed("max-tokens") {
			patch.MaxTokens = &newMaxTokens
		}
		if patch.IsEmpty() {
			return fmt.Errorf("nothing to change: pass --api-key, --model or --max-tokens")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		settings, err := a.switcher.Edit(args[0], patch)
		if err != nil {
			return err
		}
		fmt.Printf("Profile '%s' updated.\n", args[0])
		printProfile(os.Stdout, config.Profile{Name: args[0], Settings: settings})
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"delete"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.switcher.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Profile '%s' removed successfully.\n", args[0])
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&apiKey, "api-key", "", "API key")
	addCmd.Flags().StringVar(&model, "model", config.DefaultModel, "Model name")
	addCmd.Flags().IntVar(&maxTokens, "max-tokens", config.DefaultMaxTokens, "Maximum tokens")

	editCmd.Flags().StringVar(&newAPIKey, "api-key", "", "New API key")
	editCmd.Flags().StringVar(&newModel, "model", "", "New model name")
	editCmd.Flags().IntVar(&newMaxTokens, "max-tokens", 0, "New maximum tokens")

	profileCmd.AddCommand(listCmd)
	profileCmd.AddCommand(viewCmd)
	profileCmd.AddCommand(addCmd)
	profileCmd.AddCommand(editCmd)
	profileCmd.AddCommand(removeCmd)
}
