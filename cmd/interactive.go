package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"claude-switch/internal/config"
	"claude-switch/internal/switcher"
)

const (
	menuExit = iota
	menuList
	menuView
	menuAdd
	menuEdit
	menuDelete
	menuApply
	menuShowCurrent
)

const menuText = `
========== Claude Settings Switcher ==========
  1. List profiles
  2. View profile
  3. Add profile
  4. Edit profile
  5. Delete profile
  6. Apply profile
  7. Show current profile
  0. Exit
==============================================`

func runInteractiveMenu(a *app) {
	for {
		fmt.Println(menuText)
		printCurrent(os.Stdout, a)

		input, err := ask("Choose an option", "")
		if err != nil {
			return
		}
		choice, err := parseMenuChoice(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		switch choice {
		case menuExit:
			fmt.Println("Bye.")
			return
		case menuList:
			current, _ := a.switcher.Current()
			printProfiles(os.Stdout, a.switcher.List(), current)
		case menuView:
			err = handleView(a)
		case menuAdd:
			err = handleAdd(a)
		case menuEdit:
			err = handleEdit(a)
		case menuDelete:
			err = handleDelete(a)
		case menuApply:
			err = handleApply(a)
		case menuShowCurrent:
			printCurrent(os.Stdout, a)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// ask runs a single-line prompt. Ctrl+C leaves the program.
func ask(label, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: def,
		Stdout:  &BellSkipper{},
	}
	result, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) {
		os.Exit(0)
	}
	return result, err
}

func askSecret(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Mask:   '*',
		Stdout: &BellSkipper{},
	}
	result, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) {
		os.Exit(0)
	}
	return result, err
}

// confirm asks a yes/no question; anything but "y" declines.
func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdout:    &BellSkipper{},
	}
	_, err := prompt.Run()
	return err == nil
}

// selectProfile prints the numbered profile list and returns the chosen name.
func selectProfile(a *app) (string, error) {
	profiles := a.switcher.List()
	if len(profiles) == 0 {
		return "", fmt.Errorf("%w: no profiles stored", switcher.ErrNotFound)
	}
	current, _ := a.switcher.Current()
	printProfiles(os.Stdout, profiles, current)

	input, err := ask("Profile number", "")
	if err != nil {
		return "", err
	}
	i, err := parseIndex(input, len(profiles))
	if err != nil {
		return "", err
	}
	return profiles[i].Name, nil
}

func handleView(a *app) error {
	name, err := selectProfile(a)
	if err != nil {
		return err
	}
	p, err := a.switcher.View(name)
	if err != nil {
		return err
	}
	printProfile(os.Stdout, p)
	return nil
}

func handleAdd(a *app) error {
	name, err := ask("Profile name", "")
	if err != nil {
		return err
	}
	key, err := askSecret("API key")
	if err != nil {
		return err
	}
	modelName, err := ask("Model", config.DefaultModel)
	if err != nil {
		return err
	}
	tokensInput, err := ask("Max tokens", fmt.Sprint(config.DefaultMaxTokens))
	if err != nil {
		return err
	}
	tokens, err := parseMaxTokens(tokensInput)
	if err != nil {
		return err
	}

	settings := config.Settings{APIKey: key, Model: modelName, MaxTokens: tokens}
	if err := a.switcher.Add(name, settings); err != nil {
		return err
	}
	fmt.Printf("Profile '%s' added.\n", name)
	return nil
}

func handleEdit(a *app) error {
	name, err := selectProfile(a)
	if err != nil {
		return err
	}
	fmt.Println("Leave a field empty to keep its current value.")

	var patch config.Patch
	key, err := askSecret("New API key")
	if err != nil {
		return err
	}
	if key != "" {
		patch.APIKey = &key
	}
	modelName, err := ask("New model", "")
	if err != nil {
		return err
	}
	if modelName != "" {
		patch.Model = &modelName
	}
	tokensInput, err := ask("New max tokens", "")
	if err != nil {
		return err
	}
	if tokensInput != "" {
		tokens, err := parseMaxTokens(tokensInput)
		if err != nil {
			return err
		}
		patch.MaxTokens = &tokens
	}

	settings, err := a.switcher.Edit(name, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Profile '%s' updated.\n", name)
	printProfile(os.Stdout, config.Profile{Name: name, Settings: settings})
	return nil
}

func handleDelete(a *app) error {
	name, err := selectProfile(a)
	if err != nil {
		return err
	}
	if !confirm(fmt.Sprintf("Are you sure you want to delete profile '%s'", name)) {
		fmt.Println("Delete cancelled.")
		return nil
	}
	if err := a.switcher.Delete(name); err != nil {
		return err
	}
	fmt.Printf("Profile '%s' deleted.\n", name)
	return nil
}

func handleApply(a *app) error {
	name, err := selectProfile(a)
	if err != nil {
		return err
	}
	return runApply(a, name, confirmSwitch)
}

// BellSkipper implements an io.WriteCloser that skips the bell character (\a).
// This prevents annoying sounds on Windows terminals during prompts.
type BellSkipper struct{}

func (bs *BellSkipper) Write(b []byte) (int, error) {
	const bell = 7 // ASCII \a
	filtered := make([]byte, 0, len(b))
	for _, c := range b {
		if c != bell {
			filtered = append(filtered, c)
		}
	}
	// Report the full length so callers see a complete write.
	_, err := os.Stdout.Write(filtered)
	return len(b), err
}

func (bs *BellSkipper) Close() error {
	return nil
}
