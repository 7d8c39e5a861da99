package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelhq/angelui/internal/prefs"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and change the persisted theme",
	Long: `Inspect and change the light/dark theme preference.

The preference is the same one the interactive screen uses; changing it
here is picked up live by a running angelui.

Examples:
  # Show the active theme
  angelui theme get

  # Switch to dark mode
  angelui theme set dark

  # Flip whatever is active
  angelui theme toggle`,
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(themeController.Current())
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <light|dark>",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := prefs.ParseTheme(args[0])
		if err != nil {
			return err
		}

		previous := themeController.Current()
		if err := themeController.Set(t, prefs.SourceCLI); err != nil {
			return err
		}
		if previous != t {
			if err := themeJournal.Record(previous, t, prefs.SourceCLI); err != nil {
				logger.Warn("failed to record theme change", "error", err)
			}
		}

		if !themeController.Persisted() {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: theme not persisted, preference storage is unavailable")
		}
		fmt.Println(t)
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		previous := themeController.Current()
		next, err := themeController.Toggle(prefs.SourceCLI)
		if err != nil {
			return err
		}
		if err := themeJournal.Record(previous, next, prefs.SourceCLI); err != nil {
			logger.Warn("failed to record theme change", "error", err)
		}

		if !themeController.Persisted() {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: theme not persisted, preference storage is unavailable")
		}
		fmt.Println(next)
		return nil
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		current := themeController.Current()
		for _, t := range []prefs.Theme{prefs.ThemeLight, prefs.ThemeDark} {
			marker := " "
			if t == current {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeListCmd)
}
