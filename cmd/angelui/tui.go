package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelhq/angelui/internal/config"
	"github.com/angelhq/angelui/internal/content"
	"github.com/angelhq/angelui/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive landing screen",
	Long: `Launch the interactive terminal landing screen.

The screen shows:
  - The hero headline with the rotating word
  - The chat bubble conversation
  - The current light/dark theme, persisted across runs

Key bindings:
  t           Toggle light/dark theme
  r           Replay the chat bubbles
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	deck, err := content.Load(config.ContentPath())
	if err != nil {
		return fmt.Errorf("failed to load copy deck: %w", err)
	}

	return tui.Run(tui.RunOptions{
		Config:     cfg,
		Deck:       deck,
		Controller: themeController,
		Journal:    themeJournal,
		PrefsPath:  prefsPath(),
	})
}
