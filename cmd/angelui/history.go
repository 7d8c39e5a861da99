package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/angelhq/angelui/internal/output"
)

var historyOpts struct {
	format string
	limit  int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the theme-change history",
	Long: `Show recorded theme changes, newest first.

Examples:
  # Show the history
  angelui history

  # Last five changes as JSON
  angelui history --limit 5 --format json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
	historyCmd.Flags().IntVarP(&historyOpts.limit, "limit", "n", 0,
		"Maximum number of entries to show (0=unlimited)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(historyOpts.format)
	if err != nil {
		return err
	}

	entries := themeJournal.All()
	if historyOpts.limit > 0 && len(entries) > historyOpts.limit {
		entries = entries[:historyOpts.limit]
	}

	if len(entries) == 0 {
		fmt.Println("No theme changes recorded")
		return nil
	}

	formatter := output.NewFormatter(format)
	return formatter.Format(os.Stdout, entries)
}
