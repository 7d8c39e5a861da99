package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/angelhq/angelui/internal/journal"
)

var pruneOpts struct {
	olderThan string
	keep      int
	dryRun    bool
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old entries from the theme-change history",
	Long: `Remove old entries from the persistent theme-change history.

Examples:
  # Remove entries older than a week
  angelui prune --older-than 168h

  # Keep only the 50 most recent entries
  angelui prune --keep 50

  # Preview what would be removed (dry run)
  angelui prune --older-than 48h --dry-run`,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().StringVar(&pruneOpts.olderThan, "older-than", "",
		"Remove entries older than this duration (e.g., 48h, 168h)")
	pruneCmd.Flags().IntVar(&pruneOpts.keep, "keep", 0,
		"Keep only the N most recent entries (0=unlimited)")
	pruneCmd.Flags().BoolVar(&pruneOpts.dryRun, "dry-run", false,
		"Show what would be removed without actually removing")
}

func runPrune(cmd *cobra.Command, args []string) error {
	olderThan := pruneOpts.olderThan
	if olderThan == "" && pruneOpts.keep == 0 {
		// Fall back to configured retention
		olderThan = cfg.Journal.OlderThan
		pruneOpts.keep = cfg.Journal.Keep
	}
	if olderThan == "" && pruneOpts.keep == 0 {
		return fmt.Errorf("specify --older-than or --keep")
	}

	var age time.Duration
	if olderThan != "" {
		var err error
		age, err = time.ParseDuration(olderThan)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
	}

	if themeJournal.Count() == 0 {
		fmt.Println("No theme changes recorded")
		return nil
	}

	if pruneOpts.dryRun {
		toRemove := previewPrune(age, pruneOpts.keep)
		if len(toRemove) == 0 {
			fmt.Println("No entries to remove")
			return nil
		}
		fmt.Printf("Would remove %d entries:\n", len(toRemove))
		for i, e := range toRemove {
			if i >= 10 {
				fmt.Printf("  ... and %d more\n", len(toRemove)-10)
				break
			}
			fmt.Printf("  - %s → %s (%s)\n", e.Previous, e.Theme, e.RelativeTime())
		}
		return nil
	}

	removed, err := themeJournal.Prune(journal.PruneOptions{
		OlderThan: age,
		Keep:      pruneOpts.keep,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d entries\n", removed)
	return nil
}

// previewPrune returns the entries a prune with these options would drop.
func previewPrune(age time.Duration, keep int) []journal.Entry {
	entries := themeJournal.All() // newest first
	var toRemove []journal.Entry

	cutoff := int64(0)
	if age > 0 {
		cutoff = time.Now().Add(-age).Unix()
	}

	for i, e := range entries {
		if cutoff > 0 && e.ChangedAt < cutoff {
			toRemove = append(toRemove, e)
			continue
		}
		if keep > 0 && i >= keep {
			toRemove = append(toRemove, e)
		}
	}
	return toRemove
}
