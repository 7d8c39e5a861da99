package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/angelhq/angelui/internal/config"
	"github.com/angelhq/angelui/internal/journal"
	"github.com/angelhq/angelui/internal/prefs"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		prefsFile  string
	}
	logger *slog.Logger

	themeController *prefs.Controller
	themeJournal    *journal.Journal
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "angelui",
	Short: "Terminal landing experience for angel",
	Long: `angelui is the angel landing experience for the terminal.

It shows the hero screen with the rotating word and the chat bubble
conversation, remembers your light/dark preference across runs, and
keeps a history of theme changes.

Running angelui without a subcommand launches the interactive screen.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.EnsureDataDir(); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		// Resolve the persisted theme before anything renders, so the
		// first paint already has the right palette.
		prefsPath := globalOpts.prefsFile
		if prefsPath == "" {
			prefsPath = config.PrefsPath()
		}
		store := prefs.NewStore(prefsPath)
		def, err := prefs.ParseTheme(cfg.Theme.Default)
		if err != nil {
			return fmt.Errorf("invalid default theme: %w", err)
		}
		themeController = prefs.NewController(store, cfg.Theme.StorageKey, def)

		// Theme-change journal
		file, err := journal.OpenFile(config.JournalPath())
		if err != nil {
			logger.Warn("failed to open theme history", "error", err)
			themeJournal = journal.New(nil)
		} else {
			themeJournal = journal.New(file)
			if err := themeJournal.Hydrate(); err != nil {
				logger.Warn("failed to load theme history", "error", err)
			}
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if themeController != nil {
			themeController.Close()
		}
		if themeJournal != nil {
			return themeJournal.Close()
		}
		return nil
	},
	// Default to the landing screen when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/angelui/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.prefsFile, "prefs-file", "",
		"Path to preference file (default: ~/.local/share/angelui/prefs.json)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// prefsPath returns the active preference file path.
func prefsPath() string {
	if globalOpts.prefsFile != "" {
		return globalOpts.prefsFile
	}
	return config.PrefsPath()
}
