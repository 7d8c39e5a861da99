// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/angelhq/angelui/internal/prefs"
)

// Default configuration values.
const (
	DefaultInterval   = 2 * time.Second
	DefaultTheme      = "light"
	DefaultStorageKey = prefs.DefaultStorageKey
	DefaultOlderThan  = "168h"
)

// Config represents the angelui configuration.
type Config struct {
	Hero    HeroConfig    `toml:"hero"`
	Theme   ThemeConfig   `toml:"theme"`
	Journal JournalConfig `toml:"journal"`
	TUI     TUIConfig     `toml:"tui"`
}

// HeroConfig holds the rotating-word settings.
// An empty Words list means "use the bundled copy deck".
type HeroConfig struct {
	Words    []string `toml:"words"`    // Rotating words (empty = bundled deck)
	Interval Duration `toml:"interval"` // Advancement interval ("2s" or milliseconds)
}

// ThemeConfig holds theme preference settings.
type ThemeConfig struct {
	Default    string `toml:"default"`     // light or dark
	StorageKey string `toml:"storage_key"` // Prefs file entry name
}

// JournalConfig holds default journal prune options.
type JournalConfig struct {
	OlderThan string `toml:"older_than"` // Default age threshold
	Keep      int    `toml:"keep"`       // Max entries to keep (0 = unlimited)
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp    bool `toml:"show_help"`
	ShowBubbles bool `toml:"show_bubbles"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Hero: HeroConfig{
			Words:    nil,
			Interval: Duration(DefaultInterval),
		},
		Theme: ThemeConfig{
			Default:    DefaultTheme,
			StorageKey: DefaultStorageKey,
		},
		Journal: JournalConfig{
			OlderThan: DefaultOlderThan,
			Keep:      0,
		},
		TUI: TUIConfig{
			ShowHelp:    true,
			ShowBubbles: true,
		},
	}
}

// Validate checks the fail-fast configuration invariants.
// An explicitly empty word list or non-positive interval prevents the
// hero from starting rather than cycling through undefined state.
func (c *Config) Validate() error {
	if c.Hero.Words != nil && len(c.Hero.Words) == 0 {
		return errors.New("hero.words must not be empty")
	}
	if time.Duration(c.Hero.Interval) <= 0 {
		return fmt.Errorf("hero.interval must be positive, got %s", time.Duration(c.Hero.Interval))
	}
	if _, err := prefs.ParseTheme(c.Theme.Default); err != nil {
		return fmt.Errorf("theme.default: %w", err)
	}
	if c.Theme.StorageKey == "" {
		return errors.New("theme.storage_key must not be empty")
	}
	return nil
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "angelui", "config.toml")
}

// ContentPath returns the path to the user copy-deck override file.
func ContentPath() string {
	return filepath.Join(filepath.Dir(ConfigPath()), "content.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "angelui")
}

// PrefsPath returns the path to the preference key-value file.
func PrefsPath() string {
	return filepath.Join(DataPath(), "prefs.json")
}

// JournalPath returns the path to the theme-change journal JSONL file.
func JournalPath() string {
	return filepath.Join(DataPath(), "theme-history.jsonl")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}
