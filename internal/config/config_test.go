package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Nil(t, cfg.Hero.Words)
	assert.Equal(t, 2*time.Second, cfg.Hero.Interval.Duration())
	assert.Equal(t, "light", cfg.Theme.Default)
	assert.Equal(t, "angel-ui-theme", cfg.Theme.StorageKey)
	assert.Equal(t, "168h", cfg.Journal.OlderThan)
	assert.Equal(t, 0, cfg.Journal.Keep)
	assert.True(t, cfg.TUI.ShowHelp)
	assert.True(t, cfg.TUI.ShowBubbles)
}

func TestDefaultConfig_Validates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Theme.Default, cfg.Theme.Default)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[hero]
words = ["builders", "dreamers"]
interval = "1500ms"

[theme]
default = "dark"
storage_key = "my-theme"

[journal]
older_than = "48h"
keep = 20

[tui]
show_help = false
show_bubbles = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"builders", "dreamers"}, cfg.Hero.Words)
	assert.Equal(t, 1500*time.Millisecond, cfg.Hero.Interval.Duration())
	assert.Equal(t, "dark", cfg.Theme.Default)
	assert.Equal(t, "my-theme", cfg.Theme.StorageKey)
	assert.Equal(t, "48h", cfg.Journal.OlderThan)
	assert.Equal(t, 20, cfg.Journal.Keep)
	assert.False(t, cfg.TUI.ShowHelp)
	assert.False(t, cfg.TUI.ShowBubbles)
}

func TestLoadConfig_IntervalAsMilliseconds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[hero]
interval = "2000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Hero.Interval.Duration())
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[theme]
default = "dark"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme.Default)

	// Everything else keeps its default
	assert.Equal(t, 2*time.Second, cfg.Hero.Interval.Duration())
	assert.Equal(t, "angel-ui-theme", cfg.Theme.StorageKey)
	assert.True(t, cfg.TUI.ShowHelp)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsEmptyWordList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[hero]
words = []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "hero.words")
}

func TestLoadConfig_RejectsNonPositiveInterval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[hero]
interval = "0"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "hero.interval")
}

func TestLoadConfig_RejectsUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[theme]
default = "purple"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "theme.default")
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Theme.Default = "dark"
	cfg.Hero.Words = []string{"one", "two"}

	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme.Default)
	assert.Equal(t, []string{"one", "two"}, loaded.Hero.Words)
	assert.Equal(t, 2*time.Second, loaded.Hero.Interval.Duration())
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/angelui/config.toml", ConfigPath())
}

func TestContentPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/angelui/content.toml", ContentPath())
}

func TestDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/angelui", DataPath())
}

func TestPrefsPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/angelui/prefs.json", PrefsPath())
}

func TestJournalPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/angelui/theme-history.jsonl", JournalPath())
}

func TestEnsureDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	require.NoError(t, EnsureDataDir())

	info, err := os.Stat(filepath.Join(dir, "angelui"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDuration_Parsing(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"2s", 2 * time.Second},
		{"1500ms", 1500 * time.Millisecond},
		{"1m", time.Minute},
		{"250", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalText([]byte(tt.input)))
			assert.Equal(t, tt.want, d.Duration())
		})
	}
}

func TestDuration_ParseError(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalText([]byte("soon")))
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration(90 * time.Second)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))
}
