package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelhq/angelui/internal/prefs"
)

// entryAt builds a valid entry with a fixed timestamp.
func entryAt(t *testing.T, theme prefs.Theme, changedAt time.Time) Entry {
	t.Helper()
	return Entry{
		ID:        ulid.Make().String(),
		Previous:  string(theme.Toggle()),
		Theme:     string(theme),
		Source:    "cli",
		ChangedAt: changedAt.Unix(),
	}
}

func TestJournal_RecordInMemory(t *testing.T) {
	j := New(nil)
	defer j.Close()

	require.NoError(t, j.Record(prefs.ThemeLight, prefs.ThemeDark, "tui"))
	require.NoError(t, j.Record(prefs.ThemeDark, prefs.ThemeLight, "cli"))

	assert.Equal(t, 2, j.Count())
}

func TestJournal_RecordPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	f, err := OpenFile(path)
	require.NoError(t, err)

	j := New(f)
	require.NoError(t, j.Record(prefs.ThemeLight, prefs.ThemeDark, "tui"))
	require.NoError(t, j.Close())

	f2, err := OpenFile(path)
	require.NoError(t, err)

	j2 := New(f2)
	require.NoError(t, j2.Hydrate())
	defer j2.Close()

	require.Equal(t, 1, j2.Count())
	e := j2.All()[0]
	assert.Equal(t, "dark", e.Theme)
	assert.Equal(t, "light", e.Previous)
	assert.Equal(t, "tui", e.Source)
}

func TestJournal_AllNewestFirst(t *testing.T) {
	now := time.Now()

	path := filepath.Join(t.TempDir(), "journal.jsonl")
	f, err := OpenFile(path)
	require.NoError(t, err)

	oldest := entryAt(t, prefs.ThemeDark, now.Add(-2*time.Hour))
	middle := entryAt(t, prefs.ThemeLight, now.Add(-time.Hour))
	newest := entryAt(t, prefs.ThemeDark, now)

	require.NoError(t, f.Append(oldest))
	require.NoError(t, f.Append(newest))
	require.NoError(t, f.Append(middle))

	j := New(f)
	require.NoError(t, j.Hydrate())
	defer j.Close()

	all := j.All()
	require.Len(t, all, 3)
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, middle.ID, all[1].ID)
	assert.Equal(t, oldest.ID, all[2].ID)
}

func TestJournal_PruneByAge(t *testing.T) {
	now := time.Now()

	path := filepath.Join(t.TempDir(), "journal.jsonl")
	f, err := OpenFile(path)
	require.NoError(t, err)

	old := entryAt(t, prefs.ThemeDark, now.Add(-72*time.Hour))
	recent := entryAt(t, prefs.ThemeLight, now.Add(-time.Hour))
	require.NoError(t, f.Append(old))
	require.NoError(t, f.Append(recent))

	j := New(f)
	require.NoError(t, j.Hydrate())
	defer j.Close()

	removed, err := j.Prune(PruneOptions{OlderThan: 48 * time.Hour})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	all := j.All()
	require.Len(t, all, 1)
	assert.Equal(t, recent.ID, all[0].ID)

	// The backing file was rewritten too
	entries, err := f.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, recent.ID, entries[0].ID)
}

func TestJournal_PruneKeepsMostRecent(t *testing.T) {
	now := time.Now()

	j := New(nil)
	defer j.Close()

	// Hydrate the in-memory journal through the file-free path
	for i := 5; i >= 1; i-- {
		require.NoError(t, j.Record(prefs.ThemeLight, prefs.ThemeDark, "cli"))
	}
	require.Equal(t, 5, j.Count())

	removed, err := j.Prune(PruneOptions{Keep: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 2, j.Count())

	for _, e := range j.All() {
		assert.InDelta(t, now.Unix(), e.ChangedAt, 2)
	}
}

func TestJournal_PruneNothingToRemove(t *testing.T) {
	j := New(nil)
	defer j.Close()

	require.NoError(t, j.Record(prefs.ThemeLight, prefs.ThemeDark, "tui"))

	removed, err := j.Prune(PruneOptions{OlderThan: 24 * time.Hour, Keep: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, j.Count())
}

func TestJournal_ClosedOperations(t *testing.T) {
	j := New(nil)
	require.NoError(t, j.Close())

	assert.ErrorIs(t, j.Record(prefs.ThemeLight, prefs.ThemeDark, "tui"), ErrJournalClosed)
	_, err := j.Prune(PruneOptions{Keep: 1})
	assert.ErrorIs(t, err, ErrJournalClosed)

	// Close is idempotent
	assert.NoError(t, j.Close())
}

func TestJournal_HydrateWithoutFile(t *testing.T) {
	j := New(nil)
	defer j.Close()

	assert.NoError(t, j.Hydrate())
	assert.Equal(t, 0, j.Count())
}
