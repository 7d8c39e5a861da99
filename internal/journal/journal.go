package journal

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/angelhq/angelui/internal/prefs"
)

// ErrJournalClosed is returned when operations are attempted on a closed journal.
var ErrJournalClosed = errors.New("journal is closed")

// Journal keeps theme-change entries in memory, backed by an optional file.
type Journal struct {
	mu      sync.RWMutex
	entries []Entry
	file    *File
	closed  bool
}

// New creates a Journal. If file is nil, entries live in memory only.
func New(file *File) *Journal {
	return &Journal{
		entries: make([]Entry, 0),
		file:    file,
	}
}

// Hydrate loads entries from the backing file.
func (j *Journal) Hydrate() error {
	if j.file == nil {
		return nil
	}

	entries, err := j.file.Load()
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = entries
	return nil
}

// Record appends a theme change to the journal.
func (j *Journal) Record(previous, theme prefs.Theme, source string) error {
	e, err := NewEntry(previous, theme, source)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrJournalClosed
	}

	j.entries = append(j.entries, e)

	if j.file != nil {
		return j.file.Append(e)
	}
	return nil
}

// All returns all entries sorted newest first.
func (j *Journal) All() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	result := make([]Entry, len(j.entries))
	copy(result, j.entries)

	sort.Slice(result, func(i, k int) bool {
		return result[i].ChangedAt > result[k].ChangedAt
	})
	return result
}

// Count returns the number of entries.
func (j *Journal) Count() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// PruneOptions selects entries to remove.
type PruneOptions struct {
	OlderThan time.Duration // Remove entries older than now-OlderThan (0 = no age limit)
	Keep      int           // Keep only the N most recent (0 = unlimited)
}

// Prune removes entries matching opts and rewrites the backing file.
// Returns the number of entries removed.
func (j *Journal) Prune(opts PruneOptions) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return 0, ErrJournalClosed
	}

	kept := make([]Entry, len(j.entries))
	copy(kept, j.entries)
	sort.Slice(kept, func(i, k int) bool {
		return kept[i].ChangedAt > kept[k].ChangedAt
	})

	if opts.OlderThan > 0 {
		cutoff := time.Now().Add(-opts.OlderThan).Unix()
		n := 0
		for _, e := range kept {
			if e.ChangedAt >= cutoff {
				kept[n] = e
				n++
			}
		}
		kept = kept[:n]
	}

	if opts.Keep > 0 && len(kept) > opts.Keep {
		kept = kept[:opts.Keep]
	}

	removed := len(j.entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	// Restore chronological order for the file
	sort.Slice(kept, func(i, k int) bool {
		return kept[i].ChangedAt < kept[k].ChangedAt
	})
	j.entries = kept

	if j.file != nil {
		if err := j.file.Rewrite(kept); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// Close releases the backing file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true

	if j.file != nil {
		return j.file.Close()
	}
	return nil
}
