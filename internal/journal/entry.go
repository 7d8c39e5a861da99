// Package journal records theme changes as an append-only JSONL history.
package journal

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"

	"github.com/angelhq/angelui/internal/prefs"
)

// Entry is a single recorded theme change.
type Entry struct {
	ID        string `json:"id"` // ULID
	Previous  string `json:"previous"`
	Theme     string `json:"theme"`
	Source    string `json:"source"` // tui, cli, external, init
	ChangedAt int64  `json:"changed_at"`
}

// Validation errors.
var (
	ErrEmptyID          = errors.New("id cannot be empty")
	ErrInvalidTheme     = errors.New("theme must be light or dark")
	ErrInvalidChangedAt = errors.New("changed_at must be greater than 0")
)

// NewEntry creates an Entry with a generated ULID and the current time.
func NewEntry(previous, theme prefs.Theme, source string) (Entry, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return Entry{
		ID:        id.String(),
		Previous:  string(previous),
		Theme:     string(theme),
		Source:    source,
		ChangedAt: time.Now().Unix(),
	}, nil
}

// Validate checks that the entry has all required fields.
func (e Entry) Validate() error {
	if e.ID == "" {
		return ErrEmptyID
	}
	if !prefs.Theme(e.Theme).IsValid() {
		return ErrInvalidTheme
	}
	if e.ChangedAt <= 0 {
		return ErrInvalidChangedAt
	}
	return nil
}

// Time returns the change time.
func (e Entry) Time() time.Time {
	return time.Unix(e.ChangedAt, 0)
}

// RelativeTime returns a human-readable relative time like "3 minutes ago".
func (e Entry) RelativeTime() string {
	return humanize.Time(e.Time())
}
