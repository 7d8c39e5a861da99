package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelhq/angelui/internal/prefs"
)

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(prefs.ThemeLight, prefs.ThemeDark, "tui")
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "light", e.Previous)
	assert.Equal(t, "dark", e.Theme)
	assert.Equal(t, "tui", e.Source)
	assert.InDelta(t, time.Now().Unix(), e.ChangedAt, 2)
	assert.NoError(t, e.Validate())
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	a, err := NewEntry(prefs.ThemeLight, prefs.ThemeDark, "cli")
	require.NoError(t, err)
	b, err := NewEntry(prefs.ThemeDark, prefs.ThemeLight, "cli")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestEntry_Validate(t *testing.T) {
	valid := Entry{
		ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Previous:  "light",
		Theme:     "dark",
		Source:    "tui",
		ChangedAt: time.Now().Unix(),
	}

	tests := []struct {
		name    string
		mutate  func(*Entry)
		wantErr error
	}{
		{"valid", func(e *Entry) {}, nil},
		{"empty id", func(e *Entry) { e.ID = "" }, ErrEmptyID},
		{"unknown theme", func(e *Entry) { e.Theme = "purple" }, ErrInvalidTheme},
		{"empty theme", func(e *Entry) { e.Theme = "" }, ErrInvalidTheme},
		{"zero timestamp", func(e *Entry) { e.ChangedAt = 0 }, ErrInvalidChangedAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			if tt.wantErr == nil {
				assert.NoError(t, e.Validate())
			} else {
				assert.ErrorIs(t, e.Validate(), tt.wantErr)
			}
		})
	}
}

func TestEntry_Time(t *testing.T) {
	e := Entry{ChangedAt: 1700000000}
	assert.Equal(t, time.Unix(1700000000, 0), e.Time())
}

func TestEntry_RelativeTime(t *testing.T) {
	e := Entry{ChangedAt: time.Now().Add(-3 * time.Minute).Unix()}
	assert.Contains(t, e.RelativeTime(), "minutes ago")
}
