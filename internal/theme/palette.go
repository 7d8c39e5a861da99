// Package theme maps the light/dark preference to lipgloss palettes.
// The whole view tree renders with whichever palette the preference
// controller currently resolves to.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/angelhq/angelui/internal/prefs"
)

// Palette holds the color roles used by the landing screen.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color // rotating word, toggle hint
	Muted      lipgloss.Color // subheadline, keybind bar
	BubbleBg   lipgloss.Color // chat bubble fill
	BubbleFg   lipgloss.Color // chat bubble text
	ReplyBg    lipgloss.Color // reply-side bubble fill
	ReplyFg    lipgloss.Color
}

// Light is the light-mode palette.
var Light = Palette{
	Name:       "light",
	Background: lipgloss.Color("255"),
	Foreground: lipgloss.Color("235"),
	Accent:     lipgloss.Color("98"),
	Muted:      lipgloss.Color("245"),
	BubbleBg:   lipgloss.Color("254"),
	BubbleFg:   lipgloss.Color("236"),
	ReplyBg:    lipgloss.Color("98"),
	ReplyFg:    lipgloss.Color("255"),
}

// Dark is the dark-mode palette.
var Dark = Palette{
	Name:       "dark",
	Background: lipgloss.Color("233"),
	Foreground: lipgloss.Color("252"),
	Accent:     lipgloss.Color("141"),
	Muted:      lipgloss.Color("243"),
	BubbleBg:   lipgloss.Color("236"),
	BubbleFg:   lipgloss.Color("252"),
	ReplyBg:    lipgloss.Color("141"),
	ReplyFg:    lipgloss.Color("233"),
}

// ForTheme resolves the palette for a preference value.
// Unknown values resolve to Light, matching the preference default.
func ForTheme(t prefs.Theme) Palette {
	if t == prefs.ThemeDark {
		return Dark
	}
	return Light
}

// Styles bundles the lipgloss styles derived from a palette.
type Styles struct {
	Headline     lipgloss.Style
	RotatingWord lipgloss.Style
	Subheadline  lipgloss.Style
	Bubble       lipgloss.Style
	Reply        lipgloss.Style
	KeybindKey   lipgloss.Style
	KeybindDesc  lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Headline: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),
		RotatingWord: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Subheadline: lipgloss.NewStyle().
			Foreground(p.Muted),
		Bubble: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Background(p.BubbleBg).
			Foreground(p.BubbleFg).
			Padding(0, 1),
		Reply: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.ReplyBg).
			Foreground(p.ReplyFg).
			Padding(0, 1),
		KeybindKey: lipgloss.NewStyle().
			Foreground(p.Accent),
		KeybindDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
		Status: lipgloss.NewStyle().
			Foreground(p.Muted),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
	}
}
