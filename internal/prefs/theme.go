// Package prefs owns the light/dark theme preference: the current value,
// its persistence, and change broadcasting to the rest of the UI.
package prefs

import "fmt"

// Theme is the display mode preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultStorageKey is the key the preference is persisted under.
const DefaultStorageKey = "angel-ui-theme"

// ParseTheme validates a stored or user-supplied theme value.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected light or dark)", s)
	}
}

// IsValid reports whether t is one of the known themes.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme (light↔dark).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}
