package models

import "strings"

// Visual themes available for the diary UI.
const (
	ThemeDaylight = "daylight"
	ThemeMidnight = "midnight"
	ThemeLedger   = "ledger"
)

// DefaultTheme is applied when a user has no valid theme preference.
const DefaultTheme = ThemeDaylight

// ValidTheme reports whether the identifier names a known theme.
func ValidTheme(id string) bool {
	switch id {
	case ThemeDaylight, ThemeMidnight, ThemeLedger:
		return true
	}
	return false
}

// NormalizeTheme maps arbitrary input to a known theme identifier.
func NormalizeTheme(id string) string {
	trimmed := strings.TrimSpace(id)
	if ValidTheme(trimmed) {
		return trimmed
	}
	return DefaultTheme
}
