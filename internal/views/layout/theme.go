package layout

import (
	"sort"

	"foodlog/models"
)

// ThemeDefinition describes a visual theme that can be applied to the diary.
type ThemeDefinition struct {
	ID          string
	Label       string
	Description string
}

var themeRegistry = map[string]ThemeDefinition{
	models.ThemeDaylight: {
		ID:          models.ThemeDaylight,
		Label:       "Daylight",
		Description: "Light canvas with green accents.",
	},
	models.ThemeMidnight: {
		ID:          models.ThemeMidnight,
		Label:       "Midnight",
		Description: "Dark mode with soft contrast.",
	},
	models.ThemeLedger: {
		ID:          models.ThemeLedger,
		Label:       "Ledger",
		Description: "Paper-like tables with narrow rules.",
	},
}

// ThemeByID returns a definition for the provided identifier, falling back to
// the default theme.
func ThemeByID(id string) ThemeDefinition {
	if def, ok := themeRegistry[id]; ok {
		return def
	}
	return themeRegistry[models.DefaultTheme]
}

// ThemeOptions exposes all theme definitions sorted by label for form rendering.
func ThemeOptions() []ThemeDefinition {
	options := make([]ThemeDefinition, 0, len(themeRegistry))
	for _, def := range themeRegistry {
		options = append(options, def)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}
