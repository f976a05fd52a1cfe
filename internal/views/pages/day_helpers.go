package pages

import (
	"strconv"

	"foodlog/internal/diary"
	"foodlog/models"
)

// BandClass maps a classified cell to its CSS class. Unclassified cells get
// no class so the raw value renders unstyled.
func BandClass(cell diary.Cell) string {
	if !cell.Classified {
		return ""
	}
	return "band-" + string(cell.Band)
}

// FormatMacro renders a macro value with two decimals, matching the derived
// value precision.
func FormatMacro(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatClock renders an optional wall-clock time, using a placeholder for
// entries without one.
func FormatClock(t *string) string {
	if t == nil {
		return "--:--"
	}
	return *t
}

// LactoseBadge maps the tri-state lactose flag to an icon identifier.
func LactoseBadge(flag *bool) string {
	switch {
	case flag == nil:
		return "unknown"
	case *flag:
		return "yes"
	default:
		return "no"
	}
}

// MealLabel returns the display title of a meal, tolerating an unloaded
// title reference.
func MealLabel(meal models.Meal) string {
	if meal.MealTitle != nil && meal.MealTitle.Title != "" {
		return meal.MealTitle.Title
	}
	return "Meal"
}

// PillLabel returns the display title of a pill taking.
func PillLabel(taking models.TakingPill) string {
	if taking.Pill != nil && taking.Pill.Title != "" {
		return taking.Pill.Title
	}
	return "Pill"
}
