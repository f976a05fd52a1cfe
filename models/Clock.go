package models

import (
	"strings"
	"time"
)

// ClockLayout is the wall-clock format used by Meal, TakingPill and Note
// time fields.
const ClockLayout = "15:04"

// ValidClockTime reports whether the value parses as an "HH:MM" clock time.
func ValidClockTime(value string) bool {
	_, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	return err == nil
}

// NormalizeClockTime trims the value and returns nil for an empty string so
// that optional time fields persist as NULL rather than "".
func NormalizeClockTime(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
