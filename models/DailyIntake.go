package models

import (
	"gorm.io/gorm"
)

// DailyIntake is a named target intake profile a Day is compared against.
// At most one profile carries the Default flag; the diary service keeps that
// invariant on every save.
type DailyIntake struct {
	gorm.Model
	Title    string   `gorm:"uniqueIndex;not null" json:"title"`
	Default  bool     `gorm:"column:is_default;not null;default:false" json:"default"`
	Energy   float64  `gorm:"not null" json:"energy"`
	Proteins float64  `gorm:"not null" json:"proteins"`
	Fats     float64  `gorm:"not null" json:"fats"`
	Carbs    float64  `gorm:"not null" json:"carbs"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Salt     *float64 `json:"salt,omitempty"`
	Note     string   `json:"note"`
}
