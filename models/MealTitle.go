package models

import (
	"gorm.io/gorm"
)

// MealTitle is a reusable label for meals, e.g. "Breakfast" or "Lunch".
type MealTitle struct {
	gorm.Model
	Title string `gorm:"uniqueIndex;not null" json:"title"`
}
