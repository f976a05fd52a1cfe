package models

import (
	"time"

	"gorm.io/gorm"
)

// Day is the aggregation root for one calendar date. Meals, pill takings and
// notes belong to exactly one Day and are created and destroyed through it.
type Day struct {
	gorm.Model
	Date          time.Time    `gorm:"type:date;uniqueIndex;not null" json:"date"`
	DailyIntakeID *uint        `json:"daily_intake_id,omitempty"`
	DailyIntake   *DailyIntake `gorm:"foreignKey:DailyIntakeID" json:"daily_intake,omitempty"`
	Meals         []Meal       `gorm:"foreignKey:DayID" json:"meals,omitempty"`
	TakingPills   []TakingPill `gorm:"foreignKey:DayID" json:"taking_pills,omitempty"`
	Notes         []Note       `gorm:"foreignKey:DayID" json:"notes,omitempty"`
}

// Energy sums the derived energy of the day's loaded meals.
func (d Day) Energy() float64 {
	total := 0.0
	for _, meal := range d.Meals {
		total += meal.Energy()
	}
	return round2(total)
}

// Proteins sums the derived proteins of the day's loaded meals.
func (d Day) Proteins() float64 {
	total := 0.0
	for _, meal := range d.Meals {
		total += meal.Proteins()
	}
	return round2(total)
}

// Fats sums the derived fats of the day's loaded meals.
func (d Day) Fats() float64 {
	total := 0.0
	for _, meal := range d.Meals {
		total += meal.Fats()
	}
	return round2(total)
}

// Carbs sums the derived carbs of the day's loaded meals.
func (d Day) Carbs() float64 {
	total := 0.0
	for _, meal := range d.Meals {
		total += meal.Carbs()
	}
	return round2(total)
}

// WeightGrams sums the weight of every dish eaten during the day.
func (d Day) WeightGrams() float64 {
	total := 0.0
	for _, meal := range d.Meals {
		total += meal.WeightGrams()
	}
	return round2(total)
}
