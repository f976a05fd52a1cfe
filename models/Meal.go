package models

import (
	"gorm.io/gorm"
)

// Meal groups the dishes eaten at one sitting within a Day.
// Nutrition values are derived from the loaded dishes, never stored.
type Meal struct {
	gorm.Model
	DayID       uint       `gorm:"not null;index" json:"day_id"`
	MealTitleID uint       `gorm:"not null" json:"meal_title_id"`
	MealTitle   *MealTitle `gorm:"foreignKey:MealTitleID" json:"meal_title,omitempty"`
	Time        *string    `gorm:"type:varchar(5)" json:"time,omitempty"`
	Dishes      []Dish     `gorm:"foreignKey:MealID" json:"dishes,omitempty"`
}

// Energy sums the derived energy of the meal's loaded dishes.
func (m Meal) Energy() float64 {
	total := 0.0
	for _, dish := range m.Dishes {
		total += dish.Energy()
	}
	return round2(total)
}

// Proteins sums the derived proteins of the meal's loaded dishes.
func (m Meal) Proteins() float64 {
	total := 0.0
	for _, dish := range m.Dishes {
		total += dish.Proteins()
	}
	return round2(total)
}

// Fats sums the derived fats of the meal's loaded dishes.
func (m Meal) Fats() float64 {
	total := 0.0
	for _, dish := range m.Dishes {
		total += dish.Fats()
	}
	return round2(total)
}

// Carbs sums the derived carbs of the meal's loaded dishes.
func (m Meal) Carbs() float64 {
	total := 0.0
	for _, dish := range m.Dishes {
		total += dish.Carbs()
	}
	return round2(total)
}

// WeightGrams sums the weight of the meal's loaded dishes.
func (m Meal) WeightGrams() float64 {
	total := 0.0
	for _, dish := range m.Dishes {
		total += float64(dish.Weight)
	}
	return round2(total)
}
