package models

import (
	"math"

	"gorm.io/gorm"
)

// Dish is a weighed quantity of a Product inside a Meal. Weight is always
// grams; the product's nutrition facts are per 100 grams, so every derived
// value is a linear scaling of the product value.
type Dish struct {
	gorm.Model
	MealID    uint     `gorm:"not null;index" json:"meal_id"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Weight    int      `gorm:"not null" json:"weight"`
	Note      string   `json:"note"`
}

// Energy derives the dish energy from the loaded product.
func (d Dish) Energy() float64 {
	return d.scale(d.product().Energy)
}

// Proteins derives the dish proteins from the loaded product.
func (d Dish) Proteins() float64 {
	return d.scale(d.product().Proteins)
}

// Fats derives the dish fats from the loaded product.
func (d Dish) Fats() float64 {
	return d.scale(d.product().Fats)
}

// Carbs derives the dish carbs from the loaded product.
func (d Dish) Carbs() float64 {
	return d.scale(d.product().Carbs)
}

// LactoseFree passes the product's tri-state flag through unchanged.
func (d Dish) LactoseFree() *bool {
	return d.product().LactoseFree
}

func (d Dish) product() Product {
	if d.Product == nil {
		return Product{}
	}
	return *d.Product
}

func (d Dish) scale(per100g float64) float64 {
	return round2(per100g * float64(d.Weight) / 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
