package models

import (
	"gorm.io/gorm"
)

// Product holds the per-100g nutrition facts for a single food product.
// All nutrition values are expressed per 100 grams.
type Product struct {
	gorm.Model
	Title       string   `gorm:"uniqueIndex;not null" json:"title"`
	Energy      float64  `gorm:"not null" json:"energy"`
	Proteins    float64  `gorm:"not null" json:"proteins"`
	Fats        float64  `gorm:"not null" json:"fats"`
	Carbs       float64  `gorm:"not null" json:"carbs"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Salt        *float64 `json:"salt,omitempty"`
	Note        string   `json:"note"`
	Rate        *int     `json:"rate,omitempty"`
	LactoseFree *bool    `json:"lactose_free,omitempty"`
}
