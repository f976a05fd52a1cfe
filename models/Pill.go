package models

import (
	"gorm.io/gorm"
)

// Pill is a named medication from the shared catalog.
type Pill struct {
	gorm.Model
	Title string `gorm:"uniqueIndex;not null" json:"title"`
	Note  string `json:"note"`
}
