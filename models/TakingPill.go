package models

import (
	"gorm.io/gorm"
)

// TakingPill records that a pill is scheduled or was taken on a Day.
type TakingPill struct {
	gorm.Model
	DayID   uint    `gorm:"not null;index" json:"day_id"`
	PillID  uint    `gorm:"not null" json:"pill_id"`
	Pill    *Pill   `gorm:"foreignKey:PillID" json:"pill,omitempty"`
	Time    *string `gorm:"type:varchar(5)" json:"time,omitempty"`
	IsTaken bool    `gorm:"not null;default:false" json:"is_taken"`
	Note    string  `json:"note"`
}
