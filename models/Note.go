package models

import (
	"gorm.io/gorm"
)

// Note is a free-text entry attached to a Day.
type Note struct {
	gorm.Model
	DayID uint    `gorm:"not null;index" json:"day_id"`
	Time  *string `gorm:"type:varchar(5)" json:"time,omitempty"`
	Body  string  `gorm:"type:text;not null" json:"body"`
}
