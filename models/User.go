package models

import "gorm.io/gorm"

// User is the diary owner's account. The application is single-account:
// signup is only offered while no user exists.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	Theme        string `gorm:"type:varchar(32);default:daylight"`
}
