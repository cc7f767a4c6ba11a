package models

import (
	"gorm.io/gorm"
)

// User is a front-desk account. Email is stored lowercase and is the primary
// identifier; phone and name are accepted as login identifiers too.
type User struct {
	gorm.Model
	Name          string `gorm:"not null"`
	Email         string `gorm:"unique;not null"`
	Phone         string `gorm:"not null"`
	Designation   string `gorm:"not null"`
	PasswordHash  string `gorm:"not null" json:"-"`
	IsActive      bool   `gorm:"default:true"`
	EmailVerified bool   `gorm:"default:false"`
}
