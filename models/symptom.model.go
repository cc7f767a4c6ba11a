package models

import (
	"gorm.io/gorm"
)

type Symptom struct {
	gorm.Model
	SymptomName string `gorm:"unique;not null" json:"symptom_name"`
	Category    string `json:"category"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
