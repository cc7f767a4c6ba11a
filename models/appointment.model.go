package models

import (
	"gorm.io/gorm"
)

// Appointment denormalizes the patient's name and phone at booking time so
// the schedule stays readable even though it lives in a different store than
// the patient records.
type Appointment struct {
	gorm.Model
	PatientID    uint   `gorm:"not null;index" json:"patient_id"`
	PatientName  string `gorm:"not null" json:"patient_name"`
	PatientPhone string `gorm:"not null" json:"patient_phone"`
	Date         string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Time         string `gorm:"size:5;not null" json:"time"`  // HH:MM
	Duration     int    `gorm:"default:30" json:"duration"`   // minutes
	Notes        string `json:"notes"`
	Status       string `gorm:"default:'scheduled'" json:"status"`
}
