package models

import (
	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	SerialNumber  string `gorm:"unique;not null" json:"serial_number"`
	PatientName   string `gorm:"not null" json:"patient_name"`
	PhoneNumber   string `gorm:"not null" json:"phone_number"`
	Age           int    `gorm:"not null" json:"age"`
	Sex           string `gorm:"not null" json:"sex"`
	MaritalStatus string `gorm:"not null" json:"marital_status"`
	Problem       string `gorm:"not null" json:"problem"`
	TimesOfVisit  int    `gorm:"default:1" json:"times_of_visit"`
	DateAdded     string `gorm:"size:10" json:"date_added"` // YYYY-MM-DD
}
