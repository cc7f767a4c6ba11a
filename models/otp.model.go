package models

import (
	"time"

	"gorm.io/gorm"
)

// RegistrationOTP is a one-time code proving control of an email address
// during signup. At most one active code should exist per email; issuing a
// new code deletes the previous rows rather than relying on a uniqueness
// constraint.
type RegistrationOTP struct {
	gorm.Model
	Email     string    `gorm:"size:100;index;not null" json:"email"`
	Code      string    `gorm:"size:6;not null" json:"code"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
}

// ResetOTP is the password-reset code family. Structurally identical to
// RegistrationOTP but kept in its own table; codes from one family never
// satisfy the other's checks.
type ResetOTP struct {
	gorm.Model
	Email     string    `gorm:"size:100;index;not null" json:"email"`
	Code      string    `gorm:"size:6;not null" json:"code"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
}
