package verification

import (
	"errors"
	"log"
	"time"

	"hms/models"
	"hms/utils"

	"gorm.io/gorm"
)

// Family selects which one-time-code table an operation works against.
// Registration and reset codes live in separate tables and never satisfy
// each other's checks.
type Family string

const (
	FamilyRegistration Family = "registration"
	FamilyReset        Family = "reset"
)

// Ledger persists short-lived one-time codes keyed by email. Issuing a new
// code deletes any prior rows for that email, so at most one active code
// exists per email per family.
type Ledger struct {
	db    *gorm.DB
	clock utils.Clock

	// Generate produces the 6-digit code; replaceable in tests.
	Generate func() string
	// TTL is the validity window from issuance.
	TTL time.Duration
}

func NewLedger(db *gorm.DB, clock utils.Clock) *Ledger {
	return &Ledger{
		db:       db,
		clock:    clock,
		Generate: utils.GenerateOTP,
		TTL:      10 * time.Minute,
	}
}

// Issue creates and stores a fresh code for (email, family), silently
// invalidating any outstanding code for that email. The returned code is the
// only copy handed to the caller; storage failure is fatal to the request.
func (l *Ledger) Issue(email string, family Family) (string, error) {
	code := l.Generate()
	expiresAt := l.clock.Now().Add(l.TTL)

	switch family {
	case FamilyRegistration:
		if err := l.db.Unscoped().Where("email = ?", email).Delete(&models.RegistrationOTP{}).Error; err != nil {
			return "", err
		}
		record := models.RegistrationOTP{Email: email, Code: code, ExpiresAt: expiresAt}
		if err := l.db.Create(&record).Error; err != nil {
			return "", err
		}
	case FamilyReset:
		if err := l.db.Unscoped().Where("email = ?", email).Delete(&models.ResetOTP{}).Error; err != nil {
			return "", err
		}
		record := models.ResetOTP{Email: email, Code: code, ExpiresAt: expiresAt}
		if err := l.db.Create(&record).Error; err != nil {
			return "", err
		}
	}

	return code, nil
}

// Verify reports whether a code is currently valid for (email, family).
// Not-found, expired and already-used all come back as a plain false; callers
// cannot tell them apart.
//
// The registration family consumes the code on success. The reset family
// checks only the expiry window, so a consumed-but-unexpired reset code
// verifies again; reset codes are retired by Retire instead.
func (l *Ledger) Verify(email string, family Family, code string) bool {
	now := l.clock.Now()

	switch family {
	case FamilyRegistration:
		var record models.RegistrationOTP
		err := l.db.Where("email = ? AND code = ? AND is_used = ?", email, code, false).First(&record).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Error looking up registration OTP for %s: %v", email, err)
			}
			return false
		}
		if !record.ExpiresAt.After(now) {
			return false
		}
		record.IsUsed = true
		if err := l.db.Save(&record).Error; err != nil {
			log.Printf("Error marking registration OTP used for %s: %v", email, err)
			return false
		}
		return true

	case FamilyReset:
		var record models.ResetOTP
		err := l.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, now).First(&record).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Error looking up reset OTP for %s: %v", email, err)
			}
			return false
		}
		return true
	}

	return false
}

// Consumed reports whether a used registration code exists for the email,
// i.e. the email passed OTP verification at some point.
func (l *Ledger) Consumed(email string) bool {
	var count int64
	err := l.db.Model(&models.RegistrationOTP{}).
		Where("email = ? AND is_used = ?", email, true).
		Count(&count).Error
	if err != nil {
		log.Printf("Error checking consumed OTP for %s: %v", email, err)
		return false
	}
	return count > 0
}

// Clear removes every code for (email, family), used or not.
func (l *Ledger) Clear(email string, family Family) error {
	switch family {
	case FamilyRegistration:
		return l.db.Unscoped().Where("email = ?", email).Delete(&models.RegistrationOTP{}).Error
	case FamilyReset:
		return l.db.Unscoped().Where("email = ?", email).Delete(&models.ResetOTP{}).Error
	}
	return nil
}

// Retire removes the rows matching (email, family, code).
func (l *Ledger) Retire(email string, family Family, code string) error {
	switch family {
	case FamilyRegistration:
		return l.db.Unscoped().Where("email = ? AND code = ?", email, code).Delete(&models.RegistrationOTP{}).Error
	case FamilyReset:
		return l.db.Unscoped().Where("email = ? AND code = ?", email, code).Delete(&models.ResetOTP{}).Error
	}
	return nil
}

// PurgeExpired deletes expired rows from both families. Best effort:
// failures are logged and swallowed, never propagated.
func (l *Ledger) PurgeExpired() {
	now := l.clock.Now()

	if err := l.db.Unscoped().Where("expires_at < ?", now).Delete(&models.RegistrationOTP{}).Error; err != nil {
		log.Printf("Error purging expired registration OTPs: %v", err)
	}
	if err := l.db.Unscoped().Where("expires_at < ?", now).Delete(&models.ResetOTP{}).Error; err != nil {
		log.Printf("Error purging expired reset OTPs: %v", err)
	}
}
