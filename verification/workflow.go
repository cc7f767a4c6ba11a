package verification

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"hms/config"
	"hms/models"
	"hms/notifier"
	"hms/utils"

	"gorm.io/gorm"
)

// Status classifies a workflow outcome.
type Status string

const (
	StatusOK              Status = "ok"
	StatusValidation      Status = "validation"
	StatusConflict        Status = "conflict"
	StatusNotFound        Status = "not_found"
	StatusInvalidCode     Status = "invalid_or_expired_code"
	StatusDeliveryFailure Status = "delivery_failure"
	StatusStorageFailure  Status = "storage_failure"
)

// Result is a workflow outcome with a user-facing message. Storage failures
// carry the same generic message as business failures; the underlying error
// is only logged server-side.
type Result struct {
	Status  Status
	Message string
}

func (r Result) OK() bool { return r.Status == StatusOK }

func ok(message string) Result { return Result{StatusOK, message} }

func fail(status Status, message string) Result { return Result{status, message} }

// Identity is the login payload. ID 0 is the synthetic administrator.
type Identity struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

// Workflow orchestrates code issuance, delivery and validation for the
// registration and password-reset flows, plus credential login.
type Workflow struct {
	db       *gorm.DB
	ledger   *Ledger
	notifier notifier.Notifier
	hasher   utils.PasswordHasher

	adminUsername string
	adminPassword string

	// requireVerifiedOTP gates CompleteRegistration on a previously verified
	// code. Off by default: clients verify before completing, and the server
	// historically did not re-check.
	requireVerifiedOTP bool
}

func NewWorkflow(db *gorm.DB, ledger *Ledger, n notifier.Notifier, hasher utils.PasswordHasher, cfg *config.Config) *Workflow {
	return &Workflow{
		db:                 db,
		ledger:             ledger,
		notifier:           n,
		hasher:             hasher,
		adminUsername:      cfg.AdminUsername,
		adminPassword:      cfg.AdminPassword,
		requireVerifiedOTP: cfg.RequireVerifiedOTP,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BeginRegistration collects the profile, issues a registration code and
// attempts delivery. The code stays valid and resendable even when delivery
// fails; only the reported result differs.
func (w *Workflow) BeginRegistration(name, email, phone, designation string) Result {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	phone = strings.TrimSpace(phone)
	designation = strings.TrimSpace(designation)

	if name == "" || email == "" || phone == "" || designation == "" {
		return fail(StatusValidation, "All fields are required")
	}

	if w.emailRegistered(email) {
		return fail(StatusConflict, "Email already registered")
	}

	w.ledger.PurgeExpired()

	code, err := w.ledger.Issue(email, FamilyRegistration)
	if err != nil {
		log.Printf("Registration OTP issue error for %s: %v", email, err)
		return fail(StatusStorageFailure, "Registration failed")
	}

	subject, body := notifier.RegistrationOTPEmail(name, code)
	if !w.notifier.Send(email, subject, body) {
		// Operator escape hatch: the code is still valid, surface it in the log.
		log.Printf("FALLBACK - OTP for %s: %s", email, code)
		return fail(StatusDeliveryFailure, "Failed to send OTP. Please try again.")
	}

	return ok("OTP sent to your email")
}

// ResendRegistrationOTP re-issues unconditionally; there is no existence
// check against the account store.
func (w *Workflow) ResendRegistrationOTP(email string) Result {
	email = normalizeEmail(email)
	if email == "" {
		return fail(StatusValidation, "Email is required")
	}

	code, err := w.ledger.Issue(email, FamilyRegistration)
	if err != nil {
		log.Printf("Registration OTP re-issue error for %s: %v", email, err)
		return fail(StatusStorageFailure, "Failed to resend OTP")
	}

	subject, body := notifier.RegistrationOTPEmail("User", code)
	if !w.notifier.Send(email, subject, body) {
		log.Printf("FALLBACK - OTP for %s: %s", email, code)
		return fail(StatusDeliveryFailure, "Failed to send OTP")
	}

	return ok("New OTP sent")
}

// VerifyRegistrationOTP validates and consumes a registration code. It does
// not create the account.
func (w *Workflow) VerifyRegistrationOTP(email, code string) Result {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)

	if email == "" || code == "" {
		return fail(StatusValidation, "Email and OTP are required")
	}

	if !w.ledger.Verify(email, FamilyRegistration, code) {
		return fail(StatusInvalidCode, "Invalid or expired OTP")
	}

	return ok("OTP verified successfully")
}

// CompleteRegistration creates the account with a verified email flag and
// clears any remaining registration codes for the address.
func (w *Workflow) CompleteRegistration(name, email, phone, designation, password string) Result {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	phone = strings.TrimSpace(phone)
	designation = strings.TrimSpace(designation)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || phone == "" || designation == "" || password == "" {
		return fail(StatusValidation, "All fields are required")
	}
	if len(password) < 8 {
		return fail(StatusValidation, "Password must be at least 8 characters")
	}

	if w.requireVerifiedOTP && !w.ledger.Consumed(email) {
		return fail(StatusInvalidCode, "Email not verified. Please verify the OTP first.")
	}

	if w.emailRegistered(email) {
		return fail(StatusConflict, "Email already registered")
	}

	hash, err := w.hasher.Hash(password)
	if err != nil {
		log.Printf("Error hashing password for %s: %v", email, err)
		return fail(StatusStorageFailure, "Registration completion failed")
	}

	user := models.User{
		Name:          name,
		Email:         email,
		Phone:         phone,
		Designation:   designation,
		PasswordHash:  hash,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := w.db.Create(&user).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return fail(StatusStorageFailure, "Registration completion failed")
	}

	if err := w.ledger.Clear(email, FamilyRegistration); err != nil {
		log.Printf("Error clearing registration OTPs for %s: %v", email, err)
	}

	return ok("Registration completed successfully")
}

// BeginReset issues a reset code for an existing active account. Delivery
// failure is not surfaced: the result reads success either way, with the
// code logged for operator visibility when the mail did not go out.
func (w *Workflow) BeginReset(email string) Result {
	email = normalizeEmail(email)
	if email == "" {
		return fail(StatusValidation, "Email is required")
	}

	var user models.User
	err := w.db.Where("LOWER(email) = ? AND is_active = ?", email, true).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error looking up account for %s: %v", email, err)
			return fail(StatusStorageFailure, "Failed to send reset code")
		}
		return fail(StatusNotFound, "Email not found. Please check your email address.")
	}

	code, err := w.ledger.Issue(email, FamilyReset)
	if err != nil {
		log.Printf("Reset OTP issue error for %s: %v", email, err)
		return fail(StatusStorageFailure, "Failed to send reset code")
	}

	subject, body := notifier.ResetOTPEmail(user.Name, code)
	if !w.notifier.Send(email, subject, body) {
		log.Printf("FALLBACK - Reset code for %s: %s", email, code)
	}

	return ok("Reset code sent to your email!")
}

// VerifyResetOTP checks a reset code against its expiry window only; a
// consumed-but-unexpired code still passes.
func (w *Workflow) VerifyResetOTP(email, code string) Result {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)

	if email == "" || code == "" {
		return fail(StatusValidation, "Email and OTP are required")
	}

	if !w.ledger.Verify(email, FamilyReset, code) {
		return fail(StatusInvalidCode, "Invalid or expired OTP. Please try again.")
	}

	return ok("OTP verified successfully!")
}

// ResetPassword re-validates the code, updates the password hash and retires
// the code row.
func (w *Workflow) ResetPassword(email, code, newPassword string) Result {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	newPassword = strings.TrimSpace(newPassword)

	if email == "" || code == "" || newPassword == "" {
		return fail(StatusValidation, "Email, OTP, and new password are required")
	}
	if len(newPassword) < 6 {
		return fail(StatusValidation, "Password must be at least 6 characters long")
	}

	if !w.ledger.Verify(email, FamilyReset, code) {
		return fail(StatusInvalidCode, "Invalid or expired OTP. Please start over.")
	}

	hash, err := w.hasher.Hash(newPassword)
	if err != nil {
		log.Printf("Error hashing password for %s: %v", email, err)
		return fail(StatusStorageFailure, "Password reset failed")
	}

	err = w.db.Model(&models.User{}).Where("LOWER(email) = ?", email).
		Update("password_hash", hash).Error
	if err != nil {
		log.Printf("Error updating password for %s: %v", email, err)
		return fail(StatusStorageFailure, "Password reset failed")
	}

	if err := w.ledger.Retire(email, FamilyReset, code); err != nil {
		log.Printf("Error retiring reset OTP for %s: %v", email, err)
	}

	return ok("Password reset successfully!")
}

// Login resolves an identifier (email, phone or name) against active
// accounts and compares password hashes. The fixed administrator pair short
// circuits without touching the store.
func (w *Workflow) Login(identifier, password string) (*Identity, Result) {
	identifier = strings.TrimSpace(identifier)
	password = strings.TrimSpace(password)

	if identifier == "" || password == "" {
		return nil, fail(StatusValidation, "Username/Email/Phone and password are required")
	}

	if identifier == w.adminUsername && password == w.adminPassword {
		return &Identity{
			ID:          0,
			Name:        "Administrator",
			Email:       "admin@hospital.com",
			Designation: "Administrator",
		}, ok("Welcome back, Administrator!")
	}

	var user models.User
	err := w.db.Where(
		"(LOWER(email) = LOWER(?) OR phone = ? OR LOWER(name) = LOWER(?)) AND is_active = ?",
		identifier, identifier, identifier, true,
	).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error looking up account for %q: %v", identifier, err)
		}
		return nil, fail(StatusNotFound, "Invalid credentials. Please check your email/phone/username and password.")
	}

	if !w.hasher.Compare(user.PasswordHash, password) {
		return nil, fail(StatusNotFound, "Invalid credentials. Please check your email/phone/username and password.")
	}

	return &Identity{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Designation: user.Designation,
	}, ok(fmt.Sprintf("Welcome back, %s!", user.Name))
}

func (w *Workflow) emailRegistered(email string) bool {
	var count int64
	if err := w.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("Error checking for existing account %s: %v", email, err)
	}
	return count > 0
}
