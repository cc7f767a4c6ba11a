package authRoutes

import (
	authController "hms/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the authentication surface. The reset-flow
// endpoints live at the root path rather than under /api, matching the
// contract the frontend was written against.
func SetupAuthRoutes(app *fiber.App, h *authController.Handler) {
	app.Post("/api/register", h.Register)
	app.Post("/api/send-otp", h.SendOTP)
	app.Post("/api/verify-otp", h.VerifyOTP)
	app.Post("/api/complete-registration", h.CompleteRegistration)
	app.Post("/api/login", h.Login)

	app.Post("/send_reset_otp", h.SendResetOTP)
	app.Post("/verify_reset_otp", h.VerifyResetOTP)
	app.Post("/reset_password", h.ResetPassword)
}
