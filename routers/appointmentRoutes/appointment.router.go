package appointmentRoutes

import (
	appointmentController "hms/controllers/appointment"
	appointmentValidator "hms/validators/appointment"

	"github.com/gofiber/fiber/v2"
)

func SetupAppointmentRoutes(app *fiber.App, h *appointmentController.Handler) {
	appointmentGroup := app.Group("/api/appointments")

	appointmentGroup.Get("/", h.List)
	appointmentGroup.Post("/", appointmentValidator.Create(), h.Create)
	appointmentGroup.Put("/:id", appointmentValidator.Update(), h.Update)
	appointmentGroup.Delete("/:id", h.Delete)
}
