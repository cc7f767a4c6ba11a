package exportRoutes

import (
	exportController "hms/controllers/export"

	"github.com/gofiber/fiber/v2"
)

func SetupExportRoutes(app *fiber.App, h *exportController.Handler) {
	exportGroup := app.Group("/api/export")

	exportGroup.Get("/patients", h.Patients)
	exportGroup.Get("/appointments", h.Appointments)
}
