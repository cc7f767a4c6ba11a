package patientRoutes

import (
	patientController "hms/controllers/patient"
	patientValidator "hms/validators/patient"

	"github.com/gofiber/fiber/v2"
)

func SetupPatientRoutes(app *fiber.App, h *patientController.Handler) {
	patientGroup := app.Group("/api/patients")

	patientGroup.Get("/", h.List)
	patientGroup.Post("/", patientValidator.Create(), h.Create)
	patientGroup.Put("/:id", patientValidator.Update(), h.Update)
	patientGroup.Delete("/:id", h.Delete)
}
