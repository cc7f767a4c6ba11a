package symptomRoutes

import (
	symptomController "hms/controllers/symptom"

	"github.com/gofiber/fiber/v2"
)

func SetupSymptomRoutes(app *fiber.App, h *symptomController.Handler) {
	app.Get("/api/symptoms", h.List)
}
