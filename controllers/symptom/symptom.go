package symptomController

import (
	"log"

	"hms/database"
	"hms/models"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Stores *database.Stores
}

func New(stores *database.Stores) *Handler {
	return &Handler{Stores: stores}
}

// List returns the active predefined symptoms grouped by category.
func (h *Handler) List(c *fiber.Ctx) error {
	var symptoms []models.Symptom
	err := h.Stores.Data.Where("is_active = ?", true).
		Order("category, symptom_name").
		Find(&symptoms).Error
	if err != nil {
		log.Printf("Error fetching symptoms: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	list := make([]fiber.Map, 0, len(symptoms))
	for _, s := range symptoms {
		list = append(list, fiber.Map{
			"id":           s.ID,
			"symptom_name": s.SymptomName,
			"category":     s.Category,
		})
	}

	return c.JSON(fiber.Map{"symptoms": list})
}
