package appointmentController

import (
	"errors"
	"log"

	"hms/database"
	"hms/models"
	appointmentValidator "hms/validators/appointment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	Stores *database.Stores
}

func New(stores *database.Stores) *Handler {
	return &Handler{Stores: stores}
}

// List returns all appointments in schedule order.
func (h *Handler) List(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := h.Stores.Data.Order("date, time").Find(&appointments).Error; err != nil {
		log.Printf("Error fetching appointments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"appointments": appointments})
}

// Create books an appointment, denormalizing the patient's name and phone
// from the patient store at booking time.
func (h *Handler) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAppointment").(*appointmentValidator.CreateRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	var patient models.Patient
	if err := h.Stores.Patients.First(&patient, reqData.PatientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found"})
		}
		log.Printf("Error fetching patient %d: %v", reqData.PatientID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	duration := reqData.Duration
	if duration == 0 {
		duration = 30
	}
	status := reqData.Status
	if status == "" {
		status = "scheduled"
	}

	appointment := models.Appointment{
		PatientID:    reqData.PatientID,
		PatientName:  patient.PatientName,
		PatientPhone: patient.PhoneNumber,
		Date:         reqData.Date,
		Time:         reqData.Time,
		Duration:     duration,
		Notes:        reqData.Notes,
		Status:       status,
	}

	if err := h.Stores.Data.Create(&appointment).Error; err != nil {
		log.Printf("Error saving appointment to database: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"appointment_id": appointment.ID,
		"message":        "Appointment created successfully",
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment id"})
	}

	reqData, ok := c.Locals("validatedAppointmentUpdate").(*appointmentValidator.UpdateRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	var appointment models.Appointment
	if err := h.Stores.Data.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		}
		log.Printf("Error fetching appointment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if !reqData.HasChanges() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No valid fields to update"})
	}

	if reqData.Date != nil {
		appointment.Date = *reqData.Date
	}
	if reqData.Time != nil {
		appointment.Time = *reqData.Time
	}
	if reqData.Duration != nil {
		appointment.Duration = *reqData.Duration
	}
	if reqData.Notes != nil {
		appointment.Notes = *reqData.Notes
	}
	if reqData.Status != nil {
		appointment.Status = *reqData.Status
	}

	if err := h.Stores.Data.Save(&appointment).Error; err != nil {
		log.Printf("Error updating appointment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Appointment updated successfully"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment id"})
	}

	var appointment models.Appointment
	if err := h.Stores.Data.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		}
		log.Printf("Error fetching appointment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if err := h.Stores.Data.Unscoped().Delete(&appointment).Error; err != nil {
		log.Printf("Error deleting appointment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Appointment deleted successfully"})
}
