package patientController

import (
	"errors"
	"log"

	"hms/database"
	"hms/models"
	"hms/utils"
	patientValidator "hms/validators/patient"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	Stores *database.Stores
	Clock  utils.Clock
}

func New(stores *database.Stores, clock utils.Clock) *Handler {
	return &Handler{Stores: stores, Clock: clock}
}

// List returns all patients, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	var patients []models.Patient
	if err := h.Stores.Patients.Order("created_at DESC").Find(&patients).Error; err != nil {
		log.Printf("Error fetching patients: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"patients": patients})
}

func (h *Handler) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPatient").(*patientValidator.CreateRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	// Check if serial number already exists
	var count int64
	h.Stores.Patients.Model(&models.Patient{}).Where("serial_number = ?", reqData.SerialNumber).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Serial number already exists"})
	}

	timesOfVisit := reqData.TimesOfVisit
	if timesOfVisit == 0 {
		timesOfVisit = 1
	}

	patient := models.Patient{
		SerialNumber:  reqData.SerialNumber,
		PatientName:   reqData.PatientName,
		PhoneNumber:   reqData.PhoneNumber,
		Age:           reqData.Age,
		Sex:           reqData.Sex,
		MaritalStatus: reqData.MaritalStatus,
		Problem:       reqData.Problem,
		TimesOfVisit:  timesOfVisit,
		DateAdded:     h.Clock.Now().Format("2006-01-02"),
	}

	if err := h.Stores.Patients.Create(&patient).Error; err != nil {
		log.Printf("Error saving patient to database: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Database integrity error: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"patient_id": patient.ID,
		"message":    "Patient created successfully",
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid patient id"})
	}

	reqData, ok := c.Locals("validatedPatientUpdate").(*patientValidator.UpdateRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	var patient models.Patient
	if err := h.Stores.Patients.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found"})
		}
		log.Printf("Error fetching patient %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if !reqData.HasChanges() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No valid fields to update"})
	}

	if reqData.SerialNumber != nil {
		patient.SerialNumber = *reqData.SerialNumber
	}
	if reqData.PatientName != nil {
		patient.PatientName = *reqData.PatientName
	}
	if reqData.PhoneNumber != nil {
		patient.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.Age != nil {
		patient.Age = *reqData.Age
	}
	if reqData.Sex != nil {
		patient.Sex = *reqData.Sex
	}
	if reqData.MaritalStatus != nil {
		patient.MaritalStatus = *reqData.MaritalStatus
	}
	if reqData.Problem != nil {
		patient.Problem = *reqData.Problem
	}
	if reqData.TimesOfVisit != nil {
		patient.TimesOfVisit = *reqData.TimesOfVisit
	}

	if err := h.Stores.Patients.Save(&patient).Error; err != nil {
		log.Printf("Error updating patient %d: %v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Database integrity error: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Patient updated successfully"})
}

// Delete removes a patient and its appointments. The two stores commit
// separately; a crash in between can leave orphaned appointment rows.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid patient id"})
	}

	var patient models.Patient
	if err := h.Stores.Patients.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found"})
		}
		log.Printf("Error fetching patient %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	// Delete related appointments first
	if err := h.Stores.Data.Unscoped().Where("patient_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
		log.Printf("Error deleting appointments for patient %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error: " + err.Error()})
	}

	if err := h.Stores.Patients.Unscoped().Delete(&patient).Error; err != nil {
		log.Printf("Error deleting patient %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Patient deleted successfully"})
}
