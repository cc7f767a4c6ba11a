package exportController

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"

	"hms/database"
	"hms/models"
	"hms/utils"

	"github.com/gofiber/fiber/v2"
)

const timestampLayout = "2006-01-02 15:04:05"

type Handler struct {
	Stores *database.Stores
	Clock  utils.Clock
}

func New(stores *database.Stores, clock utils.Clock) *Handler {
	return &Handler{Stores: stores, Clock: clock}
}

// Patients streams the patient register as a CSV attachment.
func (h *Handler) Patients(c *fiber.Ctx) error {
	var patients []models.Patient
	if err := h.Stores.Patients.Order("created_at DESC").Find(&patients).Error; err != nil {
		log.Printf("Error fetching patients for export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write([]string{
		"Serial Number", "Name", "Phone", "Age", "Sex", "Marital Status",
		"Problem", "Times of Visit", "Date Added", "Created At", "Updated At",
	})

	for _, p := range patients {
		writer.Write([]string{
			p.SerialNumber,
			p.PatientName,
			p.PhoneNumber,
			strconv.Itoa(p.Age),
			p.Sex,
			p.MaritalStatus,
			p.Problem,
			strconv.Itoa(p.TimesOfVisit),
			p.DateAdded,
			p.CreatedAt.Format(timestampLayout),
			p.UpdatedAt.Format(timestampLayout),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("Error writing patient CSV: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Export failed"})
	}

	filename := fmt.Sprintf("patients_data_%s.csv", h.Clock.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}

// Appointments streams the schedule as a CSV attachment.
func (h *Handler) Appointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := h.Stores.Data.Order("date, time").Find(&appointments).Error; err != nil {
		log.Printf("Error fetching appointments for export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write([]string{
		"Date", "Time", "Patient Name", "Phone", "Duration (min)",
		"Notes", "Status", "Created At", "Updated At",
	})

	for _, a := range appointments {
		writer.Write([]string{
			a.Date,
			a.Time,
			a.PatientName,
			a.PatientPhone,
			strconv.Itoa(a.Duration),
			a.Notes,
			a.Status,
			a.CreatedAt.Format(timestampLayout),
			a.UpdatedAt.Format(timestampLayout),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("Error writing appointment CSV: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Export failed"})
	}

	filename := fmt.Sprintf("appointments_data_%s.csv", h.Clock.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}
