package appointmentController_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	appointmentController "hms/controllers/appointment"
	"hms/database"
	"hms/models"
	"hms/routers/appointmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testApp(t *testing.T) (*fiber.App, *database.Stores) {
	t.Helper()

	dir := t.TempDir()
	patients, err := gorm.Open(sqlite.Open(filepath.Join(dir, "patient.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, patients.AutoMigrate(&models.Patient{}))

	data, err := gorm.Open(sqlite.Open(filepath.Join(dir, "data.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, data.AutoMigrate(&models.Appointment{}))

	stores := &database.Stores{Patients: patients, Data: data}

	app := fiber.New()
	appointmentRoutes.SetupAppointmentRoutes(app, appointmentController.New(stores))
	return app, stores
}

func seedPatient(t *testing.T, stores *database.Stores) models.Patient {
	t.Helper()

	patient := models.Patient{
		SerialNumber:  "SN-001",
		PatientName:   "Jane Doe",
		PhoneNumber:   "1234567890",
		Age:           42,
		Sex:           "F",
		MaritalStatus: "Married",
		Problem:       "Insomnia",
		TimesOfVisit:  1,
		DateAdded:     "2026-02-28",
	}
	require.NoError(t, stores.Patients.Create(&patient).Error)
	return patient
}

func request(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestCreateAppointmentDenormalizesPatient(t *testing.T) {
	app, stores := testApp(t)
	seedPatient(t, stores)

	status, payload := request(t, app, "POST", "/api/appointments/",
		`{"patient_id":1,"date":"2026-03-02","time":"10:30"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, payload["success"])

	var appointment models.Appointment
	require.NoError(t, stores.Data.First(&appointment, 1).Error)
	assert.Equal(t, "Jane Doe", appointment.PatientName)
	assert.Equal(t, "1234567890", appointment.PatientPhone)
	assert.Equal(t, 30, appointment.Duration, "duration defaults to 30 minutes")
	assert.Equal(t, "scheduled", appointment.Status)
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	app, _ := testApp(t)

	status, payload := request(t, app, "POST", "/api/appointments/",
		`{"patient_id":42,"date":"2026-03-02","time":"10:30"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Patient not found", payload["error"])
}

func TestListAppointmentsInScheduleOrder(t *testing.T) {
	app, stores := testApp(t)
	seedPatient(t, stores)

	for _, body := range []string{
		`{"patient_id":1,"date":"2026-03-03","time":"09:00"}`,
		`{"patient_id":1,"date":"2026-03-02","time":"14:00"}`,
		`{"patient_id":1,"date":"2026-03-02","time":"09:30"}`,
	} {
		status, _ := request(t, app, "POST", "/api/appointments/", body)
		require.Equal(t, fiber.StatusOK, status)
	}

	status, payload := request(t, app, "GET", "/api/appointments/", "")
	require.Equal(t, fiber.StatusOK, status)

	appointments := payload["appointments"].([]interface{})
	require.Len(t, appointments, 3)
	first := appointments[0].(map[string]interface{})
	last := appointments[2].(map[string]interface{})
	assert.Equal(t, "2026-03-02", first["date"])
	assert.Equal(t, "09:30", first["time"])
	assert.Equal(t, "2026-03-03", last["date"])
}

func TestUpdateAppointment(t *testing.T) {
	app, stores := testApp(t)
	seedPatient(t, stores)

	status, _ := request(t, app, "POST", "/api/appointments/",
		`{"patient_id":1,"date":"2026-03-02","time":"10:30","notes":"first visit"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, payload := request(t, app, "PUT", "/api/appointments/1",
		`{"time":"11:00","status":"completed"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, payload["success"])

	var appointment models.Appointment
	require.NoError(t, stores.Data.First(&appointment, 1).Error)
	assert.Equal(t, "11:00", appointment.Time)
	assert.Equal(t, "completed", appointment.Status)
	assert.Equal(t, "first visit", appointment.Notes, "untouched fields keep their values")

	status, payload = request(t, app, "PUT", "/api/appointments/1", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No valid fields to update", payload["error"])
}

func TestDeleteAppointment(t *testing.T) {
	app, stores := testApp(t)
	seedPatient(t, stores)

	status, _ := request(t, app, "POST", "/api/appointments/",
		`{"patient_id":1,"date":"2026-03-02","time":"10:30"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, payload := request(t, app, "DELETE", "/api/appointments/1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, payload["success"])

	var count int64
	stores.Data.Model(&models.Appointment{}).Count(&count)
	assert.Zero(t, count)

	status, payload = request(t, app, "DELETE", "/api/appointments/1", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Appointment not found", payload["error"])
}
