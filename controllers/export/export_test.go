package exportController_test

import (
	"encoding/csv"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	exportController "hms/controllers/export"
	"hms/database"
	"hms/models"
	"hms/routers/exportRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

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
	clock := fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	app := fiber.New()
	exportRoutes.SetupExportRoutes(app, exportController.New(stores, clock))
	return app, stores
}

func fetchCSV(t *testing.T, app *fiber.App, path string) ([][]string, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	return records, resp.Header.Get(fiber.HeaderContentDisposition)
}

func TestExportPatients(t *testing.T) {
	app, stores := testApp(t)

	require.NoError(t, stores.Patients.Create(&models.Patient{
		SerialNumber:  "SN-001",
		PatientName:   "Jane Doe",
		PhoneNumber:   "1234567890",
		Age:           42,
		Sex:           "F",
		MaritalStatus: "Married",
		Problem:       "Insomnia",
		TimesOfVisit:  2,
		DateAdded:     "2026-02-28",
	}).Error)

	records, disposition := fetchCSV(t, app, "/api/export/patients")
	assert.Equal(t, "attachment; filename=patients_data_20260301.csv", disposition)

	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"Serial Number", "Name", "Phone", "Age", "Sex", "Marital Status",
		"Problem", "Times of Visit", "Date Added", "Created At", "Updated At",
	}, records[0])

	row := records[1]
	assert.Equal(t, "SN-001", row[0])
	assert.Equal(t, "Jane Doe", row[1])
	assert.Equal(t, "42", row[3])
	assert.Equal(t, "2", row[7])
	assert.Equal(t, "2026-02-28", row[8])
}

func TestExportAppointmentsOrderedBySchedule(t *testing.T) {
	app, stores := testApp(t)

	for _, a := range []models.Appointment{
		{PatientID: 1, PatientName: "Jane Doe", PatientPhone: "123", Date: "2026-03-02", Time: "14:00", Duration: 30, Status: "scheduled"},
		{PatientID: 1, PatientName: "Jane Doe", PatientPhone: "123", Date: "2026-03-02", Time: "09:00", Duration: 45, Status: "scheduled"},
	} {
		require.NoError(t, stores.Data.Create(&a).Error)
	}

	records, disposition := fetchCSV(t, app, "/api/export/appointments")
	assert.True(t, strings.HasSuffix(disposition, "appointments_data_20260301.csv"))

	require.Len(t, records, 3)
	assert.Equal(t, "09:00", records[1][1], "rows come out in schedule order")
	assert.Equal(t, "14:00", records[2][1])
	assert.Equal(t, "45", records[1][4])
}

func TestExportEmptyTablesStillProduceHeaders(t *testing.T) {
	app, _ := testApp(t)

	records, _ := fetchCSV(t, app, "/api/export/patients")
	assert.Len(t, records, 1)

	records, _ = fetchCSV(t, app, "/api/export/appointments")
	assert.Len(t, records, 1)
}
