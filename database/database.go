package database

import (
	"log"

	"hms/config"
	"hms/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Stores holds the two independent database handles: one for patient records
// and one for scheduling, accounts and OTP codes. Operations spanning both
// are two separate commits with no cross-store guarantee.
type Stores struct {
	Patients *gorm.DB
	Data     *gorm.DB
}

// Connect opens both SQLite stores and runs migrations.
func Connect(cfg *config.Config) *Stores {
	patients := open(cfg.PatientDBName)
	data := open(cfg.DataDBName)

	runMigrations(patients, data)

	return &Stores{Patients: patients, Data: data}
}

func open(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database %s: %v", name, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	return db
}

// runMigrations performs database migrations
func runMigrations(patients, data *gorm.DB) {
	log.Println("Running Migrations...")

	if err := patients.AutoMigrate(&models.Patient{}); err != nil {
		log.Fatalf("Patient store migration failed: %v", err)
	}

	err := data.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.Symptom{},
		&models.RegistrationOTP{},
		&models.ResetOTP{},
	)
	if err != nil {
		log.Fatalf("Data store migration failed: %v", err)
	}

	seedSymptoms(data)

	log.Println("Migrations completed successfully.")
}

// seedSymptoms inserts the default symptom catalogue if not present.
func seedSymptoms(db *gorm.DB) {
	defaults := []models.Symptom{
		{SymptomName: "High Blood Pressure", Category: "Cardiovascular", IsActive: true},
		{SymptomName: "Diabetes", Category: "Endocrine", IsActive: true},
		{SymptomName: "Insomnia", Category: "Neurological", IsActive: true},
	}

	for _, s := range defaults {
		if err := db.Where("symptom_name = ?", s.SymptomName).FirstOrCreate(&s).Error; err != nil {
			log.Printf("Error seeding symptom %q: %v", s.SymptomName, err)
		}
	}
}
