package main

import (
	"log"

	"hms/config"
	appointmentController "hms/controllers/appointment"
	authController "hms/controllers/auth"
	exportController "hms/controllers/export"
	patientController "hms/controllers/patient"
	symptomController "hms/controllers/symptom"
	"hms/database"
	"hms/notifier"
	"hms/routers/appointmentRoutes"
	"hms/routers/authRoutes"
	"hms/routers/exportRoutes"
	"hms/routers/patientRoutes"
	"hms/routers/symptomRoutes"
	"hms/utils"
	"hms/verification"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	stores := database.Connect(cfg)

	clock := utils.SystemClock{}
	var hasher utils.PasswordHasher = utils.BcryptHasher{Cost: cfg.SaltRound}
	if cfg.LegacyHashing {
		log.Println("Warning: legacy unsalted password hashing enabled.")
		hasher = utils.LegacyHasher{}
	}

	sender := notifier.FromConfig(cfg)
	ledger := verification.NewLedger(stores.Data, clock)
	workflow := verification.NewWorkflow(stores.Data, ledger, sender, hasher, cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	app.Use(requestid.New())

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, authController.New(workflow))
	patientRoutes.SetupPatientRoutes(app, patientController.New(stores, clock))
	appointmentRoutes.SetupAppointmentRoutes(app, appointmentController.New(stores))
	exportRoutes.SetupExportRoutes(app, exportController.New(stores, clock))
	symptomRoutes.SetupSymptomRoutes(app, symptomController.New(stores))

	// Routine housekeeping: drop expired OTP rows from both families.
	c := cron.New()
	if _, err := c.AddFunc("@every 5m", ledger.PurgeExpired); err != nil {
		log.Fatalf("Failed to schedule OTP purge: %v", err)
	}
	c.Start()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
