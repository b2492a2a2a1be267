package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Employee-Onboarding-System/config"
	_ "Employee-Onboarding-System/docs"
	"Employee-Onboarding-System/repository"
	"Employee-Onboarding-System/router"
	"Employee-Onboarding-System/seeder"
	_ "time/tzdata"
)

// @title Employee Onboarding System API
// @version 1.0
// @description API for the employee onboarding panel: document submission (Aadhar, PAN, bank details) and the three-state approval workflow
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Session endpoints
//
// @tag.name Employees
// @tag.description Employee records and their approval lifecycle
//
// @tag.name Documents
// @tag.description Aadhar, PAN and bank detail records
//
// @tag.name Workplaces
// @tag.description Workplace master data
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, falling back to system environment variables")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	if os.Getenv("SEED_ON_START") == "true" {
		seeder.SeedPanelUsers(repository.NewUserRepository())
		seeder.SeedWorkplaces(repository.NewWorkplaceRepository())
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // uploaded card images
	})

	config.SetupCORS(app)

	app.Use(logger.New())

	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
