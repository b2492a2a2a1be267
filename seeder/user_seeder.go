package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/repository"
)

// SeedPanelUsers inserts one account per panel role so a fresh deployment can
// be logged into right away.
func SeedPanelUsers(userRepo *repository.UserRepository) {
	log.Println("Seeding panel users...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	accounts := []models.PanelUser{
		{Name: "Primary Admin", Email: "admin@onboarding.local", Role: models.RoleAdmin},
		{Name: "Employee Manager", Email: "manager@onboarding.local", Role: models.RoleEmployeeManager},
		{Name: "Supervisor", Email: "supervisor@onboarding.local", Role: models.RoleSupervisor},
	}

	for _, account := range accounts {
		existing, err := userRepo.FindUserByEmail(ctx, account.Email)
		if err == nil && existing != nil {
			log.Printf("Panel user %s already exists, skipping.", account.Email)
			continue
		}

		account.Password = string(hashedPassword)
		if _, err := userRepo.CreateUser(ctx, &account); err != nil {
			log.Printf("Failed to seed panel user %s: %v", account.Email, err)
			continue
		}
		fmt.Printf("Panel user %s (%s) added.\n", account.Name, account.Role)
	}

	log.Println("Panel user seeding finished.")
}
