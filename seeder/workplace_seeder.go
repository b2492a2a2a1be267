package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/repository"
)

// SeedWorkplaces inserts the default workplaces employees can be assigned to.
func SeedWorkplaces(workplaceRepo repository.WorkplaceRepository) {
	log.Println("Seeding workplaces...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	workplacesData := []models.Workplace{
		{Name: "Head Office", Address: "12 MG Road, Bengaluru"},
		{Name: "North Branch", Address: "45 Ring Road, New Delhi"},
		{Name: "West Branch", Address: "8 Marine Drive, Mumbai"},
	}

	for _, workplace := range workplacesData {
		existing, err := workplaceRepo.FindWorkplaceByName(ctx, workplace.Name)
		if err == nil && existing != nil {
			log.Printf("Workplace %q already exists, skipping.", workplace.Name)
			continue
		}

		wp := workplace
		if _, err := workplaceRepo.CreateWorkplace(ctx, &wp); err != nil {
			log.Printf("Failed to seed workplace %q: %v", workplace.Name, err)
			continue
		}
		fmt.Printf("Workplace %q added.\n", workplace.Name)
	}

	log.Println("Workplace seeding finished.")
}
