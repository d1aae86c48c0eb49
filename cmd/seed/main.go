package main

import (
	"log"
	"os"

	"carelytix-be/internal/model"
	"carelytix-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Feature Catalog...")

	features := []model.Feature{
		{Name: "SMS Reminders"},
		{Name: "Email Reminders"},
		{Name: "Online Booking"},
		{Name: "Walk-in Queue"},
		{Name: "Inventory Tracking"},
		{Name: "Sales Reports"},
		{Name: "Staff Attendance"},
		{Name: "Membership Cards"},
	}

	for _, f := range features {
		var existing model.Feature
		if err := db.Where("name = ?", f.Name).First(&existing).Error; err == nil {
			log.Printf("Feature '%s' already exists, skipping...", f.Name)
			continue
		}

		if err := db.Create(&f).Error; err != nil {
			log.Printf("Error: Failed to seed feature '%s': %v", f.Name, err)
			continue
		}
		log.Printf("Seeded feature '%s'", f.Name)
	}

	log.Println("Seeding Modules...")

	modules := []model.Module{
		{Name: "Notifications"},
		{Name: "Booking"},
		{Name: "Inventory"},
		{Name: "Reporting"},
	}

	for _, m := range modules {
		var existing model.Module
		if err := db.Where("name = ?", m.Name).First(&existing).Error; err == nil {
			log.Printf("Module '%s' already exists, skipping...", m.Name)
			continue
		}

		if err := db.Create(&m).Error; err != nil {
			log.Printf("Error: Failed to seed module '%s': %v", m.Name, err)
			continue
		}
		log.Printf("Seeded module '%s'", m.Name)
	}

	log.Println("Seeding completed.")
}
