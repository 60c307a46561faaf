package database

import (
	"log"

	"assurly/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.StaffProfile{},
		&models.RegModel{},
		&models.Prediction{},
		&models.Availability{},
		&models.Appointment{},
		&models.ContactMessage{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
