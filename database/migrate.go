package database

import (
	"kitchenswipe/internal/models"
	"log"

	"gorm.io/gorm"
)

func MigrateDatabase(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.SwipeHistory{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
