package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs schema auto-migration for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Profile{},
	)
}
