package database

import (
	"gorm.io/gorm"

	"devfolio_backend/internal/models"
)

// Migrate applies the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
	)
}
