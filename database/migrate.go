package database

import (
	"supplier-api/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the supplier and product tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Supplier{},
		&models.Product{},
	)
}
