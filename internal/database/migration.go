package database

import (
	"fmt"

	"transaction-ledger/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates the transactions table if it does not exist yet.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
