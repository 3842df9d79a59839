package database

import (
	"fmt"

	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/utils"
	"gorm.io/gorm"
)

// AutoMigrate membuat / memperbarui tabel untuk semua model
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartItem{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if utils.InfoLogger != nil {
		utils.InfoLogger.Println("AutoMigrate completed.")
	}
	return nil
}
