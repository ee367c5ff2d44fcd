package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &orderModel{}, &fileModel{})
}
