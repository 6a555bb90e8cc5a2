package database

import (
	"fmt"

	"gorm.io/gorm"

	"careconnect_backend/internals/features/people/model"
)

// Migrate creates or updates the persons/resources schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.PersonModel{}, &model.ResourceModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
