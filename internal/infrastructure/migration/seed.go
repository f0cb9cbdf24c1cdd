package migration

import (
	"fmt"

	"gorm.io/gorm"

	"agroplan/internal/infrastructure/persistence/models"
)

// DefaultJustifications are the reasons offered when a record opts out of
// fertilization. The SQL scripts insert the same rows.
var DefaultJustifications = []string{
	"Solo com fertilidade construída",
	"Adubação realizada pelo produtor",
	"Área em pousio ou sem plantio",
	"Fertilizante entregue em safra anterior",
}

// SeedJustifications inserts DefaultJustifications into an empty table.
func SeedJustifications(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.JustificationModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count justifications: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]*models.JustificationModel, len(DefaultJustifications))
	for i, d := range DefaultJustifications {
		rows[i] = &models.JustificationModel{Description: d, Active: true}
	}
	if err := db.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to seed justifications: %w", err)
	}
	return nil
}
