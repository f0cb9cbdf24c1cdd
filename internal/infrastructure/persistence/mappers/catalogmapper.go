package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/infrastructure/persistence/models"
)

func PesticideToEntity(m *models.CatalogPesticideModel) *catalog.Pesticide {
	return &catalog.Pesticide{
		ID:               m.ID,
		Code:             m.Code,
		Item:             m.Item,
		Group:            m.Group,
		Brand:            m.Brand,
		ActiveIngredient: m.ActiveIngredient,
		Balance:          m.Balance,
		UpdatedAt:        m.UpdatedAt,
	}
}

func PesticideToModel(p *catalog.Pesticide) *models.CatalogPesticideModel {
	return &models.CatalogPesticideModel{
		ID:               p.ID,
		Code:             p.Code,
		Item:             p.Item,
		Group:            p.Group,
		Brand:            p.Brand,
		ActiveIngredient: p.ActiveIngredient,
		Balance:          p.Balance,
	}
}

func FertilizerToEntity(m *models.CatalogFertilizerModel) *catalog.Fertilizer {
	return &catalog.Fertilizer{
		ID:               m.ID,
		Code:             m.Code,
		Item:             m.Item,
		Brand:            m.Brand,
		ActiveIngredient: m.ActiveIngredient,
		Balance:          m.Balance,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FertilizerToModel(f *catalog.Fertilizer) *models.CatalogFertilizerModel {
	return &models.CatalogFertilizerModel{
		ID:               f.ID,
		Code:             f.Code,
		Item:             f.Item,
		Brand:            f.Brand,
		ActiveIngredient: f.ActiveIngredient,
		Balance:          f.Balance,
	}
}

func CultivarToEntity(m *models.CatalogCultivarModel) *catalog.Cultivar {
	return &catalog.Cultivar{ID: m.ID, Name: m.Name, Crop: m.Crop, ScientificName: m.ScientificName}
}

func SeedTreatmentToEntity(m *models.SeedTreatmentModel) (*catalog.SeedTreatment, error) {
	t := &catalog.SeedTreatment{ID: m.ID, Name: m.Name, Crop: m.Crop, Active: m.Active}
	if len(m.Cultivars) > 0 {
		if err := json.Unmarshal(m.Cultivars, &t.Cultivars); err != nil {
			return nil, fmt.Errorf("failed to unmarshal treatment cultivars: %w", err)
		}
	}
	return t, nil
}

func SeedTreatmentToModel(t *catalog.SeedTreatment) (*models.SeedTreatmentModel, error) {
	m := &models.SeedTreatmentModel{ID: t.ID, Name: t.Name, Crop: t.Crop, Active: t.Active}
	if len(t.Cultivars) > 0 {
		data, err := json.Marshal(t.Cultivars)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal treatment cultivars: %w", err)
		}
		m.Cultivars = datatypes.JSON(data)
	}
	return m, nil
}

func CalendarToEntity(m *models.CalendarApplicationModel) catalog.CalendarApplication {
	return catalog.CalendarApplication{
		ID:                     m.ID,
		ApplicationCode:        m.ApplicationCode,
		ApplicationDescription: m.ApplicationDescription,
		ClassCode:              m.ClassCode,
		ClassDescription:       m.ClassDescription,
	}
}

func CalendarToModel(e catalog.CalendarApplication) *models.CalendarApplicationModel {
	return &models.CalendarApplicationModel{
		ApplicationCode:        e.ApplicationCode,
		ApplicationDescription: e.ApplicationDescription,
		ClassCode:              e.ClassCode,
		ClassDescription:       e.ClassDescription,
	}
}

func JustificationToEntity(m *models.JustificationModel) *catalog.FertilizationJustification {
	return &catalog.FertilizationJustification{ID: m.ID, Description: m.Description, Active: m.Active}
}

func ImportRecordToModel(r *catalog.ImportRecord) *models.ImportHistoryModel {
	return &models.ImportHistoryModel{
		Kind:       string(r.Kind),
		Source:     r.Source,
		Received:   r.Received,
		Inserted:   r.Inserted,
		Updated:    r.Updated,
		Skipped:    r.Skipped,
		ImportedBy: r.ImportedBy,
	}
}
