package mappers

import (
	"fmt"

	"agroplan/internal/domain/programming"
	"agroplan/internal/infrastructure/persistence/models"
)

// ApplicationRows is an application header with its product lines.
type ApplicationRows struct {
	Application *models.PesticideApplicationModel
	Lines       []*models.PesticideLineModel
}

func ApplicationToRows(a *programming.PesticideApplication) *ApplicationRows {
	rows := &ApplicationRows{
		Application: &models.PesticideApplicationModel{
			ID:           a.ID(),
			SID:          a.SID(),
			OwnerID:      a.OwnerID(),
			ProducerID:   a.ProducerID(),
			FarmID:       a.FarmID(),
			AreaName:     a.AreaName(),
			AreaHectares: a.AreaHectares(),
			SeasonID:     a.SeasonID(),
			EpochID:      a.EpochID(),
			Type:         string(a.Type()),
			Crop:         a.Crop(),
			RecordID:     a.RecordID(),
			Version:      a.Version(),
			CreatedAt:    a.CreatedAt(),
			UpdatedAt:    a.UpdatedAt(),
		},
	}

	for i, l := range a.Lines() {
		rows.Lines = append(rows.Lines, &models.PesticideLineModel{
			ApplicationID: a.ID(),
			Position:      i,
			Class:         l.Class,
			Application:   l.Application,
			Product:       l.Product,
			ProductCode:   l.ProductCode,
			Dose:          l.Dose,
			Unit:          l.Unit,
			CoveragePct:   l.CoveragePct,
			OwnProduct:    l.OwnProduct,
			Billable:      l.Billable,
			SavedPercent:  l.SavedPercent,
		})
	}
	return rows
}

func ApplicationFromRows(rows *ApplicationRows) (*programming.PesticideApplication, error) {
	h := rows.Application

	recordType, err := programming.ParseRecordType(h.Type)
	if err != nil {
		return nil, fmt.Errorf("application %d: %w", h.ID, err)
	}

	p := programming.ApplicationParams{
		OwnerID:      h.OwnerID,
		ProducerID:   h.ProducerID,
		FarmID:       h.FarmID,
		AreaName:     h.AreaName,
		AreaHectares: h.AreaHectares,
		SeasonID:     h.SeasonID,
		EpochID:      h.EpochID,
		Type:         recordType,
		Crop:         h.Crop,
		RecordID:     h.RecordID,
	}
	for _, m := range rows.Lines {
		p.Lines = append(p.Lines, programming.PesticideLine{
			Class:        m.Class,
			Application:  m.Application,
			Product:      m.Product,
			ProductCode:  m.ProductCode,
			Dose:         m.Dose,
			Unit:         m.Unit,
			CoveragePct:  m.CoveragePct,
			OwnProduct:   m.OwnProduct,
			Billable:     m.Billable,
			SavedPercent: m.SavedPercent,
		})
	}

	return programming.ReconstructPesticideApplication(h.ID, h.SID, p, h.Version, h.CreatedAt, h.UpdatedAt)
}
