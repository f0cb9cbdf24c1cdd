package mappers

import (
	"agroplan/internal/domain/farm"
	"agroplan/internal/infrastructure/persistence/models"
)

func ProducerToEntity(m *models.ProducerModel) *farm.Producer {
	return farm.ReconstructProducer(m.ID, m.Name, m.Document, m.Active, m.CreatedAt)
}

func ProducerToModel(p *farm.Producer) *models.ProducerModel {
	return &models.ProducerModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Document:  p.Document(),
		Active:    p.IsActive(),
		CreatedAt: p.CreatedAt(),
	}
}

func FarmToEntity(m *models.FarmModel) *farm.Farm {
	return farm.ReconstructFarm(m.ID, m.ProducerID, m.Name, m.City, m.State, m.CultivableArea, m.CreatedAt)
}

func FarmToModel(f *farm.Farm) *models.FarmModel {
	return &models.FarmModel{
		ID:             f.ID(),
		ProducerID:     f.ProducerID(),
		Name:           f.Name(),
		City:           f.City(),
		State:          f.State(),
		CultivableArea: f.CultivableArea(),
		CreatedAt:      f.CreatedAt(),
	}
}

func PlotToEntity(m *models.PlotModel) *farm.Plot {
	return farm.ReconstructPlot(m.ID, m.FarmID, m.Name, m.AreaHectares, m.Active, m.CreatedAt)
}

func PlotToModel(p *farm.Plot) *models.PlotModel {
	return &models.PlotModel{
		ID:           p.ID(),
		FarmID:       p.FarmID(),
		Name:         p.Name(),
		AreaHectares: p.AreaHectares(),
		Active:       p.IsActive(),
		CreatedAt:    p.CreatedAt(),
	}
}

func SeasonToEntity(m *models.SeasonModel) *farm.Season {
	return farm.ReconstructSeason(m.ID, m.Name, m.StartDate, m.EndDate, m.Current)
}

func SeasonToModel(s *farm.Season) *models.SeasonModel {
	return &models.SeasonModel{
		ID:        s.ID(),
		Name:      s.Name(),
		StartDate: s.StartDate(),
		EndDate:   s.EndDate(),
		Current:   s.IsCurrent(),
	}
}

func EpochToEntity(m *models.EpochModel) *farm.Epoch {
	return farm.ReconstructEpoch(m.ID, m.Name)
}
