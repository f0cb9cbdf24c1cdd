package dto

import (
	"time"

	"agroplan/internal/domain/farm"
)

type ProducerDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"nome"`
	Document string `json:"documento,omitempty"`
}

type FarmDTO struct {
	ID             uint    `json:"id"`
	ProducerID     uint    `json:"produtor_id"`
	Name           string  `json:"nome"`
	City           string  `json:"cidade,omitempty"`
	State          string  `json:"uf,omitempty"`
	CultivableArea float64 `json:"area_cultivavel"`
}

// PlotDTO carries the availability flag the plot picker shows for the
// requested season and epoch.
type PlotDTO struct {
	ID           uint    `json:"id"`
	FarmID       uint    `json:"fazenda_id"`
	Name         string  `json:"nome"`
	AreaHectares float64 `json:"area"`
	Active       bool    `json:"ativo"`
	Conflict     bool    `json:"conflito_programacao"`
	ClaimedBy    string  `json:"programacao_id,omitempty"`
}

type CreatePlotInput struct {
	FarmID       uint    `json:"fazenda_id" binding:"required"`
	Name         string  `json:"nome" binding:"required,max=255"`
	AreaHectares float64 `json:"area" binding:"required,gt=0"`
}

type SeasonDTO struct {
	ID        uint       `json:"id"`
	Name      string     `json:"nome"`
	StartDate *time.Time `json:"data_inicio,omitempty"`
	EndDate   *time.Time `json:"data_fim,omitempty"`
	Current   bool       `json:"atual"`
}

type EpochDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

func ToProducerDTOs(items []*farm.Producer) []*ProducerDTO {
	out := make([]*ProducerDTO, len(items))
	for i, p := range items {
		out[i] = &ProducerDTO{ID: p.ID(), Name: p.Name(), Document: p.Document()}
	}
	return out
}

func ToFarmDTOs(items []*farm.Farm) []*FarmDTO {
	out := make([]*FarmDTO, len(items))
	for i, f := range items {
		out[i] = &FarmDTO{
			ID:             f.ID(),
			ProducerID:     f.ProducerID(),
			Name:           f.Name(),
			City:           f.City(),
			State:          f.State(),
			CultivableArea: f.CultivableArea(),
		}
	}
	return out
}

func ToPlotDTO(p *farm.Plot) *PlotDTO {
	return &PlotDTO{
		ID:           p.ID(),
		FarmID:       p.FarmID(),
		Name:         p.Name(),
		AreaHectares: p.AreaHectares(),
		Active:       p.IsActive(),
	}
}

func ToSeasonDTOs(items []*farm.Season) []*SeasonDTO {
	out := make([]*SeasonDTO, len(items))
	for i, s := range items {
		out[i] = &SeasonDTO{ID: s.ID(), Name: s.Name(), StartDate: s.StartDate(), EndDate: s.EndDate(), Current: s.IsCurrent()}
	}
	return out
}

func ToEpochDTOs(items []*farm.Epoch) []*EpochDTO {
	out := make([]*EpochDTO, len(items))
	for i, e := range items {
		out[i] = &EpochDTO{ID: e.ID(), Name: e.Name()}
	}
	return out
}
