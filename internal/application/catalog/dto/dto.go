package dto

import (
	"strings"
	"time"

	"agroplan/internal/domain/catalog"
)

type PesticideDTO struct {
	Code             string    `json:"cod_item"`
	Item             string    `json:"item"`
	Group            string    `json:"grupo"`
	Brand            string    `json:"marca"`
	ActiveIngredient string    `json:"principio_ativo"`
	Balance          float64   `json:"saldo"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type FertilizerDTO struct {
	Code             string  `json:"cod_item"`
	Item             string  `json:"item"`
	Brand            string  `json:"marca"`
	ActiveIngredient string  `json:"principio_ativo"`
	Balance          float64 `json:"saldo"`
}

type CultivarDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"cultivar"`
	Crop           string `json:"cultura"`
	ScientificName string `json:"nome_cientifico,omitempty"`
}

type SeedTreatmentDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
	Crop string `json:"cultura"`
}

type JustificationDTO struct {
	ID          uint   `json:"id"`
	Description string `json:"descricao"`
}

// PesticideInput is the body of POST /defensivos and PUT /defensivos/:cod_item.
type PesticideInput struct {
	Code             string  `json:"cod_item" binding:"omitempty,max=64"`
	Item             string  `json:"item" binding:"required,max=255"`
	Group            string  `json:"grupo" binding:"max=255"`
	Brand            string  `json:"marca" binding:"max=255"`
	ActiveIngredient string  `json:"principio_ativo" binding:"max=255"`
	Balance          float64 `json:"saldo"`
}

// ToEntity maps the input. Names are stored upper-case and the item loses
// its packaging suffix, as on import.
func (in PesticideInput) ToEntity(code string) *catalog.Pesticide {
	return &catalog.Pesticide{
		Code:             code,
		Item:             catalog.NormalizeProductName(in.Item),
		Group:            upper(in.Group),
		Brand:            upper(in.Brand),
		ActiveIngredient: upper(in.ActiveIngredient),
		Balance:          in.Balance,
	}
}

type ImportResultDTO struct {
	Kind     catalog.ImportKind `json:"tipo"`
	Received int                `json:"recebidos"`
	Inserted int                `json:"inseridos"`
	Updated  int                `json:"atualizados"`
	Skipped  int                `json:"ignorados"`
}

func ToPesticideDTO(p *catalog.Pesticide) *PesticideDTO {
	return &PesticideDTO{
		Code:             p.Code,
		Item:             p.Item,
		Group:            p.Group,
		Brand:            p.Brand,
		ActiveIngredient: p.ActiveIngredient,
		Balance:          p.Balance,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToPesticideDTOs(items []*catalog.Pesticide) []*PesticideDTO {
	out := make([]*PesticideDTO, len(items))
	for i, p := range items {
		out[i] = ToPesticideDTO(p)
	}
	return out
}

func ToFertilizerDTOs(items []*catalog.Fertilizer) []*FertilizerDTO {
	out := make([]*FertilizerDTO, len(items))
	for i, f := range items {
		out[i] = &FertilizerDTO{
			Code:             f.Code,
			Item:             f.Item,
			Brand:            f.Brand,
			ActiveIngredient: f.ActiveIngredient,
			Balance:          f.Balance,
		}
	}
	return out
}

func ToCultivarDTOs(items []*catalog.Cultivar) []*CultivarDTO {
	out := make([]*CultivarDTO, len(items))
	for i, c := range items {
		out[i] = &CultivarDTO{ID: c.ID, Name: c.Name, Crop: c.Crop, ScientificName: c.ScientificName}
	}
	return out
}

func ToSeedTreatmentDTOs(items []*catalog.SeedTreatment) []*SeedTreatmentDTO {
	out := make([]*SeedTreatmentDTO, len(items))
	for i, t := range items {
		out[i] = &SeedTreatmentDTO{ID: t.ID, Name: t.Name, Crop: t.Crop}
	}
	return out
}

func ToJustificationDTOs(items []*catalog.FertilizationJustification) []*JustificationDTO {
	out := make([]*JustificationDTO, len(items))
	for i, j := range items {
		out[i] = &JustificationDTO{ID: j.ID, Description: j.Description}
	}
	return out
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
