// Package dto holds the request and response shapes of programming records
// and pesticide applications. JSON names follow the planning forms.
package dto

import (
	"fmt"
	"time"

	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
)

type PesticideLineInput struct {
	Class        string  `json:"classe" binding:"omitempty,max=120"`
	Application  string  `json:"aplicacao" binding:"omitempty,max=200"`
	Product      string  `json:"produto" binding:"required,max=255"`
	ProductCode  string  `json:"cod_item" binding:"omitempty,max=64"`
	Dose         float64 `json:"dose"`
	Unit         string  `json:"unidade" binding:"omitempty,max=16"`
	CoveragePct  float64 `json:"percentual_cobertura"`
	OwnProduct   bool    `json:"produto_proprio"`
	Billable     bool    `json:"emitir_nota"`
	SavedPercent float64 `json:"porcentagem_salva"`
}

type CultivarLineInput struct {
	Cultivar       string               `json:"cultivar" binding:"required,max=255"`
	Crop           string               `json:"cultura" binding:"omitempty,max=64"`
	CoveragePct    float64              `json:"percentual_cobertura"`
	PackageType    string               `json:"tipo_embalagem" binding:"omitempty,max=32"`
	PlantingDate   *time.Time           `json:"data_plantio"`
	SeedPopulation float64              `json:"populacao_recomendada"`
	OwnSeed        bool                 `json:"semente_propria"`
	RNCReference   string               `json:"referencia_rnc" binding:"omitempty,max=64"`
	SeedsPerBag    float64              `json:"sementes_por_saca"`
	TreatmentKind  string               `json:"tratamento_tipo"`
	TreatmentIDs   []uint               `json:"tratamento_ids"`
	OnFarmProducts []PesticideLineInput `json:"defensivos_fazenda" binding:"dive"`
}

type FertilizationLineInput struct {
	Formulation     string     `json:"formulacao" binding:"omitempty,max=255"`
	Dose            float64    `json:"dose"`
	CoveragePct     float64    `json:"percentual_cobertura"`
	ApplicationDate *time.Time `json:"data_aplicacao"`
	Package         string     `json:"embalagem" binding:"omitempty,max=32"`
	OwnFertilizer   bool       `json:"fertilizante_proprio"`
	Billable        bool       `json:"emitir_nota"`
	SavedPercent    float64    `json:"porcentagem_salva"`
	Justification   *uint      `json:"justificativa_nao_adubacao_id"`
}

// RecordInput is the full content of a programming record. PUT replaces
// everything, so create and update share it.
type RecordInput struct {
	ProducerID     uint                     `json:"produtor_id" binding:"required"`
	FarmID         uint                     `json:"fazenda_id" binding:"required"`
	AreaName       string                   `json:"area" binding:"omitempty,max=255"`
	AreaHectares   float64                  `json:"area_hectares" binding:"gte=0"`
	SeasonID       uint                     `json:"safra_id" binding:"required"`
	EpochID        *uint                    `json:"epoca_id"`
	Type           string                   `json:"tipo"`
	PlotIDs        []uint                   `json:"talhao_ids"`
	Cultivars      []CultivarLineInput      `json:"cultivares" binding:"required,min=1,dive"`
	Fertilizations []FertilizationLineInput `json:"adubacao" binding:"required,min=1,dive"`
	Version        *int                     `json:"version"`
}

type ApplicationInput struct {
	ProducerID   uint                 `json:"produtor_id" binding:"required"`
	FarmID       uint                 `json:"fazenda_id" binding:"required"`
	AreaName     string               `json:"area" binding:"omitempty,max=255"`
	AreaHectares float64              `json:"area_hectares" binding:"gte=0"`
	SeasonID     uint                 `json:"safra_id" binding:"required"`
	EpochID      *uint                `json:"epoca_id"`
	Type         string               `json:"tipo"`
	Crop         string               `json:"cultura" binding:"omitempty,max=64"`
	RecordSID    string               `json:"programacao_id"`
	Lines        []PesticideLineInput `json:"defensivos" binding:"required,min=1,dive"`
	Version      *int                 `json:"version"`
}

func (in PesticideLineInput) ToLine() programming.PesticideLine {
	return programming.PesticideLine{
		Class:        in.Class,
		Application:  in.Application,
		Product:      in.Product,
		ProductCode:  in.ProductCode,
		Dose:         in.Dose,
		Unit:         in.Unit,
		CoveragePct:  in.CoveragePct,
		OwnProduct:   in.OwnProduct,
		Billable:     in.Billable,
		SavedPercent: in.SavedPercent,
	}
}

func toPesticideLines(in []PesticideLineInput) []programming.PesticideLine {
	out := make([]programming.PesticideLine, 0, len(in))
	for _, l := range in {
		out = append(out, l.ToLine())
	}
	return out
}

func (in CultivarLineInput) ToLine() (programming.CultivarLine, error) {
	kind, err := programming.ParseTreatmentKind(in.TreatmentKind)
	if err != nil {
		return programming.CultivarLine{}, err
	}

	var treatment programming.Treatment
	switch kind {
	case programming.TreatmentOnFarm:
		treatment = programming.OnFarmTreatment{Pesticides: toPesticideLines(in.OnFarmProducts)}
	case programming.TreatmentIndustrial:
		treatment = programming.IndustrialTreatment{TreatmentIDs: append([]uint(nil), in.TreatmentIDs...)}
	default:
		treatment = programming.NoTreatment{}
	}

	return programming.CultivarLine{
		Cultivar:       in.Cultivar,
		Crop:           in.Crop,
		CoveragePct:    in.CoveragePct,
		PackageType:    in.PackageType,
		PlantingDate:   in.PlantingDate,
		SeedPopulation: in.SeedPopulation,
		OwnSeed:        in.OwnSeed,
		RNCReference:   in.RNCReference,
		SeedsPerBag:    in.SeedsPerBag,
		Treatment:      treatment,
	}, nil
}

func (in FertilizationLineInput) ToLine() programming.FertilizationLine {
	return programming.FertilizationLine{
		Formulation:     in.Formulation,
		Dose:            in.Dose,
		CoveragePct:     in.CoveragePct,
		ApplicationDate: in.ApplicationDate,
		Package:         in.Package,
		OwnFertilizer:   in.OwnFertilizer,
		Billable:        in.Billable,
		SavedPercent:    in.SavedPercent,
		Justification:   in.Justification,
	}
}

// ToParams converts the input. AreaHectares is left as sent; the use case
// recomputes it from the plots.
func (in RecordInput) ToParams(ownerID uint) (programming.RecordParams, error) {
	recordType, err := programming.ParseRecordType(in.Type)
	if err != nil {
		return programming.RecordParams{}, err
	}

	cultivars := make([]programming.CultivarLine, 0, len(in.Cultivars))
	for i, c := range in.Cultivars {
		line, err := c.ToLine()
		if err != nil {
			return programming.RecordParams{}, fmt.Errorf("cultivar line %d: %w", i+1, err)
		}
		cultivars = append(cultivars, line)
	}

	fertilizations := make([]programming.FertilizationLine, 0, len(in.Fertilizations))
	for _, f := range in.Fertilizations {
		fertilizations = append(fertilizations, f.ToLine())
	}

	return programming.RecordParams{
		OwnerID:        ownerID,
		ProducerID:     in.ProducerID,
		FarmID:         in.FarmID,
		AreaName:       in.AreaName,
		AreaHectares:   in.AreaHectares,
		SeasonID:       in.SeasonID,
		EpochID:        in.EpochID,
		Type:           recordType,
		PlotIDs:        in.PlotIDs,
		Cultivars:      cultivars,
		Fertilizations: fertilizations,
	}, nil
}

// Target returns the farm area the input points at.
func (in RecordInput) Target() planning.Target {
	return planning.Target{
		ProducerID: in.ProducerID,
		FarmID:     in.FarmID,
		AreaName:   in.AreaName,
		PlotIDs:    in.PlotIDs,
	}
}

func (in ApplicationInput) ToParams(ownerID uint, recordID *uint) (programming.ApplicationParams, error) {
	recordType, err := programming.ParseRecordType(in.Type)
	if err != nil {
		return programming.ApplicationParams{}, err
	}
	return programming.ApplicationParams{
		OwnerID:      ownerID,
		ProducerID:   in.ProducerID,
		FarmID:       in.FarmID,
		AreaName:     in.AreaName,
		AreaHectares: in.AreaHectares,
		SeasonID:     in.SeasonID,
		EpochID:      in.EpochID,
		Type:         recordType,
		Crop:         in.Crop,
		RecordID:     recordID,
		Lines:        toPesticideLines(in.Lines),
	}, nil
}

type PesticideLineDTO struct {
	Class        string  `json:"classe"`
	Application  string  `json:"aplicacao"`
	Product      string  `json:"produto"`
	ProductCode  string  `json:"cod_item,omitempty"`
	Dose         float64 `json:"dose"`
	Unit         string  `json:"unidade,omitempty"`
	CoveragePct  float64 `json:"percentual_cobertura"`
	OwnProduct   bool    `json:"produto_proprio"`
	Billable     bool    `json:"emitir_nota"`
	SavedPercent float64 `json:"porcentagem_salva"`
	Total        float64 `json:"total"`
}

type CultivarLineDTO struct {
	Cultivar       string             `json:"cultivar"`
	Crop           string             `json:"cultura,omitempty"`
	CoveragePct    float64            `json:"percentual_cobertura"`
	PackageType    string             `json:"tipo_embalagem,omitempty"`
	PlantingDate   *time.Time         `json:"data_plantio,omitempty"`
	SeedPopulation float64            `json:"populacao_recomendada"`
	OwnSeed        bool               `json:"semente_propria"`
	RNCReference   string             `json:"referencia_rnc,omitempty"`
	SeedsPerBag    float64            `json:"sementes_por_saca,omitempty"`
	TreatmentKind  string             `json:"tratamento_tipo"`
	TreatmentIDs   []uint             `json:"tratamento_ids,omitempty"`
	OnFarmProducts []PesticideLineDTO `json:"defensivos_fazenda,omitempty"`
	PlantedArea    float64            `json:"area_plantada"`
	SeedBags       float64            `json:"sacas"`
}

type FertilizationLineDTO struct {
	Formulation     string     `json:"formulacao,omitempty"`
	Dose            float64    `json:"dose"`
	CoveragePct     float64    `json:"percentual_cobertura"`
	ApplicationDate *time.Time `json:"data_aplicacao,omitempty"`
	Package         string     `json:"embalagem,omitempty"`
	OwnFertilizer   bool       `json:"fertilizante_proprio"`
	Billable        bool       `json:"emitir_nota"`
	SavedPercent    float64    `json:"porcentagem_salva"`
	Justification   *uint      `json:"justificativa_nao_adubacao_id,omitempty"`
	Total           float64    `json:"total"`
}

type RecordDTO struct {
	ID             string                 `json:"id"`
	OwnerID        uint                   `json:"user_id"`
	ProducerID     uint                   `json:"produtor_id"`
	FarmID         uint                   `json:"fazenda_id"`
	AreaName       string                 `json:"area"`
	AreaHectares   float64                `json:"area_hectares"`
	SeasonID       uint                   `json:"safra_id"`
	EpochID        *uint                  `json:"epoca_id"`
	Type           string                 `json:"tipo"`
	PlotIDs        []uint                 `json:"talhao_ids"`
	NeedsPlots     bool                   `json:"precisa_talhoes"`
	Cultivars      []CultivarLineDTO      `json:"cultivares"`
	Fertilizations []FertilizationLineDTO `json:"adubacao"`
	Version        int                    `json:"version"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type ApplicationDTO struct {
	ID           string             `json:"id"`
	OwnerID      uint               `json:"user_id"`
	ProducerID   uint               `json:"produtor_id"`
	FarmID       uint               `json:"fazenda_id"`
	AreaName     string             `json:"area"`
	AreaHectares float64            `json:"area_hectares"`
	SeasonID     uint               `json:"safra_id"`
	EpochID      *uint              `json:"epoca_id"`
	Type         string             `json:"tipo"`
	Crop         string             `json:"cultura,omitempty"`
	RecordSID    string             `json:"programacao_id,omitempty"`
	Lines        []PesticideLineDTO `json:"defensivos"`
	Version      int                `json:"version"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ChildrenDTO is what a record card expands to.
type ChildrenDTO struct {
	Cultivars      []CultivarLineDTO      `json:"cultivares"`
	Fertilizations []FertilizationLineDTO `json:"adubacao"`
	Applications   []*ApplicationDTO      `json:"defensivos"`
	PlotIDs        []uint                 `json:"talhoes"`
	PlotNames      []string               `json:"talhoes_nomes"`
}

func ToPesticideLineDTO(l programming.PesticideLine, areaHectares float64) PesticideLineDTO {
	return PesticideLineDTO{
		Class:        l.Class,
		Application:  l.Application,
		Product:      l.Product,
		ProductCode:  l.ProductCode,
		Dose:         l.Dose,
		Unit:         l.Unit,
		CoveragePct:  l.CoveragePct,
		OwnProduct:   l.OwnProduct,
		Billable:     l.Billable,
		SavedPercent: l.SavedPercent,
		Total:        l.Total(areaHectares),
	}
}

func ToCultivarLineDTO(l programming.CultivarLine, areaHectares float64) CultivarLineDTO {
	d := CultivarLineDTO{
		Cultivar:       l.Cultivar,
		Crop:           l.Crop,
		CoveragePct:    l.CoveragePct,
		PackageType:    l.PackageType,
		PlantingDate:   l.PlantingDate,
		SeedPopulation: l.SeedPopulation,
		OwnSeed:        l.OwnSeed,
		RNCReference:   l.RNCReference,
		SeedsPerBag:    l.SeedsPerBag,
		TreatmentKind:  string(programming.TreatmentNone),
		PlantedArea:    l.PlantedArea(areaHectares),
		SeedBags:       l.SeedBags(areaHectares),
	}

	switch t := l.Treatment.(type) {
	case programming.OnFarmTreatment:
		d.TreatmentKind = string(t.Kind())
		d.OnFarmProducts = make([]PesticideLineDTO, 0, len(t.Pesticides))
		for _, p := range t.Pesticides {
			d.OnFarmProducts = append(d.OnFarmProducts, ToPesticideLineDTO(p, l.PlantedArea(areaHectares)))
		}
	case programming.IndustrialTreatment:
		d.TreatmentKind = string(t.Kind())
		d.TreatmentIDs = t.TreatmentIDs
	}
	return d
}

func ToFertilizationLineDTO(l programming.FertilizationLine, areaHectares float64) FertilizationLineDTO {
	return FertilizationLineDTO{
		Formulation:     l.Formulation,
		Dose:            l.Dose,
		CoveragePct:     l.CoveragePct,
		ApplicationDate: l.ApplicationDate,
		Package:         l.Package,
		OwnFertilizer:   l.OwnFertilizer,
		Billable:        l.Billable,
		SavedPercent:    l.SavedPercent,
		Justification:   l.Justification,
		Total:           l.Total(areaHectares),
	}
}

func cultivarDTOs(r *programming.Record) []CultivarLineDTO {
	lines := r.Cultivars()
	out := make([]CultivarLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, ToCultivarLineDTO(l, r.AreaHectares()))
	}
	return out
}

func fertilizationDTOs(r *programming.Record) []FertilizationLineDTO {
	lines := r.Fertilizations()
	out := make([]FertilizationLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, ToFertilizationLineDTO(l, r.AreaHectares()))
	}
	return out
}

func ToRecordDTO(r *programming.Record) *RecordDTO {
	if r == nil {
		return nil
	}
	plotIDs := r.PlotIDs()
	if plotIDs == nil {
		plotIDs = []uint{}
	}
	return &RecordDTO{
		ID:             r.SID(),
		OwnerID:        r.OwnerID(),
		ProducerID:     r.ProducerID(),
		FarmID:         r.FarmID(),
		AreaName:       r.AreaName(),
		AreaHectares:   r.AreaHectares(),
		SeasonID:       r.SeasonID(),
		EpochID:        r.EpochID(),
		Type:           string(r.Type()),
		PlotIDs:        plotIDs,
		NeedsPlots:     r.NeedsPlots(),
		Cultivars:      cultivarDTOs(r),
		Fertilizations: fertilizationDTOs(r),
		Version:        r.Version(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func ToRecordDTOs(records []*programming.Record) []*RecordDTO {
	out := make([]*RecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, ToRecordDTO(r))
	}
	return out
}

// ToApplicationDTO renders an application. recordSID is the public id of
// the linked record, empty when there is none.
func ToApplicationDTO(a *programming.PesticideApplication, recordSID string) *ApplicationDTO {
	if a == nil {
		return nil
	}
	lines := a.Lines()
	out := make([]PesticideLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, ToPesticideLineDTO(l, a.AreaHectares()))
	}
	return &ApplicationDTO{
		ID:           a.SID(),
		OwnerID:      a.OwnerID(),
		ProducerID:   a.ProducerID(),
		FarmID:       a.FarmID(),
		AreaName:     a.AreaName(),
		AreaHectares: a.AreaHectares(),
		SeasonID:     a.SeasonID(),
		EpochID:      a.EpochID(),
		Type:         string(a.Type()),
		Crop:         a.Crop(),
		RecordSID:    recordSID,
		Lines:        out,
		Version:      a.Version(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func ToChildrenDTO(r *programming.Record, applications []*ApplicationDTO, plotNames []string) *ChildrenDTO {
	plotIDs := r.PlotIDs()
	if plotIDs == nil {
		plotIDs = []uint{}
	}
	if applications == nil {
		applications = []*ApplicationDTO{}
	}
	if plotNames == nil {
		plotNames = []string{}
	}
	return &ChildrenDTO{
		Cultivars:      cultivarDTOs(r),
		Fertilizations: fertilizationDTOs(r),
		Applications:   applications,
		PlotIDs:        plotIDs,
		PlotNames:      plotNames,
	}
}
