package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"agroplan/internal/domain/programming"
	"agroplan/internal/infrastructure/persistence/models"
)

// pesticideLineJSON is the stored shape of an on-farm treatment product.
type pesticideLineJSON struct {
	Class        string  `json:"classe"`
	Application  string  `json:"aplicacao"`
	Product      string  `json:"produto"`
	ProductCode  string  `json:"cod_item,omitempty"`
	Dose         float64 `json:"dose"`
	Unit         string  `json:"unidade,omitempty"`
	CoveragePct  float64 `json:"cobertura"`
	OwnProduct   bool    `json:"produto_proprio,omitempty"`
	Billable     bool    `json:"faturavel,omitempty"`
	SavedPercent float64 `json:"percentual_salvo,omitempty"`
}

// RecordRows is a record header with its line and claim rows.
type RecordRows struct {
	Record         *models.ProgrammingRecordModel
	Cultivars      []*models.CultivarLineModel
	Fertilizations []*models.FertilizationLineModel
	Claims         []*models.PlotClaimModel
}

// ClaimEpochKey maps the optional epoch onto the non-null unique index column.
func ClaimEpochKey(epochID *uint) uint {
	if epochID == nil {
		return 0
	}
	return *epochID
}

func RecordToRows(r *programming.Record) (*RecordRows, error) {
	rows := &RecordRows{
		Record: &models.ProgrammingRecordModel{
			ID:           r.ID(),
			SID:          r.SID(),
			OwnerID:      r.OwnerID(),
			ProducerID:   r.ProducerID(),
			FarmID:       r.FarmID(),
			AreaName:     r.AreaName(),
			AreaHectares: r.AreaHectares(),
			SeasonID:     r.SeasonID(),
			EpochID:      r.EpochID(),
			Type:         string(r.Type()),
			NeedsPlots:   r.NeedsPlots(),
			Version:      r.Version(),
			CreatedAt:    r.CreatedAt(),
			UpdatedAt:    r.UpdatedAt(),
		},
	}

	for i, l := range r.Cultivars() {
		m, err := cultivarLineToModel(r.ID(), i, l)
		if err != nil {
			return nil, fmt.Errorf("cultivar line %d: %w", i+1, err)
		}
		rows.Cultivars = append(rows.Cultivars, m)
	}

	for i, l := range r.Fertilizations() {
		rows.Fertilizations = append(rows.Fertilizations, &models.FertilizationLineModel{
			RecordID:        r.ID(),
			Position:        i,
			Formulation:     l.Formulation,
			Dose:            l.Dose,
			CoveragePct:     l.CoveragePct,
			ApplicationDate: l.ApplicationDate,
			Package:         l.Package,
			OwnFertilizer:   l.OwnFertilizer,
			Billable:        l.Billable,
			SavedPercent:    l.SavedPercent,
			JustificationID: l.Justification,
		})
	}

	for _, c := range r.Claims() {
		rows.Claims = append(rows.Claims, &models.PlotClaimModel{
			PlotID:   c.PlotID,
			SeasonID: c.SeasonID,
			EpochKey: ClaimEpochKey(c.EpochID),
			EpochID:  c.EpochID,
			RecordID: r.ID(),
		})
	}
	return rows, nil
}

func RecordFromRows(rows *RecordRows) (*programming.Record, error) {
	h := rows.Record

	recordType, err := programming.ParseRecordType(h.Type)
	if err != nil {
		return nil, fmt.Errorf("record %d: %w", h.ID, err)
	}

	p := programming.RecordParams{
		OwnerID:      h.OwnerID,
		ProducerID:   h.ProducerID,
		FarmID:       h.FarmID,
		AreaName:     h.AreaName,
		AreaHectares: h.AreaHectares,
		SeasonID:     h.SeasonID,
		EpochID:      h.EpochID,
		Type:         recordType,
	}
	for _, c := range rows.Claims {
		p.PlotIDs = append(p.PlotIDs, c.PlotID)
	}
	for _, m := range rows.Cultivars {
		l, err := cultivarLineFromModel(m)
		if err != nil {
			return nil, fmt.Errorf("record %d cultivar line %d: %w", h.ID, m.ID, err)
		}
		p.Cultivars = append(p.Cultivars, l)
	}
	for _, m := range rows.Fertilizations {
		p.Fertilizations = append(p.Fertilizations, programming.FertilizationLine{
			Formulation:     m.Formulation,
			Dose:            m.Dose,
			CoveragePct:     m.CoveragePct,
			ApplicationDate: m.ApplicationDate,
			Package:         m.Package,
			OwnFertilizer:   m.OwnFertilizer,
			Billable:        m.Billable,
			SavedPercent:    m.SavedPercent,
			Justification:   m.JustificationID,
		})
	}

	return programming.ReconstructRecord(h.ID, h.SID, p, h.NeedsPlots, h.Version, h.CreatedAt, h.UpdatedAt)
}

func cultivarLineToModel(recordID uint, position int, l programming.CultivarLine) (*models.CultivarLineModel, error) {
	m := &models.CultivarLineModel{
		RecordID:       recordID,
		Position:       position,
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
	}

	switch t := l.Treatment.(type) {
	case programming.OnFarmTreatment:
		data, err := json.Marshal(pesticideLinesToJSON(t.Pesticides))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal treatment products: %w", err)
		}
		m.TreatmentKind = string(programming.TreatmentOnFarm)
		m.TreatmentLines = datatypes.JSON(data)
	case programming.IndustrialTreatment:
		data, err := json.Marshal(t.TreatmentIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal treatment ids: %w", err)
		}
		m.TreatmentKind = string(programming.TreatmentIndustrial)
		m.TreatmentIDs = datatypes.JSON(data)
	}
	return m, nil
}

func cultivarLineFromModel(m *models.CultivarLineModel) (programming.CultivarLine, error) {
	l := programming.CultivarLine{
		Cultivar:       m.Cultivar,
		Crop:           m.Crop,
		CoveragePct:    m.CoveragePct,
		PackageType:    m.PackageType,
		PlantingDate:   m.PlantingDate,
		SeedPopulation: m.SeedPopulation,
		OwnSeed:        m.OwnSeed,
		RNCReference:   m.RNCReference,
		SeedsPerBag:    m.SeedsPerBag,
		Treatment:      programming.NoTreatment{},
	}

	switch programming.TreatmentKind(m.TreatmentKind) {
	case programming.TreatmentOnFarm:
		var stored []pesticideLineJSON
		if len(m.TreatmentLines) > 0 {
			if err := json.Unmarshal(m.TreatmentLines, &stored); err != nil {
				return l, fmt.Errorf("failed to unmarshal treatment products: %w", err)
			}
		}
		l.Treatment = programming.OnFarmTreatment{Pesticides: pesticideLinesFromJSON(stored)}
	case programming.TreatmentIndustrial:
		var ids []uint
		if len(m.TreatmentIDs) > 0 {
			if err := json.Unmarshal(m.TreatmentIDs, &ids); err != nil {
				return l, fmt.Errorf("failed to unmarshal treatment ids: %w", err)
			}
		}
		l.Treatment = programming.IndustrialTreatment{TreatmentIDs: ids}
	}
	return l, nil
}

func pesticideLinesToJSON(lines []programming.PesticideLine) []pesticideLineJSON {
	out := make([]pesticideLineJSON, len(lines))
	for i, l := range lines {
		out[i] = pesticideLineJSON(l)
	}
	return out
}

func pesticideLinesFromJSON(lines []pesticideLineJSON) []programming.PesticideLine {
	out := make([]programming.PesticideLine, len(lines))
	for i, l := range lines {
		out[i] = programming.PesticideLine(l)
	}
	return out
}
