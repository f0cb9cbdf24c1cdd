package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/programming"
)

func uintPtr(v uint) *uint { return &v }

func validRecordInput() dto.RecordInput {
	return dto.RecordInput{
		ProducerID: 10,
		FarmID:     1,
		SeasonID:   7,
		Type:       "PROGRAMACAO",
		PlotIDs:    []uint{101, 102},
		Cultivars: []dto.CultivarLineInput{
			{Cultivar: "BRASMAX OLIMPO", Crop: "SOJA", CoveragePct: 60, SeedPopulation: 300000, SeedsPerBag: 5000000, TreatmentKind: "NÃO"},
			{Cultivar: "NS 7709", Crop: "SOJA", CoveragePct: 40, TreatmentKind: "INDUSTRIAL", TreatmentIDs: []uint{4}},
		},
		Fertilizations: []dto.FertilizationLineInput{
			{Formulation: "MAP 11-52-00", Dose: 150, CoveragePct: 100},
		},
	}
}

func validApplicationInput() dto.ApplicationInput {
	return dto.ApplicationInput{
		ProducerID: 10,
		FarmID:     1,
		SeasonID:   7,
		Crop:       "SOJA",
		Lines: []dto.PesticideLineInput{
			{Class: "HERBICIDA", Application: "DESSECAÇÃO", Product: "ROUNDUP WG", Dose: 2, CoveragePct: 100},
			{Class: "FUNGICIDA", Application: "FERRUGEM", Product: "PRIORI XTRA", Dose: 0.3, CoveragePct: 50},
		},
	}
}

// storedRecord builds a persisted record as the repository would return it.
func storedRecord(t *testing.T, id uint, in dto.RecordInput, area float64) *programming.Record {
	t.Helper()
	params, err := in.ToParams(99)
	require.NoError(t, err)
	params.AreaHectares = area
	params.AreaName = "Fazenda Boa Vista"
	r, err := programming.ReconstructRecord(id, "prg_stored"+string(rune('a'+id%26)), params, len(params.PlotIDs) == 0, 1, time.Now(), time.Now())
	require.NoError(t, err)
	return r
}

func storedApplication(t *testing.T, id uint, in dto.ApplicationInput, recordID *uint) *programming.PesticideApplication {
	t.Helper()
	params, err := in.ToParams(99, recordID)
	require.NoError(t, err)
	params.AreaHectares = 80
	a, err := programming.ReconstructPesticideApplication(id, "apl_stored", params, 1, time.Now(), time.Now())
	require.NoError(t, err)
	return a
}

type (
	recordInput        = dto.RecordInput
	fertilizationInput = dto.FertilizationLineInput
)
type applicationInput = dto.ApplicationInput
