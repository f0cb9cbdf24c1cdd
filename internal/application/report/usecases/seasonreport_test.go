package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/internal/domain/farm"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type seasonRecords struct {
	programming.RecordRepository
	items []*programming.Record
}

func (s seasonRecords) ListBySeason(context.Context, uint, *uint) ([]*programming.Record, error) {
	return s.items, nil
}

type seasonApplications struct {
	programming.ApplicationRepository
	items []*programming.PesticideApplication
}

func (s seasonApplications) ListBySeason(context.Context, uint, *uint) ([]*programming.PesticideApplication, error) {
	return s.items, nil
}

type farmNames struct{ farm.FarmRepository }

func (farmNames) GetByID(_ context.Context, id uint) (*farm.Farm, error) {
	if id == 1 {
		return farm.ReconstructFarm(1, 10, "Boa Vista", "", "", 500, time.Now()), nil
	}
	return nil, nil
}

type producerNames struct{ farm.ProducerRepository }

func (producerNames) GetByID(_ context.Context, id uint) (*farm.Producer, error) {
	return farm.ReconstructProducer(id, "Produtor Silva", "", true, time.Now()), nil
}

func reportRecord(t *testing.T, id, producerID, farmID uint, area float64, fertDose float64) *programming.Record {
	t.Helper()
	r, err := programming.ReconstructRecord(id, "prg_r", programming.RecordParams{
		ProducerID:   producerID,
		FarmID:       farmID,
		SeasonID:     7,
		AreaHectares: area,
		Type:         programming.RecordTypeProgramming,
		Cultivars: []programming.CultivarLine{
			{Cultivar: "NS 7709", CoveragePct: 50, Treatment: programming.NoTreatment{}},
			{Cultivar: "BRASMAX OLIMPO", CoveragePct: 50, Treatment: programming.NoTreatment{}},
		},
		Fertilizations: []programming.FertilizationLine{{Formulation: "MAP 11-52-00", Dose: fertDose, CoveragePct: 100}},
	}, false, 1, time.Now(), time.Now())
	require.NoError(t, err)
	return r
}

func TestSeasonReportUseCase_Execute(t *testing.T) {
	records := seasonRecords{items: []*programming.Record{
		reportRecord(t, 1, 10, 1, 0.1, 0.1),
		reportRecord(t, 2, 10, 1, 0.2, 0.2),
		reportRecord(t, 3, 20, 2, 10, 100),
	}}
	app, err := programming.ReconstructPesticideApplication(4, "apl_a", programming.ApplicationParams{
		ProducerID:   10,
		FarmID:       1,
		SeasonID:     7,
		AreaHectares: 30,
		Type:         programming.RecordTypeProgramming,
		Lines: []programming.PesticideLine{
			{Class: "HERBICIDA", Application: "DESSECAÇÃO", Product: "ROUNDUP WG", Dose: 2, Unit: "kg", CoveragePct: 100},
			{Class: "FUNGICIDA", Application: "FERRUGEM", Product: "Roundup WG 20 KG", Dose: 1, Unit: "kg", CoveragePct: 50},
		},
	}, 1, time.Now(), time.Now())
	require.NoError(t, err)

	uc := NewSeasonReportUseCase(records, seasonApplications{items: []*programming.PesticideApplication{app}}, farmNames{}, producerNames{}, logger.NewNop())

	report, err := uc.Execute(context.Background(), SeasonReportQuery{SeasonID: 7})
	require.NoError(t, err)
	require.Len(t, report.Farms, 2)
	assert.Equal(t, 10.3, report.AreaHectares)

	var boaVista *FarmReport
	for _, f := range report.Farms {
		if f.FarmID == 1 {
			boaVista = f
		}
	}
	require.NotNil(t, boaVista)
	assert.Equal(t, "Boa Vista", boaVista.FarmName)
	assert.Equal(t, 2, boaVista.Records)
	assert.Equal(t, 0.3, boaVista.AreaHectares)
	assert.Equal(t, []Quantity{{Name: "MAP 11-52-00", Unit: "kg", Amount: 0.05}}, boaVista.Fertilizers)
	assert.Equal(t, []Quantity{{Name: "ROUNDUP WG", Unit: "kg", Amount: 75}}, boaVista.Pesticides)
	assert.Equal(t, []Quantity{{Name: "BRASMAX OLIMPO", Amount: 0.15}, {Name: "NS 7709", Amount: 0.15}}, boaVista.Cultivars)

	filtered, err := uc.Execute(context.Background(), SeasonReportQuery{SeasonID: 7, ProducerID: 20})
	require.NoError(t, err)
	require.Len(t, filtered.Farms, 1)
	assert.Equal(t, "#2", filtered.Farms[0].FarmName)

	_, err = uc.Execute(context.Background(), SeasonReportQuery{})
	assert.True(t, apperrors.IsValidationError(err))
}
