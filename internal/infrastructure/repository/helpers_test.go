package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"agroplan/internal/domain/farm"
	"agroplan/internal/domain/programming"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func uintPtr(v uint) *uint { return &v }

// seedPlots creates one farm with the named plots and returns their ids.
func seedPlots(t *testing.T, db *gorm.DB, names ...string) (uint, []uint) {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()

	f, err := farm.NewFarm(1, "Fazenda Boa Vista", "Rio Verde", "go", 500)
	require.NoError(t, err)
	require.NoError(t, NewFarmRepository(db, log).Create(ctx, f))

	plots := NewPlotRepository(db, log)
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		p, err := farm.NewPlot(f.ID(), name, 40)
		require.NoError(t, err)
		require.NoError(t, plots.Create(ctx, p))
		ids = append(ids, p.ID())
	}
	return f.ID(), ids
}

func recordParams(farmID uint, epochID *uint, plotIDs ...uint) programming.RecordParams {
	return programming.RecordParams{
		OwnerID:      7,
		ProducerID:   1,
		FarmID:       farmID,
		AreaName:     "Sede",
		AreaHectares: 120,
		SeasonID:     3,
		EpochID:      epochID,
		Type:         programming.RecordTypeProgramming,
		PlotIDs:      plotIDs,
		Cultivars: []programming.CultivarLine{
			{
				Cultivar:       "BRS 1010",
				Crop:           "SOJA",
				CoveragePct:    60,
				PackageType:    programming.PackageBag5000K,
				SeedPopulation: 300000,
				SeedsPerBag:    5000000,
				Treatment: programming.OnFarmTreatment{Pesticides: []programming.PesticideLine{
					{Product: "STANDAK TOP", Dose: 0.2, Unit: "L", CoveragePct: 100},
				}},
			},
			{
				Cultivar:    "TMG 7062",
				Crop:        "SOJA",
				CoveragePct: 40,
				Treatment:   programming.IndustrialTreatment{TreatmentIDs: []uint{4, 9}},
			},
		},
		Fertilizations: []programming.FertilizationLine{
			{Formulation: "MAP 11-52-00", Dose: 150, CoveragePct: 100},
		},
	}
}

func newRecord(t *testing.T, p programming.RecordParams) *programming.Record {
	t.Helper()
	r, err := programming.NewRecord(p)
	require.NoError(t, err)
	return r
}
