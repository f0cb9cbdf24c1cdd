package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/internal/domain/programming"
	"agroplan/internal/shared/logger"
)

func applicationParams(recordID *uint) programming.ApplicationParams {
	return programming.ApplicationParams{
		OwnerID:      7,
		ProducerID:   1,
		FarmID:       2,
		AreaName:     "Sede",
		AreaHectares: 80,
		SeasonID:     3,
		Type:         programming.RecordTypeProgramming,
		Crop:         "SOJA",
		RecordID:     recordID,
		Lines: []programming.PesticideLine{
			{Class: "FUNGICIDA", Application: "1ª aplicação", Product: "FOX XPRO", Dose: 0.5, Unit: "L", CoveragePct: 100},
			{Class: "INSETICIDA", Application: "1ª aplicação", Product: "ENGEO PLENO S", Dose: 0.2, Unit: "L", CoveragePct: 50},
		},
	}
}

func TestPesticideApplicationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPesticideApplicationRepository(db, logger.NewNop())
	ctx := context.Background()

	app, err := programming.NewPesticideApplication(applicationParams(uintPtr(5)))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, app))
	require.NotZero(t, app.ID())

	standalone, err := programming.NewPesticideApplication(applicationParams(nil))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, standalone))

	t.Run("round trip keeps line order", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, app.SID())
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Len(t, found.Lines(), 2)
		assert.Equal(t, "FOX XPRO", found.Lines()[0].Product)
		assert.Equal(t, 50.0, found.Lines()[1].CoveragePct)
		assert.Equal(t, uint(5), *found.RecordID())
	})

	t.Run("list by record", func(t *testing.T) {
		apps, err := repo.ListByRecord(ctx, 5)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, app.SID(), apps[0].SID())

		_, total, err := repo.List(ctx, programming.ApplicationFilter{SeasonID: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("update replaces lines", func(t *testing.T) {
		p := app.Params()
		p.Lines = p.Lines[:1]
		require.NoError(t, app.Replace(p))
		require.NoError(t, repo.Update(ctx, app))

		found, err := repo.GetBySID(ctx, app.SID())
		require.NoError(t, err)
		assert.Len(t, found.Lines(), 1)
		assert.Equal(t, app.Version(), found.Version())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, standalone.ID()))
		assert.ErrorIs(t, repo.Delete(ctx, standalone.ID()), programming.ErrApplicationNotFound)

		apps, err := repo.ListBySeason(ctx, 3, nil)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}
