package usecases

import (
	"context"
	"time"

	"agroplan/internal/domain/farm"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
)

type mockFarmRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*farm.Farm, error)
	ListFunc    func(ctx context.Context, producerID uint) ([]*farm.Farm, error)
}

func (m *mockFarmRepository) Create(context.Context, *farm.Farm) error { return nil }

func (m *mockFarmRepository) GetByID(ctx context.Context, id uint) (*farm.Farm, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFarmRepository) List(ctx context.Context, producerID uint) ([]*farm.Farm, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, producerID)
	}
	return nil, nil
}

type mockPlotRepository struct {
	plots            []*farm.Plot
	CreateFunc       func(ctx context.Context, plot *farm.Plot) error
	ExistsByNameFunc func(ctx context.Context, farmID uint, name string) (bool, error)
}

func (m *mockPlotRepository) Create(ctx context.Context, plot *farm.Plot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, plot)
	}
	return plot.SetID(uint(len(m.plots) + 1))
}

func (m *mockPlotRepository) GetByIDs(_ context.Context, ids []uint) ([]*farm.Plot, error) {
	var out []*farm.Plot
	for _, p := range m.plots {
		for _, id := range ids {
			if p.ID() == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (m *mockPlotRepository) ListByFarm(_ context.Context, farmID uint) ([]*farm.Plot, error) {
	var out []*farm.Plot
	for _, p := range m.plots {
		if p.FarmID() == farmID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPlotRepository) ExistsByName(ctx context.Context, farmID uint, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, farmID, name)
	}
	return false, nil
}

func (m *mockPlotRepository) PlotNames(_ context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string)
	plots, _ := m.GetByIDs(context.Background(), ids)
	for _, p := range plots {
		out[p.ID()] = p.Name()
	}
	return out, nil
}

type staticClaims []planning.Claim

func (s staticClaims) ListClaims(context.Context, []uint, uint) ([]planning.Claim, error) {
	return s, nil
}

// recordsBySID serves minimal records keyed by row id.
type recordsBySID map[uint]string

func (r recordsBySID) record(id uint) *programming.Record {
	sid, ok := r[id]
	if !ok {
		return nil
	}
	rec, err := programming.ReconstructRecord(id, sid, programming.RecordParams{
		ProducerID:   10,
		FarmID:       1,
		SeasonID:     7,
		AreaHectares: 10,
		Type:         programming.RecordTypeProgramming,
	}, false, 1, time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return rec
}

func (r recordsBySID) GetBySID(_ context.Context, sid string) (*programming.Record, error) {
	for id, s := range r {
		if s == sid {
			return r.record(id), nil
		}
	}
	return nil, nil
}

func (r recordsBySID) GetByID(_ context.Context, id uint) (*programming.Record, error) {
	return r.record(id), nil
}

func testPlots() []*farm.Plot {
	now := time.Now()
	return []*farm.Plot{
		farm.ReconstructPlot(101, 1, "T01", 40, true, now),
		farm.ReconstructPlot(102, 1, "T02", 40.5, true, now),
		farm.ReconstructPlot(103, 1, "T03", 12, true, now),
		farm.ReconstructPlot(301, 3, "A1", 25, true, now),
	}
}
