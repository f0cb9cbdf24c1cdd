package usecases

import (
	"context"
	"time"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/farm"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
)

type mockRecordRepository struct {
	CreateFunc       func(ctx context.Context, record *programming.Record) error
	UpdateFunc       func(ctx context.Context, record *programming.Record) error
	DeleteFunc       func(ctx context.Context, id uint) error
	GetByIDFunc      func(ctx context.Context, id uint) (*programming.Record, error)
	GetBySIDFunc     func(ctx context.Context, sid string) (*programming.Record, error)
	ListFunc         func(ctx context.Context, filter programming.RecordFilter) ([]*programming.Record, int64, error)
	ListBySeasonFunc func(ctx context.Context, seasonID uint, epochID *uint) ([]*programming.Record, error)
	ListClaimsFunc   func(ctx context.Context, plotIDs []uint, seasonID uint) ([]planning.Claim, error)
}

func (m *mockRecordRepository) Create(ctx context.Context, record *programming.Record) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *mockRecordRepository) Update(ctx context.Context, record *programming.Record) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

func (m *mockRecordRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id uint) (*programming.Record, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecordRepository) GetBySID(ctx context.Context, sid string) (*programming.Record, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockRecordRepository) List(ctx context.Context, filter programming.RecordFilter) ([]*programming.Record, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRecordRepository) ListBySeason(ctx context.Context, seasonID uint, epochID *uint) ([]*programming.Record, error) {
	if m.ListBySeasonFunc != nil {
		return m.ListBySeasonFunc(ctx, seasonID, epochID)
	}
	return nil, nil
}

func (m *mockRecordRepository) ListClaims(ctx context.Context, plotIDs []uint, seasonID uint) ([]planning.Claim, error) {
	if m.ListClaimsFunc != nil {
		return m.ListClaimsFunc(ctx, plotIDs, seasonID)
	}
	return nil, nil
}

type mockApplicationRepository struct {
	CreateFunc       func(ctx context.Context, a *programming.PesticideApplication) error
	UpdateFunc       func(ctx context.Context, a *programming.PesticideApplication) error
	DeleteFunc       func(ctx context.Context, id uint) error
	GetBySIDFunc     func(ctx context.Context, sid string) (*programming.PesticideApplication, error)
	ListFunc         func(ctx context.Context, filter programming.ApplicationFilter) ([]*programming.PesticideApplication, int64, error)
	ListByRecordFunc func(ctx context.Context, recordID uint) ([]*programming.PesticideApplication, error)
	ListBySeasonFunc func(ctx context.Context, seasonID uint, epochID *uint) ([]*programming.PesticideApplication, error)
}

func (m *mockApplicationRepository) Create(ctx context.Context, a *programming.PesticideApplication) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockApplicationRepository) Update(ctx context.Context, a *programming.PesticideApplication) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockApplicationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockApplicationRepository) GetBySID(ctx context.Context, sid string) (*programming.PesticideApplication, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockApplicationRepository) List(ctx context.Context, filter programming.ApplicationFilter) ([]*programming.PesticideApplication, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockApplicationRepository) ListByRecord(ctx context.Context, recordID uint) ([]*programming.PesticideApplication, error) {
	if m.ListByRecordFunc != nil {
		return m.ListByRecordFunc(ctx, recordID)
	}
	return nil, nil
}

func (m *mockApplicationRepository) ListBySeason(ctx context.Context, seasonID uint, epochID *uint) ([]*programming.PesticideApplication, error) {
	if m.ListBySeasonFunc != nil {
		return m.ListBySeasonFunc(ctx, seasonID, epochID)
	}
	return nil, nil
}

// memoryFarms serves farms and plots from maps.
type memoryFarms struct {
	farms map[uint]*farm.Farm
	plots map[uint]*farm.Plot
}

func newMemoryFarms() *memoryFarms {
	now := time.Now()
	return &memoryFarms{
		farms: map[uint]*farm.Farm{
			1: farm.ReconstructFarm(1, 10, "Fazenda Boa Vista", "Rio Verde", "GO", 500, now),
			2: farm.ReconstructFarm(2, 20, "Fazenda Esperança", "Jataí", "GO", 0, now),
			3: farm.ReconstructFarm(3, 30, "Fazenda Santa Rita", "Mineiros", "GO", 300, now),
		},
		plots: map[uint]*farm.Plot{
			101: farm.ReconstructPlot(101, 1, "T01", 40, true, now),
			102: farm.ReconstructPlot(102, 1, "T02", 40.5, true, now),
			301: farm.ReconstructPlot(301, 3, "A1", 25, true, now),
		},
	}
}

func (m *memoryFarms) Create(context.Context, *farm.Farm) error { return nil }

func (m *memoryFarms) GetByID(_ context.Context, id uint) (*farm.Farm, error) {
	return m.farms[id], nil
}

func (m *memoryFarms) List(context.Context, uint) ([]*farm.Farm, error) { return nil, nil }

type memoryPlots struct{ *memoryFarms }

func (m memoryPlots) Create(context.Context, *farm.Plot) error { return nil }

func (m memoryPlots) GetByIDs(_ context.Context, ids []uint) ([]*farm.Plot, error) {
	var out []*farm.Plot
	for _, id := range ids {
		if p, ok := m.plots[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memoryPlots) ListByFarm(context.Context, uint) ([]*farm.Plot, error) { return nil, nil }

func (m memoryPlots) ExistsByName(context.Context, uint, string) (bool, error) { return false, nil }

func (m memoryPlots) PlotNames(_ context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string)
	for _, id := range ids {
		if p, ok := m.plots[id]; ok {
			out[id] = p.Name()
		}
	}
	return out, nil
}

type mockJustificationRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.FertilizationJustification, error)
}

func (m *mockJustificationRepository) ListActive(context.Context) ([]*catalog.FertilizationJustification, error) {
	return nil, nil
}

func (m *mockJustificationRepository) GetByID(ctx context.Context, id uint) (*catalog.FertilizationJustification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}
