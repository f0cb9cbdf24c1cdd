package usecases

import (
	"context"
	"strings"
	"sync"

	"agroplan/internal/domain/catalog"
)

// memoryPesticides is a PesticideRepository backed by a map keyed by code.
type memoryPesticides struct {
	mu        sync.Mutex
	items     map[string]*catalog.Pesticide
	listCalls int
}

func newMemoryPesticides(items ...*catalog.Pesticide) *memoryPesticides {
	m := &memoryPesticides{items: make(map[string]*catalog.Pesticide)}
	for _, p := range items {
		m.items[p.Code] = p
	}
	return m
}

func (m *memoryPesticides) List(_ context.Context, filter catalog.ListFilter) ([]*catalog.Pesticide, int64, error) {
	all, _ := m.ListAll(context.Background())
	var out []*catalog.Pesticide
	for _, p := range all {
		if filter.Search == "" || strings.Contains(p.Item, strings.ToUpper(filter.Search)) {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memoryPesticides) ListAll(context.Context) ([]*catalog.Pesticide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	out := make([]*catalog.Pesticide, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p)
	}
	sortPesticides(out)
	return out, nil
}

func (m *memoryPesticides) GetByCode(_ context.Context, code string) (*catalog.Pesticide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[code], nil
}

func (m *memoryPesticides) Save(ctx context.Context, p *catalog.Pesticide) error {
	_, err := m.Upsert(ctx, []*catalog.Pesticide{p})
	return err
}

func (m *memoryPesticides) Upsert(_ context.Context, items []*catalog.Pesticide) (catalog.UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result catalog.UpsertResult
	for _, p := range items {
		if _, ok := m.items[p.Code]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		m.items[p.Code] = p
	}
	return result, nil
}

func sortPesticides(items []*catalog.Pesticide) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].Item < items[j-1].Item; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

type mockFertilizerRepository struct {
	ListFunc   func(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Fertilizer, int64, error)
	UpsertFunc func(ctx context.Context, items []*catalog.Fertilizer) (catalog.UpsertResult, error)
}

func (m *mockFertilizerRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Fertilizer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockFertilizerRepository) Upsert(ctx context.Context, items []*catalog.Fertilizer) (catalog.UpsertResult, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, items)
	}
	return catalog.UpsertResult{Inserted: len(items)}, nil
}

type memoryCalendar struct {
	entries   []catalog.CalendarApplication
	listCalls int
}

func (m *memoryCalendar) ListAll(context.Context) ([]catalog.CalendarApplication, error) {
	m.listCalls++
	return m.entries, nil
}

func (m *memoryCalendar) ReplaceAll(_ context.Context, entries []catalog.CalendarApplication) error {
	m.entries = entries
	return nil
}

type mockImportHistory struct {
	records []*catalog.ImportRecord
}

func (m *mockImportHistory) Record(_ context.Context, rec *catalog.ImportRecord) error {
	m.records = append(m.records, rec)
	return nil
}

type mockSeedTreatments struct {
	items []*catalog.SeedTreatment
}

func (m *mockSeedTreatments) ListActive(_ context.Context, crop string) ([]*catalog.SeedTreatment, error) {
	var out []*catalog.SeedTreatment
	for _, t := range m.items {
		if crop == "" || t.Crop == crop {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockSeedTreatments) GetByIDs(context.Context, []uint) ([]*catalog.SeedTreatment, error) {
	return nil, nil
}

type mockFeed struct {
	configured bool
	rows       []catalog.Row
	err        error
}

func (m *mockFeed) Configured() bool { return m.configured }

func (m *mockFeed) FetchPesticides(context.Context) ([]catalog.Row, error) {
	return m.rows, m.err
}

func testPesticides() []*catalog.Pesticide {
	return []*catalog.Pesticide{
		{Code: "1001", Item: "ROUNDUP WG", Group: "HERBICIDA", Brand: "BAYER", ActiveIngredient: "GLIFOSATO"},
		{Code: "1002", Item: "ZETAPIR", Group: "HERBICIDA", Brand: "NORTOX", ActiveIngredient: "IMAZETAPIR"},
		{Code: "2001", Item: "PRIORI XTRA", Group: "FUNGICIDA", Brand: "SYNGENTA", ActiveIngredient: "AZOXISTROBINA"},
		{Code: "3001", Item: "CRUISER 350 FS", Group: "TRATAMENTO DE SEMENTES", Brand: "SYNGENTA", ActiveIngredient: "TIAMETOXAM"},
	}
}

func testCalendar() []catalog.CalendarApplication {
	return []catalog.CalendarApplication{
		{ApplicationCode: "01", ApplicationDescription: "DESSECAÇÃO", ClassCode: "H", ClassDescription: "HERBICIDA"},
		{ApplicationCode: "02", ApplicationDescription: "FERRUGEM", ClassCode: "F", ClassDescription: "FUNGICIDA"},
		{ApplicationCode: "03", ApplicationDescription: "TS", ClassCode: "T", ClassDescription: "TRAT. SEMENTES"},
	}
}
