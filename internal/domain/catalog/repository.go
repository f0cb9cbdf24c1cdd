package catalog

import "context"

// PesticideRepository persists the pesticide catalog keyed by Code.
type PesticideRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*Pesticide, int64, error)
	ListAll(ctx context.Context) ([]*Pesticide, error)
	GetByCode(ctx context.Context, code string) (*Pesticide, error)
	Save(ctx context.Context, p *Pesticide) error
	// Upsert inserts new codes and updates existing ones in one transaction.
	Upsert(ctx context.Context, items []*Pesticide) (UpsertResult, error)
}

type FertilizerRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*Fertilizer, int64, error)
	Upsert(ctx context.Context, items []*Fertilizer) (UpsertResult, error)
}

type CultivarRepository interface {
	List(ctx context.Context, crop string) ([]*Cultivar, error)
}

type SeedTreatmentRepository interface {
	ListActive(ctx context.Context, crop string) ([]*SeedTreatment, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*SeedTreatment, error)
}

type CalendarRepository interface {
	ListAll(ctx context.Context) ([]CalendarApplication, error)
	// ReplaceAll swaps the whole calendar atomically.
	ReplaceAll(ctx context.Context, entries []CalendarApplication) error
}

type JustificationRepository interface {
	ListActive(ctx context.Context) ([]*FertilizationJustification, error)
	GetByID(ctx context.Context, id uint) (*FertilizationJustification, error)
}

type ImportHistoryRepository interface {
	Record(ctx context.Context, rec *ImportRecord) error
}

// ListFilter filters catalog listings. Search matches item, brand, group or
// active ingredient.
type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}
