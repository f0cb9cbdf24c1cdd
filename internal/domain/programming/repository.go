package programming

import (
	"context"

	"agroplan/internal/domain/planning"
)

// RecordFilter narrows record listings. Zero values match everything.
type RecordFilter struct {
	OwnerID    uint
	ProducerID uint
	FarmID     uint
	SeasonID   uint
	EpochID    *uint
	Type       RecordType
	Page       int
	PageSize   int
}

// RecordRepository persists programming records together with their lines
// and plot claims. Create and Update claim plots atomically and return a
// *planning.PlotConflictError when a plot is already taken.
type RecordRepository interface {
	planning.ClaimReader

	Create(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Record, error)
	GetBySID(ctx context.Context, sid string) (*Record, error)
	List(ctx context.Context, filter RecordFilter) ([]*Record, int64, error)
	// ListBySeason returns every record of a season, for reports.
	ListBySeason(ctx context.Context, seasonID uint, epochID *uint) ([]*Record, error)
}

type ApplicationFilter struct {
	OwnerID    uint
	ProducerID uint
	FarmID     uint
	SeasonID   uint
	RecordID   uint
	Page       int
	PageSize   int
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *PesticideApplication) error
	Update(ctx context.Context, application *PesticideApplication) error
	Delete(ctx context.Context, id uint) error
	GetBySID(ctx context.Context, sid string) (*PesticideApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*PesticideApplication, int64, error)
	ListByRecord(ctx context.Context, recordID uint) ([]*PesticideApplication, error)
	ListBySeason(ctx context.Context, seasonID uint, epochID *uint) ([]*PesticideApplication, error)
}
