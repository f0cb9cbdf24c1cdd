package farm

import "context"

type ProducerRepository interface {
	Create(ctx context.Context, producer *Producer) error
	GetByID(ctx context.Context, id uint) (*Producer, error)
	List(ctx context.Context, search string) ([]*Producer, error)
}

type FarmRepository interface {
	Create(ctx context.Context, farm *Farm) error
	GetByID(ctx context.Context, id uint) (*Farm, error)
	// List returns farms of producerID, or all farms when it is 0.
	List(ctx context.Context, producerID uint) ([]*Farm, error)
}

type PlotRepository interface {
	Create(ctx context.Context, plot *Plot) error
	GetByIDs(ctx context.Context, ids []uint) ([]*Plot, error)
	ListByFarm(ctx context.Context, farmID uint) ([]*Plot, error)
	ExistsByName(ctx context.Context, farmID uint, name string) (bool, error)
	// PlotNames maps plot ids to display names. Unknown ids are absent.
	PlotNames(ctx context.Context, ids []uint) (map[uint]string, error)
}

type SeasonRepository interface {
	Create(ctx context.Context, season *Season) error
	GetByID(ctx context.Context, id uint) (*Season, error)
	List(ctx context.Context) ([]*Season, error)
}

type EpochRepository interface {
	Create(ctx context.Context, epoch *Epoch) error
	GetByID(ctx context.Context, id uint) (*Epoch, error)
	List(ctx context.Context) ([]*Epoch, error)
}
