package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"agroplan/internal/domain/farm"
	"agroplan/internal/infrastructure/persistence/mappers"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/db"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type ProducerRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProducerRepository(db *gorm.DB, logger logger.Interface) *ProducerRepository {
	return &ProducerRepository{db: db, logger: logger}
}

func (r *ProducerRepository) Create(ctx context.Context, p *farm.Producer) error {
	model := mappers.ProducerToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create producer", "name", p.Name(), "error", err)
		return fmt.Errorf("failed to create producer: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *ProducerRepository) GetByID(ctx context.Context, id uint) (*farm.Producer, error) {
	var model models.ProducerModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get producer: %w", err)
	}
	return mappers.ProducerToEntity(&model), nil
}

// List returns active producers whose name contains search, ignoring case.
func (r *ProducerRepository) List(ctx context.Context, search string) ([]*farm.Producer, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("active = ?", true)
	if s := strings.TrimSpace(search); s != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var rows []*models.ProducerModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list producers", "error", err)
		return nil, fmt.Errorf("failed to list producers: %w", err)
	}

	out := make([]*farm.Producer, len(rows))
	for i, m := range rows {
		out[i] = mappers.ProducerToEntity(m)
	}
	return out, nil
}

type FarmRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFarmRepository(db *gorm.DB, logger logger.Interface) *FarmRepository {
	return &FarmRepository{db: db, logger: logger}
}

func (r *FarmRepository) Create(ctx context.Context, f *farm.Farm) error {
	model := mappers.FarmToModel(f)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create farm", "name", f.Name(), "error", err)
		return fmt.Errorf("failed to create farm: %w", err)
	}
	return f.SetID(model.ID)
}

func (r *FarmRepository) GetByID(ctx context.Context, id uint) (*farm.Farm, error) {
	var model models.FarmModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	return mappers.FarmToEntity(&model), nil
}

func (r *FarmRepository) List(ctx context.Context, producerID uint) ([]*farm.Farm, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if producerID != 0 {
		query = query.Where("producer_id = ?", producerID)
	}

	var rows []*models.FarmModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list farms", "producer_id", producerID, "error", err)
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}

	out := make([]*farm.Farm, len(rows))
	for i, m := range rows {
		out[i] = mappers.FarmToEntity(m)
	}
	return out, nil
}

type PlotRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlotRepository(db *gorm.DB, logger logger.Interface) *PlotRepository {
	return &PlotRepository{db: db, logger: logger}
}

func (r *PlotRepository) Create(ctx context.Context, p *farm.Plot) error {
	model := mappers.PlotToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return farm.ErrDuplicatePlot
		}
		r.logger.Errorw("failed to create plot", "farm_id", p.FarmID(), "name", p.Name(), "error", err)
		return fmt.Errorf("failed to create plot: %w", err)
	}
	return p.SetID(model.ID)
}

// GetByIDs returns the plots found, in id order. Missing ids are skipped.
func (r *PlotRepository) GetByIDs(ctx context.Context, ids []uint) ([]*farm.Plot, error) {
	if len(ids) == 0 {
		return []*farm.Plot{}, nil
	}

	var rows []*models.PlotModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get plots: %w", err)
	}

	out := make([]*farm.Plot, len(rows))
	for i, m := range rows {
		out[i] = mappers.PlotToEntity(m)
	}
	return out, nil
}

func (r *PlotRepository) ListByFarm(ctx context.Context, farmID uint) ([]*farm.Plot, error) {
	var rows []*models.PlotModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("farm_id = ? AND active = ?", farmID, true).
		Order("name").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list plots", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}

	out := make([]*farm.Plot, len(rows))
	for i, m := range rows {
		out[i] = mappers.PlotToEntity(m)
	}
	return out, nil
}

func (r *PlotRepository) ExistsByName(ctx context.Context, farmID uint, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlotModel{}).
		Where("farm_id = ? AND LOWER(name) = ?", farmID, strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check plot name: %w", err)
	}
	return count > 0, nil
}

func (r *PlotRepository) PlotNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []models.PlotModel
	if err := db.GetTxFromContext(ctx, r.db).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load plot names: %w", err)
	}
	for _, m := range rows {
		names[m.ID] = m.Name
	}
	return names, nil
}

type SeasonRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSeasonRepository(db *gorm.DB, logger logger.Interface) *SeasonRepository {
	return &SeasonRepository{db: db, logger: logger}
}

func (r *SeasonRepository) Create(ctx context.Context, s *farm.Season) error {
	model := mappers.SeasonToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create season", "name", s.Name(), "error", err)
		return fmt.Errorf("failed to create season: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *SeasonRepository) GetByID(ctx context.Context, id uint) (*farm.Season, error) {
	var model models.SeasonModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return mappers.SeasonToEntity(&model), nil
}

// List returns seasons with the current one first, then newest names first.
func (r *SeasonRepository) List(ctx context.Context) ([]*farm.Season, error) {
	var rows []*models.SeasonModel
	if err := db.GetTxFromContext(ctx, r.db).Order("current DESC, name DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	out := make([]*farm.Season, len(rows))
	for i, m := range rows {
		out[i] = mappers.SeasonToEntity(m)
	}
	return out, nil
}

type EpochRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEpochRepository(db *gorm.DB, logger logger.Interface) *EpochRepository {
	return &EpochRepository{db: db, logger: logger}
}

func (r *EpochRepository) Create(ctx context.Context, e *farm.Epoch) error {
	model := &models.EpochModel{Name: e.Name()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create epoch", "name", e.Name(), "error", err)
		return fmt.Errorf("failed to create epoch: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *EpochRepository) GetByID(ctx context.Context, id uint) (*farm.Epoch, error) {
	var model models.EpochModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get epoch: %w", err)
	}
	return mappers.EpochToEntity(&model), nil
}

func (r *EpochRepository) List(ctx context.Context) ([]*farm.Epoch, error) {
	var rows []*models.EpochModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list epochs: %w", err)
	}

	out := make([]*farm.Epoch, len(rows))
	for i, m := range rows {
		out[i] = mappers.EpochToEntity(m)
	}
	return out, nil
}
