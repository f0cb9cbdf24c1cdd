package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"agroplan/internal/domain/programming"
	"agroplan/internal/infrastructure/persistence/mappers"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/db"
	"agroplan/internal/shared/logger"
)

type PesticideApplicationRepository struct {
	db        *gorm.DB
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewPesticideApplicationRepository(gdb *gorm.DB, logger logger.Interface) *PesticideApplicationRepository {
	return &PesticideApplicationRepository{
		db:        gdb,
		txManager: db.NewTransactionManager(gdb),
		logger:    logger,
	}
}

func (r *PesticideApplicationRepository) Create(ctx context.Context, a *programming.PesticideApplication) error {
	rows := mappers.ApplicationToRows(a)

	err := r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)
		if err := tx.Create(rows.Application).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
		return insertApplicationLines(tx, rows.Application.ID, rows.Lines)
	})
	if err != nil {
		r.logger.Errorw("failed to create pesticide application", "sid", a.SID(), "error", err)
		return err
	}

	if err := a.SetID(rows.Application.ID); err != nil {
		return fmt.Errorf("failed to set application ID: %w", err)
	}

	r.logger.Infow("pesticide application created", "id", rows.Application.ID, "sid", a.SID())
	return nil
}

func (r *PesticideApplicationRepository) Update(ctx context.Context, a *programming.PesticideApplication) error {
	rows := mappers.ApplicationToRows(a)
	h := rows.Application

	err := r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		result := tx.Model(&models.PesticideApplicationModel{}).
			Where("id = ? AND version = ?", h.ID, h.Version-1).
			Updates(map[string]interface{}{
				"producer_id":   h.ProducerID,
				"farm_id":       h.FarmID,
				"area_name":     h.AreaName,
				"area_hectares": h.AreaHectares,
				"season_id":     h.SeasonID,
				"epoch_id":      h.EpochID,
				"type":          h.Type,
				"crop":          h.Crop,
				"record_id":     h.RecordID,
				"version":       h.Version,
				"updated_at":    h.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update application: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return programming.ErrVersionConflict
		}

		if err := tx.Where("application_id = ?", h.ID).Delete(&models.PesticideLineModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete application lines: %w", err)
		}
		return insertApplicationLines(tx, h.ID, rows.Lines)
	})
	if err != nil {
		if !errors.Is(err, programming.ErrVersionConflict) {
			r.logger.Errorw("failed to update pesticide application", "id", h.ID, "error", err)
		}
		return err
	}
	return nil
}

func (r *PesticideApplicationRepository) Delete(ctx context.Context, id uint) error {
	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		if err := tx.Where("application_id = ?", id).Delete(&models.PesticideLineModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete application lines: %w", err)
		}
		result := tx.Delete(&models.PesticideApplicationModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete application: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return programming.ErrApplicationNotFound
		}
		return nil
	})
}

func (r *PesticideApplicationRepository) GetBySID(ctx context.Context, sid string) (*programming.PesticideApplication, error) {
	var header models.PesticideApplicationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&header).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get pesticide application", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	apps, err := r.hydrate(ctx, []*models.PesticideApplicationModel{&header})
	if err != nil {
		return nil, err
	}
	return apps[0], nil
}

func (r *PesticideApplicationRepository) List(ctx context.Context, filter programming.ApplicationFilter) ([]*programming.PesticideApplication, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PesticideApplicationModel{})

	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.ProducerID != 0 {
		query = query.Where("producer_id = ?", filter.ProducerID)
	}
	if filter.FarmID != 0 {
		query = query.Where("farm_id = ?", filter.FarmID)
	}
	if filter.SeasonID != 0 {
		query = query.Where("season_id = ?", filter.SeasonID)
	}
	if filter.RecordID != 0 {
		query = query.Where("record_id = ?", filter.RecordID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	var headers []*models.PesticideApplicationModel
	if err := query.Order("created_at DESC, id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&headers).Error; err != nil {
		r.logger.Errorw("failed to list pesticide applications", "error", err)
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	apps, err := r.hydrate(ctx, headers)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *PesticideApplicationRepository) ListByRecord(ctx context.Context, recordID uint) ([]*programming.PesticideApplication, error) {
	var headers []*models.PesticideApplicationModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("record_id = ?", recordID).
		Order("id").
		Find(&headers).Error; err != nil {
		return nil, fmt.Errorf("failed to list record applications: %w", err)
	}
	return r.hydrate(ctx, headers)
}

func (r *PesticideApplicationRepository) ListBySeason(ctx context.Context, seasonID uint, epochID *uint) ([]*programming.PesticideApplication, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("season_id = ?", seasonID)
	if epochID != nil {
		query = query.Where("epoch_id = ?", *epochID)
	}

	var headers []*models.PesticideApplicationModel
	if err := query.Order("producer_id, farm_id, id").Find(&headers).Error; err != nil {
		return nil, fmt.Errorf("failed to list season applications: %w", err)
	}
	return r.hydrate(ctx, headers)
}

func (r *PesticideApplicationRepository) hydrate(ctx context.Context, headers []*models.PesticideApplicationModel) ([]*programming.PesticideApplication, error) {
	if len(headers) == 0 {
		return []*programming.PesticideApplication{}, nil
	}

	ids := make([]uint, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
	}

	var lines []*models.PesticideLineModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("application_id IN ?", ids).
		Order("application_id, position").
		Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to load application lines: %w", err)
	}

	byID := make(map[uint][]*models.PesticideLineModel, len(headers))
	for _, l := range lines {
		byID[l.ApplicationID] = append(byID[l.ApplicationID], l)
	}

	out := make([]*programming.PesticideApplication, len(headers))
	for i, h := range headers {
		app, err := mappers.ApplicationFromRows(&mappers.ApplicationRows{Application: h, Lines: byID[h.ID]})
		if err != nil {
			r.logger.Errorw("failed to map pesticide application", "id", h.ID, "error", err)
			return nil, fmt.Errorf("failed to map application: %w", err)
		}
		out[i] = app
	}
	return out, nil
}

func insertApplicationLines(tx *gorm.DB, applicationID uint, lines []*models.PesticideLineModel) error {
	if len(lines) == 0 {
		return nil
	}
	for _, l := range lines {
		l.ID = 0
		l.ApplicationID = applicationID
	}
	if err := tx.Create(lines).Error; err != nil {
		return fmt.Errorf("failed to create application lines: %w", err)
	}
	return nil
}
