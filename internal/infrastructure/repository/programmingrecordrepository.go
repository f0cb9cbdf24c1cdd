package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	"agroplan/internal/infrastructure/persistence/mappers"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/db"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

// ProgrammingRecordRepository stores records, their lines and their plot
// claims. The unique index on plot_claims is the authoritative
// check-and-claim for plots.
type ProgrammingRecordRepository struct {
	db        *gorm.DB
	txManager *db.TransactionManager
	detector  *planning.Detector
	plots     *PlotRepository
	logger    logger.Interface
}

func NewProgrammingRecordRepository(gdb *gorm.DB, logger logger.Interface) *ProgrammingRecordRepository {
	r := &ProgrammingRecordRepository{
		db:        gdb,
		txManager: db.NewTransactionManager(gdb),
		logger:    logger,
	}
	r.plots = NewPlotRepository(gdb, logger)
	r.detector = planning.NewDetector(r, r.plots)
	return r
}

func (r *ProgrammingRecordRepository) Create(ctx context.Context, record *programming.Record) error {
	rows, err := mappers.RecordToRows(record)
	if err != nil {
		return fmt.Errorf("failed to map record: %w", err)
	}

	var claimErr error
	err = r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		if err := tx.Create(rows.Record).Error; err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}
		if err := insertRecordLines(tx, rows.Record.ID, rows); err != nil {
			return err
		}
		if err := insertClaims(tx, rows.Record.ID, rows.Claims); err != nil {
			claimErr = err
			return err
		}
		return nil
	})
	if err != nil {
		if claimErr != nil && apperrors.IsDuplicateError(claimErr) {
			return r.conflictError(ctx, record, 0)
		}
		r.logger.Errorw("failed to create programming record", "sid", record.SID(), "error", err)
		return err
	}

	if err := record.SetID(rows.Record.ID); err != nil {
		return fmt.Errorf("failed to set record ID: %w", err)
	}

	r.logger.Infow("programming record created",
		"id", rows.Record.ID,
		"sid", record.SID(),
		"plots", len(rows.Claims),
	)
	return nil
}

// Update replaces the header, lines and claims. The stored version must be
// one behind the record's, otherwise ErrVersionConflict is returned.
func (r *ProgrammingRecordRepository) Update(ctx context.Context, record *programming.Record) error {
	rows, err := mappers.RecordToRows(record)
	if err != nil {
		return fmt.Errorf("failed to map record: %w", err)
	}
	h := rows.Record

	var claimErr error
	err = r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		result := tx.Model(&models.ProgrammingRecordModel{}).
			Where("id = ? AND version = ?", h.ID, h.Version-1).
			Updates(map[string]interface{}{
				"producer_id":   h.ProducerID,
				"farm_id":       h.FarmID,
				"area_name":     h.AreaName,
				"area_hectares": h.AreaHectares,
				"season_id":     h.SeasonID,
				"epoch_id":      h.EpochID,
				"type":          h.Type,
				"needs_plots":   h.NeedsPlots,
				"version":       h.Version,
				"updated_at":    h.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return programming.ErrVersionConflict
		}

		if err := deleteRecordChildren(tx, h.ID); err != nil {
			return err
		}
		if err := insertRecordLines(tx, h.ID, rows); err != nil {
			return err
		}
		if err := insertClaims(tx, h.ID, rows.Claims); err != nil {
			claimErr = err
			return err
		}
		return nil
	})
	if err != nil {
		if claimErr != nil && apperrors.IsDuplicateError(claimErr) {
			return r.conflictError(ctx, record, h.ID)
		}
		if !errors.Is(err, programming.ErrVersionConflict) {
			r.logger.Errorw("failed to update programming record", "id", h.ID, "error", err)
		}
		return err
	}

	r.logger.Infow("programming record updated", "id", h.ID, "version", h.Version)
	return nil
}

// Delete removes the record and releases its plots. The dependent check
// runs under a row lock on the record; the foreign key on
// pesticide_applications.record_id rejects anything that slips past it.
func (r *ProgrammingRecordRepository) Delete(ctx context.Context, id uint) error {
	err := r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		var locked models.ProgrammingRecordModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&locked, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return programming.ErrRecordNotFound
			}
			return fmt.Errorf("failed to lock record: %w", err)
		}

		var dependents int64
		if err := tx.Model(&models.PesticideApplicationModel{}).Where("record_id = ?", id).Count(&dependents).Error; err != nil {
			return fmt.Errorf("failed to count record applications: %w", err)
		}
		if dependents > 0 {
			return fmt.Errorf("%w: %d pesticide applications", programming.ErrRecordHasDependents, dependents)
		}

		if err := deleteRecordChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.ProgrammingRecordModel{}, id)
		if result.Error != nil {
			if apperrors.IsForeignKeyError(result.Error) {
				return programming.ErrRecordHasDependents
			}
			return fmt.Errorf("failed to delete record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return programming.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, programming.ErrRecordNotFound) && !errors.Is(err, programming.ErrRecordHasDependents) {
			r.logger.Errorw("failed to delete programming record", "id", id, "error", err)
		}
		return err
	}

	r.logger.Infow("programming record deleted", "id", id)
	return nil
}

func (r *ProgrammingRecordRepository) GetByID(ctx context.Context, id uint) (*programming.Record, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *ProgrammingRecordRepository) GetBySID(ctx context.Context, sid string) (*programming.Record, error) {
	return r.getOne(ctx, "sid = ?", sid)
}

func (r *ProgrammingRecordRepository) getOne(ctx context.Context, where string, arg interface{}) (*programming.Record, error) {
	var header models.ProgrammingRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(where, arg).First(&header).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get programming record", "key", arg, "error", err)
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	records, err := r.hydrate(ctx, []*models.ProgrammingRecordModel{&header})
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

func (r *ProgrammingRecordRepository) List(ctx context.Context, filter programming.RecordFilter) ([]*programming.Record, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProgrammingRecordModel{})

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
	if filter.EpochID != nil {
		query = query.Where("epoch_id = ?", *filter.EpochID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count programming records", "error", err)
		return nil, 0, fmt.Errorf("failed to count records: %w", err)
	}

	var headers []*models.ProgrammingRecordModel
	if err := query.Order("created_at DESC, id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&headers).Error; err != nil {
		r.logger.Errorw("failed to list programming records", "error", err)
		return nil, 0, fmt.Errorf("failed to list records: %w", err)
	}

	records, err := r.hydrate(ctx, headers)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListBySeason returns every record of a season; a nil epochID means all epochs.
func (r *ProgrammingRecordRepository) ListBySeason(ctx context.Context, seasonID uint, epochID *uint) ([]*programming.Record, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("season_id = ?", seasonID)
	if epochID != nil {
		query = query.Where("epoch_id = ?", *epochID)
	}

	var headers []*models.ProgrammingRecordModel
	if err := query.Order("producer_id, farm_id, id").Find(&headers).Error; err != nil {
		r.logger.Errorw("failed to list season records", "season_id", seasonID, "error", err)
		return nil, fmt.Errorf("failed to list season records: %w", err)
	}
	return r.hydrate(ctx, headers)
}

// ListClaims returns every claim on plotIDs for the season, across epochs.
func (r *ProgrammingRecordRepository) ListClaims(ctx context.Context, plotIDs []uint, seasonID uint) ([]planning.Claim, error) {
	if len(plotIDs) == 0 {
		return nil, nil
	}

	var rows []models.PlotClaimModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("plot_id IN ? AND season_id = ?", plotIDs, seasonID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list plot claims: %w", err)
	}

	claims := make([]planning.Claim, len(rows))
	for i, row := range rows {
		claims[i] = planning.Claim{
			PlotID:   row.PlotID,
			SeasonID: row.SeasonID,
			EpochID:  row.EpochID,
			RecordID: row.RecordID,
		}
	}
	return claims, nil
}

// hydrate loads lines and claims for headers with one query per child table.
func (r *ProgrammingRecordRepository) hydrate(ctx context.Context, headers []*models.ProgrammingRecordModel) ([]*programming.Record, error) {
	if len(headers) == 0 {
		return []*programming.Record{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	ids := make([]uint, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
	}

	var cultivars []*models.CultivarLineModel
	if err := tx.Where("record_id IN ?", ids).Order("record_id, position").Find(&cultivars).Error; err != nil {
		return nil, fmt.Errorf("failed to load cultivar lines: %w", err)
	}
	var fertilizations []*models.FertilizationLineModel
	if err := tx.Where("record_id IN ?", ids).Order("record_id, position").Find(&fertilizations).Error; err != nil {
		return nil, fmt.Errorf("failed to load fertilization lines: %w", err)
	}
	var claims []*models.PlotClaimModel
	if err := tx.Where("record_id IN ?", ids).Order("record_id, id").Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to load plot claims: %w", err)
	}

	byID := make(map[uint]*mappers.RecordRows, len(headers))
	for _, h := range headers {
		byID[h.ID] = &mappers.RecordRows{Record: h}
	}
	for _, m := range cultivars {
		byID[m.RecordID].Cultivars = append(byID[m.RecordID].Cultivars, m)
	}
	for _, m := range fertilizations {
		byID[m.RecordID].Fertilizations = append(byID[m.RecordID].Fertilizations, m)
	}
	for _, m := range claims {
		byID[m.RecordID].Claims = append(byID[m.RecordID].Claims, m)
	}

	records := make([]*programming.Record, len(headers))
	for i, h := range headers {
		record, err := mappers.RecordFromRows(byID[h.ID])
		if err != nil {
			r.logger.Errorw("failed to map programming record", "id", h.ID, "error", err)
			return nil, fmt.Errorf("failed to map record: %w", err)
		}
		records[i] = record
	}
	return records, nil
}

// conflictError rebuilds the conflict list after a unique violation on
// plot_claims so the caller gets plot names, not a driver error. When the
// rival claim cannot be found again, every requested plot is reported.
func (r *ProgrammingRecordRepository) conflictError(ctx context.Context, record *programming.Record, excludeID uint) error {
	conflicts, err := r.detector.FindConflicts(ctx, record.PlotIDs(), record.SeasonID(), record.EpochID(), excludeID)
	if err != nil {
		r.logger.Errorw("failed to resolve plot conflict", "sid", record.SID(), "error", err)
		conflicts = nil
	}
	if len(conflicts) == 0 {
		conflicts = r.requestedConflicts(ctx, record.PlotIDs())
	}

	r.logger.Warnw("plot claim rejected by unique index",
		"sid", record.SID(),
		"conflicts", len(conflicts),
	)
	return &planning.PlotConflictError{Conflicts: conflicts}
}

func (r *ProgrammingRecordRepository) requestedConflicts(ctx context.Context, plotIDs []uint) []planning.Conflict {
	names, err := r.plots.PlotNames(ctx, plotIDs)
	if err != nil {
		r.logger.Warnw("failed to load plot names", "error", err)
		names = nil
	}
	conflicts := make([]planning.Conflict, len(plotIDs))
	for i, id := range plotIDs {
		conflicts[i] = planning.Conflict{PlotID: id, PlotName: names[id]}
	}
	return conflicts
}

func insertRecordLines(tx *gorm.DB, recordID uint, rows *mappers.RecordRows) error {
	for _, m := range rows.Cultivars {
		m.ID = 0
		m.RecordID = recordID
	}
	for _, m := range rows.Fertilizations {
		m.ID = 0
		m.RecordID = recordID
	}

	if len(rows.Cultivars) > 0 {
		if err := tx.Create(rows.Cultivars).Error; err != nil {
			return fmt.Errorf("failed to create cultivar lines: %w", err)
		}
	}
	if len(rows.Fertilizations) > 0 {
		if err := tx.Create(rows.Fertilizations).Error; err != nil {
			return fmt.Errorf("failed to create fertilization lines: %w", err)
		}
	}
	return nil
}

func insertClaims(tx *gorm.DB, recordID uint, claims []*models.PlotClaimModel) error {
	if len(claims) == 0 {
		return nil
	}
	for _, c := range claims {
		c.ID = 0
		c.RecordID = recordID
	}
	if err := tx.Create(claims).Error; err != nil {
		return fmt.Errorf("failed to claim plots: %w", err)
	}
	return nil
}

func deleteRecordChildren(tx *gorm.DB, recordID uint) error {
	if err := tx.Where("record_id = ?", recordID).Delete(&models.CultivarLineModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete cultivar lines: %w", err)
	}
	if err := tx.Where("record_id = ?", recordID).Delete(&models.FertilizationLineModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete fertilization lines: %w", err)
	}
	if err := tx.Where("record_id = ?", recordID).Delete(&models.PlotClaimModel{}).Error; err != nil {
		return fmt.Errorf("failed to release plot claims: %w", err)
	}
	return nil
}
