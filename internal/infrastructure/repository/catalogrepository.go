package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/infrastructure/persistence/mappers"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/db"
	"agroplan/internal/shared/logger"
)

const upsertBatchSize = 200

type PesticideCatalogRepository struct {
	db        *gorm.DB
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewPesticideCatalogRepository(gdb *gorm.DB, logger logger.Interface) *PesticideCatalogRepository {
	return &PesticideCatalogRepository{db: gdb, txManager: db.NewTransactionManager(gdb), logger: logger}
}

func (r *PesticideCatalogRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Pesticide, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CatalogPesticideModel{})
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where(
			"LOWER(item) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(group_name) LIKE ? OR LOWER(active_ingredient) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pesticides: %w", err)
	}

	var rows []*models.CatalogPesticideModel
	if err := query.Order("item").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list pesticide catalog", "error", err)
		return nil, 0, fmt.Errorf("failed to list pesticides: %w", err)
	}

	out := make([]*catalog.Pesticide, len(rows))
	for i, m := range rows {
		out[i] = mappers.PesticideToEntity(m)
	}
	return out, total, nil
}

func (r *PesticideCatalogRepository) ListAll(ctx context.Context) ([]*catalog.Pesticide, error) {
	items, _, err := r.List(ctx, catalog.ListFilter{})
	return items, err
}

func (r *PesticideCatalogRepository) GetByCode(ctx context.Context, code string) (*catalog.Pesticide, error) {
	var model models.CatalogPesticideModel
	if err := db.GetTxFromContext(ctx, r.db).Where("code = ?", strings.TrimSpace(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pesticide: %w", err)
	}
	return mappers.PesticideToEntity(&model), nil
}

func (r *PesticideCatalogRepository) Save(ctx context.Context, p *catalog.Pesticide) error {
	_, err := r.Upsert(ctx, []*catalog.Pesticide{p})
	return err
}

func (r *PesticideCatalogRepository) Upsert(ctx context.Context, items []*catalog.Pesticide) (catalog.UpsertResult, error) {
	rows := make([]*models.CatalogPesticideModel, len(items))
	for i, p := range items {
		rows[i] = mappers.PesticideToModel(p)
	}

	var result catalog.UpsertResult
	err := r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		result, err = upsertByCode(db.GetTxFromContext(ctx, r.db), rows,
			func(m *models.CatalogPesticideModel) string { return m.Code },
			func(m *models.CatalogPesticideModel) map[string]interface{} {
				return map[string]interface{}{
					"item":              m.Item,
					"group_name":        m.Group,
					"brand":             m.Brand,
					"active_ingredient": m.ActiveIngredient,
					"balance":           m.Balance,
				}
			},
		)
		return err
	})
	if err != nil {
		r.logger.Errorw("failed to upsert pesticide catalog", "items", len(items), "error", err)
		return catalog.UpsertResult{}, err
	}
	return result, nil
}

type FertilizerCatalogRepository struct {
	db        *gorm.DB
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewFertilizerCatalogRepository(gdb *gorm.DB, logger logger.Interface) *FertilizerCatalogRepository {
	return &FertilizerCatalogRepository{db: gdb, txManager: db.NewTransactionManager(gdb), logger: logger}
}

func (r *FertilizerCatalogRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Fertilizer, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CatalogFertilizerModel{})
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(item) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(active_ingredient) LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count fertilizers: %w", err)
	}

	var rows []*models.CatalogFertilizerModel
	if err := query.Order("item").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list fertilizer catalog", "error", err)
		return nil, 0, fmt.Errorf("failed to list fertilizers: %w", err)
	}

	out := make([]*catalog.Fertilizer, len(rows))
	for i, m := range rows {
		out[i] = mappers.FertilizerToEntity(m)
	}
	return out, total, nil
}

func (r *FertilizerCatalogRepository) Upsert(ctx context.Context, items []*catalog.Fertilizer) (catalog.UpsertResult, error) {
	rows := make([]*models.CatalogFertilizerModel, len(items))
	for i, f := range items {
		rows[i] = mappers.FertilizerToModel(f)
	}

	var result catalog.UpsertResult
	err := r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		result, err = upsertByCode(db.GetTxFromContext(ctx, r.db), rows,
			func(m *models.CatalogFertilizerModel) string { return m.Code },
			func(m *models.CatalogFertilizerModel) map[string]interface{} {
				return map[string]interface{}{
					"item":              m.Item,
					"brand":             m.Brand,
					"active_ingredient": m.ActiveIngredient,
					"balance":           m.Balance,
				}
			},
		)
		return err
	})
	if err != nil {
		r.logger.Errorw("failed to upsert fertilizer catalog", "items", len(items), "error", err)
		return catalog.UpsertResult{}, err
	}
	return result, nil
}

// upsertByCode inserts rows whose code is new and updates the rest. When a
// code repeats inside rows, the last occurrence wins.
func upsertByCode[M any](tx *gorm.DB, rows []*M, code func(*M) string, fields func(*M) map[string]interface{}) (catalog.UpsertResult, error) {
	var result catalog.UpsertResult
	if len(rows) == 0 {
		return result, nil
	}

	latest := make(map[string]*M, len(rows))
	order := make([]string, 0, len(rows))
	for _, m := range rows {
		c := code(m)
		if _, seen := latest[c]; !seen {
			order = append(order, c)
		}
		latest[c] = m
	}

	existing := make(map[string]bool, len(order))
	for start := 0; start < len(order); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(order))
		var codes []string
		if err := tx.Model(new(M)).Where("code IN ?", order[start:end]).Pluck("code", &codes).Error; err != nil {
			return result, fmt.Errorf("failed to load existing codes: %w", err)
		}
		for _, c := range codes {
			existing[c] = true
		}
	}

	var inserts []*M
	for _, c := range order {
		m := latest[c]
		if !existing[c] {
			inserts = append(inserts, m)
			continue
		}
		if err := tx.Model(new(M)).Where("code = ?", c).Updates(fields(m)).Error; err != nil {
			return result, fmt.Errorf("failed to update code %s: %w", c, err)
		}
		result.Updated++
	}

	if len(inserts) > 0 {
		if err := tx.CreateInBatches(inserts, upsertBatchSize).Error; err != nil {
			return result, fmt.Errorf("failed to insert catalog rows: %w", err)
		}
		result.Inserted = len(inserts)
	}
	return result, nil
}

type CultivarCatalogRepository struct {
	db *gorm.DB
}

func NewCultivarCatalogRepository(db *gorm.DB) *CultivarCatalogRepository {
	return &CultivarCatalogRepository{db: db}
}

func (r *CultivarCatalogRepository) List(ctx context.Context, crop string) ([]*catalog.Cultivar, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if c := strings.TrimSpace(crop); c != "" {
		query = query.Where("LOWER(crop) = ?", strings.ToLower(c))
	}

	var rows []*models.CatalogCultivarModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list cultivars: %w", err)
	}

	out := make([]*catalog.Cultivar, len(rows))
	for i, m := range rows {
		out[i] = mappers.CultivarToEntity(m)
	}
	return out, nil
}

type SeedTreatmentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSeedTreatmentRepository(db *gorm.DB, logger logger.Interface) *SeedTreatmentRepository {
	return &SeedTreatmentRepository{db: db, logger: logger}
}

func (r *SeedTreatmentRepository) ListActive(ctx context.Context, crop string) ([]*catalog.SeedTreatment, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("active = ?", true)
	if c := strings.TrimSpace(crop); c != "" {
		query = query.Where("LOWER(crop) = ?", strings.ToLower(c))
	}

	var rows []*models.SeedTreatmentModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list seed treatments: %w", err)
	}
	return r.toEntities(rows)
}

func (r *SeedTreatmentRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.SeedTreatment, error) {
	if len(ids) == 0 {
		return []*catalog.SeedTreatment{}, nil
	}

	var rows []*models.SeedTreatmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get seed treatments: %w", err)
	}
	return r.toEntities(rows)
}

func (r *SeedTreatmentRepository) Create(ctx context.Context, t *catalog.SeedTreatment) error {
	model, err := mappers.SeedTreatmentToModel(t)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create seed treatment: %w", err)
	}
	t.ID = model.ID
	return nil
}

func (r *SeedTreatmentRepository) toEntities(rows []*models.SeedTreatmentModel) ([]*catalog.SeedTreatment, error) {
	out := make([]*catalog.SeedTreatment, 0, len(rows))
	for _, m := range rows {
		t, err := mappers.SeedTreatmentToEntity(m)
		if err != nil {
			r.logger.Errorw("failed to map seed treatment", "id", m.ID, "error", err)
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

type CalendarRepository struct {
	db        *gorm.DB
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewCalendarRepository(gdb *gorm.DB, logger logger.Interface) *CalendarRepository {
	return &CalendarRepository{db: gdb, txManager: db.NewTransactionManager(gdb), logger: logger}
}

func (r *CalendarRepository) ListAll(ctx context.Context) ([]catalog.CalendarApplication, error) {
	var rows []*models.CalendarApplicationModel
	if err := db.GetTxFromContext(ctx, r.db).Order("class_description, application_description").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list calendar: %w", err)
	}

	out := make([]catalog.CalendarApplication, len(rows))
	for i, m := range rows {
		out[i] = mappers.CalendarToEntity(m)
	}
	return out, nil
}

func (r *CalendarRepository) ReplaceAll(ctx context.Context, entries []catalog.CalendarApplication) error {
	rows := make([]*models.CalendarApplicationModel, len(entries))
	for i, e := range entries {
		rows[i] = mappers.CalendarToModel(e)
	}

	err := r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CalendarApplicationModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear calendar: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, upsertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert calendar: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to replace calendar", "entries", len(entries), "error", err)
		return err
	}

	r.logger.Infow("calendar replaced", "entries", len(entries))
	return nil
}

type JustificationRepository struct {
	db *gorm.DB
}

func NewJustificationRepository(db *gorm.DB) *JustificationRepository {
	return &JustificationRepository{db: db}
}

func (r *JustificationRepository) ListActive(ctx context.Context) ([]*catalog.FertilizationJustification, error) {
	var rows []*models.JustificationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("active = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}

	out := make([]*catalog.FertilizationJustification, len(rows))
	for i, m := range rows {
		out[i] = mappers.JustificationToEntity(m)
	}
	return out, nil
}

func (r *JustificationRepository) GetByID(ctx context.Context, id uint) (*catalog.FertilizationJustification, error) {
	var model models.JustificationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get justification: %w", err)
	}
	return mappers.JustificationToEntity(&model), nil
}

type ImportHistoryRepository struct {
	db *gorm.DB
}

func NewImportHistoryRepository(db *gorm.DB) *ImportHistoryRepository {
	return &ImportHistoryRepository{db: db}
}

func (r *ImportHistoryRepository) Record(ctx context.Context, rec *catalog.ImportRecord) error {
	model := mappers.ImportRecordToModel(rec)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	rec.ID = model.ID
	rec.CreatedAt = model.CreatedAt
	return nil
}
