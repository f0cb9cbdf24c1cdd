package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/catalog/dto"
	"agroplan/internal/domain/catalog"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type ImportCatalogCommand struct {
	Kind catalog.ImportKind
	// Source labels where the rows came from ("upload", "erp").
	Source string
	Rows   []catalog.Row
	UserID uint
}

// ImportCatalogUseCase loads spreadsheet or ERP rows into one catalog.
// Pesticides and fertilizers are upserted by code; the calendar is
// replaced as a whole. Every run leaves an import-history row.
type ImportCatalogUseCase struct {
	source      catalogSource
	fertilizers catalog.FertilizerRepository
	history     catalog.ImportHistoryRepository
	logger      logger.Interface
}

func NewImportCatalogUseCase(
	pesticides catalog.PesticideRepository,
	fertilizers catalog.FertilizerRepository,
	calendar catalog.CalendarRepository,
	history catalog.ImportHistoryRepository,
	cache CatalogCache,
	logger logger.Interface,
) *ImportCatalogUseCase {
	return &ImportCatalogUseCase{
		source:      catalogSource{pesticides: pesticides, calendar: calendar, cache: cache, logger: logger},
		fertilizers: fertilizers,
		history:     history,
		logger:      logger,
	}
}

func (uc *ImportCatalogUseCase) Execute(ctx context.Context, cmd ImportCatalogCommand) (*dto.ImportResultDTO, error) {
	if len(cmd.Rows) == 0 {
		return nil, toAppError(catalog.ErrEmptyImport)
	}

	rec := &catalog.ImportRecord{
		Kind:       cmd.Kind,
		Source:     cmd.Source,
		Received:   len(cmd.Rows),
		ImportedBy: cmd.UserID,
	}

	var err error
	switch cmd.Kind {
	case catalog.ImportPesticides:
		err = uc.importPesticides(ctx, cmd.Rows, rec)
	case catalog.ImportFertilizers:
		err = uc.importFertilizers(ctx, cmd.Rows, rec)
	case catalog.ImportCalendar:
		err = uc.importCalendar(ctx, cmd.Rows, rec)
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown import kind %q", cmd.Kind))
	}
	if err != nil {
		uc.logger.Errorw("catalog import failed", "error", err, "kind", cmd.Kind, "rows", len(cmd.Rows))
		return nil, toAppError(err)
	}
	uc.source.invalidate(ctx)

	if err := uc.history.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to record import history", "error", err, "kind", cmd.Kind)
	}

	uc.logger.Infow("catalog imported",
		"kind", rec.Kind,
		"source", rec.Source,
		"received", rec.Received,
		"inserted", rec.Inserted,
		"updated", rec.Updated,
		"skipped", rec.Skipped,
		"user_id", cmd.UserID,
	)
	return &dto.ImportResultDTO{
		Kind:     rec.Kind,
		Received: rec.Received,
		Inserted: rec.Inserted,
		Updated:  rec.Updated,
		Skipped:  rec.Skipped,
	}, nil
}

func (uc *ImportCatalogUseCase) importPesticides(ctx context.Context, rows []catalog.Row, rec *catalog.ImportRecord) error {
	items := make([]*catalog.Pesticide, 0, len(rows))
	for _, r := range rows {
		p, ok := catalog.PesticideFromRow(r)
		if !ok {
			rec.Skipped++
			continue
		}
		items = append(items, p)
	}
	if len(items) == 0 {
		return catalog.ErrEmptyImport
	}

	result, err := uc.source.pesticides.Upsert(ctx, items)
	if err != nil {
		return fmt.Errorf("failed to upsert pesticides: %w", err)
	}
	rec.Inserted, rec.Updated = result.Inserted, result.Updated
	return nil
}

func (uc *ImportCatalogUseCase) importFertilizers(ctx context.Context, rows []catalog.Row, rec *catalog.ImportRecord) error {
	items := make([]*catalog.Fertilizer, 0, len(rows))
	for _, r := range rows {
		f, ok := catalog.FertilizerFromRow(r)
		if !ok {
			rec.Skipped++
			continue
		}
		items = append(items, f)
	}
	if len(items) == 0 {
		return catalog.ErrEmptyImport
	}

	result, err := uc.fertilizers.Upsert(ctx, items)
	if err != nil {
		return fmt.Errorf("failed to upsert fertilizers: %w", err)
	}
	rec.Inserted, rec.Updated = result.Inserted, result.Updated
	return nil
}

func (uc *ImportCatalogUseCase) importCalendar(ctx context.Context, rows []catalog.Row, rec *catalog.ImportRecord) error {
	entries, skipped := catalog.CalendarFromRows(rows)
	rec.Skipped = skipped
	if len(entries) == 0 {
		return catalog.ErrEmptyImport
	}

	if err := uc.source.calendar.ReplaceAll(ctx, entries); err != nil {
		return fmt.Errorf("failed to replace calendar: %w", err)
	}
	rec.Inserted = len(entries)
	return nil
}
