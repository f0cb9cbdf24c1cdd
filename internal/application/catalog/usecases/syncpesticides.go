package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/catalog/dto"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/shared/logger"
)

// PesticideFeed pulls the pesticide catalog from the ERP.
type PesticideFeed interface {
	Configured() bool
	FetchPesticides(ctx context.Context) ([]catalog.Row, error)
}

type SyncPesticidesUseCase struct {
	feed     PesticideFeed
	importer *ImportCatalogUseCase
	logger   logger.Interface
}

func NewSyncPesticidesUseCase(feed PesticideFeed, importer *ImportCatalogUseCase, logger logger.Interface) *SyncPesticidesUseCase {
	return &SyncPesticidesUseCase{feed: feed, importer: importer, logger: logger}
}

func (uc *SyncPesticidesUseCase) Execute(ctx context.Context, userID uint) (*dto.ImportResultDTO, error) {
	if uc.feed == nil || !uc.feed.Configured() {
		return nil, toAppError(catalog.ErrSyncNotConfigured)
	}

	rows, err := uc.feed.FetchPesticides(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch pesticides from erp", "error", err)
		return nil, fmt.Errorf("failed to fetch pesticides: %w", err)
	}

	return uc.importer.Execute(ctx, ImportCatalogCommand{
		Kind:   catalog.ImportPesticides,
		Source: "erp",
		Rows:   rows,
		UserID: userID,
	})
}

// RunScheduled is the background variant of Execute. It reports how many
// catalog rows changed and is a no-op when no feed is configured.
func (uc *SyncPesticidesUseCase) RunScheduled(ctx context.Context) (int, error) {
	if uc.feed == nil || !uc.feed.Configured() {
		return 0, nil
	}
	result, err := uc.Execute(ctx, 0)
	if err != nil {
		return 0, err
	}
	return result.Inserted + result.Updated, nil
}
