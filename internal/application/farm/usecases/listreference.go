package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/farm/dto"
	"agroplan/internal/domain/farm"
	"agroplan/internal/shared/logger"
)

type ListProducersUseCase struct {
	producers farm.ProducerRepository
	logger    logger.Interface
}

func NewListProducersUseCase(producers farm.ProducerRepository, logger logger.Interface) *ListProducersUseCase {
	return &ListProducersUseCase{producers: producers, logger: logger}
}

func (uc *ListProducersUseCase) Execute(ctx context.Context, search string) ([]*dto.ProducerDTO, error) {
	items, err := uc.producers.List(ctx, search)
	if err != nil {
		uc.logger.Errorw("failed to list producers", "error", err)
		return nil, fmt.Errorf("failed to list producers: %w", err)
	}
	return dto.ToProducerDTOs(items), nil
}

type ListFarmsUseCase struct {
	farms  farm.FarmRepository
	logger logger.Interface
}

func NewListFarmsUseCase(farms farm.FarmRepository, logger logger.Interface) *ListFarmsUseCase {
	return &ListFarmsUseCase{farms: farms, logger: logger}
}

// Execute lists the farms of producerID, or every farm when it is 0.
func (uc *ListFarmsUseCase) Execute(ctx context.Context, producerID uint) ([]*dto.FarmDTO, error) {
	items, err := uc.farms.List(ctx, producerID)
	if err != nil {
		uc.logger.Errorw("failed to list farms", "error", err, "producer_id", producerID)
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return dto.ToFarmDTOs(items), nil
}

type ListSeasonsUseCase struct {
	seasons farm.SeasonRepository
	logger  logger.Interface
}

func NewListSeasonsUseCase(seasons farm.SeasonRepository, logger logger.Interface) *ListSeasonsUseCase {
	return &ListSeasonsUseCase{seasons: seasons, logger: logger}
}

func (uc *ListSeasonsUseCase) Execute(ctx context.Context) ([]*dto.SeasonDTO, error) {
	items, err := uc.seasons.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list seasons", "error", err)
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return dto.ToSeasonDTOs(items), nil
}

type ListEpochsUseCase struct {
	epochs farm.EpochRepository
	logger logger.Interface
}

func NewListEpochsUseCase(epochs farm.EpochRepository, logger logger.Interface) *ListEpochsUseCase {
	return &ListEpochsUseCase{epochs: epochs, logger: logger}
}

func (uc *ListEpochsUseCase) Execute(ctx context.Context) ([]*dto.EpochDTO, error) {
	items, err := uc.epochs.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list epochs", "error", err)
		return nil, fmt.Errorf("failed to list epochs: %w", err)
	}
	return dto.ToEpochDTOs(items), nil
}
