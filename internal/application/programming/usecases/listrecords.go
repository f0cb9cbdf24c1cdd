package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/programming"
	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/logger"
)

type ListRecordsQuery struct {
	ProducerID uint
	FarmID     uint
	SeasonID   uint
	EpochID    *uint
	Type       string
	Page       int
	PageSize   int
}

type ListRecordsResult struct {
	Records  []*dto.RecordDTO
	Total    int64
	Page     int
	PageSize int
}

type ListRecordsUseCase struct {
	records programming.RecordRepository
	logger  logger.Interface
}

func NewListRecordsUseCase(records programming.RecordRepository, logger logger.Interface) *ListRecordsUseCase {
	return &ListRecordsUseCase{records: records, logger: logger}
}

func (uc *ListRecordsUseCase) Execute(ctx context.Context, query ListRecordsQuery) (*ListRecordsResult, error) {
	filter := programming.RecordFilter{
		ProducerID: query.ProducerID,
		FarmID:     query.FarmID,
		SeasonID:   query.SeasonID,
		EpochID:    query.EpochID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if query.Type != "" {
		t, err := programming.ParseRecordType(query.Type)
		if err != nil {
			return nil, toAppError(err)
		}
		filter.Type = t
	}

	records, total, err := uc.records.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list programming records", "error", err)
		return nil, fmt.Errorf("failed to list programming records: %w", err)
	}

	return &ListRecordsResult{
		Records:  dto.ToRecordDTOs(records),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
