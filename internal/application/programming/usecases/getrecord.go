package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type GetRecordUseCase struct {
	records programming.RecordRepository
	logger  logger.Interface
}

func NewGetRecordUseCase(records programming.RecordRepository, logger logger.Interface) *GetRecordUseCase {
	return &GetRecordUseCase{records: records, logger: logger}
}

func (uc *GetRecordUseCase) Execute(ctx context.Context, sid string) (*dto.RecordDTO, error) {
	record, err := uc.records.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get programming record", "error", err, "record_id", sid)
		return nil, fmt.Errorf("failed to get programming record: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFoundError("programming record not found", sid)
	}
	return dto.ToRecordDTO(record), nil
}
