package usecases

import (
	"context"
	"errors"
	"fmt"

	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type DeleteRecordUseCase struct {
	records programming.RecordRepository
	logger  logger.Interface
}

func NewDeleteRecordUseCase(records programming.RecordRepository, logger logger.Interface) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		records: records,
		logger:  logger,
	}
}

// Execute deletes the record and releases its plots. Records still
// referenced by pesticide applications are kept; the repository checks
// and deletes in one transaction.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, sid string) error {
	record, err := uc.records.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get programming record", "error", err, "record_id", sid)
		return fmt.Errorf("failed to get programming record: %w", err)
	}
	if record == nil {
		return apperrors.NewNotFoundError("programming record not found", sid)
	}

	if err := uc.records.Delete(ctx, record.ID()); err != nil {
		if errors.Is(err, programming.ErrRecordHasDependents) {
			uc.logger.Warnw("programming record still referenced", "record_id", sid, "error", err)
			return apperrors.NewConflictError(programming.ErrRecordHasDependents.Error(), err.Error())
		}
		uc.logger.Errorw("failed to delete programming record", "error", err, "record_id", sid)
		return toAppError(err)
	}

	uc.logger.Infow("programming record deleted", "record_id", sid)
	return nil
}
