package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type UpdateRecordCommand struct {
	SID     string
	OwnerID uint
	Input   dto.RecordInput
}

type UpdateRecordUseCase struct {
	records  programming.RecordRepository
	preparer recordPreparer
	logger   logger.Interface
}

func NewUpdateRecordUseCase(
	records programming.RecordRepository,
	resolver planning.TargetResolver,
	justifications catalog.JustificationRepository,
	logger logger.Interface,
) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		records:  records,
		preparer: recordPreparer{resolver: resolver, justifications: justifications},
		logger:   logger,
	}
}

// Execute replaces the whole record. The record's own claims never count
// as conflicts.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, cmd UpdateRecordCommand) (*dto.RecordDTO, error) {
	record, err := uc.records.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get programming record", "error", err, "record_id", cmd.SID)
		return nil, fmt.Errorf("failed to get programming record: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFoundError("programming record not found", cmd.SID)
	}
	if cmd.Input.Version != nil && *cmd.Input.Version != record.Version() {
		return nil, apperrors.NewConflictError(programming.ErrVersionConflict.Error())
	}

	params, err := uc.preparer.prepare(ctx, cmd.Input, record.OwnerID())
	if err != nil {
		return nil, err
	}

	if err := record.Replace(params); err != nil {
		return nil, toAppError(err)
	}

	if err := uc.records.Update(ctx, record); err != nil {
		if !isPlotConflict(err) {
			uc.logger.Errorw("failed to update programming record", "error", err, "record_id", cmd.SID)
		}
		return nil, toAppError(err)
	}

	uc.logger.Infow("programming record updated", "record_id", record.SID(), "version", record.Version(), "user_id", cmd.OwnerID)
	return dto.ToRecordDTO(record), nil
}
