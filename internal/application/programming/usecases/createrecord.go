package usecases

import (
	"context"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	"agroplan/internal/shared/logger"
)

type CreateRecordCommand struct {
	OwnerID uint
	Input   dto.RecordInput
}

type CreateRecordUseCase struct {
	records  programming.RecordRepository
	preparer recordPreparer
	logger   logger.Interface
}

func NewCreateRecordUseCase(
	records programming.RecordRepository,
	resolver planning.TargetResolver,
	justifications catalog.JustificationRepository,
	logger logger.Interface,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		records:  records,
		preparer: recordPreparer{resolver: resolver, justifications: justifications},
		logger:   logger,
	}
}

// Execute validates coverage before touching storage; the repository claims
// the plots and fails with *planning.PlotConflictError when one is taken.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, cmd CreateRecordCommand) (*dto.RecordDTO, error) {
	params, err := uc.preparer.prepare(ctx, cmd.Input, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	record, err := programming.NewRecord(params)
	if err != nil {
		uc.logger.Warnw("invalid programming record", "error", err, "owner_id", cmd.OwnerID)
		return nil, toAppError(err)
	}

	if err := uc.records.Create(ctx, record); err != nil {
		if !isPlotConflict(err) {
			uc.logger.Errorw("failed to create programming record", "error", err, "farm_id", params.FarmID)
		}
		return nil, toAppError(err)
	}

	uc.logger.Infow("programming record created",
		"record_id", record.SID(),
		"farm_id", record.FarmID(),
		"season_id", record.SeasonID(),
		"plots", len(record.PlotIDs()),
	)
	return dto.ToRecordDTO(record), nil
}
