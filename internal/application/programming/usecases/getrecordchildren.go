package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type GetRecordChildrenUseCase struct {
	records      programming.RecordRepository
	applications programming.ApplicationRepository
	plots        planning.PlotNamer
	logger       logger.Interface
}

func NewGetRecordChildrenUseCase(
	records programming.RecordRepository,
	applications programming.ApplicationRepository,
	plots planning.PlotNamer,
	logger logger.Interface,
) *GetRecordChildrenUseCase {
	return &GetRecordChildrenUseCase{
		records:      records,
		applications: applications,
		plots:        plots,
		logger:       logger,
	}
}

// Execute loads everything a record card shows when expanded: its lines,
// the applications that reference it and its plot names.
func (uc *GetRecordChildrenUseCase) Execute(ctx context.Context, sid string) (*dto.ChildrenDTO, error) {
	record, err := uc.records.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get programming record", "error", err, "record_id", sid)
		return nil, fmt.Errorf("failed to get programming record: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFoundError("programming record not found", sid)
	}

	applications, err := uc.applications.ListByRecord(ctx, record.ID())
	if err != nil {
		uc.logger.Errorw("failed to list record applications", "error", err, "record_id", sid)
		return nil, fmt.Errorf("failed to list record applications: %w", err)
	}
	applicationDTOs := make([]*dto.ApplicationDTO, 0, len(applications))
	for _, a := range applications {
		applicationDTOs = append(applicationDTOs, dto.ToApplicationDTO(a, record.SID()))
	}

	plotIDs := record.PlotIDs()
	names := make([]string, 0, len(plotIDs))
	if len(plotIDs) > 0 {
		byID, err := uc.plots.PlotNames(ctx, plotIDs)
		if err != nil {
			uc.logger.Errorw("failed to get plot names", "error", err, "record_id", sid)
			return nil, fmt.Errorf("failed to get plot names: %w", err)
		}
		for _, id := range plotIDs {
			name, ok := byID[id]
			if !ok {
				name = fmt.Sprintf("#%d", id)
			}
			names = append(names, name)
		}
	}

	return dto.ToChildrenDTO(record, applicationDTOs, names), nil
}
