package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type GetApplicationUseCase struct {
	applications programming.ApplicationRepository
	records      programming.RecordRepository
	logger       logger.Interface
}

func NewGetApplicationUseCase(
	applications programming.ApplicationRepository,
	records programming.RecordRepository,
	logger logger.Interface,
) *GetApplicationUseCase {
	return &GetApplicationUseCase{applications: applications, records: records, logger: logger}
}

func (uc *GetApplicationUseCase) Execute(ctx context.Context, sid string) (*dto.ApplicationDTO, error) {
	application, err := uc.applications.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get pesticide application", "error", err, "application_id", sid)
		return nil, fmt.Errorf("failed to get pesticide application: %w", err)
	}
	if application == nil {
		return nil, apperrors.NewNotFoundError("pesticide application not found", sid)
	}

	sids, err := recordSIDs(ctx, uc.records, []*programming.PesticideApplication{application})
	if err != nil {
		uc.logger.Errorw("failed to resolve linked record", "error", err, "application_id", sid)
		return nil, fmt.Errorf("failed to resolve linked record: %w", err)
	}
	return applicationDTO(application, sids), nil
}
