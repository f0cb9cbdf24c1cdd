package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	"agroplan/internal/shared/logger"
)

type CreateApplicationCommand struct {
	OwnerID uint
	Input   dto.ApplicationInput
}

type CreateApplicationUseCase struct {
	applications programming.ApplicationRepository
	preparer     applicationPreparer
	logger       logger.Interface
}

func NewCreateApplicationUseCase(
	applications programming.ApplicationRepository,
	records programming.RecordRepository,
	resolver planning.TargetResolver,
	logger logger.Interface,
) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{
		applications: applications,
		preparer:     applicationPreparer{records: records, resolver: resolver},
		logger:       logger,
	}
}

func (uc *CreateApplicationUseCase) Execute(ctx context.Context, cmd CreateApplicationCommand) (*dto.ApplicationDTO, error) {
	params, err := uc.preparer.prepare(ctx, cmd.Input, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	application, err := programming.NewPesticideApplication(params)
	if err != nil {
		uc.logger.Warnw("invalid pesticide application", "error", err, "owner_id", cmd.OwnerID)
		return nil, toAppError(err)
	}

	if err := uc.applications.Create(ctx, application); err != nil {
		uc.logger.Errorw("failed to create pesticide application", "error", err, "farm_id", params.FarmID)
		return nil, fmt.Errorf("failed to create pesticide application: %w", err)
	}

	uc.logger.Infow("pesticide application created",
		"application_id", application.SID(),
		"farm_id", application.FarmID(),
		"lines", len(params.Lines),
	)
	return dto.ToApplicationDTO(application, cmd.Input.RecordSID), nil
}
