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

type UpdateApplicationCommand struct {
	SID   string
	Input dto.ApplicationInput
}

type UpdateApplicationUseCase struct {
	applications programming.ApplicationRepository
	preparer     applicationPreparer
	logger       logger.Interface
}

func NewUpdateApplicationUseCase(
	applications programming.ApplicationRepository,
	records programming.RecordRepository,
	resolver planning.TargetResolver,
	logger logger.Interface,
) *UpdateApplicationUseCase {
	return &UpdateApplicationUseCase{
		applications: applications,
		preparer:     applicationPreparer{records: records, resolver: resolver},
		logger:       logger,
	}
}

func (uc *UpdateApplicationUseCase) Execute(ctx context.Context, cmd UpdateApplicationCommand) (*dto.ApplicationDTO, error) {
	application, err := uc.applications.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get pesticide application", "error", err, "application_id", cmd.SID)
		return nil, fmt.Errorf("failed to get pesticide application: %w", err)
	}
	if application == nil {
		return nil, apperrors.NewNotFoundError("pesticide application not found", cmd.SID)
	}
	if cmd.Input.Version != nil && *cmd.Input.Version != application.Version() {
		return nil, apperrors.NewConflictError(programming.ErrVersionConflict.Error())
	}

	params, err := uc.preparer.prepare(ctx, cmd.Input, application.OwnerID())
	if err != nil {
		return nil, err
	}
	if err := application.Replace(params); err != nil {
		return nil, toAppError(err)
	}

	if err := uc.applications.Update(ctx, application); err != nil {
		uc.logger.Errorw("failed to update pesticide application", "error", err, "application_id", cmd.SID)
		return nil, toAppError(err)
	}

	uc.logger.Infow("pesticide application updated", "application_id", cmd.SID, "version", application.Version())
	return dto.ToApplicationDTO(application, cmd.Input.RecordSID), nil
}
