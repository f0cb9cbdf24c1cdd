package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type ReplicateApplicationUseCase struct {
	applications programming.ApplicationRepository
	planner      *planning.Planner
	logger       logger.Interface
}

func NewReplicateApplicationUseCase(
	applications programming.ApplicationRepository,
	planner *planning.Planner,
	logger logger.Interface,
) *ReplicateApplicationUseCase {
	return &ReplicateApplicationUseCase{applications: applications, planner: planner, logger: logger}
}

func (uc *ReplicateApplicationUseCase) Execute(ctx context.Context, cmd ReplicateCommand) (*planning.Report, error) {
	if err := validateTargets(cmd.Targets); err != nil {
		return nil, err
	}

	application, err := uc.applications.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get pesticide application", "error", err, "application_id", cmd.SID)
		return nil, fmt.Errorf("failed to get pesticide application: %w", err)
	}
	if application == nil {
		return nil, apperrors.NewNotFoundError("pesticide application not found", cmd.SID)
	}

	report := uc.planner.Replicate(ctx, application, applicationStore{applications: uc.applications}, cmd.Targets)
	logReport(uc.logger, "pesticide application replicated", cmd.SID, cmd.UserID, report)
	return &report, nil
}
