package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type DeleteApplicationUseCase struct {
	applications programming.ApplicationRepository
	logger       logger.Interface
}

func NewDeleteApplicationUseCase(applications programming.ApplicationRepository, logger logger.Interface) *DeleteApplicationUseCase {
	return &DeleteApplicationUseCase{applications: applications, logger: logger}
}

func (uc *DeleteApplicationUseCase) Execute(ctx context.Context, sid string) error {
	application, err := uc.applications.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get pesticide application", "error", err, "application_id", sid)
		return fmt.Errorf("failed to get pesticide application: %w", err)
	}
	if application == nil {
		return apperrors.NewNotFoundError("pesticide application not found", sid)
	}

	if err := uc.applications.Delete(ctx, application.ID()); err != nil {
		uc.logger.Errorw("failed to delete pesticide application", "error", err, "application_id", sid)
		return toAppError(err)
	}

	uc.logger.Infow("pesticide application deleted", "application_id", sid)
	return nil
}
