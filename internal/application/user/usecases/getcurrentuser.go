package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/user"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return u, nil
}
