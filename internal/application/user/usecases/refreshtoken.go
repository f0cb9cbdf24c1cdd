package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/user"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshTokenUseCase struct {
	userRepo   user.Repository
	jwtService JWTService
	logger     logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, jwtService JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	claims, err := uc.jwtService.RefreshClaims(cmd.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid or expired refresh token")
	}

	// the role is re-read so a demoted user does not keep the old one
	existingUser, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to validate user: %w", err)
	}
	if existingUser == nil {
		uc.logger.Warnw("user not found during token refresh", "user_id", claims.UserID)
		return nil, apperrors.NewUnauthorizedError("invalid or expired refresh token")
	}
	if !existingUser.IsActive() {
		uc.logger.Warnw("inactive user tried to refresh", "user_id", claims.UserID, "status", existingUser.Status())
		return nil, apperrors.NewForbiddenError("account is not active")
	}

	tokens, err := uc.jwtService.Refresh(cmd.RefreshToken, existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to refresh token", "error", err)
		return nil, apperrors.NewUnauthorizedError("invalid or expired refresh token")
	}

	uc.logger.Infow("token refreshed successfully", "user_id", claims.UserID)

	return &RefreshTokenResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
