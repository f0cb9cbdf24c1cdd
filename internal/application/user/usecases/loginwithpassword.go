package usecases

import (
	"context"
	"errors"
	"fmt"

	"agroplan/internal/domain/user"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

const msgInvalidCredentials = "invalid email or password"

type LoginWithPasswordCommand struct {
	Email     string
	Password  string
	IPAddress string
}

type LoginWithPasswordResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// same answer for unknown email and wrong password
	if existingUser == nil {
		return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
	}

	authErr := existingUser.Authenticate(cmd.Password, uc.passwordHasher)

	// login bookkeeping changes on both outcomes; a failed save is not fatal
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Warnw("failed to save login state", "user_id", existingUser.ID(), "error", err)
	}

	if authErr != nil {
		uc.logger.Infow("login rejected", "user_id", existingUser.ID(), "ip", cmd.IPAddress, "reason", authErr)
		switch {
		case errors.Is(authErr, user.ErrAccountLocked):
			return nil, apperrors.NewTooManyRequestsError("account is temporarily locked")
		case errors.Is(authErr, user.ErrAccountDisabled):
			return nil, apperrors.NewForbiddenError("account is disabled")
		default:
			return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
		}
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &LoginWithPasswordResult{
		User:         existingUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
