package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/user"
	"agroplan/internal/shared/authorization"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type CreateUserCommand struct {
	Email    string
	Name     string
	Role     string
	Password string
}

// CreateUserUseCase provisions accounts from the command line; there is no
// self sign-up.
type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError(user.ErrInvalidRole.Error(), cmd.Role)
	}
	if err := user.ValidatePassword(cmd.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	newUser, err := user.NewUser(cmd.Email, cmd.Name, role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, newUser.Email())
	if err != nil {
		uc.logger.Errorw("failed to check email", "email", newUser.Email(), "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError(user.ErrEmailExists.Error(), newUser.Email())
	}

	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "email", newUser.Email(), "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "role", role)
	return newUser, nil
}
