package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"agroplan/internal/domain/user"
	"agroplan/internal/infrastructure/persistence/mappers"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/db"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailExists
		}
		r.logger.Errorw("failed to create user", "email", u.Email(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "key", arg, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}
	return entity, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"name":                  model.Name,
			"role":                  model.Role,
			"status":                model.Status,
			"password_hash":         model.PasswordHash,
			"failed_login_attempts": model.FailedLoginAttempts,
			"locked_until":          model.LockedUntil,
			"last_login_at":         model.LastLoginAt,
			"version":               model.Version,
			"updated_at":            model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("user was modified concurrently", fmt.Sprintf("id=%d", model.ID))
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}
