package mappers

import (
	"agroplan/internal/domain/user"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		authorization.ParseUserRole(model.Role),
		user.Status(model.Status),
		user.AuthState{
			PasswordHash:        model.PasswordHash,
			FailedLoginAttempts: model.FailedLoginAttempts,
			LockedUntil:         model.LockedUntil,
			LastLoginAt:         model.LastLoginAt,
		},
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	auth := entity.AuthState()
	return &models.UserModel{
		ID:                  entity.ID(),
		Email:               entity.Email(),
		Name:                entity.Name(),
		Role:                entity.Role().String(),
		Status:              string(entity.Status()),
		PasswordHash:        auth.PasswordHash,
		FailedLoginAttempts: auth.FailedLoginAttempts,
		LockedUntil:         auth.LockedUntil,
		LastLoginAt:         auth.LastLoginAt,
		Version:             entity.Version(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}
}
