package usecases

import (
	"agroplan/internal/infrastructure/auth"
	"agroplan/internal/shared/authorization"
)

type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
	RefreshClaims(refreshToken string) (*auth.Claims, error)
	Refresh(refreshToken string, role authorization.UserRole) (*auth.TokenPair, error)
}
