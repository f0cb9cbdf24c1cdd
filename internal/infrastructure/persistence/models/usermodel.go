package models

import (
	"time"

	"gorm.io/gorm"

	"agroplan/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID                  uint   `gorm:"primarykey"`
	Email               string `gorm:"uniqueIndex;not null;size:255"`
	Name                string `gorm:"not null;size:100"`
	Role                string `gorm:"not null;size:20;default:consultor"`
	Status              string `gorm:"not null;size:20;default:active"`
	PasswordHash        string `gorm:"size:255"`
	FailedLoginAttempts int    `gorm:"default:0"`
	LockedUntil         *time.Time
	LastLoginAt         *time.Time
	Version             int `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
