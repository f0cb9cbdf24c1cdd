package user

import (
	"fmt"
	"strings"
	"time"

	"agroplan/internal/shared/authorization"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

// User is a consultant, manager or admin who signs in to plan seasons.
type User struct {
	id                  uint
	email               string
	name                string
	role                authorization.UserRole
	status              Status
	passwordHash        string
	failedLoginAttempts int
	lockedUntil         *time.Time
	lastLoginAt         *time.Time
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

func NewUser(email, name string, role authorization.UserRole) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	return &User{
		email:     normalized,
		name:      name,
		role:      role,
		status:    StatusActive,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// AuthState is the login bookkeeping stored next to the profile.
type AuthState struct {
	PasswordHash        string
	FailedLoginAttempts int
	LockedUntil         *time.Time
	LastLoginAt         *time.Time
}

func ReconstructUser(
	id uint,
	email, name string,
	role authorization.UserRole,
	status Status,
	auth AuthState,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	return &User{
		id:                  id,
		email:               email,
		name:                name,
		role:                role,
		status:              status,
		passwordHash:        auth.PasswordHash,
		failedLoginAttempts: auth.FailedLoginAttempts,
		lockedUntil:         auth.LockedUntil,
		lastLoginAt:         auth.LastLoginAt,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() string                { return u.email }
func (u *User) Name() string                 { return u.name }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Status() Status               { return u.status }
func (u *User) Version() int                 { return u.version }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) AuthState() AuthState {
	return AuthState{
		PasswordHash:        u.passwordHash,
		FailedLoginAttempts: u.failedLoginAttempts,
		LockedUntil:         u.lockedUntil,
		LastLoginAt:         u.lastLoginAt,
	}
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	if u.role == role {
		return nil
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) Disable() {
	if u.status == StatusDisabled {
		return
	}
	u.status = StatusDisabled
	u.touch()
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
	u.version++
}
