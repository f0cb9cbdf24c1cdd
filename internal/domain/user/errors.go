package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRequired      = errors.New("email cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNoPassword         = errors.New("user has no password set")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is temporarily locked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailExists        = errors.New("email already registered")
)
