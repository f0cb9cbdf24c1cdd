package user

import (
	"fmt"
	"time"
)

const (
	maxFailedLogins = 5
	lockDuration    = 30 * time.Minute
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// Rehasher is implemented by hashers whose work factor can change between
// deployments.
type Rehasher interface {
	NeedsRehash(hash string) bool
}

func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.touch()
	return nil
}

// Authenticate checks the password and updates the lockout counters.
// The caller persists the user whatever the outcome.
func (u *User) Authenticate(plainPassword string, hasher PasswordHasher) error {
	if !u.IsActive() {
		return ErrAccountDisabled
	}
	if u.IsLocked() {
		return ErrAccountLocked
	}
	if u.passwordHash == "" {
		return ErrNoPassword
	}

	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		u.recordFailedLogin()
		return ErrInvalidCredentials
	}

	if r, ok := hasher.(Rehasher); ok && r.NeedsRehash(u.passwordHash) {
		// best effort; the old hash stays valid
		if hash, err := hasher.Hash(plainPassword); err == nil {
			u.passwordHash = hash
		}
	}

	now := time.Now()
	u.failedLoginAttempts = 0
	u.lockedUntil = nil
	u.lastLoginAt = &now
	u.updatedAt = now
	return nil
}

func (u *User) recordFailedLogin() {
	u.failedLoginAttempts++
	u.updatedAt = time.Now()

	if u.failedLoginAttempts >= maxFailedLogins {
		until := time.Now().Add(lockDuration)
		u.lockedUntil = &until
	}
}

func (u *User) IsLocked() bool {
	return u.lockedUntil != nil && time.Now().Before(*u.lockedUntil)
}

func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}
