package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher implements user.PasswordHasher and user.Rehasher.
// Accounts created with an older auth.password.bcrypt_cost are upgraded on
// their next successful login.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password with cost %d: %w", h.cost, err)
	}
	return string(hashed), nil
}

// Verify fails with the same error for a wrong password and a malformed hash.
func (h *BcryptPasswordHasher) Verify(password, hashed string) error {
	if bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// NeedsRehash reports whether hashed was produced with a different cost.
func (h *BcryptPasswordHasher) NeedsRehash(hashed string) bool {
	cost, err := bcrypt.Cost([]byte(hashed))
	return err != nil || cost != h.cost
}
