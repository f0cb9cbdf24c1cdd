package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"agroplan/internal/domain/user"
	"agroplan/internal/infrastructure/auth"
	"agroplan/internal/shared/authorization"
)

// memoryUsers keeps users by email; updates count saves.
type memoryUsers struct {
	byEmail   map[string]*user.User
	nextID    uint
	updates   int
	UpdateErr error
	GetErr    error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: map[string]*user.User{}, nextID: 1}
}

func (m *memoryUsers) Create(_ context.Context, u *user.User) error {
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.byEmail[u.Email()] = u
	return nil
}

func (m *memoryUsers) GetByID(_ context.Context, id uint) (*user.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.byEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.byEmail[email], nil
}

func (m *memoryUsers) Update(context.Context, *user.User) error {
	m.updates++
	return m.UpdateErr
}

func (m *memoryUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

var errStore = errors.New("connection refused")

const testPassword = "safra2024"

func testHasher() *auth.BcryptPasswordHasher {
	return auth.NewBcryptPasswordHasher(4)
}

func testJWT() *auth.JWTService {
	return auth.NewJWTService("test-secret", 15, 7)
}

func seedUser(t *testing.T, repo *memoryUsers, email string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "Ana Souza", role)
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(testPassword, testHasher()))
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}
