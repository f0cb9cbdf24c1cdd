package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/internal/domain/user"
	"agroplan/internal/shared/authorization"
	"agroplan/internal/shared/logger"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewNop())
	ctx := context.Background()

	u, err := user.NewUser("Agronomo@Example.com", "Ana Agrônoma", authorization.RoleConsultant)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID())

	t.Run("lookup by email ignores case", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "AGRONOMO@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
		assert.Equal(t, authorization.RoleConsultant, found.Role())
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup, err := user.NewUser("agronomo@example.com", "Outra", authorization.RoleConsultant)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), user.ErrEmailExists)

		exists, err := repo.ExistsByEmail(ctx, "agronomo@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update with optimistic lock", func(t *testing.T) {
		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		stale, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)

		require.NoError(t, found.ChangeRole(authorization.RoleManager))
		require.NoError(t, repo.Update(ctx, found))

		require.NoError(t, stale.ChangeRole(authorization.RoleAdmin))
		assert.Error(t, repo.Update(ctx, stale))

		reloaded, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleManager, reloaded.Role())
	})

	t.Run("missing user", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
