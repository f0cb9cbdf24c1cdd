package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"agroplan/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)

	pair, err := svc.Generate(42, authorization.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleManager, claims.Role)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err, "refresh token must not authenticate requests")

	_, err = svc.RefreshClaims(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)

	pair, err := svc.Generate(7, authorization.RoleAdmin)
	require.NoError(t, err)

	next, err := svc.Refresh(pair.RefreshToken, authorization.RoleConsultant)
	require.NoError(t, err)

	claims, err := svc.VerifyAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, authorization.RoleConsultant, claims.Role)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)
	pair, err := svc.Generate(1, authorization.RoleAdmin)
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewJWTService("other", 60, 7).Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewJWTService("test-secret", 60, 7)
		later.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
		_, err := later.VerifyAccess(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.Error(t, err)
	})
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("safra2024")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("safra2024", hash))
	assert.Error(t, h.Verify("safra2025", hash))
	assert.Error(t, h.Verify("safra2024", "not-a-hash"))

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestBcryptPasswordHasher_NeedsRehash(t *testing.T) {
	old := NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := old.Hash("safra2024")
	require.NoError(t, err)

	assert.False(t, old.NeedsRehash(hash))
	assert.True(t, NewBcryptPasswordHasher(bcrypt.MinCost+1).NeedsRehash(hash))
	assert.True(t, old.NeedsRehash("not-a-hash"))
}
