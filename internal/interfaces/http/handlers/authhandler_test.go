package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "agroplan/internal/application/user/dto"
	userusecases "agroplan/internal/application/user/usecases"
	"agroplan/internal/domain/user"
	"agroplan/internal/interfaces/http/handlers/testutil"
	"agroplan/internal/shared/authorization"
	"agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

func testUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("ana@fazenda.com.br", "Ana", authorization.RoleManager)
	require.NoError(t, err)
	require.NoError(t, u.SetID(5))
	return u
}

func TestAuthHandler_Login(t *testing.T) {
	u := testUser(t)
	h := &AuthHandler{
		loginUC: &mockLoginUC{ExecuteFunc: func(_ context.Context, cmd userusecases.LoginWithPasswordCommand) (*userusecases.LoginWithPasswordResult, error) {
			assert.Equal(t, "ana@fazenda.com.br", cmd.Email)
			return &userusecases.LoginWithPasswordResult{User: u, AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
		}},
		logger: logger.NewNop(),
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ana@fazenda.com.br", "password": "safra2024",
	})

	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var tokens userdto.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Data, &tokens))
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, "r", tokens.RefreshToken)
	require.NotNil(t, tokens.User)
	assert.Equal(t, "gestor", tokens.User.Role)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]string
		err    error
		status int
	}{
		{"malformed email", map[string]string{"email": "ana", "password": "x"}, nil, http.StatusBadRequest},
		{"missing password", map[string]string{"email": "ana@fazenda.com.br"}, nil, http.StatusBadRequest},
		{"bad credentials", map[string]string{"email": "ana@fazenda.com.br", "password": "x"}, errors.NewUnauthorizedError("invalid email or password"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &AuthHandler{
				loginUC: &mockLoginUC{ExecuteFunc: func(context.Context, userusecases.LoginWithPasswordCommand) (*userusecases.LoginWithPasswordResult, error) {
					return nil, tt.err
				}},
				logger: logger.NewNop(),
			}
			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", tt.body)

			h.Login(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := &AuthHandler{meUC: &mockGetCurrentUserUC{user: testUser(t)}, logger: logger.NewNop()}
	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	testutil.SetAuthContext(c, 5, authorization.RoleManager)

	h.Me(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got userdto.UserDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, "ana@fazenda.com.br", got.Email)
}
