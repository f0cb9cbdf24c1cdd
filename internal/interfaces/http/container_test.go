package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	userUsecases "agroplan/internal/application/user/usecases"
	"agroplan/internal/infrastructure/auth"
	"agroplan/internal/infrastructure/config"
	"agroplan/internal/infrastructure/erp"
	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/infrastructure/repository"
	sharedConfig "agroplan/internal/shared/config"
	"agroplan/internal/shared/logger"
)

const testPassword = "safra2024"

func newTestContainer(t *testing.T) (*Container, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{BasePath: "/api", AllowedOrigins: []string{"*"}},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 15, RefreshExpDays: 1},
		},
		Planning: sharedConfig.PlanningConfig{ReplicationConcurrency: 2, SubmitDebounceSeconds: 3},
		Catalog:  sharedConfig.CatalogConfig{CacheTTLSeconds: 60, SyncTimeoutSeconds: 5},
	}

	c, err := NewContainer(db, cfg, logger.NewNop())
	require.NoError(t, err)
	c.SetupRoutes()
	t.Cleanup(func() { c.Shutdown(context.Background()) })
	return c, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) {
	t.Helper()
	uc := userUsecases.NewCreateUserUseCase(
		repository.NewUserRepository(db, logger.NewNop()),
		auth.NewBcryptPasswordHasher(4),
		logger.NewNop(),
	)
	_, err := uc.Execute(context.Background(), userUsecases.CreateUserCommand{
		Email: email, Name: "Teste", Role: role, Password: testPassword,
	})
	require.NoError(t, err)
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()
	w := do(t, engine, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func TestRouter_Health(t *testing.T) {
	c, _ := newTestContainer(t)

	w := do(t, c.Engine(), http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RequiresToken(t *testing.T) {
	c, _ := newTestContainer(t)

	for _, path := range []string{"/api/programacoes", "/api/defensivos", "/api/talhoes", "/api/auth/me"} {
		w := do(t, c.Engine(), http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_RolePermissions(t *testing.T) {
	c, db := newTestContainer(t)
	createUser(t, db, "admin@fazenda.com.br", "admin")
	createUser(t, db, "consultor@fazenda.com.br", "consultor")

	adminToken := login(t, c.Engine(), "admin@fazenda.com.br")
	consultantToken := login(t, c.Engine(), "consultor@fazenda.com.br")

	tests := []struct {
		name   string
		token  string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"consultant reads producers", consultantToken, http.MethodGet, "/api/produtores", nil, http.StatusOK},
		{"consultant reads records", consultantToken, http.MethodGet, "/api/programacoes", nil, http.StatusOK},
		{"consultant cannot create plot", consultantToken, http.MethodPost, "/api/talhoes", map[string]interface{}{"fazenda_id": 1, "nome": "T1", "area": 10}, http.StatusForbidden},
		{"consultant cannot import", consultantToken, http.MethodPost, "/api/defensivos/bulk", map[string]interface{}{"items": []interface{}{}}, http.StatusForbidden},
		{"consultant cannot replicate", consultantToken, http.MethodPost, "/api/programacoes/prg_x/replicate", map[string]interface{}{}, http.StatusForbidden},
		{"admin reads calendar", adminToken, http.MethodGet, "/api/calendario", nil, http.StatusOK},
		{"admin sync without endpoint", adminToken, http.MethodPost, "/api/defensivos/sync", nil, http.StatusBadRequest},
		{"me", adminToken, http.MethodGet, "/api/auth/me", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, c.Engine(), tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestContainer_SchedulerOnlyWhenConfigured(t *testing.T) {
	c, _ := newTestContainer(t)
	assert.Nil(t, c.schedulerManager)

	c.cfg.Catalog.SyncURL = "http://erp.local/defensivos"
	c.cfg.Catalog.SyncIntervalMinutes = 60
	c.erpClient = erp.NewCatalogClient(c.cfg.Catalog.SyncURL, "", time.Second, logger.NewNop())
	require.NoError(t, c.initScheduler())
	require.NotNil(t, c.schedulerManager)
	assert.Len(t, c.schedulerManager.Jobs(), 1)
}
