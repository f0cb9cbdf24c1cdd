package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/internal/shared/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestErrorResponseWithError(t *testing.T) {
	t.Run("app error keeps type and status", func(t *testing.T) {
		c, w := newTestContext()
		ErrorResponseWithError(c, fmt.Errorf("wrapped: %w", errors.NewValidationError("coverage must total 100%", "current 95.0%")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "validation_error", resp.Error.Type)
		assert.Equal(t, "current 95.0%", resp.Error.Details)
	})

	t.Run("plain error is hidden", func(t *testing.T) {
		c, w := newTestContext()
		ErrorResponseWithError(c, fmt.Errorf("dial tcp 10.0.0.3:3306: refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.3")
	})
}

func TestPlotConflictResponse(t *testing.T) {
	c, w := newTestContext()
	PlotConflictResponse(c, PlotConflictBody{Plots: []uint{4, 9}, PlotNames: []string{"T-04", "T-09"}})

	assert.Equal(t, http.StatusConflict, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "talhao já possui programação nesta safra", body["error"])
	assert.Equal(t, []any{"T-04", "T-09"}, body["talhoes_nomes"])
	assert.Equal(t, []any{float64(4), float64(9)}, body["talhoes"])
}

func TestListSuccessResponse(t *testing.T) {
	c, w := newTestContext()
	ListSuccessResponse(c, []string{"a", "b"}, 45, 2, 20)

	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.TotalPages)
	assert.Equal(t, int64(45), resp.Data.Total)
}
