package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agroplan/internal/shared/utils"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := HealthStatus{Status: "ok", Database: "ok"}
	code := http.StatusOK
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			status = HealthStatus{Status: "degraded", Database: "unreachable"}
			code = http.StatusServiceUnavailable
		}
	}

	utils.SuccessResponse(c, code, "", status)
}
