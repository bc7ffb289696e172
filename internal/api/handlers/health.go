package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dotflik/dotflik/pkg/logger"
	"github.com/dotflik/dotflik/pkg/version"
)

// HealthResponse reports service liveness and build info.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// Health pings the database and reports the outcome.
func (h *Handlers) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "ok", Version: version.Version}
	status := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("Health check database ping failed: %v", err)
		resp.Status, resp.Database = "degraded", "unreachable"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
