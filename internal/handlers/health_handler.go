package handlers

import (
	"context"
	"net/http"
	"time"

	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// DatabasePinger is satisfied by *database.DB
type DatabasePinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      DatabasePinger
	session services.SessionServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db DatabasePinger, session services.SessionServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, session: session}
}

// HealthCheck reports database connectivity and whether the persisted session has loaded
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,hydrated=bool,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database unavailable or SESSION_006 - Session loading"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if !h.session.IsHydrated() {
		return SendError(c, errors.SessionNotReady)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"hydrated": true,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
