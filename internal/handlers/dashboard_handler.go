package handlers

import (
	"net/http"

	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the landing page overview
type DashboardHandler struct {
	dashboard services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetOverview returns the balance, volume and recent transactions.
// A failure of either remote call is reported inside the overview.
// @Summary Dashboard overview
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.OverviewResponse}
// @Failure 401 {object} errors.ErrorResponse "SESSION_002 - Not authenticated"
// @Router /dashboard [get]
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	overview, err := h.dashboard.Overview(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, overview)
}
