package handlers

import (
	"net/http"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// PreferencesHandler exposes the transaction table column visibility
type PreferencesHandler struct {
	columns services.ColumnPreferencesInterface
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(columns services.ColumnPreferencesInterface) *PreferencesHandler {
	return &PreferencesHandler{columns: columns}
}

// GetColumns lists every column and whether it is visible
// @Summary Column visibility
// @Tags Preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ColumnsResponse}
// @Router /preferences/columns [get]
func (h *PreferencesHandler) GetColumns(c echo.Context) error {
	return sendData(c, http.StatusOK, services.NewColumnsResponse(h.columns.Visible()))
}

// UpdateColumns toggles one column, or replaces the visible set when no toggle is given
// @Summary Change column visibility
// @Tags Preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ColumnsRequest true "toggle or columns"
// @Success 200 {object} SuccessResponse{data=dto.ColumnsResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Unknown column"
// @Router /preferences/columns [put]
func (h *PreferencesHandler) UpdateColumns(c echo.Context) error {
	var req dto.ColumnsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var (
		visible []models.ColumnKey
		err     error
	)
	if req.Toggle != "" {
		visible, err = h.columns.Toggle(ctx, columnKeys([]string{req.Toggle})[0])
	} else {
		visible, err = h.columns.Set(ctx, columnKeys(req.Columns))
	}
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, services.NewColumnsResponse(visible))
}
