package handlers

import (
	"net/http"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// SavedKeyHandler manages the operator's saved API keys
type SavedKeyHandler struct {
	savedKeys services.SavedKeyServiceInterface
}

// NewSavedKeyHandler creates a new saved key handler
func NewSavedKeyHandler(savedKeys services.SavedKeyServiceInterface) *SavedKeyHandler {
	return &SavedKeyHandler{savedKeys: savedKeys}
}

// ListKeys returns every saved key with its secret masked
// @Summary List saved keys
// @Tags Keys
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.SavedKeyResponse}
// @Router /keys [get]
func (h *SavedKeyHandler) ListKeys(c echo.Context) error {
	keys, err := h.savedKeys.List()
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, keys)
}

// CreateKey saves a labelled key; the endpoint defaults to production
// @Summary Save a key
// @Tags Keys
// @Accept json
// @Produce json
// @Param request body dto.SavedKeyRequest true "Label, key and optional endpoint"
// @Success 201 {object} SuccessResponse{data=dto.SavedKeyResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /keys [post]
func (h *SavedKeyHandler) CreateKey(c echo.Context) error {
	var req dto.SavedKeyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	key, err := h.savedKeys.Add(req.Label, req.APIKey, req.Endpoint)
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusCreated, key)
}

// UpdateKey changes the label, key or endpoint of a saved key. A blank key keeps the stored one.
// @Summary Update a saved key
// @Tags Keys
// @Accept json
// @Produce json
// @Param id path string true "Saved key ID (UUID)"
// @Param request body dto.SavedKeyUpdateRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=dto.SavedKeyResponse}
// @Failure 400 {object} errors.ErrorResponse "SAVEDKEY_002 - Invalid saved key ID"
// @Failure 404 {object} errors.ErrorResponse "SAVEDKEY_001 - Saved key not found"
// @Router /keys/{id} [put]
func (h *SavedKeyHandler) UpdateKey(c echo.Context) error {
	id, ok := parseSavedKeyID(c)
	if !ok {
		return SendError(c, errors.SavedKeyInvalidID)
	}

	var req dto.SavedKeyUpdateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	key, err := h.savedKeys.Update(id, req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, key)
}

// DeleteKey removes a saved key
// @Summary Remove a saved key
// @Tags Keys
// @Param id path string true "Saved key ID (UUID)"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse "SAVEDKEY_002 - Invalid saved key ID"
// @Failure 404 {object} errors.ErrorResponse "SAVEDKEY_001 - Saved key not found"
// @Router /keys/{id} [delete]
func (h *SavedKeyHandler) DeleteKey(c echo.Context) error {
	id, ok := parseSavedKeyID(c)
	if !ok {
		return SendError(c, errors.SavedKeyInvalidID)
	}

	if err := h.savedKeys.Remove(id); err != nil {
		return SendServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
