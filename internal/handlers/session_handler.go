package handlers

import (
	"log/slog"
	"net/http"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHandler handles operator login and logout
type SessionHandler struct {
	sessionService services.SessionServiceInterface
	tokenService   services.TokenServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService services.SessionServiceInterface, tokenService services.TokenServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		tokenService:   tokenService,
	}
}

// Login validates an API key against Pyx Pay and opens a dashboard session
// @Summary Login with an API key
// @Description Probe the wallet balance with the key; on success the key becomes the active credentials
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "API key and optional endpoint"
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse} "Session opened"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - Invalid API key"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Pyx Pay unreachable"
// @Router /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	session, err := h.sessionService.Login(c.Request().Context(), req.APIKey, req.Endpoint)
	if err != nil {
		slog.Warn("login rejected", "ip", getClientIP(c), "error", err)
		return SendServiceError(c, err)
	}

	return h.respondWithToken(c, *session)
}

// LoginWithSavedKey opens a session with one of the saved API keys
// @Summary Login with a saved key
// @Tags Session
// @Produce json
// @Param id path string true "Saved key ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse} "Session opened"
// @Failure 400 {object} errors.ErrorResponse "SAVEDKEY_002 - Invalid saved key ID"
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - Invalid API key"
// @Failure 404 {object} errors.ErrorResponse "SAVEDKEY_001 - Saved key not found"
// @Router /session/login/saved/{id} [post]
func (h *SessionHandler) LoginWithSavedKey(c echo.Context) error {
	id, ok := parseSavedKeyID(c)
	if !ok {
		return SendError(c, errors.SavedKeyInvalidID)
	}

	session, err := h.sessionService.LoginWithSavedKey(c.Request().Context(), id)
	if err != nil {
		slog.Warn("saved key login rejected", "ip", getClientIP(c), "saved_key_id", id, "error", err)
		return SendServiceError(c, err)
	}

	return h.respondWithToken(c, *session)
}

// GetSession reports whether an operator is logged in, with the key masked
// @Summary Current session
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SessionInfo} "Current session"
// @Failure 503 {object} errors.ErrorResponse "SESSION_006 - Session state is still loading"
// @Router /session [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	if !h.sessionService.IsHydrated() {
		return SendError(c, errors.SessionNotReady)
	}
	return sendData(c, http.StatusOK, services.NewSessionInfo(h.sessionService.Current()))
}

// Logout clears the active credentials
// @Summary Logout
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SessionInfo} "Logged out"
// @Failure 401 {object} errors.ErrorResponse "SESSION_003 - Missing token"
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionService.Logout(c.Request().Context()); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    services.NewSessionInfo(h.sessionService.Current()),
		Message: "Logged out",
	})
}

func (h *SessionHandler) respondWithToken(c echo.Context, session services.Session) error {
	token, expiresAt, err := h.tokenService.GenerateSessionToken(session)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SessionResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresAt: expiresAt,
			Session:   services.NewSessionInfo(session),
		},
		Message: "Login successful",
	})
}
