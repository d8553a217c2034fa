package middleware

import (
	"context"
	stderrors "errors"
	"time"

	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/handlers"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionIDContextKey holds the validated operator session id
	SessionIDContextKey = "session_id"
	// TokenJTIContextKey holds the jti of the presented session token
	TokenJTIContextKey = "token_jti"

	hydrationWait = 2 * time.Second
)

// RequireSession admits a request only when the persisted session has loaded, the bearer
// token is a valid session token, and that token belongs to the session currently logged in.
func RequireSession(sessionService services.SessionServiceInterface, tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessionService.IsHydrated() {
				ctx, cancel := context.WithTimeout(c.Request().Context(), hydrationWait)
				err := sessionService.WaitHydrated(ctx)
				cancel()
				if err != nil {
					return handlers.SendError(c, errors.SessionNotReady)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.SessionMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.SessionInvalidToken)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.SessionExpiredToken)
				}
				return handlers.SendError(c, errors.SessionInvalidToken)
			}

			if err := sessionService.ValidateSession(claims.ID); err != nil {
				return handlers.SendServiceError(c, err)
			}

			c.Set(SessionIDContextKey, claims.ID)
			c.Set(TokenJTIContextKey, claims.ID)

			return next(c)
		}
	}
}
