package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"pyxpay-admin/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response and logs the stack
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}
				if sendErr := c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID)); sendErr != nil {
					logger.Error("failed to send panic recovery response", "trace_id", traceID, "error", sendErr)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
