package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 64
)

type traceIDKey struct{}

// RequestID assigns every request a trace ID. A caller-supplied X-Trace-ID is kept when it is
// short printable ASCII; otherwise a UUID is generated. The ID is echoed in the response header
// and stored on both the echo context and the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !isUsableTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), traceIDKey{}, traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the Echo context, or "" when unset
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// TraceIDFromContext returns the trace ID carried by a request context
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

func isUsableTraceID(value string) bool {
	if value == "" || len(value) > maxTraceIDLength {
		return false
	}
	for _, r := range value {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}
