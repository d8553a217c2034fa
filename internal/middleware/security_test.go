package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders())
	e.GET("/api/v1/wallet/balance", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"saldo": "10"})
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	expected := map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
		"Referrer-Policy":           "no-referrer",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
		"Cache-Control":             "no-store, no-cache, must-revalidate, private",
		"Pragma":                    "no-cache",
		"Expires":                   "0",
	}
	for header, value := range expected {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
}

func TestSecurityHeadersOnErrorResponses(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no-store, no-cache, must-revalidate, private", rec.Header().Get("Cache-Control"))
}
