package handlers

import (
	"strconv"
	"strings"

	"pyxpay-admin/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// getIntParam reads an integer query parameter. ok is false when the parameter is present but not a number.
func getIntParam(c echo.Context, name string, defaultValue int) (value int, ok bool) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue, false
	}
	return value, true
}

// getOptionalIntParam reads an integer query parameter that may be absent
func getOptionalIntParam(c echo.Context, name string) (*int, bool) {
	if strings.TrimSpace(c.QueryParam(name)) == "" {
		return nil, true
	}
	value, ok := getIntParam(c, name, 0)
	if !ok {
		return nil, false
	}
	return &value, true
}

// parseTransactionID accepts only positive integer ids
func parseTransactionID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseSavedKeyID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}

func columnKeys(values []string) []models.ColumnKey {
	keys := make([]models.ColumnKey, len(values))
	for i, value := range values {
		keys[i] = models.ColumnKey(value)
	}
	return keys
}
