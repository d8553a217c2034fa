package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	apperrors "pyxpay-admin/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a request context; a nil body sends no payload
func newJSONContext(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var payload *bytes.Buffer
	if body == nil {
		payload = &bytes.Buffer{}
	} else {
		raw, _ := json.Marshal(body)
		payload = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

// decodeData unmarshals the data field of a success envelope into out
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorDetail {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code apperrors.ErrorCode) apperrors.ErrorDetail {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	detail := decodeError(t, rec)
	require.Equal(t, string(code), detail.Code)
	require.Equal(t, "trace-test", detail.TraceID)
	return detail
}

func strPtr(s string) *string {
	return &s
}

