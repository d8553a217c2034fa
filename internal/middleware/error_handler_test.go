package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(s.registry)
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/transactions")
	c.Set(TraceIDContextKey, "trace-123")

	s.handler(err, c)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "route not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.TransactionNotFound), body.Error.Code)
	s.Equal("route not found", body.Error.Message)
	s.Equal("trace-123", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestUpstreamErrorKeepsRemoteMessage() {
	err := fmt.Errorf("fetch: %w", &services.UpstreamError{Message: "Saldo insuficiente", StatusCode: 422})

	rec, body := s.handle(err)

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal(string(apperrors.UpstreamRequestFailed), body.Error.Code)
	s.Equal("Saldo insuficiente", body.Error.Message)
	s.Equal([]string{"upstream_status: 422"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestServiceSentinel() {
	rec, body := s.handle(services.ErrNotAuthenticated)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.SessionNotAuthenticated), body.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestValidationErrorsUseCustomMessages() {
	type cashout struct {
		Valor     string `validate:"required"`
		TipoChave int    `validate:"max=4"`
	}
	err := validator.New().Struct(cashout{TipoChave: 9})

	rec, body := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), body.Error.Code)
	s.ElementsMatch([]string{"Valor: is required", "TipoChave: must be at most 4"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorIsHidden() {
	rec, body := s.handle(errors.New("sql: connection refused at 10.0.0.5"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apperrors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "10.0.0.5")
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.handle(services.ErrNotAuthenticated)
	s.handle(services.ErrNotAuthenticated)

	count, err := testutil.GatherAndCount(s.registry, "dashboard_api_errors_total")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	cases := map[int]apperrors.ErrorCode{
		http.StatusBadRequest:          apperrors.ValidationGeneral,
		http.StatusMethodNotAllowed:    apperrors.ValidationGeneral,
		http.StatusUnauthorized:        apperrors.SessionMissingToken,
		http.StatusNotFound:            apperrors.TransactionNotFound,
		http.StatusTooManyRequests:     apperrors.SystemRateLimitExceeded,
		http.StatusInternalServerError: apperrors.SystemInternalError,
		http.StatusBadGateway:          apperrors.UpstreamRequestFailed,
		http.StatusServiceUnavailable:  apperrors.SystemServiceUnavailable,
		http.StatusTeapot:              apperrors.SystemUnexpectedError,
	}
	for status, code := range cases {
		s.Equal(code, mapHTTPStatusToErrorCode(status), "status %d", status)
	}
}
