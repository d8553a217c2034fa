package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/config"
	"pyxpay-admin/internal/database"
	"pyxpay-admin/internal/dto"
	apperrors "pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const validAPIKey = "pk_live_0123456789abcdef"

type RouterTestSuite struct {
	suite.Suite
	upstream     *httptest.Server
	balanceCalls atomic.Int32
	app          *app.App
	router       *echo.Echo
}

func (s *RouterTestSuite) SetupTest() {
	s.balanceCalls.Store(0)
	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != validAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"API key inválida"}`)
			return
		}
		switch r.URL.Path {
		case "/carteira/saldo":
			s.balanceCalls.Add(1)
			_, _ = io.WriteString(w, `{"saldo": 1520.75}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Recurso não encontrado"}`)
		}
	}))

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "testing"},
		Store: config.StoreConfig{
			Backend: config.StoreBackendDatabase,
			Secret:  "router-test-secret",
		},
		JWT: config.JWTConfig{
			SessionTokenDuration: time.Hour,
			PrivateKey:           privateKey,
			PublicKey:            publicKey,
			Issuer:               "pyxpay-dashboard",
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 100, RateLimitBurst: 100},
		PyxPay:   config.PyxPayConfig{DefaultEndpoint: s.upstream.URL},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.app, err = app.Assemble(cfg, database.SetupTestDB(s.T()), logger)
	s.Require().NoError(err)
	s.Require().NoError(s.app.Load(context.Background()))

	s.router = NewRouter(s.app, middleware.NewRateLimiter(100, 100))
}

func (s *RouterTestSuite) TearDownTest() {
	s.upstream.Close()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, target string, body interface{}, token string) *httptest.ResponseRecorder {
	var payload io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) login() string {
	rec := s.do(http.MethodPost, "/api/v1/session/login", dto.LoginRequest{APIKey: validAPIKey, Endpoint: s.upstream.URL}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data dto.SessionResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().NotEmpty(envelope.Data.Token)
	return envelope.Data.Token
}

func (s *RouterTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/v1/health", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *RouterTestSuite) TestProtectedRouteRequiresToken() {
	rec := s.do(http.MethodGet, "/api/v1/wallet/balance", nil, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.SessionMissingToken), s.errorCode(rec))
	s.Zero(s.balanceCalls.Load())
}

func (s *RouterTestSuite) TestLoginWithInvalidKey() {
	rec := s.do(http.MethodPost, "/api/v1/session/login", dto.LoginRequest{APIKey: "wrong"}, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.SessionInvalidAPIKey), s.errorCode(rec))
}

func (s *RouterTestSuite) TestLoginValidation() {
	rec := s.do(http.MethodPost, "/api/v1/session/login", map[string]string{}, "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), s.errorCode(rec))
}

func (s *RouterTestSuite) TestLoginThenBalance() {
	token := s.login()

	rec := s.do(http.MethodGet, "/api/v1/wallet/balance", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data dto.BalanceResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Equal("1520.75", envelope.Data.Saldo.String())
	s.Equal(int32(2), s.balanceCalls.Load(), "login probe plus balance")
}

func (s *RouterTestSuite) TestSessionIsMasked() {
	s.login()

	rec := s.do(http.MethodGet, "/api/v1/session", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	s.NotContains(rec.Body.String(), validAPIKey)
	s.Contains(rec.Body.String(), `"isAuthenticated":true`)
}

func (s *RouterTestSuite) TestLogoutInvalidatesToken() {
	token := s.login()

	rec := s.do(http.MethodPost, "/api/v1/session/logout", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/wallet/balance", nil, token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestNewLoginReplacesOldToken() {
	first := s.login()
	second := s.login()

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/dashboard", nil, first).Code)
	s.NotEqual(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/dashboard", nil, second).Code)
}

func (s *RouterTestSuite) TestStaticTransactionRoutesWinOverID() {
	token := s.login()

	rec := s.do(http.MethodGet, "/api/v1/transactions/find", nil, token)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationRequiredField), s.errorCode(rec))
}

func (s *RouterTestSuite) TestColumnPreferencesRoundTrip() {
	token := s.login()

	rec := s.do(http.MethodPut, "/api/v1/preferences/columns", dto.ColumnsRequest{Toggle: "documento"}, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/preferences/columns", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var envelope struct {
		Data dto.ColumnsResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	for _, column := range envelope.Data.Columns {
		s.Equal(column.Key != "documento", column.Visible, column.Key)
	}
}

func (s *RouterTestSuite) TestMetricsCountErrors() {
	s.do(http.MethodGet, "/api/v1/wallet/balance", nil, "")

	rec := s.do(http.MethodGet, "/api/v1/metrics", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "dashboard_api_errors_total")
	s.Contains(rec.Body.String(), `code="SESSION_003"`)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/nope", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}
