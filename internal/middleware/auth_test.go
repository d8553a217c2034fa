package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pyxpay-admin/internal/config"
	apperrors "pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/services"
	"pyxpay-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	tokenService   services.TokenServiceInterface
	sessionService *service_mocks.MockSessionServiceInterface
	e              *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.newTokenService(time.Hour)
	s.sessionService = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) newTokenService(duration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		SessionTokenDuration: duration,
	})
}

func (s *AuthMiddlewareSuite) tokenFor(ts services.TokenServiceInterface, sessionID string) string {
	token, _, err := ts.GenerateSessionToken(services.Session{
		Credentials:     pyxpay.Credentials{APIKey: "live_key", Endpoint: "https://pyxpay.com.br/v1"},
		IsAuthenticated: true,
		SessionID:       sessionID,
		AuthenticatedAt: time.Now(),
	})
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) serve(authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	called := false
	handler := RequireSession(s.sessionService, s.tokenService)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec, c, called
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireSession_ValidToken() {
	s.sessionService.EXPECT().IsHydrated().Return(true)
	s.sessionService.EXPECT().ValidateSession("session-1").Return(nil)

	rec, c, called := s.serve("Bearer " + s.tokenFor(s.tokenService, "session-1"))

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("session-1", c.Get(SessionIDContextKey))
}

func (s *AuthMiddlewareSuite) TestRequireSession_WaitsForHydration() {
	s.sessionService.EXPECT().IsHydrated().Return(false)
	s.sessionService.EXPECT().WaitHydrated(gomock.Any()).Return(nil)
	s.sessionService.EXPECT().ValidateSession("session-1").Return(nil)

	_, _, called := s.serve("Bearer " + s.tokenFor(s.tokenService, "session-1"))

	s.True(called)
}

func (s *AuthMiddlewareSuite) TestRequireSession_HydrationPending() {
	s.sessionService.EXPECT().IsHydrated().Return(false)
	s.sessionService.EXPECT().WaitHydrated(gomock.Any()).Return(services.ErrSessionNotReady)

	rec, _, called := s.serve("Bearer anything")

	s.False(called)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal(string(apperrors.SessionNotReady), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireSession_MissingHeader() {
	s.sessionService.EXPECT().IsHydrated().Return(true)

	rec, _, called := s.serve("")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.SessionMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireSession_MalformedHeader() {
	s.sessionService.EXPECT().IsHydrated().Return(true)

	rec, _, called := s.serve("Token abc")

	s.False(called)
	s.Equal(string(apperrors.SessionInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireSession_ExpiredToken() {
	s.tokenService = s.newTokenService(-time.Minute)
	s.sessionService.EXPECT().IsHydrated().Return(true)

	rec, _, called := s.serve("Bearer " + s.tokenFor(s.tokenService, "session-1"))

	s.False(called)
	s.Equal(string(apperrors.SessionExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireSession_ForeignSignature() {
	s.sessionService.EXPECT().IsHydrated().Return(true)

	rec, _, called := s.serve("Bearer " + s.tokenFor(s.newTokenService(time.Hour), "session-1"))

	s.False(called)
	s.Equal(string(apperrors.SessionInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireSession_ReplacedSession() {
	s.sessionService.EXPECT().IsHydrated().Return(true)
	s.sessionService.EXPECT().ValidateSession("session-old").Return(services.ErrSessionReplaced)

	rec, _, called := s.serve("Bearer " + s.tokenFor(s.tokenService, "session-old"))

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.SessionInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireSession_HydrationWaitIsBounded() {
	s.sessionService.EXPECT().IsHydrated().Return(false)
	s.sessionService.EXPECT().WaitHydrated(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		s.True(hasDeadline)
		return services.ErrSessionNotReady
	})

	rec, _, _ := s.serve("")
	s.Equal(string(apperrors.SessionNotReady), s.errorCode(rec))
}
