package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"pyxpay-admin/internal/config"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/pyxpay"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    TokenServiceInterface
	issuer     string
	duration   time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.duration = 12 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		SessionTokenDuration: s.duration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) activeSession() Session {
	return Session{
		Credentials:     pyxpay.NewCredentials("sk_live_1234567890", "https://sandbox.pyxpay.com.br/v1"),
		IsAuthenticated: true,
		SessionID:       uuid.NewString(),
		AuthenticatedAt: time.Now(),
	}
}

func (s *TokenServiceTestSuite) TestGenerateSessionToken() {
	token, expiresAt, err := s.service.GenerateSessionToken(s.activeSession())
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(13 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateSessionToken_RequiresAuthenticatedSession() {
	token, _, err := s.service.GenerateSessionToken(Session{})
	s.ErrorIs(err, ErrNotAuthenticated)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_Success() {
	session := s.activeSession()
	token, _, err := s.service.GenerateSessionToken(session)
	s.Require().NoError(err)

	claims, err := s.service.ValidateSessionToken(token)
	s.NoError(err)
	s.Require().NotNil(claims)
	s.Equal(session.SessionID, claims.ID)
	s.Equal(session.Credentials.Endpoint, claims.Endpoint)
	s.Equal(TokenTypeSession, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_EmptyToken() {
	claims, err := s.service.ValidateSessionToken("")
	s.Error(err)
	s.Contains(err.Error(), "empty token")
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_InvalidFormat() {
	claims, err := s.service.ValidateSessionToken("invalid.token.format")
	s.Error(err)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_Expired() {
	expired := NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		SessionTokenDuration: -time.Minute,
	})

	token, _, err := expired.GenerateSessionToken(s.activeSession())
	s.Require().NoError(err)

	claims, err := s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_WrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               "someone-else",
		SessionTokenDuration: time.Hour,
	})

	token, _, err := other.GenerateSessionToken(s.activeSession())
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_WrongTokenType() {
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TokenType: "refresh",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_WrongKey() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: s.issuer, ID: uuid.NewString()},
		TokenType:        TokenTypeSession,
	}).SignedString(otherKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_RejectsHMAC() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: s.issuer, ID: uuid.NewString()},
		TokenType:        TokenTypeSession,
	}).SignedString([]byte("shared-secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase bearer", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"basic auth", "Basic dXNlcjpwYXNz", "", true},
		{"missing token", "Bearer   ", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, token)
		})
	}
}
