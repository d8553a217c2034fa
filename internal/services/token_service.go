package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pyxpay-admin/internal/config"
	"pyxpay-admin/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTypeSession = "session"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService handles dashboard session token generation and validation
type TokenService struct {
	config.JWTConfig
}

// NewTokenService creates a new token service from JWT configuration
func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		JWTConfig: *jwtConfig,
	}
}

// GenerateSessionToken signs a token whose jti is the operator session id
func (ts *TokenService) GenerateSessionToken(session Session) (string, time.Time, error) {
	if !session.IsAuthenticated || session.SessionID == "" {
		return "", time.Time{}, ErrNotAuthenticated
	}

	now := time.Now()
	expiresAt := now.Add(ts.SessionTokenDuration)

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			Subject:   session.Credentials.Endpoint,
			ID:        session.SessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		Endpoint:  session.Credentials.Endpoint,
		TokenType: TokenTypeSession,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	tokenString, err := token.SignedString(ts.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateSessionToken accepts only unexpired RS256 session tokens from this issuer
func (ts *TokenService) ValidateSessionToken(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(ts.Issuer),
		jwt.WithExpirationRequired(),
	)

	claims := &models.SessionClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return ts.PublicKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !token.Valid:
		return nil, ErrInvalidToken
	case claims.TokenType != TokenTypeSession:
		return nil, ErrInvalidTokenType
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the credential of a "Bearer <token>" header, any case
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
