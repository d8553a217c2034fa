package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims represents the claims carried by a dashboard session token.
// The registered ID (jti) is the operator session id.
type SessionClaims struct {
	jwt.RegisteredClaims
	Endpoint  string `json:"endpoint"`
	TokenType string `json:"token_type"`
}
