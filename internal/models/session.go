package models

import "time"

// StoredSession is the persisted shape of the operator session.
// The API key is only ever stored encrypted.
type StoredSession struct {
	EncryptedAPIKey string    `json:"apiKey"`
	Endpoint        string    `json:"endpoint"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	SessionID       string    `json:"sessionId,omitempty"`
	AuthenticatedAt time.Time `json:"authenticatedAt,omitempty"`
}
