package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maskedKeyPlaceholder = "••••••••"
	maskVisiblePrefix    = 4
	maskVisibleSuffix    = 4
)

var (
	ErrSavedKeyLabelRequired    = errors.New("saved key label is required")
	ErrSavedKeyAPIKeyRequired   = errors.New("saved key api key is required")
	ErrSavedKeyEndpointRequired = errors.New("saved key endpoint is required")
)

// SavedAPIKey is an operator-managed API key kept for quick login
type SavedAPIKey struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Label           string    `gorm:"type:varchar(255);not null" json:"label"`
	EncryptedAPIKey string    `gorm:"type:text;not null" json:"-"`
	Endpoint        string    `gorm:"type:varchar(500);not null" json:"endpoint"`
	CreatedAt       time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// TableName pins the table name used by migrations
func (SavedAPIKey) TableName() string {
	return "saved_api_keys"
}

// BeforeCreate hook for SavedAPIKey
func (k *SavedAPIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}

	now := time.Now()
	if k.CreatedAt.IsZero() {
		k.CreatedAt = now
	}
	if k.UpdatedAt.IsZero() {
		k.UpdatedAt = now
	}

	return k.Validate()
}

// BeforeUpdate hook for SavedAPIKey
func (k *SavedAPIKey) BeforeUpdate(tx *gorm.DB) error {
	k.UpdatedAt = time.Now()
	return k.Validate()
}

// Validate validates the saved key fields
func (k *SavedAPIKey) Validate() error {
	if strings.TrimSpace(k.Label) == "" {
		return ErrSavedKeyLabelRequired
	}
	if k.EncryptedAPIKey == "" {
		return ErrSavedKeyAPIKeyRequired
	}
	if strings.TrimSpace(k.Endpoint) == "" {
		return ErrSavedKeyEndpointRequired
	}
	return nil
}

// MaskAPIKey hides the middle of an API key for display
func MaskAPIKey(key string) string {
	runes := []rune(key)
	if len(runes) <= maskVisiblePrefix+maskVisibleSuffix {
		return maskedKeyPlaceholder
	}
	return string(runes[:maskVisiblePrefix]) + "••••" + string(runes[len(runes)-maskVisibleSuffix:])
}
