package repositories

import (
	"context"

	"pyxpay-admin/internal/models"

	"github.com/google/uuid"
)

// StateRepositoryInterface persists namespaced JSON documents for the dashboard stores
type StateRepositoryInterface interface {
	// Load returns ErrStateNotFound when nothing was saved under namespace
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, value []byte) error
	Delete(ctx context.Context, namespace string) error
}

// SavedKeyRepositoryInterface defines the contract for saved API key operations
type SavedKeyRepositoryInterface interface {
	Create(key *models.SavedAPIKey) error
	GetByID(id uuid.UUID) (*models.SavedAPIKey, error)
	List() ([]models.SavedAPIKey, error)
	Update(key *models.SavedAPIKey) error
	Delete(id uuid.UUID) error
}
