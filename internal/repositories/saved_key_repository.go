package repositories

import (
	"errors"
	"fmt"

	"pyxpay-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSavedKeyNotFound = errors.New("saved api key not found")
)

// SavedKeyRepository handles database operations for saved API keys
type SavedKeyRepository struct {
	db *gorm.DB
}

// NewSavedKeyRepository creates a new saved key repository
func NewSavedKeyRepository(db *gorm.DB) SavedKeyRepositoryInterface {
	return &SavedKeyRepository{
		db: db,
	}
}

// Create stores a new saved key
func (r *SavedKeyRepository) Create(key *models.SavedAPIKey) error {
	if key == nil {
		return errors.New("saved key cannot be nil")
	}

	if err := r.db.Create(key).Error; err != nil {
		return fmt.Errorf("failed to create saved key: %w", err)
	}

	return nil
}

// GetByID retrieves a saved key by its ID
func (r *SavedKeyRepository) GetByID(id uuid.UUID) (*models.SavedAPIKey, error) {
	var key models.SavedAPIKey
	if err := r.db.Where("id = ?", id).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedKeyNotFound
		}
		return nil, fmt.Errorf("failed to get saved key by ID: %w", err)
	}

	return &key, nil
}

// List returns every saved key, oldest first
func (r *SavedKeyRepository) List() ([]models.SavedAPIKey, error) {
	var keys []models.SavedAPIKey
	if err := r.db.Order("created_at ASC").Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved keys: %w", err)
	}

	return keys, nil
}

// Update persists changes to an existing saved key
func (r *SavedKeyRepository) Update(key *models.SavedAPIKey) error {
	if key == nil {
		return errors.New("saved key cannot be nil")
	}

	result := r.db.Model(key).Select("label", "encrypted_api_key", "endpoint", "updated_at").Updates(key)
	if result.Error != nil {
		return fmt.Errorf("failed to update saved key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavedKeyNotFound
	}

	return nil
}

// Delete removes a saved key
func (r *SavedKeyRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.SavedAPIKey{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavedKeyNotFound
	}

	return nil
}
