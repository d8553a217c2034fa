package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pyxpay-admin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStateNotFound = errors.New("local state not found")

// StateRepository keeps local state in the local_state table
type StateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new database-backed state repository
func NewStateRepository(db *gorm.DB) StateRepositoryInterface {
	return &StateRepository{db: db}
}

// Load retrieves the document stored under namespace
func (r *StateRepository) Load(ctx context.Context, namespace string) ([]byte, error) {
	var state models.LocalState
	if err := r.db.WithContext(ctx).Where("namespace = ?", namespace).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load local state %s: %w", namespace, err)
	}

	return []byte(state.Value), nil
}

// Save inserts or replaces the document stored under namespace
func (r *StateRepository) Save(ctx context.Context, namespace string, value []byte) error {
	state := &models.LocalState{
		Namespace: namespace,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	if err := state.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(state).Error
	if err != nil {
		return fmt.Errorf("failed to save local state %s: %w", namespace, err)
	}

	return nil
}

// Delete removes the document stored under namespace
func (r *StateRepository) Delete(ctx context.Context, namespace string) error {
	if err := r.db.WithContext(ctx).Where("namespace = ?", namespace).Delete(&models.LocalState{}).Error; err != nil {
		return fmt.Errorf("failed to delete local state %s: %w", namespace, err)
	}
	return nil
}
