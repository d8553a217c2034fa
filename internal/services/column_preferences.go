package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/repositories"
)

var ErrUnknownColumn = errors.New("unknown column")

// ColumnPreferences holds which transaction table columns are visible
type ColumnPreferences struct {
	mu      sync.RWMutex
	saveMu  sync.Mutex
	visible []models.ColumnKey
	state   repositories.StateRepositoryInterface
	logger  *slog.Logger
}

// NewColumnPreferences starts with every column visible
func NewColumnPreferences(state repositories.StateRepositoryInterface, logger *slog.Logger) *ColumnPreferences {
	if logger == nil {
		logger = slog.Default()
	}
	return &ColumnPreferences{
		visible: models.DefaultVisibleColumns(),
		state:   state,
		logger:  logger,
	}
}

// Load restores the persisted columns, dropping unknown keys
func (cp *ColumnPreferences) Load(ctx context.Context) error {
	raw, err := cp.state.Load(ctx, models.NamespaceVisibleColumns)
	if err != nil {
		if errors.Is(err, repositories.ErrStateNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load visible columns: %w", err)
	}

	var keys []models.ColumnKey
	if err := json.Unmarshal(raw, &keys); err != nil {
		cp.logger.Warn("discarding persisted visible columns", "error", err)
		return nil
	}

	cp.mu.Lock()
	cp.visible = models.SanitizeColumns(keys)
	cp.mu.Unlock()

	return nil
}

// Visible returns the visible columns in display order of selection
func (cp *ColumnPreferences) Visible() []models.ColumnKey {
	cp.mu.RLock()
	defer cp.mu.RUnlock()
	return append([]models.ColumnKey(nil), cp.visible...)
}

// Toggle shows a hidden column or hides a visible one
func (cp *ColumnPreferences) Toggle(ctx context.Context, key models.ColumnKey) ([]models.ColumnKey, error) {
	if !models.IsKnownColumn(key) {
		return cp.Visible(), fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}

	cp.saveMu.Lock()
	defer cp.saveMu.Unlock()

	cp.mu.Lock()
	cp.visible = models.ToggleColumn(cp.visible, key)
	next := append([]models.ColumnKey(nil), cp.visible...)
	cp.mu.Unlock()

	cp.persist(ctx, next)
	return next, nil
}

// Set replaces the visible columns. Unknown keys are dropped; an empty set shows every column.
func (cp *ColumnPreferences) Set(ctx context.Context, keys []models.ColumnKey) ([]models.ColumnKey, error) {
	next := models.SanitizeColumns(keys)

	cp.saveMu.Lock()
	defer cp.saveMu.Unlock()

	cp.mu.Lock()
	cp.visible = next
	cp.mu.Unlock()

	cp.persist(ctx, next)
	return append([]models.ColumnKey(nil), next...), nil
}

func (cp *ColumnPreferences) persist(ctx context.Context, keys []models.ColumnKey) {
	payload, err := json.Marshal(keys)
	if err != nil {
		cp.logger.Error("failed to encode visible columns", "error", err)
		return
	}
	if err := cp.state.Save(ctx, models.NamespaceVisibleColumns, payload); err != nil {
		cp.logger.Warn("failed to persist visible columns", "error", err)
	}
}
