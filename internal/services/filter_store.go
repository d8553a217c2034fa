package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/repositories"
)

// FilterStore holds the server-side transaction filters and persists every change
type FilterStore struct {
	mu      sync.RWMutex
	saveMu  sync.Mutex
	filters models.TransactionFilters
	state   repositories.StateRepositoryInterface
	logger  *slog.Logger
	now     func() time.Time
}

// NewFilterStore creates a store seeded with the default 30 day window
func NewFilterStore(state repositories.StateRepositoryInterface, logger *slog.Logger) *FilterStore {
	return newFilterStoreAt(state, logger, time.Now)
}

func newFilterStoreAt(state repositories.StateRepositoryInterface, logger *slog.Logger, now func() time.Time) *FilterStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilterStore{
		filters: models.DefaultTransactionFilters(now()),
		state:   state,
		logger:  logger,
		now:     now,
	}
}

// Load restores persisted filters. Missing or invalid state keeps the defaults.
func (fs *FilterStore) Load(ctx context.Context) error {
	raw, err := fs.state.Load(ctx, models.NamespaceTransactions)
	if err != nil {
		if errors.Is(err, repositories.ErrStateNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load transaction filters: %w", err)
	}

	restored := models.DefaultTransactionFilters(fs.now())
	if err := json.Unmarshal(raw, &restored); err != nil {
		fs.logger.Warn("discarding persisted transaction filters", "error", err)
		return nil
	}
	restored = restored.Normalize()
	if err := restored.Validate(); err != nil {
		fs.logger.Warn("discarding persisted transaction filters", "error", err)
		return nil
	}

	fs.mu.Lock()
	fs.filters = restored
	fs.mu.Unlock()

	return nil
}

// Get returns the current filters
func (fs *FilterStore) Get() models.TransactionFilters {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.filters
}

// Update merges patch, validates the result and persists it
func (fs *FilterStore) Update(ctx context.Context, patch models.TransactionFilterPatch) (models.TransactionFilters, error) {
	fs.saveMu.Lock()
	defer fs.saveMu.Unlock()

	fs.mu.Lock()
	next := fs.filters.Apply(patch)
	if err := next.Validate(); err != nil {
		fs.mu.Unlock()
		return fs.Get(), err
	}
	fs.filters = next
	fs.mu.Unlock()

	fs.persist(ctx, next)
	return next, nil
}

// Reset restores the default window and persists it
func (fs *FilterStore) Reset(ctx context.Context) (models.TransactionFilters, error) {
	next := models.DefaultTransactionFilters(fs.now())

	fs.saveMu.Lock()
	defer fs.saveMu.Unlock()

	fs.mu.Lock()
	fs.filters = next
	fs.mu.Unlock()

	fs.persist(ctx, next)
	return next, nil
}

// persist writes the filters. Failures are logged and the in-memory value stays authoritative.
func (fs *FilterStore) persist(ctx context.Context, filters models.TransactionFilters) {
	payload, err := json.Marshal(filters)
	if err != nil {
		fs.logger.Error("failed to encode transaction filters", "error", err)
		return
	}
	if err := fs.state.Save(ctx, models.NamespaceTransactions, payload); err != nil {
		fs.logger.Warn("failed to persist transaction filters", "error", err)
	}
}
