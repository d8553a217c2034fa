package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/pyxpay"
)

// TransactionDetailPath is the navigation target of a transaction detail view
const TransactionDetailPath = "/transacoes/%d"

// TransactionPage is one fetched page of transactions and the filters that produced it
type TransactionPage struct {
	Transactions []dto.Transaction
	TotalPages   int
	TotalRecords int
	Filters      models.TransactionFilters
	Generation   uint64
	FetchedAt    time.Time
}

// FindResult is where an id or hash search navigates
type FindResult struct {
	Found bool
	ID    int64
	Path  string
}

// TransactionListService fetches transaction pages with the persisted filters.
// Every fetch takes a generation number; a response that is no longer the latest is dropped.
type TransactionListService struct {
	api     PaymentAPIInterface
	session SessionServiceInterface
	filters FilterStoreInterface
	logger  *slog.Logger
	metrics MetricsRecorderInterface

	generation atomic.Uint64

	mu      sync.RWMutex
	current *TransactionPage
}

// NewTransactionListService creates a new transaction list controller
func NewTransactionListService(
	api PaymentAPIInterface,
	session SessionServiceInterface,
	filters FilterStoreInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) *TransactionListService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionListService{
		api:     api,
		session: session,
		filters: filters,
		logger:  logger,
		metrics: metrics,
	}
}

// Fetch requests the page described by the current filters
func (s *TransactionListService) Fetch(ctx context.Context) (*TransactionPage, error) {
	creds, err := s.session.RequireCredentials()
	if err != nil {
		return nil, err
	}

	generation := s.generation.Add(1)
	filters := s.filters.Get()

	result := s.api.ListTransactions(ctx, creds, dto.ListTransactionsParams{
		PeriodStart: filters.PeriodStart,
		PeriodEnd:   filters.PeriodEnd,
		Page:        filters.Page,
		PageSize:    filters.PageSize,
		Status:      filters.Status,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation.Load() {
		s.logger.Debug("discarding superseded transaction page", "generation", generation, "latest", s.generation.Load())
		s.record("stale")
		return nil, ErrStaleResponse
	}

	if !result.Success {
		s.record("failed")
		return nil, upstreamError(result)
	}

	page := &TransactionPage{
		Transactions: result.Data.Transacoes,
		TotalPages:   result.Data.NumeroDePaginas,
		TotalRecords: result.Data.NumeroDeRegistros,
		Filters:      filters,
		Generation:   generation,
		FetchedAt:    time.Now(),
	}
	s.current = page
	s.record("success")

	return page.clone(), nil
}

// Current returns the last accepted page, or nil before the first fetch
func (s *TransactionListService) Current() *TransactionPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.clone()
}

// Filters returns the current server-side filters
func (s *TransactionListService) Filters() models.TransactionFilters {
	return s.filters.Get()
}

// SetFilters updates the filters without fetching
func (s *TransactionListService) SetFilters(ctx context.Context, patch models.TransactionFilterPatch) (models.TransactionFilters, error) {
	return s.filters.Update(ctx, patch)
}

// ApplyServerFilters updates the filters, returns to page 1 and fetches
func (s *TransactionListService) ApplyServerFilters(ctx context.Context, patch models.TransactionFilterPatch) (*TransactionPage, error) {
	first := 1
	patch.Page = &first
	if _, err := s.filters.Update(ctx, patch); err != nil {
		return nil, err
	}
	return s.Fetch(ctx)
}

// ClearFilters drops the status filter, returns to page 1 and fetches
func (s *TransactionListService) ClearFilters(ctx context.Context) (*TransactionPage, error) {
	first := 1
	if _, err := s.filters.Update(ctx, models.TransactionFilterPatch{Page: &first, ClearStatus: true}); err != nil {
		return nil, err
	}
	return s.Fetch(ctx)
}

// GoToPage fetches page p. Pages outside 1..numeroDePaginas of the last page are rejected without a request.
func (s *TransactionListService) GoToPage(ctx context.Context, page int) (*TransactionPage, error) {
	totalPages := 0
	if current := s.Current(); current != nil {
		totalPages = current.TotalPages
	}
	if page < 1 || page > totalPages {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, page, totalPages)
	}

	if _, err := s.filters.Update(ctx, models.TransactionFilterPatch{Page: &page}); err != nil {
		return nil, err
	}
	return s.Fetch(ctx)
}

// FindByIDOrHash resolves a search term. A canonical decimal integer, zero and negatives included,
// navigates straight to that id;
// anything else must equal a hashId on the current page, ignoring case. A miss is not an error.
func (s *TransactionListService) FindByIDOrHash(term string) (FindResult, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return FindResult{}, nil
	}

	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil && strconv.FormatInt(id, 10) == trimmed {
		return FindResult{Found: true, ID: id, Path: fmt.Sprintf(TransactionDetailPath, id)}, nil
	}

	current := s.Current()
	if current == nil {
		return FindResult{}, nil
	}
	for _, tx := range current.Transactions {
		if tx.HashID != nil && strings.EqualFold(*tx.HashID, trimmed) {
			return FindResult{Found: true, ID: tx.ID, Path: fmt.Sprintf(TransactionDetailPath, tx.ID)}, nil
		}
	}

	return FindResult{}, nil
}

// Get fetches one transaction
func (s *TransactionListService) Get(ctx context.Context, id int64) (*dto.Transaction, error) {
	creds, err := s.session.RequireCredentials()
	if err != nil {
		return nil, err
	}

	result := s.api.GetTransaction(ctx, creds, id)
	if !result.Success {
		return nil, transactionError(result)
	}
	return &result.Data, nil
}

// ReschedulePostback asks the API to resend the status webhook of a transaction
func (s *TransactionListService) ReschedulePostback(ctx context.Context, id int64) error {
	creds, err := s.session.RequireCredentials()
	if err != nil {
		return err
	}

	result := s.api.ReschedulePostback(ctx, creds, id)
	if !result.Success {
		return transactionError(result)
	}

	s.logger.Info("postback rescheduled", "transaction_id", id)
	return nil
}

// transactionError marks an upstream 404 as ErrTransactionNotFound and keeps the upstream message
func transactionError[T any](result pyxpay.Result[T]) error {
	if result.StatusCode == http.StatusNotFound {
		return errors.Join(ErrTransactionNotFound, upstreamError(result))
	}
	return upstreamError(result)
}

func (s *TransactionListService) record(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("transaction_list_fetch", map[string]string{"status": status})
}

func (p *TransactionPage) clone() *TransactionPage {
	copied := *p
	copied.Transactions = append([]dto.Transaction(nil), p.Transactions...)
	return &copied
}

// Refine narrows an already fetched page in memory and keeps the original order.
// The search matches the decimal id, client name and hashId ignoring case, and the
// document as typed; the operation type must match exactly.
func Refine(transactions []dto.Transaction, refinement models.TransactionRefinement) []dto.Transaction {
	refined := make([]dto.Transaction, 0, len(transactions))
	query := strings.ToLower(refinement.Search)
	searching := strings.TrimSpace(refinement.Search) != ""

	for _, tx := range transactions {
		if searching && !matchesSearch(tx, query) {
			continue
		}
		if refinement.OperationType != nil && tx.TipoOperacao != *refinement.OperationType {
			continue
		}
		refined = append(refined, tx)
	}

	return refined
}

func matchesSearch(tx dto.Transaction, query string) bool {
	return strings.Contains(strconv.FormatInt(tx.ID, 10), query) ||
		strings.Contains(strings.ToLower(dto.StringValue(tx.NomeCliente)), query) ||
		strings.Contains(dto.StringValue(tx.DocumentoCliente), query) ||
		strings.Contains(strings.ToLower(dto.StringValue(tx.HashID)), query)
}
