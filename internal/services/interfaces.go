package services

import (
	"context"
	"time"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/pyxpay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentAPIInterface is the remote Pyx Pay surface used by the dashboard.
// *pyxpay.Client implements it.
type PaymentAPIInterface interface {
	Probe(ctx context.Context, creds pyxpay.Credentials) pyxpay.Result[struct{}]
	Balance(ctx context.Context, creds pyxpay.Credentials) pyxpay.Result[decimal.Decimal]
	Cashout(ctx context.Context, creds pyxpay.Credentials, req dto.CashoutRequest) pyxpay.Result[dto.Transaction]
	ConvertToForeign(ctx context.Context, creds pyxpay.Credentials, valor float64) pyxpay.Result[dto.ConversionResponse]
	ConvertToReal(ctx context.Context, creds pyxpay.Credentials, valor float64) pyxpay.Result[dto.ConversionResponse]
	CreatePix(ctx context.Context, creds pyxpay.Credentials, req dto.CreatePixRequest) pyxpay.Result[dto.Transaction]
	CreateBoleto(ctx context.Context, creds pyxpay.Credentials, req dto.CreateBoletoRequest) pyxpay.Result[dto.Transaction]
	CreateCard(ctx context.Context, creds pyxpay.Credentials, req dto.CreateCardRequest) pyxpay.Result[dto.CardLinkResponse]
	ListTransactions(ctx context.Context, creds pyxpay.Credentials, params dto.ListTransactionsParams) pyxpay.Result[dto.TransactionList]
	GetTransaction(ctx context.Context, creds pyxpay.Credentials, id int64) pyxpay.Result[dto.Transaction]
	ReschedulePostback(ctx context.Context, creds pyxpay.Credentials, id int64) pyxpay.Result[struct{}]
}

// KeyCipherInterface encrypts API keys at rest
type KeyCipherInterface interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

// SessionServiceInterface owns the operator's active credentials
type SessionServiceInterface interface {
	Login(ctx context.Context, apiKey, endpoint string) (*Session, error)
	LoginWithSavedKey(ctx context.Context, id uuid.UUID) (*Session, error)
	Logout(ctx context.Context) error
	Current() Session
	Credentials() (pyxpay.Credentials, bool)
	RequireCredentials() (pyxpay.Credentials, error)
	ValidateSession(sessionID string) error

	// Hydrate loads the persisted session once; StartHydration runs it in the background
	Hydrate(ctx context.Context) error
	StartHydration(ctx context.Context)
	WaitHydrated(ctx context.Context) error
	IsHydrated() bool
}

// TokenServiceInterface issues and validates dashboard session tokens
type TokenServiceInterface interface {
	GenerateSessionToken(session Session) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// SavedKeyServiceInterface manages the operator's saved API keys
type SavedKeyServiceInterface interface {
	Add(label, apiKey, endpoint string) (*dto.SavedKeyResponse, error)
	List() ([]dto.SavedKeyResponse, error)
	Update(id uuid.UUID, req dto.SavedKeyUpdateRequest) (*dto.SavedKeyResponse, error)
	Remove(id uuid.UUID) error
	Reveal(id uuid.UUID) (pyxpay.Credentials, error)
}

// WalletServiceInterface covers balance, cashout and currency conversion
type WalletServiceInterface interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	Cashout(ctx context.Context, req dto.CashoutFormRequest) (*dto.Transaction, error)
	ConvertToForeign(ctx context.Context, valor string) (*dto.ConversionResponse, error)
	ConvertToReal(ctx context.Context, valor string) (*dto.ConversionResponse, error)
}

// FilterStoreInterface holds the persisted server-side list filters
type FilterStoreInterface interface {
	Load(ctx context.Context) error
	Get() models.TransactionFilters
	Update(ctx context.Context, patch models.TransactionFilterPatch) (models.TransactionFilters, error)
	Reset(ctx context.Context) (models.TransactionFilters, error)
}

// ColumnPreferencesInterface holds the persisted column visibility
type ColumnPreferencesInterface interface {
	Load(ctx context.Context) error
	Visible() []models.ColumnKey
	Toggle(ctx context.Context, key models.ColumnKey) ([]models.ColumnKey, error)
	Set(ctx context.Context, keys []models.ColumnKey) ([]models.ColumnKey, error)
}

// TransactionListServiceInterface is the transaction list and filter controller
type TransactionListServiceInterface interface {
	Fetch(ctx context.Context) (*TransactionPage, error)
	Current() *TransactionPage
	Filters() models.TransactionFilters
	SetFilters(ctx context.Context, patch models.TransactionFilterPatch) (models.TransactionFilters, error)
	ApplyServerFilters(ctx context.Context, patch models.TransactionFilterPatch) (*TransactionPage, error)
	ClearFilters(ctx context.Context) (*TransactionPage, error)
	GoToPage(ctx context.Context, page int) (*TransactionPage, error)
	FindByIDOrHash(term string) (FindResult, error)
	Get(ctx context.Context, id int64) (*dto.Transaction, error)
	ReschedulePostback(ctx context.Context, id int64) error
}

// TransactionFormServiceInterface submits transaction creation forms
type TransactionFormServiceInterface interface {
	Submit(ctx context.Context, form *TransactionForm) FormOutcome
}

// DashboardServiceInterface builds the landing page overview
type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
