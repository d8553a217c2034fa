package dto

import (
	"time"

	"pyxpay-admin/internal/models"

	"github.com/shopspring/decimal"
)

// Session Request DTOs

// LoginRequest contains the API key the operator authenticates with
type LoginRequest struct {
	APIKey   string `json:"apiKey" validate:"required"`
	Endpoint string `json:"endpoint" validate:"omitempty,url"`
}

// Session Response DTOs

// SessionResponse is returned by login and carries the dashboard session token
type SessionResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"tokenType"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Session   SessionInfo `json:"session"`
}

// SessionInfo describes the active credentials without revealing the key
type SessionInfo struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	Endpoint        string    `json:"endpoint"`
	MaskedAPIKey    string    `json:"maskedApiKey,omitempty"`
	SessionID       string    `json:"sessionId,omitempty"`
	AuthenticatedAt time.Time `json:"authenticatedAt,omitempty"`
}

// Saved key DTOs

// SavedKeyRequest adds a key to the operator's saved list
type SavedKeyRequest struct {
	Label    string `json:"label" validate:"required,max=100"`
	APIKey   string `json:"apiKey" validate:"required"`
	Endpoint string `json:"endpoint" validate:"omitempty,url"`
}

// SavedKeyUpdateRequest changes any subset of a saved key
type SavedKeyUpdateRequest struct {
	Label    *string `json:"label,omitempty" validate:"omitempty,min=1,max=100"`
	APIKey   *string `json:"apiKey,omitempty" validate:"omitempty,min=1"`
	Endpoint *string `json:"endpoint,omitempty" validate:"omitempty,url"`
}

// SavedKeyResponse is a saved key with its secret masked
type SavedKeyResponse struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	MaskedAPIKey string    `json:"maskedApiKey"`
	Endpoint     string    `json:"endpoint"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Wallet DTOs

// CashoutFormRequest is the operator's cashout form as typed
type CashoutFormRequest struct {
	Valor       string `json:"valor" validate:"required,positive_decimal"`
	NomeCliente string `json:"nomeCliente" validate:"required"`
	TipoChave   int    `json:"tipoChave" validate:"pix_key_type"`
	Chave       string `json:"chave" validate:"required"`
}

// ConversionFormRequest asks for a currency conversion of valor
type ConversionFormRequest struct {
	Valor string `json:"valor" validate:"required,positive_decimal"`
}

// BalanceResponse contains the wallet balance
type BalanceResponse struct {
	Saldo     decimal.Decimal `json:"saldo"`
	Formatted string          `json:"formatted"`
}

// Transaction form DTOs

// TransactionFormRequest holds the fields of the create-transaction form for every kind
type TransactionFormRequest struct {
	Kind        string `json:"kind" validate:"omitempty,form_kind"`
	Valor       string `json:"valor"`
	Nome        string `json:"nome,omitempty"`
	Documento   string `json:"documento,omitempty"`
	Phone       string `json:"phone,omitempty"`
	PostbackURL string `json:"postbackUrl,omitempty"`
	Metadata    string `json:"metadata,omitempty"`
	// Vencimento is a local date-time (YYYY-MM-DDTHH:MM) or RFC3339 value
	Vencimento string `json:"vencimento,omitempty"`
}

// FormResultResponse reports the outcome of a submitted form
type FormResultResponse struct {
	State       string           `json:"state"`
	Kind        string           `json:"kind"`
	Error       string           `json:"error,omitempty"`
	Artifact    string           `json:"artifact,omitempty"`
	Link        string           `json:"link,omitempty"`
	Transaction *TransactionView `json:"transaction,omitempty"`
}

// Transaction list DTOs

// FilterPatchRequest updates the server-side list filters
type FilterPatchRequest struct {
	PeriodStart *string `json:"periodoInicio,omitempty" validate:"omitempty,local_iso"`
	PeriodEnd   *string `json:"periodoFim,omitempty" validate:"omitempty,local_iso"`
	PageSize    *int    `json:"registrosPorPagina,omitempty" validate:"omitempty,page_size"`
	Status      *int    `json:"statusFilter,omitempty" validate:"omitempty,min=0,max=20"`
	ClearStatus bool    `json:"clearStatus,omitempty"`
}

// TransactionView is a transaction enriched with display labels
type TransactionView struct {
	Transaction
	StatusLabel         string `json:"statusLabel"`
	StatusVariant       string `json:"statusVariant"`
	OperationTypeLabel  string `json:"operationTypeLabel"`
	ValorBrutoLabel     string `json:"valorBrutoLabel"`
	ValorRecebivelLabel string `json:"valorRecebivelLabel"`
	DataCriacaoLabel    string `json:"dataCriacaoLabel"`
}

// TransactionPageResponse is one fetched page after client-side refinement
type TransactionPageResponse struct {
	Transacoes        []TransactionView `json:"transacoes"`
	NumeroDePaginas   int               `json:"numeroDePaginas"`
	NumeroDeRegistros int               `json:"numeroDeRegistros"`
	// Fetched is the size of the page before refinement
	Fetched        int                       `json:"fetched"`
	Filters        models.TransactionFilters `json:"filters"`
	ActiveFilters  int                       `json:"activeFilters"`
	PageNumbers    []string                  `json:"pageNumbers"`
	VisibleColumns []string                  `json:"visibleColumns"`
}

// FindResponse is the navigation target of an id or hash search
type FindResponse struct {
	Found bool   `json:"found"`
	// ID is set only on a match; 0 is a valid id
	ID    *int64 `json:"id,omitempty"`
	Path  string `json:"path,omitempty"`
}

// PostbackResponse acknowledges a rescheduled postback
type PostbackResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// OverviewResponse summarises the wallet and the current filter window
type OverviewResponse struct {
	Saldo              decimal.Decimal   `json:"saldo"`
	SaldoLabel         string            `json:"saldoLabel"`
	BalanceError       string            `json:"balanceError,omitempty"`
	NumeroDeRegistros  int               `json:"numeroDeRegistros"`
	VolumeTotal        decimal.Decimal   `json:"volumeTotal"`
	VolumeTotalLabel   string            `json:"volumeTotalLabel"`
	RecentTransactions []TransactionView `json:"recentTransactions"`
	TransactionsError  string            `json:"transactionsError,omitempty"`
}

// Preference DTOs

// ColumnsRequest either toggles one column or replaces the visible set
type ColumnsRequest struct {
	Toggle  string   `json:"toggle,omitempty" validate:"omitempty,column_key"`
	Columns []string `json:"columns,omitempty" validate:"omitempty,dive,column_key"`
}

// ColumnsResponse lists the table columns and which are visible
type ColumnsResponse struct {
	Columns []ColumnState `json:"columns"`
}

// ColumnState is one table column and its visibility
type ColumnState struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}
