package services

import (
	"context"
	"errors"
	"log/slog"

	"pyxpay-admin/internal/dto"

	"github.com/shopspring/decimal"
)

// RecentTransactionsLimit caps the overview's recent transaction list
const RecentTransactionsLimit = 10

// DashboardService builds the landing page from the wallet and the current list filters
type DashboardService struct {
	wallet WalletServiceInterface
	list   TransactionListServiceInterface
	logger *slog.Logger
}

// NewDashboardService creates a new overview builder
func NewDashboardService(wallet WalletServiceInterface, list TransactionListServiceInterface, logger *slog.Logger) DashboardServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{wallet: wallet, list: list, logger: logger}
}

// Overview reports balance, record count, page volume and recent transactions.
// A failure of one half is reported inline and does not hide the other.
func (s *DashboardService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	overview := &dto.OverviewResponse{
		Saldo:              decimal.Zero,
		VolumeTotal:        decimal.Zero,
		RecentTransactions: []dto.TransactionView{},
	}

	balance, err := s.wallet.Balance(ctx)
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return nil, err
	case err != nil:
		overview.BalanceError = err.Error()
	default:
		overview.Saldo = balance
	}
	overview.SaldoLabel = FormatBRL(overview.Saldo)

	page, err := s.list.Fetch(ctx)
	if errors.Is(err, ErrStaleResponse) {
		page, err = s.list.Current(), nil
	}
	if err != nil {
		overview.TransactionsError = err.Error()
	}

	if page != nil {
		overview.NumeroDeRegistros = page.TotalRecords
		for _, tx := range page.Transactions {
			overview.VolumeTotal = overview.VolumeTotal.Add(tx.ValorBruto)
		}

		recent := page.Transactions
		if len(recent) > RecentTransactionsLimit {
			recent = recent[:RecentTransactionsLimit]
		}
		overview.RecentTransactions = NewTransactionViews(recent)
	}
	overview.VolumeTotalLabel = FormatBRL(overview.VolumeTotal)

	return overview, nil
}
