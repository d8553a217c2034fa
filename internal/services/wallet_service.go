package services

import (
	"context"
	"log/slog"
	"strings"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/validation"

	"github.com/shopspring/decimal"
)

// WalletService reads the balance and moves money out of the wallet
type WalletService struct {
	api     PaymentAPIInterface
	session SessionServiceInterface
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewWalletService creates a new wallet service
func NewWalletService(
	api PaymentAPIInterface,
	session SessionServiceInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) WalletServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &WalletService{api: api, session: session, logger: logger, metrics: metrics}
}

// Balance returns the wallet balance
func (s *WalletService) Balance(ctx context.Context) (decimal.Decimal, error) {
	creds, err := s.session.RequireCredentials()
	if err != nil {
		return decimal.Zero, err
	}

	result := s.api.Balance(ctx, creds)
	if !result.Success {
		return decimal.Zero, upstreamError(result)
	}

	if s.metrics != nil {
		s.metrics.RecordGauge("wallet_balance", result.Data.InexactFloat64(), nil)
	}
	return result.Data, nil
}

// Cashout validates the form and sends a Pix payout. Strings are trimmed before sending.
func (s *WalletService) Cashout(ctx context.Context, req dto.CashoutFormRequest) (*dto.Transaction, error) {
	amount, ok := validation.ParsePositiveDecimal(req.Valor)
	if !ok {
		return nil, ErrInvalidAmount
	}
	name := strings.TrimSpace(req.NomeCliente)
	if name == "" {
		return nil, ErrClientNameRequired
	}
	key := strings.TrimSpace(req.Chave)
	if key == "" {
		return nil, ErrPixKeyRequired
	}
	if !models.IsValidPixKeyType(req.TipoChave) {
		return nil, ErrInvalidPixKeyType
	}

	creds, err := s.session.RequireCredentials()
	if err != nil {
		return nil, err
	}

	result := s.api.Cashout(ctx, creds, dto.CashoutRequest{
		Valor:       amount.InexactFloat64(),
		NomeCliente: name,
		TipoChave:   req.TipoChave,
		Chave:       key,
	})
	if !result.Success {
		s.recordCashout("failed")
		s.logger.Warn("cashout rejected", "status", result.StatusCode, "error", result.Error)
		return nil, upstreamError(result)
	}

	s.recordCashout("success")
	s.logger.Info(
		"cashout requested",
		"transaction_id", result.Data.ID,
		"pix_key_type", models.PixKeyTypeLabel(req.TipoChave),
		"amount", amount.String(),
	)
	return &result.Data, nil
}

// ConvertToForeign converts a BRL amount
func (s *WalletService) ConvertToForeign(ctx context.Context, valor string) (*dto.ConversionResponse, error) {
	return s.convert(ctx, valor, s.api.ConvertToForeign)
}

// ConvertToReal converts a foreign amount to BRL
func (s *WalletService) ConvertToReal(ctx context.Context, valor string) (*dto.ConversionResponse, error) {
	return s.convert(ctx, valor, s.api.ConvertToReal)
}

type conversionCall func(ctx context.Context, creds pyxpay.Credentials, valor float64) pyxpay.Result[dto.ConversionResponse]

func (s *WalletService) convert(ctx context.Context, valor string, call conversionCall) (*dto.ConversionResponse, error) {
	amount, ok := validation.ParsePositiveDecimal(valor)
	if !ok {
		return nil, ErrInvalidAmount
	}

	creds, err := s.session.RequireCredentials()
	if err != nil {
		return nil, err
	}

	result := call(ctx, creds, amount.InexactFloat64())
	if !result.Success {
		return nil, upstreamError(result)
	}
	return &result.Data, nil
}

func (s *WalletService) recordCashout(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("cashout_total", map[string]string{"status": status})
}
