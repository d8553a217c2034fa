package handlers

import (
	"context"
	"net/http"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// WalletHandler exposes balance, cashout and currency quotes
type WalletHandler struct {
	wallet services.WalletServiceInterface
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(wallet services.WalletServiceInterface) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// GetBalance returns the wallet balance
// @Summary Wallet balance
// @Tags Wallet
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.BalanceResponse}
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Pyx Pay request failed"
// @Router /wallet/balance [get]
func (h *WalletHandler) GetBalance(c echo.Context) error {
	saldo, err := h.wallet.Balance(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, dto.BalanceResponse{
		Saldo:     saldo,
		Formatted: services.FormatBRL(saldo),
	})
}

// Cashout sends a Pix cashout from the wallet
// @Summary Pix cashout
// @Tags Wallet
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CashoutFormRequest true "Cashout form"
// @Success 201 {object} SuccessResponse{data=dto.TransactionView}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid form"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Cashout rejected"
// @Router /wallet/cashout [post]
func (h *WalletHandler) Cashout(c echo.Context) error {
	var req dto.CashoutFormRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tx, err := h.wallet.Cashout(c.Request().Context(), req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    services.NewTransactionView(*tx),
		Message: "Cashout enviado",
	})
}

// ConvertToForeign quotes a BRL amount in the foreign currency
// @Summary Quote BRL to foreign currency
// @Tags Quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConversionFormRequest true "Amount"
// @Success 200 {object} SuccessResponse{data=dto.ConversionResponse}
// @Router /quotes/to-foreign [post]
func (h *WalletHandler) ConvertToForeign(c echo.Context) error {
	return h.convert(c, h.wallet.ConvertToForeign)
}

// ConvertToReal quotes a foreign amount in BRL
// @Summary Quote foreign currency to BRL
// @Tags Quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConversionFormRequest true "Amount"
// @Success 200 {object} SuccessResponse{data=dto.ConversionResponse}
// @Router /quotes/to-real [post]
func (h *WalletHandler) ConvertToReal(c echo.Context) error {
	return h.convert(c, h.wallet.ConvertToReal)
}

func (h *WalletHandler) convert(c echo.Context, quote func(ctx context.Context, valor string) (*dto.ConversionResponse, error)) error {
	var req dto.ConversionFormRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	conversion, err := quote(c.Request().Context(), req.Valor)
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, conversion)
}
