package pyxpay

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pyxpay-admin/internal/dto"

	"github.com/shopspring/decimal"
)

const (
	pathBalance = "/carteira/saldo"
	pathCashout = "/carteira/cashout"
)

// Probe checks credentials against the balance endpoint
func (c *Client) Probe(ctx context.Context, creds Credentials) Result[struct{}] {
	result := do[json.RawMessage](ctx, c, creds, http.MethodGet, pathBalance, pathBalance, nil)
	if !result.Success {
		return failAs[struct{}](result)
	}
	return Ok(struct{}{}, result.StatusCode)
}

// Balance returns the wallet balance. Shapes that carry no readable number yield zero.
func (c *Client) Balance(ctx context.Context, creds Credentials) Result[decimal.Decimal] {
	result := do[json.RawMessage](ctx, c, creds, http.MethodGet, pathBalance, pathBalance, nil)
	if !result.Success {
		return failAs[decimal.Decimal](result)
	}
	return Ok(ParseBalance(result.Data), result.StatusCode)
}

func (c *Client) Cashout(ctx context.Context, creds Credentials, req dto.CashoutRequest) Result[dto.Transaction] {
	return do[dto.Transaction](ctx, c, creds, http.MethodPost, pathCashout, pathCashout, req)
}

// ParseBalance accepts a bare number, {"saldo": n}, {"balance": n} or a numeric string
func ParseBalance(raw json.RawMessage) decimal.Decimal {
	if len(bytes.TrimSpace(raw)) == 0 {
		return decimal.Zero
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return decimal.Zero
	}

	if object, ok := value.(map[string]any); ok {
		if saldo, found := object["saldo"]; found {
			return toDecimal(saldo)
		}
		if balance, found := object["balance"]; found {
			return toDecimal(balance)
		}
		return decimal.Zero
	}

	return toDecimal(value)
}

func toDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero
		}
		if d, err := decimal.NewFromString(trimmed); err == nil {
			return d
		}
	case bool:
		if v {
			return decimal.NewFromInt(1)
		}
	}
	return decimal.Zero
}
