package pyxpay

import (
	"context"
	"net/http"

	"pyxpay-admin/internal/dto"
)

const (
	pathConvertToForeign = "/cotacao/converter-moeda"
	pathConvertToReal    = "/cotacao/converter-real"
)

// ConvertToForeign converts a BRL amount to the foreign currency
func (c *Client) ConvertToForeign(ctx context.Context, creds Credentials, valor float64) Result[dto.ConversionResponse] {
	return do[dto.ConversionResponse](ctx, c, creds, http.MethodPost, pathConvertToForeign, pathConvertToForeign, dto.ConversionRequest{Valor: valor})
}

// ConvertToReal converts a foreign currency amount to BRL
func (c *Client) ConvertToReal(ctx context.Context, creds Credentials, valor float64) Result[dto.ConversionResponse] {
	return do[dto.ConversionResponse](ctx, c, creds, http.MethodPost, pathConvertToReal, pathConvertToReal, dto.ConversionRequest{Valor: valor})
}
