package pyxpay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pyxpay-admin/internal/dto"
)

const (
	pathTransactions    = "/transacao"
	pathPix             = "/transacao/pix"
	pathBoleto          = "/transacao/boleto"
	pathCard            = "/transacao/cartao"
	templateTransaction = "/transacao/{id}"
	templatePostback    = "/transacao/{id}/postback"
	queryPeriodStart    = "PeriodoInicio"
	queryPeriodEnd      = "PeriodoFim"
	queryPage           = "Pagina"
	queryPageSize       = "RegistrosPorPagina"
	queryStatus         = "Status"
)

func (c *Client) CreatePix(ctx context.Context, creds Credentials, req dto.CreatePixRequest) Result[dto.Transaction] {
	return do[dto.Transaction](ctx, c, creds, http.MethodPost, pathPix, pathPix, req)
}

func (c *Client) CreateBoleto(ctx context.Context, creds Credentials, req dto.CreateBoletoRequest) Result[dto.Transaction] {
	return do[dto.Transaction](ctx, c, creds, http.MethodPost, pathBoleto, pathBoleto, req)
}

func (c *Client) CreateCard(ctx context.Context, creds Credentials, req dto.CreateCardRequest) Result[dto.CardLinkResponse] {
	return do[dto.CardLinkResponse](ctx, c, creds, http.MethodPost, pathCard, pathCard, req)
}

// ListTransactions fetches one page. A null list in the body becomes an empty slice.
func (c *Client) ListTransactions(ctx context.Context, creds Credentials, params dto.ListTransactionsParams) Result[dto.TransactionList] {
	result := do[dto.TransactionList](ctx, c, creds, http.MethodGet, pathTransactions+"?"+ListQuery(params).Encode(), pathTransactions, nil)
	if result.Success && result.Data.Transacoes == nil {
		result.Data.Transacoes = []dto.Transaction{}
	}
	return result
}

func (c *Client) GetTransaction(ctx context.Context, creds Credentials, id int64) Result[dto.Transaction] {
	return do[dto.Transaction](ctx, c, creds, http.MethodGet, fmt.Sprintf("/transacao/%d", id), templateTransaction, nil)
}

func (c *Client) ReschedulePostback(ctx context.Context, creds Credentials, id int64) Result[struct{}] {
	return do[struct{}](ctx, c, creds, http.MethodPut, fmt.Sprintf("/transacao/%d/postback", id), templatePostback, nil)
}

// ListQuery renders list parameters with the API's query names
func ListQuery(params dto.ListTransactionsParams) url.Values {
	query := url.Values{}
	query.Set(queryPeriodStart, params.PeriodStart)
	query.Set(queryPeriodEnd, params.PeriodEnd)
	if params.Page > 0 {
		query.Set(queryPage, strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set(queryPageSize, strconv.Itoa(params.PageSize))
	}
	if params.Status != nil {
		query.Set(queryStatus, strconv.Itoa(*params.Status))
	}
	return query
}
