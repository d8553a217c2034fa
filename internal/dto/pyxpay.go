package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ---------- Requests ----------

type CashoutRequest struct {
	Valor       float64 `json:"valor"`
	NomeCliente string  `json:"nomeCliente"`
	TipoChave   int     `json:"tipoChave"`
	Chave       string  `json:"chave"`
}

type ConversionRequest struct {
	Valor float64 `json:"valor"`
}

type CreatePixRequest struct {
	Valor       float64 `json:"valor"`
	Nome        string  `json:"nome,omitempty"`
	Documento   string  `json:"documento,omitempty"`
	PostbackURL string  `json:"postbackUrl,omitempty"`
	Metadata    string  `json:"metadata,omitempty"`
	Vencimento  string  `json:"vencimento,omitempty"`
}

type CreateBoletoRequest struct {
	Valor       float64 `json:"valor"`
	Documento   string  `json:"documento"`
	Nome        string  `json:"nome,omitempty"`
	Vencimento  string  `json:"vencimento,omitempty"`
	PostbackURL string  `json:"postbackUrl,omitempty"`
	Metadata    string  `json:"metadata,omitempty"`
}

type CreateCardRequest struct {
	Valor       float64 `json:"valor"`
	Phone       string  `json:"phone,omitempty"`
	PostbackURL string  `json:"postbackUrl,omitempty"`
	Metadata    string  `json:"metadata,omitempty"`
}

// ListTransactionsParams become the query string of GET /transacao.
// Zero Page and PageSize are omitted; a nil Status means every status.
type ListTransactionsParams struct {
	PeriodStart string
	PeriodEnd   string
	Page        int
	PageSize    int
	Status      *int
}

// ---------- Responses ----------

type StatusHistoryEntry struct {
	Status    int    `json:"status"`
	UpdatedAt string `json:"dataAtualizacao"`
}

type TransactionUser struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Transaction mirrors TransacaoResponse. The identifier keeps the API's own spelling on the wire.
type Transaction struct {
	ID                   int64                `json:"identidicador"`
	NomeCliente          *string              `json:"nomeCliente"`
	DocumentoCliente     *string              `json:"documentoCliente"`
	DataCriacao          *string              `json:"dataCriacao"`
	DataUltimaAlteracao  *string              `json:"dataUltimaAlteracao"`
	ValorBruto           decimal.Decimal      `json:"valorBruto"`
	ValorRecebivel       decimal.Decimal      `json:"valorRecebivel"`
	BoletoCodigoDeBarra  *string              `json:"boletoCodigoDeBarra"`
	BoletoLinhaDigitavel *string              `json:"boletoLinhaDigitavel"`
	PixChavePagamento    *string              `json:"pixChavePagamento"`
	HashID               *string              `json:"hashId"`
	Estabelecimento      json.RawMessage      `json:"estabelecimento,omitempty" swaggertype:"object"`
	TipoOperacao         int                  `json:"tipoOperacao"`
	Status               int                  `json:"status"`
	HistoricoStatus      []StatusHistoryEntry `json:"historicoStatus"`
	Vencimento           *string              `json:"vencimento"`
	IsDebito             bool                 `json:"isDebito"`
	TipoChavePix         *string              `json:"tipoChaveTransferenciaPix"`
	ChavePix             *string              `json:"chaveTransferenciaPix"`
	NossaCotacao         decimal.NullDecimal  `json:"nossaCotacao"`
	ValorConvertidoMoeda decimal.NullDecimal  `json:"valorConvertidoMoeda"`
	Usuario              *TransactionUser     `json:"usuario"`
}

type TransactionList struct {
	Transacoes        []Transaction `json:"transacoes"`
	NumeroDePaginas   int           `json:"numeroDePaginas"`
	NumeroDeRegistros int           `json:"numeroDeRegistros"`
}

type CardLinkResponse struct {
	Link string `json:"link"`
}

type ConversionResponse struct {
	ValorOriginal   decimal.Decimal `json:"valorOriginal"`
	ValorConvertido decimal.Decimal `json:"valorConvertido"`
	MoedaOrigem     string          `json:"moedaOrigem"`
	MoedaDestino    string          `json:"moedaDestino"`
	Cotacao         decimal.Decimal `json:"cotacao"`
}

// ---------- Error body ----------

type APIFieldError struct {
	Field            string `json:"field"`
	ErrorDescription string `json:"errorDescription"`
}

// StringValue dereferences an optional API string
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
