package models

import "strconv"

// Badge variants used to render transaction status
const (
	BadgeDefault     = "default"
	BadgeSecondary   = "secondary"
	BadgeDestructive = "destructive"
	BadgeOutline     = "outline"
)

// Transaction status codes reported by the Pyx Pay API
const (
	StatusBoletoRegistrado    = 1
	StatusPago                = 2
	StatusBoletoLiquidado     = 3
	StatusCancelado           = 4
	StatusEmProcesso          = 5
	StatusAutorizado          = 6
	StatusAguardandoPagamento = 7
	StatusEstornado           = 8
	StatusAguardandoEstorno   = 9
	StatusRecusado            = 10
	StatusDevolvido           = 11
	StatusAnalise             = 12
	StatusRevisaoPagamento    = 13
	StatusSuspenso            = 14
	StatusEmDisputa           = 15
	StatusTransferido         = 16
	StatusNaoPago             = 17
	StatusFinalizado          = 18
	StatusConfirmado          = 19
	StatusRejeitado           = 20
)

// Operation types reported by the Pyx Pay API
const (
	OperationBoleto                  = 1
	OperationCartaoDebito            = 2
	OperationCartaoCredito           = 3
	OperationPix                     = 4
	OperationDeposito                = 5
	OperationJuros                   = 6
	OperationTransferenciaExternaPix = 7
	OperationTransferenciaInterna    = 8
	OperationPagamentoBoleto         = 9
	OperationPagamentoPix            = 10
	OperationTransferenciaExternaTED = 11
	OperationDepositoUSDT            = 12
	OperationDepositoPeso            = 13
)

// Pix key types accepted by the cashout endpoint
const (
	PixKeyTelefone       = 1
	PixKeyEmail          = 2
	PixKeyDocumento      = 3
	PixKeyChaveAleatoria = 4
)

var statusLabels = map[int]string{
	StatusBoletoRegistrado:    "Boleto Registrado",
	StatusPago:                "Pago",
	StatusBoletoLiquidado:     "Boleto Liquidado/Compensado",
	StatusCancelado:           "Cancelado",
	StatusEmProcesso:          "Em Processo",
	StatusAutorizado:          "Autorizado",
	StatusAguardandoPagamento: "Aguardando Pagamento",
	StatusEstornado:           "Estornado",
	StatusAguardandoEstorno:   "Aguardando Estorno",
	StatusRecusado:            "Recusado",
	StatusDevolvido:           "Devolvido",
	StatusAnalise:             "Análise",
	StatusRevisaoPagamento:    "Revisão Pagamento",
	StatusSuspenso:            "Suspenso",
	StatusEmDisputa:           "Em Disputa",
	StatusTransferido:         "Transferido",
	StatusNaoPago:             "Não Pago",
	StatusFinalizado:          "Finalizado",
	StatusConfirmado:          "Confirmado",
	StatusRejeitado:           "Rejeitado",
}

var statusVariants = map[int]string{
	StatusBoletoRegistrado:    BadgeOutline,
	StatusPago:                BadgeDefault,
	StatusBoletoLiquidado:     BadgeDefault,
	StatusCancelado:           BadgeDestructive,
	StatusEmProcesso:          BadgeSecondary,
	StatusAutorizado:          BadgeDefault,
	StatusAguardandoPagamento: BadgeOutline,
	StatusEstornado:           BadgeDestructive,
	StatusAguardandoEstorno:   BadgeSecondary,
	StatusRecusado:            BadgeDestructive,
	StatusDevolvido:           BadgeDestructive,
	StatusAnalise:             BadgeSecondary,
	StatusRevisaoPagamento:    BadgeSecondary,
	StatusSuspenso:            BadgeDestructive,
	StatusEmDisputa:           BadgeDestructive,
	StatusTransferido:         BadgeDefault,
	StatusNaoPago:             BadgeDestructive,
	StatusFinalizado:          BadgeDefault,
	StatusConfirmado:          BadgeDefault,
	StatusRejeitado:           BadgeDestructive,
}

var operationLabels = map[int]string{
	OperationBoleto:                  "Boleto",
	OperationCartaoDebito:            "Cartão Débito",
	OperationCartaoCredito:           "Cartão Crédito",
	OperationPix:                     "Pix",
	OperationDeposito:                "Depósito",
	OperationJuros:                   "Juros",
	OperationTransferenciaExternaPix: "Transferência Externa Pix",
	OperationTransferenciaInterna:    "Transferência Interna",
	OperationPagamentoBoleto:         "Pagamento Boleto",
	OperationPagamentoPix:            "Pagamento Pix",
	OperationTransferenciaExternaTED: "Transferência Externa TED/TEV",
	OperationDepositoUSDT:            "Depósito USDT",
	OperationDepositoPeso:            "Depósito Peso",
}

var pixKeyLabels = map[int]string{
	PixKeyTelefone:       "Telefone",
	PixKeyEmail:          "Email",
	PixKeyDocumento:      "Documento",
	PixKeyChaveAleatoria: "Chave Aleatória",
}

// CatalogEntry is a code/label pair used to populate selectors
type CatalogEntry struct {
	Code    int    `json:"code" yaml:"code"`
	Label   string `json:"label" yaml:"label"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// StatusLabel returns the display label for a status code, or the code itself when unknown
func StatusLabel(code int) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return strconv.Itoa(code)
}

// StatusVariant returns the badge variant for a status code
func StatusVariant(code int) string {
	if variant, ok := statusVariants[code]; ok {
		return variant
	}
	return BadgeOutline
}

// IsKnownStatus reports whether code is part of the status table
func IsKnownStatus(code int) bool {
	_, ok := statusLabels[code]
	return ok
}

// OperationTypeLabel returns the display label for an operation type, or the code itself when unknown
func OperationTypeLabel(code int) string {
	if label, ok := operationLabels[code]; ok {
		return label
	}
	return strconv.Itoa(code)
}

// IsKnownOperationType reports whether code is part of the operation type table
func IsKnownOperationType(code int) bool {
	_, ok := operationLabels[code]
	return ok
}

// PixKeyTypeLabel returns the display label for a Pix key type, or the code itself when unknown
func PixKeyTypeLabel(code int) string {
	if label, ok := pixKeyLabels[code]; ok {
		return label
	}
	return strconv.Itoa(code)
}

// IsValidPixKeyType reports whether code is an accepted Pix key type
func IsValidPixKeyType(code int) bool {
	_, ok := pixKeyLabels[code]
	return ok
}

// StatusCatalog lists every status in code order
func StatusCatalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(statusLabels))
	for code := StatusBoletoRegistrado; code <= StatusRejeitado; code++ {
		entries = append(entries, CatalogEntry{Code: code, Label: statusLabels[code], Variant: statusVariants[code]})
	}
	return entries
}

// OperationTypeCatalog lists every operation type in code order
func OperationTypeCatalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(operationLabels))
	for code := OperationBoleto; code <= OperationDepositoPeso; code++ {
		entries = append(entries, CatalogEntry{Code: code, Label: operationLabels[code]})
	}
	return entries
}

// PixKeyTypeCatalog lists every Pix key type in code order
func PixKeyTypeCatalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(pixKeyLabels))
	for code := PixKeyTelefone; code <= PixKeyChaveAleatoria; code++ {
		entries = append(entries, CatalogEntry{Code: code, Label: pixKeyLabels[code]})
	}
	return entries
}
