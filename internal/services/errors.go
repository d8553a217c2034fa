package services

import (
	"errors"

	"pyxpay-admin/internal/pyxpay"
)

// Operator-facing validation messages are shown verbatim next to the form
var (
	ErrAPIKeyRequired     = errors.New("API Key es requerida")
	ErrInvalidAmount      = errors.New("Valor debe ser un número positivo")
	ErrClientNameRequired = errors.New("Nombre del cliente es requerido")
	ErrPixKeyRequired     = errors.New("Clave Pix es requerida")
	ErrInvalidPixKeyType  = errors.New("Tipo de clave Pix inválido")
	ErrDocumentRequired   = errors.New("Documento es requerido para boleto")
	ErrInvalidFormKind    = errors.New("Tipo de transacción inválido")
	ErrInvalidDueDate     = errors.New("Fecha de vencimiento inválida")
)

var (
	ErrInvalidAPIKey       = errors.New("API Key inválida. Verifica tus credenciales.")
	ErrNotAuthenticated    = errors.New("No autenticado")
	ErrSessionNotReady     = errors.New("session is still loading")
	ErrSessionReplaced     = errors.New("session has been replaced or ended")
	ErrStaleResponse       = errors.New("response superseded by a newer request")
	ErrPageOutOfRange      = errors.New("page is outside the fetched page range")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// UpstreamError carries a failed API call's message verbatim
type UpstreamError struct {
	Message    string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// upstreamError converts a failed result into an error
func upstreamError[T any](result pyxpay.Result[T]) error {
	return &UpstreamError{Message: result.Error, StatusCode: result.StatusCode}
}

// AsUpstreamError unwraps an UpstreamError from err
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}
	return nil, false
}
