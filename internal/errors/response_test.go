package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_DefaultMessage() {
	response := NewErrorResponse(SessionInvalidAPIKey, s.traceID)

	s.Equal("SESSION_001", response.Error.Code)
	s.Equal("API Key inválida. Verifica tus credenciales.", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_OptionsApplyInOrder() {
	response := NewErrorResponse(
		SavedKeyNotFound,
		s.traceID,
		WithMessage("first"),
		WithDetails("a", "b"),
		WithMessage("Chave 7 não encontrada"),
		WithDetails("id: 7"),
	)

	s.Equal("SAVEDKEY_001", response.Error.Code)
	s.Equal("Chave 7 não encontrada", response.Error.Message)
	s.Equal([]string{"id: 7"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedByField() {
	response := NewValidationError(map[string]string{
		"valor":     "must be greater than 0",
		"documento": "is required",
		"tipoChave": "must be one of 1 2 3 4",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal([]string{
		"documento: is required",
		"tipoChave: must be one of 1 2 3 4",
		"valor: must be greater than 0",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_NoFields() {
	response := NewValidationError(nil, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewUpstreamError_KeepsRemoteMessage() {
	response := NewUpstreamError("Saldo insuficiente", http.StatusUnprocessableEntity, s.traceID)

	s.Equal("UPSTREAM_001", response.Error.Code)
	s.Equal("Saldo insuficiente", response.Error.Message)
	s.Equal([]string{"upstream_status: 422"}, response.Error.Details)
	s.Equal(http.StatusBadGateway, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewUpstreamError_ConnectionFailureHasNoStatus() {
	response := NewUpstreamError("Error de conexión", 0, s.traceID)

	s.Equal("Error de conexión", response.Error.Message)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	cause := errors.New("SQL error: table 'saved_api_keys' does not exist at /var/lib/data")

	response, original := WrapSystemError(cause, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "saved_api_keys")
	s.Empty(response.Error.Details)
	s.Same(cause, original)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestJSONShape() {
	payload, err := json.Marshal(NewErrorResponse(TransactionNotFound, s.traceID, WithDetails("id: 12345")))
	s.Require().NoError(err)

	var body map[string]map[string]any
	s.Require().NoError(json.Unmarshal(payload, &body))
	s.Equal("TRANSACTION_001", body["error"]["code"])
	s.Equal(s.traceID, body["error"]["trace_id"])
	s.Equal([]any{"id: 12345"}, body["error"]["details"])
	s.Contains(body["error"], "message")

	payload, err = json.Marshal(NewErrorResponse(SessionNotAuthenticated, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(payload), "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	cases := map[int][]ErrorCode{
		http.StatusBadRequest: {
			ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange,
			ValidationInvalidAmount, ValidationInvalidDate, ValidationInvalidPixKey,
			SavedKeyInvalidID, TransactionInvalidID, TransactionPageOutOfRange,
		},
		http.StatusUnauthorized: {
			SessionInvalidAPIKey, SessionNotAuthenticated, SessionMissingToken,
			SessionExpiredToken, SessionInvalidToken,
		},
		http.StatusNotFound:            {SavedKeyNotFound, TransactionNotFound},
		http.StatusConflict:            {UpstreamStaleResponse},
		http.StatusTooManyRequests:     {SystemRateLimitExceeded},
		http.StatusBadGateway:          {UpstreamRequestFailed},
		http.StatusServiceUnavailable:  {SessionNotReady, SystemServiceUnavailable},
		http.StatusInternalServerError: {SystemInternalError, SystemDatabaseError, SystemConfigurationError, SystemUnexpectedError, "UNKNOWN_999"},
	}

	for status, codes := range cases {
		for _, code := range codes {
			s.Equal(status, GetHTTPStatus(code), string(code))
		}
	}
}
