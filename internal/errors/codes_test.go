package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		SessionInvalidAPIKey,
		SessionNotAuthenticated,
		SessionMissingToken,
		SessionExpiredToken,
		SessionInvalidToken,
		SessionNotReady,
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidAmount,
		ValidationInvalidDate,
		ValidationInvalidPixKey,
		UpstreamRequestFailed,
		UpstreamStaleResponse,
		SavedKeyNotFound,
		SavedKeyInvalidID,
		TransactionNotFound,
		TransactionInvalidID,
		TransactionPageOutOfRange,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Session Invalid API Key",
			code:     SessionInvalidAPIKey,
			expected: "API Key inválida. Verifica tus credenciales.",
		},
		{
			name:     "Session Not Authenticated",
			code:     SessionNotAuthenticated,
			expected: "No autenticado",
		},
		{
			name:     "Invalid Amount",
			code:     ValidationInvalidAmount,
			expected: "Valor debe ser un número positivo",
		},
		{
			name:     "Saved Key Not Found",
			code:     SavedKeyNotFound,
			expected: "Saved API key not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
	}

	for _, code := range []ErrorCode{"INVALID_001", "", "AUTH_001", "SESSION_999"} {
		s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
	}
}

func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// every code must be registered, so the map and the constant list agree in size
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	s.Len(errorMessages, len(allCodes()))

	prefixes := []string{"SESSION_", "VALIDATION_", "UPSTREAM_", "SAVEDKEY_", "TRANSACTION_", "SYSTEM_"}
	for _, code := range allCodes() {
		message := GetErrorMessage(code)
		s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)

		hasPrefix := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				hasPrefix = true
			}
		}
		s.True(hasPrefix, "Error code %s has an unknown prefix", code)
	}
}
