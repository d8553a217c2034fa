package errors

// ErrorCode represents a standardized error code used throughout the dashboard API
type ErrorCode string

// Session error codes (SESSION_*)
const (
	SessionInvalidAPIKey    ErrorCode = "SESSION_001"
	SessionNotAuthenticated ErrorCode = "SESSION_002"
	SessionMissingToken     ErrorCode = "SESSION_003"
	SessionExpiredToken     ErrorCode = "SESSION_004"
	SessionInvalidToken     ErrorCode = "SESSION_005"
	SessionNotReady         ErrorCode = "SESSION_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidPixKey ErrorCode = "VALIDATION_007"
)

// Upstream API error codes (UPSTREAM_*)
const (
	UpstreamRequestFailed ErrorCode = "UPSTREAM_001"
	UpstreamStaleResponse ErrorCode = "UPSTREAM_002"
)

// Saved key error codes (SAVEDKEY_*)
const (
	SavedKeyNotFound  ErrorCode = "SAVEDKEY_001"
	SavedKeyInvalidID ErrorCode = "SAVEDKEY_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound       ErrorCode = "TRANSACTION_001"
	TransactionInvalidID      ErrorCode = "TRANSACTION_002"
	TransactionPageOutOfRange ErrorCode = "TRANSACTION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Session errors
	SessionInvalidAPIKey:    "API Key inválida. Verifica tus credenciales.",
	SessionNotAuthenticated: "No autenticado",
	SessionMissingToken:     "Authorization token is required",
	SessionExpiredToken:     "Authorization token has expired",
	SessionInvalidToken:     "Invalid authorization token format",
	SessionNotReady:         "Session state is still loading",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Valor debe ser un número positivo",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidPixKey: "Invalid Pix key type",

	// Upstream errors
	UpstreamRequestFailed: "Pyx Pay API request failed",
	UpstreamStaleResponse: "A newer request superseded this one",

	// Saved key errors
	SavedKeyNotFound:  "Saved API key not found",
	SavedKeyInvalidID: "Invalid saved API key ID format",

	// Transaction errors
	TransactionNotFound:       "Transaction not found",
	TransactionInvalidID:      "Invalid transaction ID",
	TransactionPageOutOfRange: "Requested page is out of range",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
