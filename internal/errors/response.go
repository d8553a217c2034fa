package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the envelope every failed dashboard request returns
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, message and trace id of one failure
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customises an ErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the default message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError lists one "field: message" detail per invalid field, sorted by field
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, len(fields))
	for i, field := range fields {
		details[i] = fmt.Sprintf("%s: %s", field, fieldErrors[field])
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewUpstreamError reports a failed Pyx Pay call with the remote message verbatim.
// A zero status means the request never got a response.
func NewUpstreamError(message string, statusCode int, traceID string) *ErrorResponse {
	response := NewErrorResponse(UpstreamRequestFailed, traceID, WithMessage(message))
	if statusCode > 0 {
		response.Error.Details = []string{fmt.Sprintf("upstream_status: %d", statusCode)}
	}
	return response
}

// WrapSystemError hides err behind SYSTEM_001 and hands it back for logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatusByCode = map[ErrorCode]int{
	ValidationGeneral:         http.StatusBadRequest,
	ValidationRequiredField:   http.StatusBadRequest,
	ValidationInvalidFormat:   http.StatusBadRequest,
	ValidationOutOfRange:      http.StatusBadRequest,
	ValidationInvalidAmount:   http.StatusBadRequest,
	ValidationInvalidDate:     http.StatusBadRequest,
	ValidationInvalidPixKey:   http.StatusBadRequest,
	SavedKeyInvalidID:         http.StatusBadRequest,
	TransactionInvalidID:      http.StatusBadRequest,
	TransactionPageOutOfRange: http.StatusBadRequest,

	SessionInvalidAPIKey:    http.StatusUnauthorized,
	SessionNotAuthenticated: http.StatusUnauthorized,
	SessionMissingToken:     http.StatusUnauthorized,
	SessionExpiredToken:     http.StatusUnauthorized,
	SessionInvalidToken:     http.StatusUnauthorized,

	SavedKeyNotFound:    http.StatusNotFound,
	TransactionNotFound: http.StatusNotFound,

	UpstreamStaleResponse:   http.StatusConflict,
	SystemRateLimitExceeded: http.StatusTooManyRequests,
	UpstreamRequestFailed:   http.StatusBadGateway,

	SessionNotReady:          http.StatusServiceUnavailable,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status for code; system and unknown codes are 500
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the status for the response's code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
