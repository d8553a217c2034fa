package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/repositories"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// ERROR RESPONSES
//
// Handlers report failures through three helpers:
//
// 1. SendError - a known dashboard error code, optionally with WithMessage/WithDetails
// 2. SendServiceError - any error returned by the services layer. Known sentinels map to their
//    code; remote API failures become UPSTREAM_001 with the remote message verbatim;
//    everything else is a SYSTEM_001 with the internal error hidden.
// 3. SendSystemError - internal failures that must not leak details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the envelope of every successful response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

type errorMapping struct {
	target error
	code   errors.ErrorCode
	// verbatim replaces the code's default message with the sentinel's own text
	verbatim bool
}

var serviceErrorMappings = []errorMapping{
	{target: services.ErrInvalidAPIKey, code: errors.SessionInvalidAPIKey},
	{target: services.ErrNotAuthenticated, code: errors.SessionNotAuthenticated},
	{target: services.ErrSessionReplaced, code: errors.SessionInvalidToken, verbatim: true},
	{target: services.ErrSessionNotReady, code: errors.SessionNotReady},
	{target: services.ErrStaleResponse, code: errors.UpstreamStaleResponse},
	{target: services.ErrPageOutOfRange, code: errors.TransactionPageOutOfRange},
	{target: services.ErrTransactionNotFound, code: errors.TransactionNotFound},

	{target: services.ErrAPIKeyRequired, code: errors.ValidationRequiredField, verbatim: true},
	{target: services.ErrInvalidAmount, code: errors.ValidationInvalidAmount, verbatim: true},
	{target: services.ErrClientNameRequired, code: errors.ValidationRequiredField, verbatim: true},
	{target: services.ErrPixKeyRequired, code: errors.ValidationRequiredField, verbatim: true},
	{target: services.ErrDocumentRequired, code: errors.ValidationRequiredField, verbatim: true},
	{target: services.ErrInvalidPixKeyType, code: errors.ValidationInvalidPixKey, verbatim: true},
	{target: services.ErrInvalidFormKind, code: errors.ValidationInvalidFormat, verbatim: true},
	{target: services.ErrInvalidDueDate, code: errors.ValidationInvalidDate, verbatim: true},
	{target: services.ErrUnknownColumn, code: errors.ValidationInvalidFormat, verbatim: true},

	{target: models.ErrSavedKeyLabelRequired, code: errors.ValidationRequiredField, verbatim: true},
	{target: models.ErrSavedKeyAPIKeyRequired, code: errors.ValidationRequiredField, verbatim: true},
	{target: models.ErrInvalidPeriod, code: errors.ValidationInvalidDate, verbatim: true},
	{target: models.ErrPeriodReversed, code: errors.ValidationInvalidDate, verbatim: true},
	{target: models.ErrInvalidPageSize, code: errors.ValidationOutOfRange, verbatim: true},
	{target: models.ErrInvalidStatus, code: errors.ValidationOutOfRange, verbatim: true},
	{target: models.ErrInvalidPage, code: errors.ValidationOutOfRange, verbatim: true},

	{target: repositories.ErrSavedKeyNotFound, code: errors.SavedKeyNotFound},
}

// ServiceErrorResponse maps a services-layer error to its dashboard error response.
// ok is false when err is not a known domain error.
func ServiceErrorResponse(err error, traceID string) (response *errors.ErrorResponse, ok bool) {
	for _, mapping := range serviceErrorMappings {
		if !stderrors.Is(err, mapping.target) {
			continue
		}
		var opts []errors.ErrorOption
		if mapping.verbatim {
			opts = append(opts, errors.WithMessage(mapping.target.Error()))
		}
		if upstream, found := services.AsUpstreamError(err); found {
			opts = append(opts, errors.WithMessage(upstream.Message))
		}
		return errors.NewErrorResponse(mapping.code, traceID, opts...), true
	}

	if upstream, found := services.AsUpstreamError(err); found {
		return errors.NewUpstreamError(upstream.Message, upstream.StatusCode, traceID), true
	}

	return nil, false
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendServiceError renders an error returned by a service
func SendServiceError(c echo.Context, err error) error {
	if response, ok := ServiceErrorResponse(err, getTraceID(c)); ok {
		return c.JSON(response.GetHTTPStatus(), response)
	}
	return SendSystemError(c, err)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.Error("internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendData writes a success envelope
func sendData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Data: data})
}
