package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/handlers"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewHTTPErrorHandler returns an echo error handler that renders every error as the
// standardized error envelope, logs it and counts it in dashboard_api_errors_total.
func NewHTTPErrorHandler(reg prometheus.Registerer) echo.HTTPErrorHandler {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	apiErrorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "api_errors_total",
			Help:      "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, httpStatus := buildErrorResponse(err, traceID)

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"message", errorResponse.Error.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

func buildErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		errorResponse := errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		return errorResponse, echoErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
		}
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest
	}

	if errorResponse, ok := handlers.ServiceErrorResponse(err, traceID); ok {
		return errorResponse, errorResponse.GetHTTPStatus()
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse, errorResponse.GetHTTPStatus()
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.SessionMissingToken
	case http.StatusNotFound:
		return errors.TransactionNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusBadGateway:
		return errors.UpstreamRequestFailed
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "positive_amount", "positive_decimal":
		return "must be a number greater than 0"
	case "pix_key_type":
		return "must be a PIX key type between 1 and 4"
	case "transaction_status":
		return "must be a known transaction status"
	case "operation_type":
		return "must be a known operation type"
	case "page_size":
		return "must be one of: 50 100 500 1000 2000 5000 10000"
	case "local_iso":
		return "must be a local date-time (YYYY-MM-DDTHH:MM:SS)"
	case "form_kind":
		return "must be one of: pix boleto card"
	case "column_key":
		return "must be a known column"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
