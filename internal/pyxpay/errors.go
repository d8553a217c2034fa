package pyxpay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pyxpay-admin/internal/dto"
)

const (
	ConnectionErrorMessage = "Error de conexión con la API"
	InvalidBodyMessage     = "Respuesta inválida de la API"
)

// errorMessage extracts a display message from a non-2xx body. Candidates are tried in
// order message, detail, title, errors[]; empty values fall through to the status line.
func errorMessage(statusCode int, status string, body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"message", "detail", "title"} {
			if msg := stringField(fields[key]); msg != "" {
				return msg
			}
		}
		if msg := joinFieldErrors(fields["errors"]); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("Error %d: %s", statusCode, statusText(statusCode, status))
}

func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// joinFieldErrors renders an errors array as "description, field, ...".
// Entries without either value render empty, as the dashboard always has.
func joinFieldErrors(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var entries []dto.APIFieldError
	if err := json.Unmarshal(raw, &entries); err != nil {
		return ""
	}
	parts := make([]string, len(entries))
	for i, entry := range entries {
		if entry.ErrorDescription != "" {
			parts[i] = entry.ErrorDescription
		} else {
			parts[i] = entry.Field
		}
	}
	return strings.Join(parts, ", ")
}

// statusText prefers the reason phrase the server sent
func statusText(statusCode int, status string) string {
	if reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode))); reason != "" {
		return reason
	}
	return http.StatusText(statusCode)
}
