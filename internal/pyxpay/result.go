package pyxpay

import "strings"

// DefaultEndpoint is used whenever a blank endpoint is supplied
const DefaultEndpoint = "https://pyxpay.com.br/v1"

// Credentials identify the operator against the API
type Credentials struct {
	APIKey   string `json:"apiKey"`
	Endpoint string `json:"endpoint"`
}

// NewCredentials trims both values and substitutes the default endpoint when blank
func NewCredentials(apiKey, endpoint string) Credentials {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return Credentials{
		APIKey:   strings.TrimSpace(apiKey),
		Endpoint: strings.TrimRight(endpoint, "/"),
	}
}

// IsZero reports whether no API key is present
func (c Credentials) IsZero() bool {
	return c.APIKey == ""
}

// Result is the outcome of a single API call. Failures carry a display message and
// never surface as Go errors.
type Result[T any] struct {
	Success    bool
	Data       T
	Error      string
	StatusCode int
}

// Ok builds a successful result
func Ok[T any](data T, statusCode int) Result[T] {
	return Result[T]{Success: true, Data: data, StatusCode: statusCode}
}

// Fail builds a failed result
func Fail[T any](message string, statusCode int) Result[T] {
	return Result[T]{Error: message, StatusCode: statusCode}
}

// IsUnauthorized reports whether the API rejected the credentials
func (r Result[T]) IsUnauthorized() bool {
	return !r.Success && r.StatusCode == 401
}

// failAs carries a failure over to a result of another data type
func failAs[T, U any](r Result[U]) Result[T] {
	return Fail[T](r.Error, r.StatusCode)
}
