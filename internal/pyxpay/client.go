package pyxpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// MetricsRecorder receives one counter increment and one duration per request
type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

const (
	requestMetric = "pyxpay.request"

	outcomeSuccess  = "success"
	outcomeFailure  = "failure"
	outcomeNetwork  = "network_error"
	outcomeBadBody  = "invalid_body"
	apiKeyHeader    = "api-key"
	jsonContentType = "application/json"
)

type credentialsContextKey struct{}

func withCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsContextKey{}, creds)
}

// apiKeyTransport stamps every request with the api-key of the credentials carried in its context
type apiKeyTransport struct {
	base http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if creds, ok := req.Context().Value(credentialsContextKey{}).(Credentials); ok {
		req.Header.Set(apiKeyHeader, creds.APIKey)
	}
	req.Header.Set("Content-Type", jsonContentType)

	return t.base.RoundTrip(req)
}

// ClientConfig tunes the outbound HTTP client
type ClientConfig struct {
	// Timeout of zero means no client-side deadline beyond the request context
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client performs single, unretried calls against the Pyx Pay REST API.
// It holds no credentials; every call receives them explicitly.
type Client struct {
	http    *http.Client
	logger  *slog.Logger
	metrics MetricsRecorder
}

// NewClient creates a new API client
func NewClient(cfg ClientConfig, logger *slog.Logger, metrics MetricsRecorder) *Client {
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		http: &http.Client{
			Transport: &apiKeyTransport{base: base},
			Timeout:   cfg.Timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

func (c *Client) buildRequest(
	ctx context.Context,
	creds Credentials,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		withCredentials(ctx, creds),
		method,
		creds.Endpoint+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *Client) record(endpoint, outcome string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.IncrementCounter(requestMetric, map[string]string{
		"endpoint": endpoint,
		"outcome":  outcome,
	})
	c.metrics.RecordProcessingTime(requestMetric, time.Since(started))
}

// do issues exactly one request and folds every outcome into a Result.
// endpoint is the path template used for logs and metrics.
func do[T any](ctx context.Context, c *Client, creds Credentials, method, path, endpoint string, body any) Result[T] {
	started := time.Now()

	req, err := c.buildRequest(ctx, creds, method, path, body)
	if err != nil {
		c.logger.Error("pyxpay request build failed", "method", method, "endpoint", endpoint, "error", err)
		c.record(endpoint, outcomeNetwork, started)
		return Fail[T](ConnectionErrorMessage, 0)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(
			"pyxpay request failed",
			"method", method,
			"endpoint", endpoint,
			"error", err,
		)
		c.record(endpoint, outcomeNetwork, started)
		return Fail[T](ConnectionErrorMessage, 0)
	}

	payload, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		c.logger.Error("pyxpay response read failed", "endpoint", endpoint, "status", resp.StatusCode, "error", err)
		c.record(endpoint, outcomeNetwork, started)
		return Fail[T](ConnectionErrorMessage, 0)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := errorMessage(resp.StatusCode, resp.Status, payload)
		c.logger.Warn(
			"pyxpay request rejected",
			"method", method,
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"message", message,
			"duration_ms", time.Since(started).Milliseconds(),
		)
		c.record(endpoint, outcomeFailure, started)
		return Fail[T](message, resp.StatusCode)
	}

	var data T
	if resp.StatusCode == http.StatusNoContent ||
		!strings.Contains(resp.Header.Get("Content-Type"), jsonContentType) ||
		len(bytes.TrimSpace(payload)) == 0 {
		c.record(endpoint, outcomeSuccess, started)
		return Ok(data, resp.StatusCode)
	}

	if err := json.Unmarshal(payload, &data); err != nil {
		c.logger.Error("pyxpay response decode failed", "endpoint", endpoint, "status", resp.StatusCode, "error", err)
		c.record(endpoint, outcomeBadBody, started)
		return Fail[T](InvalidBodyMessage, resp.StatusCode)
	}

	c.logger.Debug(
		"pyxpay request completed",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	c.record(endpoint, outcomeSuccess, started)
	return Ok(data, resp.StatusCode)
}
