package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/repositories"

	"github.com/google/uuid"
)

// apiRoute answers one "METHOD /path" of the fake Pyx Pay API
type apiRoute func(w http.ResponseWriter, r *http.Request)

// fakePyxPay is an httptest server standing in for the Pyx Pay API
type fakePyxPay struct {
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]apiRoute
	requests []*http.Request
	bodies   []string
}

func newFakePyxPay(t *testing.T) *fakePyxPay {
	t.Helper()

	f := &fakePyxPay{routes: map[string]apiRoute{}}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.bodies = append(f.bodies, string(body))
		route, ok := f.routes[r.Method+" "+r.URL.Path]
		f.mu.Unlock()

		if !ok {
			writeAPIJSON(w, http.StatusNotFound, `{"message":"Recurso no encontrado"}`)
			return
		}
		route(w, r)
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakePyxPay) handle(method, path string, route apiRoute) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = route
}

func (f *fakePyxPay) respond(method, path string, status int, body string) {
	f.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		writeAPIJSON(w, status, body)
	})
}

func (f *fakePyxPay) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakePyxPay) lastRequest() (*http.Request, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil, ""
	}
	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func (f *fakePyxPay) client() *pyxpay.Client {
	return pyxpay.NewClient(pyxpay.ClientConfig{Timeout: 5 * time.Second}, discardLogger(), nil)
}

func writeAPIJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// staticSession is a SessionServiceInterface stand-in holding fixed credentials
type staticSession struct {
	SessionServiceInterface
	creds pyxpay.Credentials
}

func (s staticSession) RequireCredentials() (pyxpay.Credentials, error) {
	if s.creds.IsZero() {
		return pyxpay.Credentials{}, ErrNotAuthenticated
	}
	return s.creds, nil
}

func (s staticSession) Credentials() (pyxpay.Credentials, bool) {
	return s.creds, !s.creds.IsZero()
}

// recordingMetrics keeps every counter for assertions
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string][]map[string]string
	gauges   map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counters: map[string][]map[string]string{}, gauges: map[string]float64{}}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] = append(m.counters[name], tags)
}

func (m *recordingMetrics) RecordProcessingTime(string, time.Duration) {}

func (m *recordingMetrics) RecordGauge(name string, value float64, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

func (m *recordingMetrics) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counters[name])
}

func mustParseUUID(t *testing.T, value string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(value)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", value, err)
	}
	return id
}

// heldStateRepository parks the first Save of a namespace until release is closed
type heldStateRepository struct {
	repositories.StateRepositoryInterface
	namespace string
	entered   chan struct{}
	release   chan struct{}
	once      sync.Once
}

func newHeldStateRepository(inner repositories.StateRepositoryInterface, namespace string) *heldStateRepository {
	return &heldStateRepository{
		StateRepositoryInterface: inner,
		namespace:                namespace,
		entered:                  make(chan struct{}),
		release:                  make(chan struct{}),
	}
}

func (r *heldStateRepository) Save(ctx context.Context, namespace string, value []byte) error {
	if namespace == r.namespace {
		first := false
		r.once.Do(func() { first = true })
		if first {
			close(r.entered)
			<-r.release
		}
	}
	return r.StateRepositoryInterface.Save(ctx, namespace, value)
}
