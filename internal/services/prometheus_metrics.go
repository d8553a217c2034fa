package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	apiRequestsTotal          *prometheus.CounterVec
	apiRequestDuration        prometheus.Histogram
	transactionListFetches    *prometheus.CounterVec
	transactionsCreatedTotal  *prometheus.CounterVec
	transactionCreateDuration prometheus.Histogram
	cashoutTotal              *prometheus.CounterVec
	walletBalance             prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the dashboard metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the dashboard metrics with reg
func NewPrometheusMetricsWith(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		apiRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pyxpay_api_requests_total",
				Help: "Total number of Pyx Pay API requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		apiRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pyxpay_api_request_duration_milliseconds",
				Help:    "Pyx Pay API request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(5, 2, 12),
			},
		),
		transactionListFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_list_fetches_total",
				Help: "Total number of transaction list fetches by status",
			},
			[]string{"status"},
		),
		transactionsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transaction creation submissions",
			},
			[]string{"kind", "status"},
		),
		transactionCreateDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_create_duration_milliseconds",
				Help:    "Transaction creation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(5, 2, 12),
			},
		),
		cashoutTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashout_total",
				Help: "Total number of cashout requests",
			},
			[]string{"status"},
		),
		walletBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "wallet_balance_brl",
				Help: "Last wallet balance read from the API",
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "pyxpay.request":
		m.apiRequestsTotal.WithLabelValues(tags["endpoint"], tags["outcome"]).Inc()
	case "transaction_list_fetch":
		if status != "" {
			m.transactionListFetches.WithLabelValues(status).Inc()
		}
	case "transaction_created":
		m.transactionsCreatedTotal.WithLabelValues(tags["kind"], status).Inc()
	case "cashout_total":
		if status != "" {
			m.cashoutTotal.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "pyxpay.request":
		m.apiRequestDuration.Observe(float64(duration.Milliseconds()))
	case "transaction_created":
		m.transactionCreateDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "wallet_balance":
		m.walletBalance.Set(value)
	}
}
