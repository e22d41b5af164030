package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated  *prometheus.CounterVec
	transactionsDeleted  prometheus.Counter
	transactionsImported prometheus.Counter
	importBatchSize      prometheus.Histogram
	analyticsRequests    *prometheus.CounterVec
	analyticsDuration    *prometheus.HistogramVec
	searchesRecorded     prometheus.Counter
	authEventsTotal      *prometheus.CounterVec
	devDataGenerated     prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of ledger transactions created",
			},
			[]string{"type"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_deleted_total",
				Help: "Total number of ledger transactions deleted",
			},
		),
		transactionsImported: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_imported_total",
				Help: "Total number of bulk import operations",
			},
		),
		importBatchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_import_batch_size",
				Help:    "Number of transactions per bulk import",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		analyticsRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics report requests",
			},
			[]string{"report"},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_calculation_duration_milliseconds",
				Help:    "Analytics calculation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		searchesRecorded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "price_searches_recorded_total",
				Help: "Total number of price lookups recorded",
			},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		devDataGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dev_transactions_generated_total",
				Help: "Total number of generated test transactions",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions.created":
		m.transactionsCreated.WithLabelValues(tags["type"]).Inc()
	case "transactions.deleted":
		m.transactionsDeleted.Inc()
	case "transactions.imported":
		m.transactionsImported.Inc()
	case "analytics.requests":
		if report := tags["report"]; report != "" {
			m.analyticsRequests.WithLabelValues(report).Inc()
		}
	case "searches.recorded":
		m.searchesRecorded.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "dev.data_generated":
		m.devDataGenerated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "analytics.summary":
		m.analyticsDuration.WithLabelValues("summary").Observe(float64(duration.Milliseconds()))
	case "analytics.best_flip":
		m.analyticsDuration.WithLabelValues("best_flip").Observe(float64(duration.Milliseconds()))
	case "analytics.top_items":
		m.analyticsDuration.WithLabelValues("top_items").Observe(float64(duration.Milliseconds()))
	case "analytics.trend":
		m.analyticsDuration.WithLabelValues("trend").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transactions.import_batch_size":
		m.importBatchSize.Observe(value)
	}
}
