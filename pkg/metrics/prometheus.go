package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsCollector struct {
	registry             *prometheus.Registry
	validationsProcessed prometheus.Counter
	validationsInvalid   prometheus.Counter
	batchDuration        prometheus.Histogram
	identifierTypes      *prometheus.CounterVec
	fraudFlags           *prometheus.CounterVec
	logger               *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	collector := &MetricsCollector{
		registry: registry,
		validationsProcessed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "validations_processed_total",
			Help: "Total number of processed identifiers",
		}),
		validationsInvalid: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "validations_invalid_total",
			Help: "Total number of identifiers that failed validation",
		}),
		batchDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "validation_batch_duration_seconds",
			Help:    "Time taken to process a validation batch",
			Buckets: prometheus.DefBuckets,
		}),
		identifierTypes: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "identifier_type_total",
			Help: "Processed identifiers by detected type",
		}, []string{"type"}),
		fraudFlags: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "fraud_flags_total",
			Help: "Fraud flags raised by flag name",
		}, []string{"flag"}),
		logger: logger,
	}

	return collector
}

func (m *MetricsCollector) RecordValidation(idType string, valid bool, flags []string) {
	m.validationsProcessed.Inc()
	if !valid {
		m.validationsInvalid.Inc()
	}
	m.identifierTypes.WithLabelValues(idType).Inc()
	for _, flag := range flags {
		m.fraudFlags.WithLabelValues(flag).Inc()
	}
}

func (m *MetricsCollector) RecordBatch(duration time.Duration) {
	m.batchDuration.Observe(duration.Seconds())
}

func (m *MetricsCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *MetricsCollector) StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.GetHandler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		m.logger.Info("Starting metrics server", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("Metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return server
}

func (m *MetricsCollector) Shutdown(ctx context.Context) error {
	m.logger.Info("Metrics collector shutdown complete")
	return nil
}
