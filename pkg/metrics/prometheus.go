package metrics

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type MetricsCollector struct {
	registry       *prometheus.Registry
	lookups        *prometheus.CounterVec
	lookupDuration prometheus.Histogram
	accountBalance *prometheus.GaugeVec
	logger         *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	return &MetricsCollector{
		registry: registry,
		lookups: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "lookups_total",
			Help: "Total number of rendered lookups by outcome",
		}, []string{"outcome"}),
		lookupDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "lookup_duration_seconds",
			Help:    "Time taken to fetch and render a record",
			Buckets: prometheus.DefBuckets,
		}),
		accountBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "account_balance",
			Help: "Current account balance",
		}, []string{"account_id"}),
		logger: logger,
	}
}

func (m *MetricsCollector) RecordLookup(duration time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.lookups.WithLabelValues(outcome).Inc()
	m.lookupDuration.Observe(duration.Seconds())
}

func (m *MetricsCollector) UpdateAccountBalance(accountID string, balance float64) {
	m.accountBalance.WithLabelValues(accountID).Set(balance)
}

func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// LogSnapshot writes the current metric families to the collector's logger.
func (m *MetricsCollector) LogSnapshot() error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			attrs := []any{slog.String("name", mf.GetName())}
			for _, label := range metric.GetLabel() {
				attrs = append(attrs, slog.String(label.GetName(), label.GetValue()))
			}
			switch {
			case metric.GetCounter() != nil:
				attrs = append(attrs, slog.Float64("value", metric.GetCounter().GetValue()))
			case metric.GetGauge() != nil:
				attrs = append(attrs, slog.Float64("value", metric.GetGauge().GetValue()))
			case metric.GetHistogram() != nil:
				attrs = append(attrs,
					slog.Uint64("count", metric.GetHistogram().GetSampleCount()),
					slog.Float64("sum", metric.GetHistogram().GetSampleSum()))
			}
			m.logger.Info("Metric", attrs...)
		}
	}
	return nil
}
