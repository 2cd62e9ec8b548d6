package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	upstreamRequestsTotal *prometheus.CounterVec
	activeSessions        prometheus.Gauge
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the garage service API",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "intake_sessions_active",
			Help:        "Number of intake sessions currently held in memory",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest учитывает завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest учитывает запрос к внешнему API
func (m *Metrics) ObserveUpstreamRequest(operation, outcome string) {
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// SetActiveSessions обновляет количество активных intake-сессий
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
