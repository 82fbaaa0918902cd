// Package metrics provides Prometheus metrics for the gully dashboard service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the gully service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Dataset Metrics - the one-shot CSV load
	datasetLoads        prometheus.Counter
	datasetLoadErrors   prometheus.Counter
	datasetLoadDuration prometheus.Histogram
	datasetRows         *prometheus.GaugeVec

	// Ranking Metrics - pure computations per request
	rankingsComputed        *prometheus.CounterVec
	rankingComputeDuration  *prometheus.HistogramVec
	rankingErrors           *prometheus.CounterVec

	// Chart Metrics - PNG rendering
	chartsRendered      *prometheus.CounterVec
	chartRenderDuration *prometheus.HistogramVec
	chartRenderErrors   *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests         *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Enhanced Error Metrics - per-component error tracking
	errorRateByComponent *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
	uptimeSeconds        prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gully",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// NewMetricsManager is an alias of NewManager kept for readability at call sites.
func NewMetricsManager(opts ...Option) *Manager {
	return NewManager(opts...)
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Dataset Metrics - loading happens once, so failures here are fatal
	m.datasetLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_loads_total",
		Help:      "Total number of successful dataset loads (1 for a healthy process)",
	})

	m.datasetLoadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_errors_total",
		Help:      "Total number of failed dataset loads",
	})

	m.datasetLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Histogram of dataset load duration in milliseconds",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	m.datasetRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows",
		Help:      "Number of records loaded per dataset table",
	}, []string{"table"})

	// Ranking Metrics - recomputed fresh on every request
	m.rankingsComputed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rankings_computed_total",
		Help:      "Total number of ranking computations by kind",
	}, []string{"kind"})

	m.rankingComputeDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_compute_duration_milliseconds",
		Help:      "Histogram of ranking computation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"kind"})

	m.rankingErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_errors_total",
		Help:      "Total number of failed ranking computations by kind",
	}, []string{"kind"})

	// Chart Metrics - one PNG per dashboard interaction
	m.chartsRendered = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "charts_rendered_total",
		Help:      "Total number of charts rendered by kind",
	}, []string{"kind"})

	m.chartRenderDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chart_render_duration_milliseconds",
		Help:      "Histogram of chart render duration in milliseconds",
		Buckets:   []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"kind"})

	m.chartRenderErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chart_render_errors_total",
		Help:      "Total number of failed chart renders by kind",
	}, []string{"kind"})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestsInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests currently being served",
	})

	// Enhanced Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_component_total",
		Help:      "Total errors by component and error type",
	}, []string{"component", "error_type"})

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	m.uptimeSeconds = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "uptime_seconds",
		Help:      "Process uptime in seconds",
	})
}

// Dataset Metrics Functions.

// RecordDatasetLoad records a successful load with its row counts and duration.
func RecordDatasetLoad(matchRows, deliveryRows int, took time.Duration) {
	globalManager.datasetLoads.Inc()
	globalManager.datasetLoadDuration.Observe(float64(took.Milliseconds()))
	globalManager.datasetRows.WithLabelValues("matches").Set(float64(matchRows))
	globalManager.datasetRows.WithLabelValues("deliveries").Set(float64(deliveryRows))
}

// RecordDatasetLoadError increments the failed load counter.
func RecordDatasetLoadError() {
	globalManager.datasetLoadErrors.Inc()
}

// Ranking Metrics Functions.

// RecordRankingComputed records one ranking computation and its duration.
func RecordRankingComputed(kind string, took time.Duration) {
	globalManager.rankingsComputed.WithLabelValues(kind).Inc()
	globalManager.rankingComputeDuration.WithLabelValues(kind).Observe(float64(took.Microseconds()) / 1000.0)
}

// RecordRankingError increments the failed computation counter for a kind.
func RecordRankingError(kind string) {
	globalManager.rankingErrors.WithLabelValues(kind).Inc()
}

// Chart Metrics Functions.

// RecordChartRender records one chart render and its duration.
func RecordChartRender(kind string, took time.Duration) {
	globalManager.chartsRendered.WithLabelValues(kind).Inc()
	globalManager.chartRenderDuration.WithLabelValues(kind).Observe(float64(took.Microseconds()) / 1000.0)
}

// RecordChartRenderError increments the failed render counter for a kind.
func RecordChartRenderError(kind string) {
	globalManager.chartRenderErrors.WithLabelValues(kind).Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// IncHTTPInFlight increments the in-flight request gauge.
func IncHTTPInFlight() {
	globalManager.httpRequestsInFlight.Inc()
}

// DecHTTPInFlight decrements the in-flight request gauge.
func DecHTTPInFlight() {
	globalManager.httpRequestsInFlight.Dec()
}

// Error Metrics Functions.

// RecordErrorByComponent records an error for a specific component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// System Metrics Functions.

// UpdateSystemMemoryUsage sets current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records a GC pause in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// UpdateUptime sets the process uptime in seconds.
func UpdateUptime(seconds float64) {
	globalManager.uptimeSeconds.Set(seconds)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
