// Package metrics provides Prometheus metrics for the QuickMed service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the QuickMed service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	storeBuckets     []float64
	enabled          bool
	registry         prometheus.Registerer

	// Calculator Metrics
	calculations     *prometheus.CounterVec
	validationErrors *prometheus.CounterVec

	// Record Store Metrics
	recordsAppended     *prometheus.CounterVec
	persistenceFailures prometheus.Counter
	storeAppendLatency  prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Process Metrics
	sessionRecords       prometheus.Gauge
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// defaultLatencyBucketsMs spans sub-millisecond handlers up to a slow
// remote database write.
var defaultLatencyBucketsMs = []float64{0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000} //nolint:gochecknoglobals // static bucket layout

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "quickmed",
		subsystem:        "calculator",
		histogramBuckets: defaultLatencyBucketsMs,
		storeBuckets:     defaultLatencyBucketsMs,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.calculations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "calculations_total",
			Help:      "Total number of successful calculations by calculator",
		},
		[]string{"calculator"},
	)

	m.validationErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "validation_errors_total",
			Help:      "Total number of rejected calculator inputs by calculator",
		},
		[]string{"calculator"},
	)

	m.recordsAppended = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "records_appended_total",
			Help:      "Total number of records written to the record store",
		},
		[]string{"calculator_type"},
	)

	m.persistenceFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "persistence_failures_total",
		Help:      "Total number of records that could not be written",
	})

	m.storeAppendLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_append_latency_milliseconds",
		Help:      "Histogram of record store append latency in milliseconds",
		Buckets:   m.storeBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.sessionRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_records",
		Help:      "Records written since the service started",
	})

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
}

// RecordCalculation increments the calculations counter for a calculator.
func RecordCalculation(calculator string) {
	if !globalManager.enabled {
		return
	}
	globalManager.calculations.WithLabelValues(calculator).Inc()
}

// RecordValidationError increments the validation errors counter for a calculator.
func RecordValidationError(calculator string) {
	if !globalManager.enabled {
		return
	}
	globalManager.validationErrors.WithLabelValues(calculator).Inc()
}

// RecordRecordAppended increments the appended records counter.
func RecordRecordAppended(calculatorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.recordsAppended.WithLabelValues(calculatorType).Inc()
}

// RecordPersistenceFailure increments the persistence failures counter.
func RecordPersistenceFailure() {
	if !globalManager.enabled {
		return
	}
	globalManager.persistenceFailures.Inc()
}

// RecordStoreAppendLatency records record store append latency.
func RecordStoreAppendLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeAppendLatency.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// UpdateSessionRecords sets the number of records written since start.
func UpdateSessionRecords(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.sessionRecords.Set(float64(count))
}

// UpdateSystemMemoryUsage sets the allocated heap size in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
