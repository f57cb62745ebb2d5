package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for requests, store round-trips
// and the table cache.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	storeQueryDuration *prometheus.HistogramVec
	cacheLookups       *prometheus.CounterVec
	cacheWrite         prometheus.Observer
	documentsRendered  *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_query_duration_seconds",
		Help:    "Duration of record store table reads",
		Buckets: prometheus.DefBuckets,
	}, []string{"table"})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "table_cache_lookups_total",
		Help: "Table cache lookups by result",
	}, []string{"result"})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "table_cache_write_seconds",
		Help:    "Latency for table cache writes",
		Buckets: prometheus.DefBuckets,
	})

	documentsRendered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "documents_rendered_total",
		Help: "Rendered progress card documents by format",
	}, []string{"format"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storeQueryDuration, cacheLookups, cacheWrite, documentsRendered, goroutines)

	return &MetricsService{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		storeQueryDuration: storeQueryDuration,
		cacheLookups:       cacheLookups,
		cacheWrite:         cacheWrite,
		documentsRendered:  documentsRendered,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveStoreQuery records the duration of one table read.
func (m *MetricsService) ObserveStoreQuery(table string, duration time.Duration) {
	if m == nil {
		return
	}
	m.storeQueryDuration.WithLabelValues(table).Observe(duration.Seconds())
}

// RecordCacheLookup counts a table cache hit or miss.
func (m *MetricsService) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveCacheWrite tracks the duration of table cache writes.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// RecordDocument counts a rendered document of the given format (html, pdf, xlsx, csv).
func (m *MetricsService) RecordDocument(format string) {
	if m == nil {
		return
	}
	m.documentsRendered.WithLabelValues(format).Inc()
}
