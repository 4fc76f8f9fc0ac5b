package service

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	matchDuration   prometheus.Observer
	matchesFound    prometheus.Histogram
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
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

	matchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_computation_seconds",
		Help:    "Time spent computing mutual matches over the candidate pool",
		Buckets: prometheus.DefBuckets,
	})

	matchesFound := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "matches_found",
		Help:    "Distribution of mutual matches returned per query",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	registry.MustRegister(requestDuration, requestTotal, matchDuration, matchesFound, cacheHits, cacheMisses)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		matchDuration:   matchDuration,
		matchesFound:    matchesFound,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// RecordRequest records one HTTP request observation.
func (s *MetricsService) RecordRequest(method, path, status string, duration time.Duration) {
	if s == nil {
		return
	}
	s.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordMatchQuery records one match computation.
func (s *MetricsService) RecordMatchQuery(found int, duration time.Duration) {
	if s == nil {
		return
	}
	s.matchDuration.Observe(duration.Seconds())
	s.matchesFound.Observe(float64(found))
}

// RecordCacheOperation tracks cache hit/miss counters.
func (s *MetricsService) RecordCacheOperation(hit bool) {
	if s == nil {
		return
	}
	if hit {
		s.cacheHits.Inc()
	} else {
		s.cacheMisses.Inc()
	}
}
