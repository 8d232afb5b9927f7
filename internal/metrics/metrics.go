package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popupvideo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "popupvideo_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Facts Metrics
	FactsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popupvideo_facts_requests_total",
			Help: "Total number of generate-facts requests by outcome source",
		},
		[]string{"source"},
	)

	FactsGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "popupvideo_facts_per_video",
			Help:    "Number of facts generated per video",
			Buckets: []float64{2, 5, 10, 15, 20, 25, 35, 50},
		},
	)

	// Generation Metrics
	GenerationAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popupvideo_generation_attempts_total",
			Help: "Total number of model call attempts",
		},
	)

	GenerationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popupvideo_generation_failures_total",
			Help: "Total number of generations that exhausted all retries",
		},
	)

	// Cache Metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popupvideo_cache_hits_total",
			Help: "Total number of facts cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "popupvideo_cache_misses_total",
			Help: "Total number of facts cache misses",
		},
	)

	// Transcript Metrics
	TranscriptFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popupvideo_transcript_fetches_total",
			Help: "Total number of transcript fetch attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordHTTPRequest records an HTTP request
func RecordHTTPRequest(method, endpoint, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordFactsRequest records a generate-facts outcome
func RecordFactsRequest(source string, factCount int) {
	FactsRequestsTotal.WithLabelValues(source).Inc()
	if factCount > 0 {
		FactsGenerated.Observe(float64(factCount))
	}
}

// RecordGenerationAttempt records a model call attempt
func RecordGenerationAttempt() {
	GenerationAttemptsTotal.Inc()
}

// RecordGenerationFailure records a generation that exhausted all retries
func RecordGenerationFailure() {
	GenerationFailuresTotal.Inc()
}

// RecordCacheAccess records a facts cache hit or miss
func RecordCacheAccess(hit bool) {
	if hit {
		CacheHitsTotal.Inc()
	} else {
		CacheMissesTotal.Inc()
	}
}

// RecordTranscriptFetch records a transcript fetch outcome
func RecordTranscriptFetch(outcome string) {
	TranscriptFetchesTotal.WithLabelValues(outcome).Inc()
}
