// Package metrics holds the Prometheus collectors of the planner processes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider call outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Snapshot worker outcomes besides success
const (
	OutcomeMalformed = "malformed"
	OutcomeRetry     = "retry"
)

// Database query outcomes worth counting
const (
	QueryFailed = "failed"
	QuerySlow   = "slow"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "columbus_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "columbus_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	providerCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "columbus_provider_calls_total",
			Help: "Total number of external provider calls by outcome",
		},
		[]string{"provider", "outcome"},
	)

	// Generation calls routinely take tens of seconds.
	providerCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "columbus_provider_call_duration_seconds",
			Help:    "External provider call duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"provider"},
	)

	itinerariesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "columbus_itineraries_generated_total",
			Help: "Total number of itineraries generated",
		},
	)

	rateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "columbus_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	dbQueriesFlaggedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "columbus_db_queries_flagged_total",
			Help: "Total number of failed or slow database queries",
		},
		[]string{"kind"},
	)

	dbPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "columbus_db_pool_connections",
			Help: "Database pool connections by state",
		},
		[]string{"state"},
	)

	dbPoolWaitSeconds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "columbus_db_pool_wait_seconds_total",
			Help: "Total time spent waiting for a pooled database connection",
		},
	)

	snapshotRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "columbus_snapshot_refresh_total",
			Help: "Total number of itinerary snapshot refreshes by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveHTTPRequest records one served request. path must be the route
// pattern, never the raw URL.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveProviderCall records one external provider call.
func ObserveProviderCall(provider string, err error, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	providerCallsTotal.WithLabelValues(provider, outcome).Inc()
	providerCallDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// IncItinerariesGenerated increments the generated itineraries counter.
func IncItinerariesGenerated() {
	itinerariesGeneratedTotal.Inc()
}

// IncRateLimited increments the throttled requests counter.
func IncRateLimited() {
	rateLimitedTotal.Inc()
}

// ObserveSnapshotRefresh records the outcome of one snapshot worker message.
func ObserveSnapshotRefresh(outcome string) {
	snapshotRefreshTotal.WithLabelValues(outcome).Inc()
}

// IncDBQueryFlagged counts a query the GORM logger reported as QueryFailed or QuerySlow.
func IncDBQueryFlagged(kind string) {
	dbQueriesFlaggedTotal.WithLabelValues(kind).Inc()
}

// ObserveDBPool publishes a pool stats sample and the wait time accumulated since the previous one.
func ObserveDBPool(open, inUse, idle int, waited time.Duration) {
	dbPoolConnections.WithLabelValues("open").Set(float64(open))
	dbPoolConnections.WithLabelValues("in_use").Set(float64(inUse))
	dbPoolConnections.WithLabelValues("idle").Set(float64(idle))
	if waited > 0 {
		dbPoolWaitSeconds.Add(waited.Seconds())
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
