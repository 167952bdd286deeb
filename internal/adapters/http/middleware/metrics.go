package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequestsTotal counts total HTTP requests
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roadshare",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration measures request latency
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "roadshare",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// httpRequestsInFlight tracks concurrent requests
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "roadshare",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// httpResponseSize measures response body size
	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "roadshare",
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Business metrics
var (
	// InscriptionsTotal counts seat bookings by outcome
	InscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roadshare",
			Subsystem: "business",
			Name:      "inscriptions_total",
			Help:      "Total number of booking attempts",
		},
		[]string{"outcome"}, // created, confirmed, no_seats, duplicate, cancelled
	)

	// TravelsPublishedTotal counts published travels
	TravelsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "roadshare",
			Subsystem: "business",
			Name:      "travels_published_total",
			Help:      "Total number of travels published by drivers",
		},
	)

	// UsersRegisteredTotal counts user registrations
	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "roadshare",
			Subsystem: "business",
			Name:      "users_registered_total",
			Help:      "Total number of registered users",
		},
	)
)

// Cache metrics
var (
	// CacheOperationsTotal counts cache lookups by result
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roadshare",
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Total number of cache lookups",
		},
		[]string{"domain", "result"}, // hit, miss, error
	)

	// CacheInvalidationsTotal counts pattern invalidations
	CacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roadshare",
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Total number of cache domain invalidations",
		},
		[]string{"domain"},
	)
)

// Database metrics
var (
	// DBQueryDuration measures database query latency
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "roadshare",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation", "table"},
	)

	// DBConnectionsTotal tracks database connections
	DBConnectionsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "roadshare",
			Subsystem: "db",
			Name:      "connections",
			Help:      "Number of database connections",
		},
		[]string{"state"}, // idle, in_use, max
	)
)

// Metrics returns Prometheus metrics middleware
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		method := c.Request.Method

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(c.Writer.Size()))
	}
}

// RecordInscription records a booking attempt outcome
func RecordInscription(outcome string) {
	InscriptionsTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheLookup records a cache lookup result
func RecordCacheLookup(domain, result string) {
	CacheOperationsTotal.WithLabelValues(domain, result).Inc()
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// UpdateDBConnections updates database connection metrics
func UpdateDBConnections(idle, inUse, max int32) {
	DBConnectionsTotal.WithLabelValues("idle").Set(float64(idle))
	DBConnectionsTotal.WithLabelValues("in_use").Set(float64(inUse))
	DBConnectionsTotal.WithLabelValues("max").Set(float64(max))
}
